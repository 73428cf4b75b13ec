package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Константы типов торговой личности. Набор закрыт: ровно четыре типа,
// пользователем не расширяется.
const (
	TypeEmotionalTrader      = "emotional_trader"
	TypeTimeStarvedTrader    = "time_starved_trader"
	TypeInconsistentExecutor = "inconsistent_executor"
	TypeOverwhelmedAnalyst   = "overwhelmed_analyst"
)

// PersonalityTypes задает канонический порядок типов. Порядок значим:
// скоринг обходит вектор именно в этом порядке, и первый элемент
// является типом-победителем по умолчанию при нулевых очках.
var PersonalityTypes = []string{
	TypeEmotionalTrader,
	TypeTimeStarvedTrader,
	TypeInconsistentExecutor,
	TypeOverwhelmedAnalyst,
}

// IsValidPersonalityType проверяет, входит ли значение в закрытый набор типов
func IsValidPersonalityType(t string) bool {
	for _, pt := range PersonalityTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// ScoreVector - вектор очков по всем четырем типам личности.
// Хранится в JSONB; ключи вне PersonalityTypes не допускаются при записи скорингом.
type ScoreVector map[string]int

// NewScoreVector возвращает нулевой вектор по всем четырем типам
func NewScoreVector() ScoreVector {
	sv := make(ScoreVector, len(PersonalityTypes))
	for _, pt := range PersonalityTypes {
		sv[pt] = 0
	}
	return sv
}

// Scan реализует интерфейс sql.Scanner для ScoreVector
func (sv *ScoreVector) Scan(value interface{}) error {
	if value == nil {
		*sv = NewScoreVector()
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}
	if len(bytes) == 0 {
		*sv = NewScoreVector()
		return nil
	}

	return json.Unmarshal(bytes, sv)
}

// Value реализует интерфейс driver.Valuer для ScoreVector
func (sv ScoreVector) Value() (driver.Value, error) {
	if sv == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(sv)
}
