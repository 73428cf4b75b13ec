package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Статусы жизненного цикла формы квиза
const (
	FormStatusDraft     = "draft"
	FormStatusPublished = "published"
)

// Типы вопросов формы
const (
	QuestionTypeText           = "text"
	QuestionTypeEmail          = "email"
	QuestionTypeMultipleChoice = "multiple_choice"
)

// QuestionOption - один вариант ответа multiple_choice вопроса
type QuestionOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionList - упорядоченный список вариантов ответа, хранится в JSONB
type OptionList []QuestionOption

// Scan реализует интерфейс sql.Scanner для OptionList
func (o *OptionList) Scan(value interface{}) error {
	if value == nil {
		*o = OptionList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}
	if len(bytes) == 0 {
		*o = OptionList{}
		return nil
	}
	return json.Unmarshal(bytes, o)
}

// Value реализует интерфейс driver.Valuer для OptionList
func (o OptionList) Value() (driver.Value, error) {
	if len(o) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(o)
}

// ScoringMap - скоринговая карта вопроса: answerValue -> {personalityType -> очки}.
// Хранится в JSONB. Типы личности вне закрытого набора молча игнорируются скорингом.
type ScoringMap map[string]map[string]int

// Scan реализует интерфейс sql.Scanner для ScoringMap
func (m *ScoringMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}
	if len(bytes) == 0 {
		*m = nil
		return nil
	}
	return json.Unmarshal(bytes, m)
}

// Value реализует интерфейс driver.Valuer для ScoringMap
func (m ScoringMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// QuizForm представляет именованную локализованную форму квиза.
// Форма обслуживает посетителей только в статусе published.
type QuizForm struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	Name        string             `gorm:"size:200;not null" json:"name"`
	Slug        string             `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	Locale      string             `gorm:"size:5;not null;default:'en'" json:"locale"`
	Status      string             `gorm:"size:20;not null;default:'draft'" json:"status"`
	ResultsPath string             `gorm:"size:255;not null;default:'/results'" json:"results_path"`
	Description string             `gorm:"size:1000;not null;default:''" json:"description"`
	Questions   []QuizFormQuestion `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (QuizForm) TableName() string {
	return "quiz_forms"
}

// IsPublished проверяет, опубликована ли форма
func (f *QuizForm) IsPublished() bool {
	return f.Status == FormStatusPublished
}

// QuizFormQuestion - вопрос формы. Вопросы принадлежат ровно одной форме и
// пересоздаются целиком при каждом сохранении набора (delete-all-then-recreate):
// стабильной идентичности вопроса между правками нет.
type QuizFormQuestion struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	FormID        uint       `gorm:"not null;index" json:"form_id"`
	QuestionKey   string     `gorm:"size:100;not null" json:"question_key"`
	Type          string     `gorm:"size:20;not null;default:'text'" json:"type"`
	Prompt        string     `gorm:"column:question;size:500;not null" json:"question"`
	Placeholder   string     `gorm:"size:255;not null;default:''" json:"placeholder,omitempty"`
	Options       OptionList `gorm:"type:jsonb" json:"options,omitempty"`
	Position      int        `gorm:"not null;default:0" json:"position"`
	Required      bool       `gorm:"not null;default:true" json:"required"`
	ScoringWeight int        `gorm:"not null;default:0" json:"scoring_weight"`
	ScoringMap    ScoringMap `gorm:"type:jsonb" json:"scoring_map,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (QuizFormQuestion) TableName() string {
	return "quiz_form_questions"
}

// IsScoring проверяет, участвует ли вопрос в скоринге
func (q *QuizFormQuestion) IsScoring() bool {
	return q.ScoringWeight > 0 && q.ScoringMap != nil
}
