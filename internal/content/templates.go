package content

import (
	"strings"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
)

// SequenceLength - количество писем nurture-последовательности на тип.
const SequenceLength = 8

// TemplateFunc строит тему и HTML-тело письма для конкретного получателя.
type TemplateFunc func(firstName string) (subject, html string)

var catalog = map[string]map[string][]TemplateFunc{
	entity.LocaleEN: {
		entity.TypeEmotionalTrader:      emotionalTraderEN,
		entity.TypeTimeStarvedTrader:    timeStarvedTraderEN,
		entity.TypeInconsistentExecutor: inconsistentExecutorEN,
		entity.TypeOverwhelmedAnalyst:   overwhelmedAnalystEN,
	},
	entity.LocaleRU: {
		entity.TypeEmotionalTrader:      emotionalTraderRU,
		entity.TypeTimeStarvedTrader:    timeStarvedTraderRU,
		entity.TypeInconsistentExecutor: inconsistentExecutorRU,
		entity.TypeOverwhelmedAnalyst:   overwhelmedAnalystRU,
	},
}

// Template возвращает шаблон письма под номером emailNumber (1..8) для типа
// личности и локали. Неизвестная локаль откатывается на английскую; за
// пределами последовательности или для неизвестного типа возвращается nil.
func Template(personalityType string, emailNumber int, locale string) TemplateFunc {
	if emailNumber < 1 || emailNumber > SequenceLength {
		return nil
	}
	byType, ok := catalog[locale]
	if !ok {
		byType = catalog[entity.LocaleEN]
	}
	seq, ok := byType[personalityType]
	if !ok {
		return nil
	}
	return seq[emailNumber-1]
}

// Render рендерит зашитый шаблон, возвращая false, когда шаблона нет.
func Render(personalityType string, emailNumber int, locale, firstName string) (subject, html string, ok bool) {
	fn := Template(personalityType, emailNumber, locale)
	if fn == nil {
		return "", "", false
	}
	subject, html = fn(firstName)
	return subject, html, true
}

// SeedTemplate - материализованный шаблон с плейсхолдером {{firstName}}
// вместо конкретного имени. Используется сидером для заливки в базу.
type SeedTemplate struct {
	PersonalityType string
	EmailNumber     int
	Locale          string
	Subject         string
	HTMLBody        string
}

// SeedTemplates разворачивает весь каталог (4 типа x 8 писем x 2 локали) в
// плоский список с подстановкой плейсхолдера имени.
func SeedTemplates() []SeedTemplate {
	// Рендерим с маркером, который заведомо не встречается в текстах,
	// и заменяем его на плейсхолдер шаблонизатора.
	const marker = "\x00firstName\x00"

	var out []SeedTemplate
	for _, locale := range []string{entity.LocaleEN, entity.LocaleRU} {
		for _, pt := range entity.PersonalityTypes {
			for n := 1; n <= SequenceLength; n++ {
				subject, html, ok := Render(pt, n, locale, marker)
				if !ok {
					continue
				}
				out = append(out, SeedTemplate{
					PersonalityType: pt,
					EmailNumber:     n,
					Locale:          locale,
					Subject:         strings.ReplaceAll(subject, marker, entity.FirstNamePlaceholder),
					HTMLBody:        strings.ReplaceAll(html, marker, entity.FirstNamePlaceholder),
				})
			}
		}
	}
	return out
}
