package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizfortraders/funnel-api/internal/domain/entity"
)

func TestTemplate_CatalogComplete(t *testing.T) {
	// Каждый тип в каждой локали имеет полную последовательность из 8 писем
	for _, locale := range []string{entity.LocaleEN, entity.LocaleRU} {
		for _, pt := range entity.PersonalityTypes {
			for n := 1; n <= SequenceLength; n++ {
				fn := Template(pt, n, locale)
				require.NotNil(t, fn, "%s/%s/%d", locale, pt, n)

				subject, html := fn("Ana")
				assert.NotEmpty(t, subject)
				assert.Contains(t, html, "<!DOCTYPE html>")
			}
		}
	}
}

func TestTemplate_OutOfRange(t *testing.T) {
	assert.Nil(t, Template(entity.TypeEmotionalTrader, 0, entity.LocaleEN))
	assert.Nil(t, Template(entity.TypeEmotionalTrader, 9, entity.LocaleEN))
	assert.Nil(t, Template("day_trader_3000", 1, entity.LocaleEN))
}

func TestTemplate_UnknownLocaleFallsBackToEnglish(t *testing.T) {
	en := Template(entity.TypeOverwhelmedAnalyst, 2, entity.LocaleEN)
	fr := Template(entity.TypeOverwhelmedAnalyst, 2, "fr")
	require.NotNil(t, fr)

	enSubject, _ := en("Marc")
	frSubject, _ := fr("Marc")
	assert.Equal(t, enSubject, frSubject)
}

func TestTemplate_FirstEmailLinksReport(t *testing.T) {
	// Первое письмо каждого типа ведет на PDF-отчет этого типа
	slugs := map[string]string{
		entity.TypeEmotionalTrader:      "emotional-trader",
		entity.TypeTimeStarvedTrader:    "time-starved-trader",
		entity.TypeInconsistentExecutor: "inconsistent-executor",
		entity.TypeOverwhelmedAnalyst:   "overwhelmed-analyst",
	}

	for pt, slug := range slugs {
		_, html, ok := Render(pt, 1, entity.LocaleEN, "Ana")
		require.True(t, ok)
		assert.Contains(t, html, "/api/pdf/"+slug, pt)
		assert.Contains(t, html, "name=Ana")
	}
}

func TestRender_PersonalizesFirstName(t *testing.T) {
	subject, html, ok := Render(entity.TypeEmotionalTrader, 1, entity.LocaleEN, "Ana")
	require.True(t, ok)
	assert.Contains(t, subject, "Ana")
	assert.Contains(t, html, "Ana")

	_, _, ok = Render(entity.TypeEmotionalTrader, 99, entity.LocaleEN, "Ana")
	assert.False(t, ok)
}

func TestSeedTemplates_FullMatrix(t *testing.T) {
	seeds := SeedTemplates()
	// 4 типа x 8 писем x 2 локали
	require.Len(t, seeds, 64)

	seen := make(map[string]bool)
	for _, s := range seeds {
		key := s.Locale + "/" + s.PersonalityType + "/" + string(rune('0'+s.EmailNumber))
		assert.False(t, seen[key], "дубликат ключа %s", key)
		seen[key] = true

		assert.True(t, entity.IsValidPersonalityType(s.PersonalityType))
		assert.NotEmpty(t, s.Subject)
		assert.Contains(t, s.HTMLBody, "<!DOCTYPE html>")
		// Имя заменено плейсхолдером, маркер наружу не утек
		assert.NotContains(t, s.Subject, "\x00")
		assert.NotContains(t, s.HTMLBody, "\x00")
	}

	// Плейсхолдер присутствует хотя бы в телах первых писем
	first := seeds[0]
	assert.Equal(t, 1, first.EmailNumber)
	assert.Contains(t, first.HTMLBody, entity.FirstNamePlaceholder)
}

func TestConfigure_OverridesLinks(t *testing.T) {
	orig := links
	defer func() { links = orig }()

	Configure(Links{BaseURL: "https://example.test/", SenderName: "Acme Quiz"})
	assert.Equal(t, "https://example.test", links.BaseURL)
	assert.Equal(t, "Acme Quiz", links.SenderName)
	// Пустые поля не затирают умолчания
	assert.Equal(t, orig.CommunityURL, links.CommunityURL)

	_, html, ok := Render(entity.TypeTimeStarvedTrader, 1, entity.LocaleEN, "Ana")
	require.True(t, ok)
	assert.Contains(t, html, "https://example.test/api/pdf/time-starved-trader")
	assert.Contains(t, html, "Acme Quiz")
}

func TestProfile_AllTypesPresent(t *testing.T) {
	for _, pt := range entity.PersonalityTypes {
		p := Profile(pt)
		require.NotNil(t, p, pt)
		assert.Equal(t, pt, p.Type)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Tagline)
		assert.Len(t, p.Challenges, 4)
		assert.Len(t, p.Strengths, 3)
		assert.Len(t, p.ImprovementSteps, 5)
		assert.Len(t, p.Transform.WhatTheyDo, 4)
		assert.NotEmpty(t, p.NextSteps.BookTitle)
	}

	assert.Nil(t, Profile("day_trader_3000"))
}

func TestProfileBySlug(t *testing.T) {
	p := ProfileBySlug("time-starved-trader")
	require.NotNil(t, p)
	assert.Equal(t, entity.TypeTimeStarvedTrader, p.Type)
	assert.Equal(t, "time-starved-trader", p.Slug())

	assert.Nil(t, ProfileBySlug("nonexistent-type"))
}

func TestDefaultForms(t *testing.T) {
	forms := DefaultForms()
	require.Len(t, forms, 2)

	bySlug := make(map[string]DefaultFormDef)
	for _, f := range forms {
		bySlug[f.Slug] = f
	}
	en, ok := bySlug["trading-personality"]
	require.True(t, ok)
	ru, ok := bySlug["trading-personality-ru"]
	require.True(t, ok)
	assert.Equal(t, entity.LocaleEN, en.Locale)
	assert.Equal(t, entity.LocaleRU, ru.Locale)

	for _, f := range []DefaultFormDef{en, ru} {
		require.Len(t, f.Questions, 7)

		var scoringKeys []string
		for i, q := range f.Questions {
			assert.Equal(t, i, q.Position)
			assert.True(t, q.Required)
			if q.IsScoring() {
				scoringKeys = append(scoringKeys, q.QuestionKey)
			}
		}
		assert.Equal(t, []string{"biggest_challenge", "decision_style"}, scoringKeys)
	}

	// Скоринговые карты совпадают между локалями: значения ответов не переводятся
	assert.Equal(t, en.Questions[4].ScoringMap, ru.Questions[4].ScoringMap)
	assert.Equal(t, en.Questions[5].ScoringMap, ru.Questions[5].ScoringMap)
	assert.Equal(t, 3, en.Questions[4].ScoringWeight)
	assert.Equal(t, 2, en.Questions[5].ScoringWeight)
}

func TestDefaultForms_ScoringMapsAreCopies(t *testing.T) {
	a := DefaultForms()
	a[0].Questions[4].ScoringMap["emotional_decisions"][entity.TypeEmotionalTrader] = 99

	b := DefaultForms()
	assert.Equal(t, 3, b[0].Questions[4].ScoringMap["emotional_decisions"][entity.TypeEmotionalTrader])
}

func TestWrap_EscapesNothingButStructures(t *testing.T) {
	body := "<p>Hello</p>"
	out := wrap(body)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, body)
	assert.Contains(t, out, links.SenderName)
}
