package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizfortraders/funnel-api/internal/content"
	"github.com/quizfortraders/funnel-api/internal/domain/entity"
)

func TestGenerate_AllProfiles(t *testing.T) {
	for _, personalityType := range entity.PersonalityTypes {
		t.Run(personalityType, func(t *testing.T) {
			profile := content.Profile(personalityType)
			require.NotNil(t, profile)

			data, err := Generate(profile, "Ana")
			require.NoError(t, err)
			// Валидный PDF начинается с сигнатуры %PDF
			require.Greater(t, len(data), 4)
			assert.Equal(t, "%PDF", string(data[:4]))
		})
	}
}

func TestGenerate_EmptyNameIsFine(t *testing.T) {
	profile := content.Profile(entity.TypeEmotionalTrader)
	require.NotNil(t, profile)

	data, err := Generate(profile, "")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestGenerate_NilProfile(t *testing.T) {
	_, err := Generate(nil, "Ana")
	assert.Error(t, err)
}
