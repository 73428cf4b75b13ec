package dto

import (
	"github.com/quizfortraders/funnel-api/internal/domain/entity"
)

// PublicQuestionResponse - вопрос формы в публичном ответе.
// Скоринговые поля намеренно отсутствуют: клиент не должен видеть,
// как ответы влияют на результат.
type PublicQuestionResponse struct {
	QuestionKey string                  `json:"question_key"`
	Type        string                  `json:"type"`
	Question    string                  `json:"question"`
	Placeholder string                  `json:"placeholder,omitempty"`
	Options     []entity.QuestionOption `json:"options,omitempty"`
	Position    int                     `json:"position"`
	Required    bool                    `json:"required"`
}

// PublicFormResponse - опубликованная форма для публичной страницы квиза
type PublicFormResponse struct {
	ID          uint                     `json:"id"`
	Name        string                   `json:"name"`
	Slug        string                   `json:"slug"`
	Locale      string                   `json:"locale"`
	ResultsPath string                   `json:"results_path"`
	Description string                   `json:"description,omitempty"`
	Questions   []PublicQuestionResponse `json:"questions"`
}

// NewPublicFormResponse создает публичный DTO формы без скоринговых данных
func NewPublicFormResponse(form *entity.QuizForm) *PublicFormResponse {
	if form == nil {
		return nil
	}

	questions := make([]PublicQuestionResponse, len(form.Questions))
	for i, q := range form.Questions {
		questions[i] = PublicQuestionResponse{
			QuestionKey: q.QuestionKey,
			Type:        q.Type,
			Question:    q.Prompt,
			Placeholder: q.Placeholder,
			Options:     q.Options,
			Position:    q.Position,
			Required:    q.Required,
		}
	}

	return &PublicFormResponse{
		ID:          form.ID,
		Name:        form.Name,
		Slug:        form.Slug,
		Locale:      form.Locale,
		ResultsPath: form.ResultsPath,
		Description: form.Description,
		Questions:   questions,
	}
}
