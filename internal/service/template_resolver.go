package service

import (
	"errors"
	"strings"

	"github.com/quizfortraders/funnel-api/internal/content"
	"github.com/quizfortraders/funnel-api/internal/domain/entity"
	"github.com/quizfortraders/funnel-api/internal/domain/repository"
	apperrors "github.com/quizfortraders/funnel-api/internal/pkg/errors"
)

// TemplateResolver разрешает шаблон nurture-письма для конкретной отправки.
// Порядок: переопределение оператора из базы по ключу (тип, номер, локаль),
// затем зашитый шаблон из пакета content. Отсутствие обоих - постоянная
// ошибка: письмо никогда не сможет быть отправлено.
type TemplateResolver struct {
	templateRepo repository.NurtureTemplateRepository
}

func NewTemplateResolver(templateRepo repository.NurtureTemplateRepository) *TemplateResolver {
	return &TemplateResolver{templateRepo: templateRepo}
}

// ErrTemplateMissing - шаблон не найден ни в переопределениях, ни в зашитых
var ErrTemplateMissing = errors.New("nurture template missing")

// Resolve возвращает персонализированные subject и HTML для письма контакта
func (r *TemplateResolver) Resolve(contact *entity.Contact, emailNumber int) (string, string, error) {
	locale := contact.NormalizedLocale()

	if r.templateRepo != nil {
		override, err := r.templateRepo.GetByKey(contact.PersonalityType, emailNumber, locale)
		if err == nil {
			subject := personalize(override.Subject, contact.FirstName)
			body := personalize(override.Body, contact.FirstName)
			return subject, body, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return "", "", err
		}
	}

	subject, html, ok := content.Render(contact.PersonalityType, emailNumber, locale, contact.FirstName)
	if !ok {
		return "", "", ErrTemplateMissing
	}
	return subject, html, nil
}

// personalize подставляет имя получателя вместо плейсхолдера
func personalize(text, firstName string) string {
	return strings.ReplaceAll(text, entity.FirstNamePlaceholder, firstName)
}
