// Package report генерирует персональный PDF-отчет по типу личности трейдера.
// Отчет отдается публичным эндпоинтом и дублирует контент страницы результата
// в формате, который удобно сохранить и переслать.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/quizfortraders/funnel-api/internal/content"
)

const (
	pageMargin   = 18.0
	contentWidth = 210 - 2*pageMargin // A4 portrait
)

// Цвета бренда: темно-синие заголовки, серый основной текст
var (
	headingColor = [3]int{30, 41, 59}
	accentColor  = [3]int{37, 99, 235}
	bodyColor    = [3]int{55, 65, 81}
	mutedColor   = [3]int{107, 114, 128}
)

// Generate собирает PDF-отчет для профиля. firstName опционален и
// используется только в приветствии на обложке.
func Generate(profile *content.PersonalityProfile, firstName string) ([]byte, error) {
	if profile == nil {
		return nil, fmt.Errorf("report: profile is nil")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s - Trading Personality Report", profile.Name), true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, 20)
	// Базовые шрифты cp1252: контент отчета английский, эмодзи профиля
	// в PDF не попадают
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(mutedColor[0], mutedColor[1], mutedColor[2])
		pdf.CellFormat(contentWidth, 10, fmt.Sprintf("Trading Personality Report  |  Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	r := &renderer{pdf: pdf, tr: tr}
	r.cover(profile, firstName)
	r.sections("Your Challenges", profile.Challenges)
	r.sections("Your Hidden Strengths", profile.Strengths)
	r.steps(profile.ImprovementSteps)
	r.transform(profile.Transform)
	r.nextSteps(profile.NextSteps)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type renderer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (r *renderer) cover(profile *content.PersonalityProfile, firstName string) {
	pdf := r.pdf
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 26)
	pdf.SetTextColor(headingColor[0], headingColor[1], headingColor[2])
	pdf.MultiCell(contentWidth, 12, r.tr(profile.Name), "", "C", false)

	pdf.SetFont("Helvetica", "I", 13)
	pdf.SetTextColor(accentColor[0], accentColor[1], accentColor[2])
	pdf.MultiCell(contentWidth, 7, r.tr(profile.Tagline), "", "C", false)
	pdf.Ln(6)

	greeting := "Here is your personal trading personality report."
	if name := strings.TrimSpace(firstName); name != "" {
		greeting = fmt.Sprintf("%s, here is your personal trading personality report.", name)
	}
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
	pdf.MultiCell(contentWidth, 6, r.tr(greeting), "", "C", false)
	pdf.Ln(8)

	r.heading("Who You Are")
	r.paragraph(profile.Description)

	r.heading("Why You Got This Result")
	r.paragraph(profile.WhyThisCategory)

	r.heading("Quick Tip")
	r.paragraph(profile.QuickTip)
}

// sections рисует список озаглавленных блоков (challenges, strengths)
func (r *renderer) sections(title string, items []content.ProfileSection) {
	r.pdf.AddPage()
	r.heading(title)
	for _, item := range items {
		r.subheading(item.Title)
		r.paragraph(item.Description)
	}
}

// steps рисует нумерованный план улучшений
func (r *renderer) steps(items []content.ProfileSection) {
	r.pdf.AddPage()
	r.heading("Your 5-Step Improvement Plan")
	for i, item := range items {
		r.subheading(fmt.Sprintf("Step %d: %s", i+1, item.Title))
		r.paragraph(item.Description)
	}
}

func (r *renderer) transform(t content.TransformSection) {
	r.pdf.AddPage()
	r.heading("How Traders Like You Transform Their Results")
	r.paragraph(t.Intro)

	r.subheading("What they do differently")
	for _, line := range t.WhatTheyDo {
		r.bullet(line)
	}
	r.pdf.Ln(2)

	r.subheading("The automation advantage")
	r.paragraph(t.AutomationAdvantage)
}

func (r *renderer) nextSteps(n content.NextSteps) {
	r.heading("Recommended Reading")
	r.paragraph(fmt.Sprintf("%s by %s", n.BookTitle, n.BookAuthor))

	r.heading("Your Next Step")
	r.subheading(n.CTAHeadline)
	r.paragraph(n.CTADescription)
}

func (r *renderer) heading(text string) {
	pdf := r.pdf
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 15)
	pdf.SetTextColor(headingColor[0], headingColor[1], headingColor[2])
	pdf.MultiCell(contentWidth, 8, r.tr(text), "", "L", false)
	pdf.SetDrawColor(accentColor[0], accentColor[1], accentColor[2])
	pdf.SetLineWidth(0.6)
	y := pdf.GetY() + 1
	pdf.Line(pageMargin, y, pageMargin+24, y)
	pdf.Ln(4)
}

func (r *renderer) subheading(text string) {
	pdf := r.pdf
	pdf.SetFont("Helvetica", "B", 11.5)
	pdf.SetTextColor(accentColor[0], accentColor[1], accentColor[2])
	pdf.MultiCell(contentWidth, 6, r.tr(text), "", "L", false)
}

func (r *renderer) paragraph(text string) {
	pdf := r.pdf
	pdf.SetFont("Helvetica", "", 10.5)
	pdf.SetTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
	pdf.MultiCell(contentWidth, 5.5, r.tr(text), "", "L", false)
	pdf.Ln(3)
}

func (r *renderer) bullet(text string) {
	pdf := r.pdf
	pdf.SetFont("Helvetica", "", 10.5)
	pdf.SetTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
	pdf.CellFormat(6, 5.5, "-", "", 0, "L", false, 0, "")
	pdf.MultiCell(contentWidth-6, 5.5, r.tr(text), "", "L", false)
}
