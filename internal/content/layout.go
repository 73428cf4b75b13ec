// Package content holds the hardcoded funnel content: the nurture email
// sequences for every personality type in both locales, the personality
// profiles behind the PDF report, and the default quiz form definitions.
// Operator-edited overrides live in the database and take precedence; this
// package is the fallback layer.
package content

import (
	"fmt"
	"net/url"
	"strings"
)

// Links - внешние ссылки, подставляемые в зашитые письма.
// Устанавливаются один раз на старте из конфигурации.
type Links struct {
	BaseURL      string
	CommunityURL string
	SenderName   string
}

var links = Links{
	BaseURL:      "https://quizfortraders.com",
	CommunityURL: "#",
	SenderName:   "Quiz for Traders",
}

// Configure перезаписывает ссылки пакета. Пустые поля оставляют умолчания.
func Configure(l Links) {
	if l.BaseURL != "" {
		links.BaseURL = strings.TrimRight(l.BaseURL, "/")
	}
	if l.CommunityURL != "" {
		links.CommunityURL = l.CommunityURL
	}
	if l.SenderName != "" {
		links.SenderName = l.SenderName
	}
}

// wrap оборачивает содержимое письма в общий HTML-каркас
func wrap(body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; color: #1a1a2e; margin: 0; padding: 0; background-color: #f5f5f7; }
    .container { max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 12px; overflow: hidden; }
    .header { background: linear-gradient(135deg, #0a0f1e, #1a1f3e); padding: 30px; text-align: center; }
    .header h1 { color: #ffffff; margin: 0; font-size: 20px; }
    .body { padding: 30px; }
    .body p { margin: 0 0 16px; color: #374151; }
    .body blockquote { border-left: 3px solid #3b82f6; padding-left: 16px; margin: 16px 0; color: #6b7280; font-style: italic; }
    .cta { display: inline-block; background: linear-gradient(135deg, #2563eb, #06b6d4); color: #ffffff; text-decoration: none; padding: 14px 28px; border-radius: 8px; font-weight: 600; margin: 16px 0; }
    .footer { padding: 20px 30px; background: #f9fafb; text-align: center; font-size: 12px; color: #9ca3af; }
    .divider { border: none; border-top: 1px solid #e5e7eb; margin: 24px 0; }
    ul { padding-left: 20px; }
    ul li { margin-bottom: 8px; color: #374151; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Trading Personality Quiz</h1>
    </div>
    <div class="body">
      %s
    </div>
    <div class="footer">
      <p>%s<br>Helping traders improve their results</p>
    </div>
  </div>
</body>
</html>`, body, links.SenderName)
}

// pdfLink строит ссылку на PDF-отчет типа личности
func pdfLink(typeSlug, firstName string) string {
	return links.BaseURL + "/api/pdf/" + typeSlug + "?name=" + url.QueryEscape(firstName)
}

// ctaButton строит кнопку призыва к действию
func ctaButton(href, label string) string {
	return fmt.Sprintf(`<p><a href="%s" class="cta">%s</a></p>`, href, label)
}
