package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"acaradashboard/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

var bulan = [...]string{"Januari", "Februari", "Maret", "April", "Mei", "Juni", "Juli", "Agustus", "September", "Oktober", "November", "Desember"}

// tanggalID formats t as an Indonesian long date, e.g. "14 Maret 2025". Zero times render as "-".
func tanggalID(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%d %s %d", t.Day(), bulan[t.Month()-1], t.Year())
}

// templateRenderer implements domain.EmailTemplateRenderer over the embedded
// templates folder. Each message is three files: {name}_subject.txt,
// {name}.html and {name}.txt.
type templateRenderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewTemplateRenderer parses the embedded templates once.
func NewTemplateRenderer() domain.EmailTemplateRenderer {
	return &templateRenderer{
		html: htmltemplate.Must(htmltemplate.New("").
			Funcs(htmltemplate.FuncMap{"tanggal": tanggalID}).
			ParseFS(templateFS, "templates/*.html")),
		text: texttemplate.Must(texttemplate.New("").
			Funcs(texttemplate.FuncMap{"tanggal": tanggalID}).
			ParseFS(templateFS, "templates/*.txt")),
	}
}

// Render executes the named message (e.g. "acara_created") with data.
func (r *templateRenderer) Render(templateName string, data any) (subject, htmlBody, textBody string, err error) {
	var buf bytes.Buffer
	if err := r.text.ExecuteTemplate(&buf, templateName+"_subject.txt", data); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	subject = strings.TrimSpace(buf.String())

	buf.Reset()
	if err := r.html.ExecuteTemplate(&buf, templateName+".html", data); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	htmlBody = buf.String()

	buf.Reset()
	if err := r.text.ExecuteTemplate(&buf, templateName+".txt", data); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	return subject, htmlBody, buf.String(), nil
}
