package app

import (
	"QuizContest/common"
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

func loadTemplates() *template.Template {
	funcs := template.FuncMap{
		"datetime": common.TimeToStr,
		"inc":      func(i int) int { return i + 1 },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
