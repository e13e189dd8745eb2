// Package web embeds the HTML templates and the helpers they call.
package web

import (
	"embed"
	"fmt"
	"html/template"

	"dealbook/internal/format"
	"dealbook/internal/models"
	"dealbook/internal/storage"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every embedded page template.
func Templates(store storage.Store) (*template.Template, error) {
	return template.New("").Funcs(FuncMap(store)).ParseFS(templateFS, "templates/*.html")
}

// FuncMap returns the template helpers. docURL resolves a stored document
// key through store.
func FuncMap(store storage.Store) template.FuncMap {
	return template.FuncMap{
		"currency":       format.Currency,
		"date":           format.Date,
		"docURL":         docURL(store),
		"str":            func(v any) string { return fmt.Sprint(v) },
		"creditorTypes":  models.CreditorTypeChoices,
		"agreementTypes": models.AgreementTypeChoices,
		"portfolioTypes": models.PortfolioTypeChoices,
		"processTypes":   models.ProcessTypeChoices,
	}
}

func docURL(store storage.Store) func(string) string {
	return func(key string) string {
		if store == nil || key == "" {
			return ""
		}
		return store.URL(key)
	}
}
