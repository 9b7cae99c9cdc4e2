package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// renderForm writes the conversion page for form with the given status.
// The page is rendered into a buffer first so a template failure still yields a clean 500.
func renderForm(w http.ResponseWriter, status int, form *models.ConversionForm) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, form); err != nil {
		logger.Log.Errorw("failed to render conversion form", "form_id", form.ID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
