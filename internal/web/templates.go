package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"adopciones/internal/domain/avisos"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"fechaHora": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02/01/2006 15:04")
	},
	"fecha": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02/01/2006")
	},
	"unidadEdad": func(u avisos.UnidadEdad) string {
		if u == avisos.UnidadAnios {
			return "años"
		}
		return "meses"
	},
}

// Cada página se parsea junto al layout en su propio set, así todas
// pueden definir el bloque "content".
func parse(page string) *template.Template {
	return template.Must(template.New("layout.html").
		Funcs(funcs).
		ParseFS(templatesFS, "templates/layout.html", "templates/"+page))
}

var (
	tmplIndex        = parse("index.html")
	tmplAgregar      = parse("agregar_aviso.html")
	tmplListado      = parse("listado_avisos.html")
	tmplEstadisticas = parse("estadisticas.html")
)

func (h *Handler) render(w http.ResponseWriter, status int, t *template.Template, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		h.log.Error("render de template falló", map[string]any{"error": err.Error()})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
