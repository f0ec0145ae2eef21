package web

import (
	"context"
	"net/http"
	"strconv"

	"adopciones/internal/domain/avisos"
	"adopciones/internal/domain/regiones"
	"adopciones/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Handler sirve las páginas HTML: portada, formulario de aviso,
// listado paginado y estadísticas.
type Handler struct {
	avisos   *avisos.Service
	regiones *regiones.Service
	log      logger.Logger
	secret   string
	maxBody  int64
}

func NewHandler(av *avisos.Service, reg *regiones.Service, log logger.Logger, secret string, maxBody int64) *Handler {
	return &Handler{
		avisos:   av,
		regiones: reg,
		log:      log,
		secret:   secret,
		maxBody:  maxBody,
	}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.index)
	r.Get("/agregar-aviso", h.agregarForm)
	r.Post("/agregar-aviso", h.agregarSubmit)
	r.Get("/listado-avisos", h.listado)
	r.Get("/estadisticas", h.estadisticas)
}

// avisoVista es un aviso con lo que el template necesita resuelto:
// nombre de comuna y fotos.
type avisoVista struct {
	avisos.Aviso
	Comuna string
	Fotos  []avisos.Foto
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	items, err := h.avisos.Recientes(r.Context(), 5)
	if err != nil {
		h.log.Warn("portada sin avisos recientes", map[string]any{"error": err.Error()})
		items = nil
	}

	h.render(w, http.StatusOK, tmplIndex, map[string]any{
		"Avisos": h.conDetalle(r.Context(), items),
		"Flash":  h.popFlash(w, r),
	})
}

func (h *Handler) agregarForm(w http.ResponseWriter, r *http.Request) {
	h.renderFormulario(w, r, http.StatusOK, avisos.FormInput{}, nil)
}

func (h *Handler) agregarSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)

	if err := r.ParseMultipartForm(8 << 20); err != nil {
		h.renderFormulario(w, r, http.StatusRequestEntityTooLarge, avisos.FormInput{},
			[]string{"El formulario excede el tamaño máximo permitido"})
		return
	}

	in := avisos.FormInput{
		Nombre:          r.FormValue("nombre"),
		Email:           r.FormValue("email"),
		Celular:         r.FormValue("celular"),
		ComunaID:        r.FormValue("comuna"),
		Sector:          r.FormValue("sector"),
		Tipo:            r.FormValue("tipo"),
		Descripcion:     r.FormValue("descripcion"),
		FechaEntrega:    r.FormValue("fecha-entrega"),
		Cantidad:        r.FormValue("cantidad"),
		Edad:            r.FormValue("edad"),
		UnidadMedida:    r.FormValue("unidad-edad"),
		ContactoNombres: r.PostForm["contacto_nombre[]"],
		ContactoIDs:     r.PostForm["contacto_id[]"],
	}

	archivos := r.MultipartForm.File["fotos"]
	for _, fh := range archivos {
		if fh.Filename != "" {
			in.NombresFotos = append(in.NombresFotos, fh.Filename)
		}
	}

	sub, errs := avisos.Validate(in)
	if len(errs) > 0 {
		h.renderFormulario(w, r, http.StatusOK, in, errs)
		return
	}

	fotos := make([]avisos.ArchivoFoto, 0, len(archivos))
	for _, fh := range archivos {
		if fh.Filename == "" {
			continue
		}
		f, err := fh.Open()
		if err != nil {
			h.renderFormulario(w, r, http.StatusOK, in, []string{"Error al guardar el aviso"})
			return
		}
		defer f.Close()
		fotos = append(fotos, avisos.ArchivoFoto{Nombre: fh.Filename, Datos: f})
	}

	if _, err := h.avisos.Submit(r.Context(), sub, fotos); err != nil {
		h.log.Error("submit de aviso falló", map[string]any{"error": err.Error()})
		h.renderFormulario(w, r, http.StatusOK, in, []string{"Error al guardar el aviso"})
		return
	}

	h.setFlash(w, "Aviso agregado correctamente")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) renderFormulario(w http.ResponseWriter, r *http.Request, status int, in avisos.FormInput, errores []string) {
	regs, err := h.regiones.ListRegiones(r.Context())
	if err != nil {
		h.log.Warn("formulario sin regiones", map[string]any{"error": err.Error()})
		regs = nil
	}

	h.render(w, status, tmplAgregar, map[string]any{
		"Regiones": regs,
		"Errores":  errores,
		"Form":     in,
	})
}

const avisosPorPagina = 5

func (h *Handler) listado(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	res, err := h.avisos.List(r.Context(), avisos.ListFilter{Page: page, PerPage: avisosPorPagina})
	if err != nil {
		h.log.Warn("listado de avisos no disponible", map[string]any{"error": err.Error()})
		res = avisos.ListResult{Page: page}
	}

	h.render(w, http.StatusOK, tmplListado, map[string]any{
		"Avisos": h.conDetalle(r.Context(), res.Avisos),
		"Total":  res.Total,
		"Pages":  res.Pages,
		"Page":   res.Page,
		"Prev":   res.Page - 1,
		"Next":   res.Page + 1,
	})
}

func (h *Handler) estadisticas(w http.ResponseWriter, r *http.Request) {
	stats := h.avisos.Stats(r.Context())
	h.render(w, http.StatusOK, tmplEstadisticas, map[string]any{
		"PorTipo":    stats.PorTipo,
		"PorRegion":  stats.PorRegion,
		"TopComunas": stats.TopComunas,
	})
}

func (h *Handler) conDetalle(ctx context.Context, items []avisos.Aviso) []avisoVista {
	out := make([]avisoVista, 0, len(items))
	for _, a := range items {
		v := avisoVista{Aviso: a}
		if c, err := h.regiones.GetComuna(ctx, a.ComunaID); err == nil {
			v.Comuna = c.Nombre
		}
		if fotos, err := h.avisos.Fotos(ctx, a.ID); err == nil {
			v.Fotos = fotos
		}
		out = append(out, v)
	}
	return out
}
