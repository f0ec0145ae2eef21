package avisos

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/api/aviso/{avisoID}", getAvisoHandler(svc))
	r.Get("/api/avisos", listAvisosHandler(svc))
}

type avisoResponse struct {
	ID           int64     `json:"id"`
	FechaIngreso time.Time `json:"fecha_ingreso"`
	ComunaID     int64     `json:"comuna_id"`
	Sector       *string   `json:"sector"`
	Nombre       string    `json:"nombre"`
	Email        string    `json:"email"`
	Celular      *string   `json:"celular"`
	Tipo         Tipo      `json:"tipo"`
	Cantidad     int       `json:"cantidad"`
	Edad         int       `json:"edad"`
	UnidadMedida string    `json:"unidad_medida"`
	FechaEntrega time.Time `json:"fecha_entrega"`
	Descripcion  string    `json:"descripcion"`
}

type listAvisosResponse struct {
	Avisos      []avisoResponse `json:"avisos"`
	Total       int64           `json:"total"`
	Pages       int             `json:"pages"`
	CurrentPage int             `json:"current_page"`
}

// @Summary Detalle de un aviso
// @Produce json
// @Param avisoID path int true "ID del aviso"
// @Success 200 {object} avisoResponse
// @Failure 404 {object} map[string]string
// @Router /aviso/{avisoID} [get]
func getAvisoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "avisoID"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "aviso no encontrado"})
			return
		}

		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "aviso no encontrado"})
				return
			}
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
			return
		}

		writeJSON(w, http.StatusOK, toAvisoResponse(a))
	}
}

// @Summary Listado paginado de avisos
// @Produce json
// @Param page query int false "Página (desde 1)"
// @Param per_page query int false "Avisos por página" default(10)
// @Param tipo query string false "gato o perro"
// @Param region_id query int false "Filtra por región (join vía comuna)"
// @Success 200 {object} listAvisosResponse
// @Router /avisos [get]
func listAvisosHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		f := ListFilter{
			Tipo: Tipo(q.Get("tipo")),
			Page: atoiDefault(q.Get("page"), 1),
		}
		f.PerPage = atoiDefault(q.Get("per_page"), 10)
		if v := q.Get("region_id"); v != "" {
			f.RegionID, _ = strconv.ParseInt(v, 10, 64)
		}

		res, err := svc.List(r.Context(), f)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
			return
		}

		out := listAvisosResponse{
			Avisos:      make([]avisoResponse, 0, len(res.Avisos)),
			Total:       res.Total,
			Pages:       res.Pages,
			CurrentPage: res.Page,
		}
		for _, a := range res.Avisos {
			out.Avisos = append(out.Avisos, toAvisoResponse(a))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func toAvisoResponse(a Aviso) avisoResponse {
	return avisoResponse{
		ID:           a.ID,
		FechaIngreso: a.FechaIngreso,
		ComunaID:     a.ComunaID,
		Sector:       nullable(a.Sector),
		Nombre:       a.Nombre,
		Email:        a.Email,
		Celular:      nullable(a.Celular),
		Tipo:         a.Tipo,
		Cantidad:     a.Cantidad,
		Edad:         a.Edad,
		UnidadMedida: string(a.UnidadMedida),
		FechaEntrega: a.FechaEntrega,
		Descripcion:  a.Descripcion,
	}
}

// nullable mapea string vacío a null en el JSON para las columnas
// opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (regiones/avisos) para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
