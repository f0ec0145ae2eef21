package regiones

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/api/regiones", listRegionesHandler(svc))
	r.Get("/api/comunas/{regionID}", listComunasHandler(svc))
}

type regionResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

type comunaResponse struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	RegionID int64  `json:"region_id"`
}

// @Summary Lista todas las regiones
// @Produce json
// @Success 200 {array} regionResponse
// @Router /regiones [get]
func listRegionesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListRegiones(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
			return
		}

		out := make([]regionResponse, 0, len(items))
		for _, reg := range items {
			out = append(out, regionResponse{ID: reg.ID, Nombre: reg.Nombre})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// @Summary Lista las comunas de una región
// @Produce json
// @Param regionID path int true "ID de la región"
// @Success 200 {array} comunaResponse
// @Router /comunas/{regionID} [get]
func listComunasHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		regionID, err := strconv.ParseInt(chi.URLParam(r, "regionID"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "region_id inválido"})
			return
		}

		items, err := svc.ListComunas(r.Context(), regionID)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
			return
		}

		out := make([]comunaResponse, 0, len(items))
		for _, c := range items {
			out = append(out, comunaResponse{ID: c.ID, Nombre: c.Nombre, RegionID: c.RegionID})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (regiones/avisos) para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
