package memory

import (
	"context"
	"sort"
	"sync"

	"adopciones/internal/domain/avisos"
	"adopciones/internal/domain/regiones"
)

type avisosRepo struct {
	mu        sync.RWMutex
	nextID    int64
	byID      map[int64]avisos.Aviso
	contactos map[int64][]avisos.Contacto
	fotos     map[int64][]avisos.Foto

	// referencia de comunas para resolver región y nombres en listados
	// y estadísticas (equivalente a los joins en Postgres)
	geo regiones.Repository
}

func NewAvisosRepo(geo regiones.Repository) avisos.Repository {
	return &avisosRepo{
		byID:      make(map[int64]avisos.Aviso),
		contactos: make(map[int64][]avisos.Contacto),
		fotos:     make(map[int64][]avisos.Foto),
		geo:       geo,
	}
}

func (r *avisosRepo) Create(ctx context.Context, a avisos.Aviso, contactos []avisos.Contacto, fotos []avisos.Foto) (int64, error) {
	// misma integridad referencial que el FK en Postgres
	if _, err := r.geo.GetComuna(ctx, a.ComunaID); err != nil {
		return 0, avisos.ErrComunaInvalida
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = a

	cs := make([]avisos.Contacto, len(contactos))
	for i, c := range contactos {
		c.ID = int64(i + 1)
		c.AvisoID = a.ID
		cs[i] = c
	}
	r.contactos[a.ID] = cs

	fs := make([]avisos.Foto, len(fotos))
	for i, f := range fotos {
		f.ID = int64(i + 1)
		f.AvisoID = a.ID
		fs[i] = f
	}
	r.fotos[a.ID] = fs

	return a.ID, nil
}

func (r *avisosRepo) GetByID(ctx context.Context, id int64) (avisos.Aviso, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return avisos.Aviso{}, avisos.ErrNotFound
	}
	return a, nil
}

func (r *avisosRepo) List(ctx context.Context, f avisos.ListFilter) ([]avisos.Aviso, int64, error) {
	r.mu.RLock()
	matching := make([]avisos.Aviso, 0, len(r.byID))
	for _, a := range r.byID {
		if f.Tipo != "" && a.Tipo != f.Tipo {
			continue
		}
		if f.RegionID != 0 {
			c, err := r.geo.GetComuna(ctx, a.ComunaID)
			if err != nil || c.RegionID != f.RegionID {
				continue
			}
		}
		matching = append(matching, a)
	}
	r.mu.RUnlock()

	ordenarPorFecha(matching)

	total := int64(len(matching))
	ini := f.Offset()
	if ini >= len(matching) {
		return []avisos.Aviso{}, total, nil
	}
	fin := ini + f.PerPage
	if fin > len(matching) {
		fin = len(matching)
	}
	return matching[ini:fin], total, nil
}

func (r *avisosRepo) Recientes(ctx context.Context, limit int) ([]avisos.Aviso, error) {
	r.mu.RLock()
	out := make([]avisos.Aviso, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	r.mu.RUnlock()

	ordenarPorFecha(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *avisosRepo) Fotos(ctx context.Context, avisoID int64) ([]avisos.Foto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]avisos.Foto, len(r.fotos[avisoID]))
	copy(out, r.fotos[avisoID])
	return out, nil
}

func (r *avisosRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return avisos.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.contactos, id)
	delete(r.fotos, id)
	return nil
}

func (r *avisosRepo) CountPorTipo(ctx context.Context) ([]avisos.ConteoTipo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := map[avisos.Tipo]int64{}
	for _, a := range r.byID {
		counts[a.Tipo]++
	}

	out := make([]avisos.ConteoTipo, 0, len(counts))
	for t, n := range counts {
		out = append(out, avisos.ConteoTipo{Tipo: t, Total: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tipo < out[j].Tipo })
	return out, nil
}

func (r *avisosRepo) CountPorRegion(ctx context.Context) ([]avisos.ConteoNombre, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := map[string]int64{}
	for _, a := range r.byID {
		c, err := r.geo.GetComuna(ctx, a.ComunaID)
		if err != nil {
			continue
		}
		nombre := r.nombreRegion(ctx, c.RegionID)
		if nombre == "" {
			continue
		}
		counts[nombre]++
	}

	return ordenarConteos(counts, 0), nil
}

func (r *avisosRepo) TopComunas(ctx context.Context, limit int) ([]avisos.ConteoNombre, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := map[string]int64{}
	for _, a := range r.byID {
		c, err := r.geo.GetComuna(ctx, a.ComunaID)
		if err != nil {
			continue
		}
		counts[c.Nombre]++
	}

	out := ordenarConteos(counts, 0)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *avisosRepo) nombreRegion(ctx context.Context, regionID int64) string {
	regs, err := r.geo.ListRegiones(ctx)
	if err != nil {
		return ""
	}
	for _, reg := range regs {
		if reg.ID == regionID {
			return reg.Nombre
		}
	}
	return ""
}

func ordenarPorFecha(items []avisos.Aviso) {
	// más recientes primero; id como desempate estable
	sort.Slice(items, func(i, j int) bool {
		if items[i].FechaIngreso.Equal(items[j].FechaIngreso) {
			return items[i].ID > items[j].ID
		}
		return items[i].FechaIngreso.After(items[j].FechaIngreso)
	})
}

func ordenarConteos(counts map[string]int64, limit int) []avisos.ConteoNombre {
	out := make([]avisos.ConteoNombre, 0, len(counts))
	for nombre, n := range counts {
		out = append(out, avisos.ConteoNombre{Nombre: nombre, Total: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
