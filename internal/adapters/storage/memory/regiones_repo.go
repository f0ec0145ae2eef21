package memory

import (
	"context"
	"sort"
	"sync"

	"adopciones/internal/domain/regiones"
)

type regionesRepo struct {
	mu      sync.RWMutex
	regs    map[int64]regiones.Region
	comunas map[int64]regiones.Comuna
}

// NewRegionesRepo crea un repo en memoria ya cargado con los datos de
// referencia entregados. Las regiones y comunas son inmutables: no hay
// operaciones de escritura.
func NewRegionesRepo(regs []regiones.Region, comunas []regiones.Comuna) regiones.Repository {
	r := &regionesRepo{
		regs:    make(map[int64]regiones.Region, len(regs)),
		comunas: make(map[int64]regiones.Comuna, len(comunas)),
	}
	for _, reg := range regs {
		r.regs[reg.ID] = reg
	}
	for _, c := range comunas {
		r.comunas[c.ID] = c
	}
	return r
}

func (r *regionesRepo) ListRegiones(ctx context.Context) ([]regiones.Region, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]regiones.Region, 0, len(r.regs))
	for _, reg := range r.regs {
		out = append(out, reg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *regionesRepo) ListComunas(ctx context.Context, regionID int64) ([]regiones.Comuna, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]regiones.Comuna, 0)
	for _, c := range r.comunas {
		if c.RegionID == regionID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *regionesRepo) GetComuna(ctx context.Context, id int64) (regiones.Comuna, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.comunas[id]
	if !ok {
		return regiones.Comuna{}, regiones.ErrNotFound
	}
	return c, nil
}
