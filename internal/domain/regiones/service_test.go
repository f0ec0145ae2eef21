package regiones

import (
	"context"
	"errors"
	"testing"
)

type testRepo struct {
	regiones []Region
	comunas  map[int64]Comuna
	fail     bool
}

func (r *testRepo) ListRegiones(ctx context.Context) ([]Region, error) {
	if r.fail {
		return nil, errors.New("repo: no disponible")
	}
	return r.regiones, nil
}

func (r *testRepo) ListComunas(ctx context.Context, regionID int64) ([]Comuna, error) {
	var out []Comuna
	for _, c := range r.comunas {
		if c.RegionID == regionID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *testRepo) GetComuna(ctx context.Context, id int64) (Comuna, error) {
	if r.fail {
		return Comuna{}, errors.New("repo: no disponible")
	}
	c, ok := r.comunas[id]
	if !ok {
		return Comuna{}, ErrNotFound
	}
	return c, nil
}

func newTestService() (*Service, *testRepo) {
	repo := &testRepo{
		regiones: []Region{
			{ID: 5, Nombre: "Región de Valparaíso"},
			{ID: 13, Nombre: "Región Metropolitana de Santiago"},
		},
		comunas: map[int64]Comuna{
			1301: {ID: 1301, Nombre: "Santiago", RegionID: 13},
			1302: {ID: 1302, Nombre: "Providencia", RegionID: 13},
			501:  {ID: 501, Nombre: "Valparaíso", RegionID: 5},
		},
	}
	return NewService(repo), repo
}

func TestListRegiones(t *testing.T) {
	svc, _ := newTestService()

	regs, err := svc.ListRegiones(context.Background())
	if err != nil {
		t.Fatalf("ListRegiones: %v", err)
	}
	if len(regs) != 2 {
		t.Fatalf("regiones = %d, want 2", len(regs))
	}
}

func TestListComunas_RegionSinComunas(t *testing.T) {
	svc, _ := newTestService()

	cs, err := svc.ListComunas(context.Background(), 8)
	if err != nil {
		t.Fatalf("ListComunas: %v", err)
	}
	if len(cs) != 0 {
		t.Errorf("comunas = %d, want 0", len(cs))
	}
}

func TestComunaExiste(t *testing.T) {
	svc, repo := newTestService()

	ok, err := svc.ComunaExiste(context.Background(), 1301)
	if err != nil || !ok {
		t.Errorf("ComunaExiste(1301) = %v, %v; want true, nil", ok, err)
	}

	ok, err = svc.ComunaExiste(context.Background(), 9999)
	if err != nil || ok {
		t.Errorf("ComunaExiste(9999) = %v, %v; want false, nil", ok, err)
	}

	// Un error de infraestructura no se confunde con "no existe".
	repo.fail = true
	if _, err := svc.ComunaExiste(context.Background(), 1301); err == nil {
		t.Error("esperaba error del repo")
	}
}
