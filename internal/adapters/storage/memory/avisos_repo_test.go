package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"adopciones/internal/domain/avisos"
)

func avisoDePrueba(i int, comunaID int64, tipo avisos.Tipo) avisos.Aviso {
	return avisos.Aviso{
		FechaIngreso: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
		ComunaID:     comunaID,
		Nombre:       fmt.Sprintf("Persona %d", i),
		Email:        fmt.Sprintf("persona%d@example.com", i),
		Tipo:         tipo,
		Cantidad:     1,
		Edad:         2,
		UnidadMedida: avisos.UnidadMeses,
		FechaEntrega: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Descripcion:  "descripción",
	}
}

func repoConAvisos(t *testing.T, n int) avisos.Repository {
	t.Helper()
	repo := NewAvisosRepo(NewRegionesRepo(SeedRegiones()))
	for i := 1; i <= n; i++ {
		tipo := avisos.TipoGato
		if i%2 == 0 {
			tipo = avisos.TipoPerro
		}
		if _, err := repo.Create(context.Background(), avisoDePrueba(i, 1301, tipo), nil, nil); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	return repo
}

func TestCreateRechazaComunaInexistente(t *testing.T) {
	repo := NewAvisosRepo(NewRegionesRepo(SeedRegiones()))

	_, err := repo.Create(context.Background(), avisoDePrueba(1, 9999, avisos.TipoGato), nil, nil)
	if !errors.Is(err, avisos.ErrComunaInvalida) {
		t.Fatalf("err = %v, want ErrComunaInvalida", err)
	}
}

func TestListPagina(t *testing.T) {
	repo := repoConAvisos(t, 12)

	items, total, err := repo.List(context.Background(), avisos.ListFilter{Page: 2, PerPage: 5})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 12 {
		t.Errorf("total = %d, want 12", total)
	}
	if len(items) != 5 {
		t.Fatalf("items = %d, want 5", len(items))
	}

	// orden descendente por fecha de ingreso: la página 2 parte en el 7º
	// aviso más reciente
	if items[0].Nombre != "Persona 7" {
		t.Errorf("items[0] = %s, want Persona 7", items[0].Nombre)
	}
	for i := 1; i < len(items); i++ {
		if items[i].FechaIngreso.After(items[i-1].FechaIngreso) {
			t.Errorf("orden incorrecto en posición %d", i)
		}
	}
}

func TestListPaginaFueraDeRango(t *testing.T) {
	repo := repoConAvisos(t, 12)

	items, total, err := repo.List(context.Background(), avisos.ListFilter{Page: 4, PerPage: 5})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 12 || len(items) != 0 {
		t.Errorf("total/items = %d/%d, want 12/0", total, len(items))
	}
}

func TestListFiltraPorTipo(t *testing.T) {
	repo := repoConAvisos(t, 12)

	items, total, err := repo.List(context.Background(), avisos.ListFilter{Tipo: avisos.TipoPerro, Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 6 {
		t.Errorf("total = %d, want 6", total)
	}
	for _, a := range items {
		if a.Tipo != avisos.TipoPerro {
			t.Errorf("tipo = %s, want perro", a.Tipo)
		}
	}
}

func TestListFiltraPorRegion(t *testing.T) {
	repo := NewAvisosRepo(NewRegionesRepo(SeedRegiones()))

	// dos avisos en la Metropolitana (comunas 1301 y 1302), uno en Valparaíso
	for i, comuna := range []int64{1301, 1302, 501} {
		if _, err := repo.Create(context.Background(), avisoDePrueba(i+1, comuna, avisos.TipoGato), nil, nil); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	_, total, err := repo.List(context.Background(), avisos.ListFilter{RegionID: 13, Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 {
		t.Errorf("total región 13 = %d, want 2", total)
	}

	_, total, err = repo.List(context.Background(), avisos.ListFilter{RegionID: 5, Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 {
		t.Errorf("total región 5 = %d, want 1", total)
	}
}

func TestRecientes(t *testing.T) {
	repo := repoConAvisos(t, 8)

	items, err := repo.Recientes(context.Background(), 5)
	if err != nil {
		t.Fatalf("Recientes: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("items = %d, want 5", len(items))
	}
	if items[0].Nombre != "Persona 8" {
		t.Errorf("items[0] = %s, want Persona 8", items[0].Nombre)
	}
}

func TestDeleteEnCascada(t *testing.T) {
	repo := NewAvisosRepo(NewRegionesRepo(SeedRegiones()))

	id, err := repo.Create(context.Background(), avisoDePrueba(1, 1301, avisos.TipoGato),
		[]avisos.Contacto{{Canal: avisos.CanalOtra, Identificador: "Email: a@b.cl"}},
		[]avisos.Foto{{RutaArchivo: "uploads/x.jpg", NombreArchivo: "x.jpg"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), id); !errors.Is(err, avisos.ErrNotFound) {
		t.Errorf("GetByID tras Delete = %v, want ErrNotFound", err)
	}
	fotos, err := repo.Fotos(context.Background(), id)
	if err != nil || len(fotos) != 0 {
		t.Errorf("Fotos tras Delete = %v, %v", fotos, err)
	}

	if err := repo.Delete(context.Background(), id); !errors.Is(err, avisos.ErrNotFound) {
		t.Errorf("segundo Delete = %v, want ErrNotFound", err)
	}
}

func TestTopComunasOrdenaPorTotal(t *testing.T) {
	repo := NewAvisosRepo(NewRegionesRepo(SeedRegiones()))

	// 3 en Providencia, 1 en Santiago, 2 en Valparaíso
	cargas := []struct {
		comuna int64
		n      int
	}{{1302, 3}, {1301, 1}, {501, 2}}
	i := 0
	for _, c := range cargas {
		for j := 0; j < c.n; j++ {
			i++
			if _, err := repo.Create(context.Background(), avisoDePrueba(i, c.comuna, avisos.TipoGato), nil, nil); err != nil {
				t.Fatalf("Create: %v", err)
			}
		}
	}

	top, err := repo.TopComunas(context.Background(), 2)
	if err != nil {
		t.Fatalf("TopComunas: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("top = %d, want 2", len(top))
	}
	if top[0].Nombre != "Providencia" || top[0].Total != 3 {
		t.Errorf("top[0] = %+v", top[0])
	}
	if top[1].Nombre != "Valparaíso" || top[1].Total != 2 {
		t.Errorf("top[1] = %+v", top[1])
	}
}

func TestCountPorRegion(t *testing.T) {
	repo := NewAvisosRepo(NewRegionesRepo(SeedRegiones()))

	for i, comuna := range []int64{1301, 1302, 501} {
		if _, err := repo.Create(context.Background(), avisoDePrueba(i+1, comuna, avisos.TipoGato), nil, nil); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	conteos, err := repo.CountPorRegion(context.Background())
	if err != nil {
		t.Fatalf("CountPorRegion: %v", err)
	}

	porNombre := map[string]int64{}
	for _, c := range conteos {
		porNombre[c.Nombre] = c.Total
	}
	if porNombre["Región Metropolitana de Santiago"] != 2 {
		t.Errorf("Metropolitana = %d, want 2", porNombre["Región Metropolitana de Santiago"])
	}
	if porNombre["Región de Valparaíso"] != 1 {
		t.Errorf("Valparaíso = %d, want 1", porNombre["Región de Valparaíso"])
	}
}
