package avisos

import (
	"context"
	"errors"
)

var (
	ErrNotFound       = errors.New("aviso not found")
	ErrComunaInvalida = errors.New("comuna inexistente")
	ErrCanalInvalido  = errors.New("canal de contacto inválido")
	ErrTipoInvalido   = errors.New("tipo de mascota inválido")
)

// ListFilter filtra el listado paginado. Tipo y RegionID en cero
// significan "sin filtro".
type ListFilter struct {
	Tipo     Tipo
	RegionID int64
	Page     int
	PerPage  int
}

func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.PerPage
}

type ConteoTipo struct {
	Tipo  Tipo
	Total int64
}

type ConteoNombre struct {
	Nombre string
	Total  int64
}

type Repository interface {
	// Create persiste el aviso con sus contactos y fotos como una
	// unidad atómica y devuelve el id del aviso nuevo.
	Create(ctx context.Context, a Aviso, contactos []Contacto, fotos []Foto) (int64, error)

	GetByID(ctx context.Context, id int64) (Aviso, error)

	// List devuelve la página pedida (fecha_ingreso desc) y el total
	// de avisos que calzan con el filtro. Una página fuera de rango
	// devuelve lista vacía.
	List(ctx context.Context, f ListFilter) ([]Aviso, int64, error)

	Recientes(ctx context.Context, limit int) ([]Aviso, error)

	Fotos(ctx context.Context, avisoID int64) ([]Foto, error)

	// Delete elimina el aviso junto con sus contactos y fotos.
	Delete(ctx context.Context, id int64) error

	CountPorTipo(ctx context.Context) ([]ConteoTipo, error)
	CountPorRegion(ctx context.Context) ([]ConteoNombre, error)
	TopComunas(ctx context.Context, limit int) ([]ConteoNombre, error)
}
