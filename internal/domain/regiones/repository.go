package regiones

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

type Repository interface {
	ListRegiones(ctx context.Context) ([]Region, error)
	ListComunas(ctx context.Context, regionID int64) ([]Comuna, error)
	GetComuna(ctx context.Context, id int64) (Comuna, error)
}
