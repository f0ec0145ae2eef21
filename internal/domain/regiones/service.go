package regiones

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListRegiones(ctx context.Context) ([]Region, error) {
	return s.repo.ListRegiones(ctx)
}

// ListComunas devuelve las comunas de una región. Una región sin
// comunas devuelve lista vacía, no error.
func (s *Service) ListComunas(ctx context.Context, regionID int64) ([]Comuna, error) {
	return s.repo.ListComunas(ctx, regionID)
}

func (s *Service) GetComuna(ctx context.Context, id int64) (Comuna, error) {
	return s.repo.GetComuna(ctx, id)
}

// ComunaExiste implementa avisos.ComunaLookup: los avisos verifican
// la comuna antes de persistir.
func (s *Service) ComunaExiste(ctx context.Context, id int64) (bool, error) {
	_, err := s.repo.GetComuna(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
