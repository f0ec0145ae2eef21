package postgres

import (
	"context"
	"database/sql"
	"errors"

	"adopciones/internal/domain/regiones"
)

type RegionesRepo struct {
	db *sql.DB
}

func NewRegionesRepo(db *sql.DB) *RegionesRepo {
	return &RegionesRepo{db: db}
}

func (r *RegionesRepo) ListRegiones(ctx context.Context) ([]regiones.Region, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nombre
		FROM region
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]regiones.Region, 0)
	for rows.Next() {
		var reg regiones.Region
		if err := rows.Scan(&reg.ID, &reg.Nombre); err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}

func (r *RegionesRepo) ListComunas(ctx context.Context, regionID int64) ([]regiones.Comuna, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nombre, region_id
		FROM comuna
		WHERE region_id = $1
		ORDER BY id ASC
	`, regionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]regiones.Comuna, 0)
	for rows.Next() {
		var c regiones.Comuna
		if err := rows.Scan(&c.ID, &c.Nombre, &c.RegionID); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *RegionesRepo) GetComuna(ctx context.Context, id int64) (regiones.Comuna, error) {
	var c regiones.Comuna
	err := r.db.QueryRowContext(ctx, `
		SELECT id, nombre, region_id
		FROM comuna
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Nombre, &c.RegionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return regiones.Comuna{}, regiones.ErrNotFound
		}
		return regiones.Comuna{}, err
	}
	return c, nil
}
