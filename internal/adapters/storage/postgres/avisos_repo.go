package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"adopciones/internal/domain/avisos"
)

type AvisosRepo struct {
	db *sql.DB
}

func NewAvisosRepo(db *sql.DB) *AvisosRepo {
	return &AvisosRepo{db: db}
}

const avisoColumns = `
	id, fecha_ingreso, comuna_id, sector,
	nombre, email, celular,
	tipo, cantidad, edad, unidad_medida,
	fecha_entrega, descripcion
`

// Create inserta el aviso con sus contactos y fotos en una sola
// transacción: si cualquier insert falla no queda nada a medias.
func (r *AvisosRepo) Create(ctx context.Context, a avisos.Aviso, contactos []avisos.Contacto, fotos []avisos.Foto) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO aviso_adopcion (
			fecha_ingreso, comuna_id, sector,
			nombre, email, celular,
			tipo, cantidad, edad, unidad_medida,
			fecha_entrega, descripcion
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING id
	`,
		a.FechaIngreso,
		a.ComunaID,
		toNullString(a.Sector),
		a.Nombre,
		a.Email,
		toNullString(a.Celular),
		string(a.Tipo),
		a.Cantidad,
		a.Edad,
		string(a.UnidadMedida),
		a.FechaEntrega,
		a.Descripcion,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	for _, c := range contactos {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO contactar_por (nombre, identificador, actividad_id)
			VALUES ($1,$2,$3)
		`, string(c.Canal), c.Identificador, id)
		if err != nil {
			return 0, err
		}
	}

	for _, f := range fotos {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO foto (ruta_archivo, nombre_archivo, actividad_id)
			VALUES ($1,$2,$3)
		`, f.RutaArchivo, f.NombreArchivo, id)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *AvisosRepo) GetByID(ctx context.Context, id int64) (avisos.Aviso, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+avisoColumns+`
		FROM aviso_adopcion
		WHERE id = $1
	`, id)

	a, err := scanAviso(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return avisos.Aviso{}, avisos.ErrNotFound
		}
		return avisos.Aviso{}, err
	}
	return a, nil
}

func (r *AvisosRepo) List(ctx context.Context, f avisos.ListFilter) ([]avisos.Aviso, int64, error) {
	where, args := buildFiltro(f)

	var total int64
	countSQL := `SELECT COUNT(*) FROM aviso_adopcion a` + joinComuna(f) + where
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listSQL := `
		SELECT ` + prefijar(avisoColumns, "a.") + `
		FROM aviso_adopcion a` + joinComuna(f) + where + `
		ORDER BY a.fecha_ingreso DESC, a.id DESC
		LIMIT $` + fmt.Sprint(len(args)+1) + ` OFFSET $` + fmt.Sprint(len(args)+2)
	args = append(args, f.PerPage, f.Offset())

	rows, err := r.db.QueryContext(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]avisos.Aviso, 0)
	for rows.Next() {
		a, err := scanAviso(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

func (r *AvisosRepo) Recientes(ctx context.Context, limit int) ([]avisos.Aviso, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+avisoColumns+`
		FROM aviso_adopcion
		ORDER BY fecha_ingreso DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]avisos.Aviso, 0, limit)
	for rows.Next() {
		a, err := scanAviso(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AvisosRepo) Fotos(ctx context.Context, avisoID int64) ([]avisos.Foto, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, ruta_archivo, nombre_archivo, actividad_id
		FROM foto
		WHERE actividad_id = $1
		ORDER BY id ASC
	`, avisoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]avisos.Foto, 0)
	for rows.Next() {
		var f avisos.Foto
		if err := rows.Scan(&f.ID, &f.RutaArchivo, &f.NombreArchivo, &f.AvisoID); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Delete borra el aviso y sus dependientes en cascada explícita,
// dentro de una transacción. El esquema además lleva ON DELETE CASCADE
// como respaldo.
func (r *AvisosRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM contactar_por WHERE actividad_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM foto WHERE actividad_id = $1`, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM aviso_adopcion WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return avisos.ErrNotFound
	}

	return tx.Commit()
}

func (r *AvisosRepo) CountPorTipo(ctx context.Context) ([]avisos.ConteoTipo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT tipo, COUNT(id)
		FROM aviso_adopcion
		GROUP BY tipo
		ORDER BY tipo ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]avisos.ConteoTipo, 0)
	for rows.Next() {
		var c avisos.ConteoTipo
		if err := rows.Scan(&c.Tipo, &c.Total); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *AvisosRepo) CountPorRegion(ctx context.Context) ([]avisos.ConteoNombre, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.nombre, COUNT(a.id)
		FROM region r
		JOIN comuna c ON c.region_id = r.id
		JOIN aviso_adopcion a ON a.comuna_id = c.id
		GROUP BY r.nombre
		ORDER BY r.nombre ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanConteos(rows)
}

func (r *AvisosRepo) TopComunas(ctx context.Context, limit int) ([]avisos.ConteoNombre, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.nombre, COUNT(a.id) AS total
		FROM comuna c
		JOIN aviso_adopcion a ON a.comuna_id = c.id
		GROUP BY c.nombre
		ORDER BY total DESC, c.nombre ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanConteos(rows)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAviso(row scanner) (avisos.Aviso, error) {
	var a avisos.Aviso
	var sector, celular sql.NullString
	err := row.Scan(
		&a.ID,
		&a.FechaIngreso,
		&a.ComunaID,
		&sector,
		&a.Nombre,
		&a.Email,
		&celular,
		&a.Tipo,
		&a.Cantidad,
		&a.Edad,
		&a.UnidadMedida,
		&a.FechaEntrega,
		&a.Descripcion,
	)
	if err != nil {
		return avisos.Aviso{}, err
	}
	a.Sector = sector.String
	a.Celular = celular.String
	return a, nil
}

func scanConteos(rows *sql.Rows) ([]avisos.ConteoNombre, error) {
	out := make([]avisos.ConteoNombre, 0)
	for rows.Next() {
		var c avisos.ConteoNombre
		if err := rows.Scan(&c.Nombre, &c.Total); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// buildFiltro arma el WHERE dinámico del listado. Los placeholders
// parten en $1 y siguen el orden tipo, region.
func buildFiltro(f avisos.ListFilter) (string, []any) {
	conds := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if f.Tipo != "" {
		args = append(args, string(f.Tipo))
		conds = append(conds, fmt.Sprintf("a.tipo = $%d", len(args)))
	}
	if f.RegionID != 0 {
		args = append(args, f.RegionID)
		conds = append(conds, fmt.Sprintf("c.region_id = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// joinComuna solo agrega el join cuando el filtro por región lo necesita.
func joinComuna(f avisos.ListFilter) string {
	if f.RegionID == 0 {
		return ""
	}
	return " JOIN comuna c ON c.id = a.comuna_id"
}

func prefijar(cols, prefix string) string {
	parts := strings.Split(cols, ",")
	for i, p := range parts {
		parts[i] = prefix + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
