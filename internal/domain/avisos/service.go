package avisos

import (
	"context"
	"fmt"
	"time"

	"adopciones/internal/platform/logger"
)

// ComunaLookup verifica que la comuna referenciada exista antes de
// persistir un aviso. Lo implementa regiones.Service.
type ComunaLookup interface {
	ComunaExiste(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo    Repository
	files   FileStore
	comunas ComunaLookup
	log     logger.Logger
	now     func() time.Time
}

func NewService(repo Repository, files FileStore, comunas ComunaLookup, log logger.Logger) *Service {
	return &Service{
		repo:    repo,
		files:   files,
		comunas: comunas,
		log:     log,
		now:     time.Now,
	}
}

// Submit persiste un aviso validado junto con sus contactos y fotos
// como una unidad atómica, y devuelve el id del aviso nuevo.
//
// Los archivos se escriben a disco antes del commit: si el commit
// falla puede quedar un archivo huérfano sin fila de foto. Un choque
// de nombre sobreescribe el archivo existente sin renombrar.
func (s *Service) Submit(ctx context.Context, sub Submission, fotos []ArchivoFoto) (int64, error) {
	if !TipoValido(sub.Tipo) {
		return 0, ErrTipoInvalido
	}

	ok, err := s.comunas.ComunaExiste(ctx, sub.ComunaID)
	if err != nil {
		return 0, fmt.Errorf("verificando comuna: %w", err)
	}
	if !ok {
		return 0, ErrComunaInvalida
	}

	contactos := make([]Contacto, 0, 2+len(sub.Contactos))

	// El email siempre queda como contacto genérico.
	if sub.Email != "" {
		contactos = append(contactos, Contacto{
			Canal:         CanalOtra,
			Identificador: "Email: " + sub.Email,
		})
	}
	if sub.Celular != "" {
		contactos = append(contactos, Contacto{
			Canal:         CanalOtra,
			Identificador: "Celular: " + sub.Celular,
		})
	}
	for _, par := range sub.Contactos {
		canal := Canal(par.Canal)
		if !CanalValido(canal) {
			return 0, fmt.Errorf("%w: %s", ErrCanalInvalido, par.Canal)
		}
		contactos = append(contactos, Contacto{
			Canal:         canal,
			Identificador: par.Identificador,
		})
	}

	registros := make([]Foto, 0, len(fotos))
	for _, f := range fotos {
		nombre := SanitizarNombre(f.Nombre)
		if nombre == "" {
			continue
		}
		ruta, err := s.files.Guardar(ctx, nombre, f.Datos)
		if err != nil {
			return 0, fmt.Errorf("guardando foto %s: %w", nombre, err)
		}
		registros = append(registros, Foto{
			RutaArchivo:   ruta,
			NombreArchivo: nombre,
		})
	}

	a := Aviso{
		FechaIngreso: s.now(),
		ComunaID:     sub.ComunaID,
		Sector:       sub.Sector,
		Nombre:       sub.Nombre,
		Email:        sub.Email,
		Celular:      sub.Celular,
		Tipo:         sub.Tipo,
		Cantidad:     sub.Cantidad,
		Edad:         sub.Edad,
		UnidadMedida: sub.UnidadMedida,
		FechaEntrega: sub.FechaEntrega,
		Descripcion:  sub.Descripcion,
	}

	id, err := s.repo.Create(ctx, a, contactos, registros)
	if err != nil {
		return 0, err
	}

	s.log.Info("aviso creado", map[string]any{
		"aviso_id":  id,
		"tipo":      string(a.Tipo),
		"comuna_id": a.ComunaID,
		"contactos": len(contactos),
		"fotos":     len(registros),
	})
	return id, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Aviso, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Recientes(ctx context.Context, limit int) ([]Aviso, error) {
	if limit < 1 {
		limit = 5
	}
	return s.repo.Recientes(ctx, limit)
}

func (s *Service) Fotos(ctx context.Context, avisoID int64) ([]Foto, error) {
	return s.repo.Fotos(ctx, avisoID)
}

// Delete elimina un aviso con sus contactos y fotos (borrado en cascada
// explícito). Ninguna ruta HTTP lo expone todavía.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ListResult es una página del listado más los totales que necesita
// la paginación.
type ListResult struct {
	Avisos []Aviso
	Total  int64
	Pages  int
	Page   int
}

// List devuelve la página pedida ordenada por fecha de ingreso
// descendente. Una página fuera de rango devuelve lista vacía.
func (s *Service) List(ctx context.Context, f ListFilter) (ListResult, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = 10
	}

	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return ListResult{}, err
	}

	pages := int((total + int64(f.PerPage) - 1) / int64(f.PerPage))
	return ListResult{
		Avisos: items,
		Total:  total,
		Pages:  pages,
		Page:   f.Page,
	}, nil
}

// Estadisticas agrupa los tres conteos de la página de estadísticas.
type Estadisticas struct {
	PorTipo    []ConteoTipo
	PorRegion  []ConteoNombre
	TopComunas []ConteoNombre
}

// Stats calcula los tres agregados de forma independiente. Un agregado
// que falla se degrada a lista vacía con warning; la página igual se
// muestra con "sin datos".
func (s *Service) Stats(ctx context.Context) Estadisticas {
	var out Estadisticas
	var err error

	out.PorTipo, err = s.repo.CountPorTipo(ctx)
	if err != nil {
		s.log.Warn("estadísticas por tipo no disponibles", map[string]any{"error": err.Error()})
		out.PorTipo = nil
	}

	out.PorRegion, err = s.repo.CountPorRegion(ctx)
	if err != nil {
		s.log.Warn("estadísticas por región no disponibles", map[string]any{"error": err.Error()})
		out.PorRegion = nil
	}

	out.TopComunas, err = s.repo.TopComunas(ctx, 10)
	if err != nil {
		s.log.Warn("estadísticas por comuna no disponibles", map[string]any{"error": err.Error()})
		out.TopComunas = nil
	}

	return out
}
