package router

import (
	"database/sql"
	"net/http"

	mem "adopciones/internal/adapters/storage/memory"
	pg "adopciones/internal/adapters/storage/postgres"
	"adopciones/internal/adapters/uploads"
	"adopciones/internal/config"
	"adopciones/internal/domain/avisos"
	"adopciones/internal/domain/regiones"
	"adopciones/internal/middleware"
	"adopciones/internal/platform/logger"
	"adopciones/internal/web"

	_ "adopciones/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Cfg config.Config
	Log logger.Logger

	// Opcional: si viene, usa Postgres. Si no, repos in-memory con
	// un set chico de regiones de referencia.
	DB *sql.DB
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		regionesRepo regiones.Repository
		avisosRepo   avisos.Repository
	)

	if opts.DB != nil {
		regionesRepo = pg.NewRegionesRepo(opts.DB)
		avisosRepo = pg.NewAvisosRepo(opts.DB)
	} else {
		regionesRepo = mem.NewRegionesRepo(mem.SeedRegiones())
		avisosRepo = mem.NewAvisosRepo(regionesRepo)
	}

	store, err := uploads.NewLocalStore(opts.Cfg.UploadFolder)
	if err != nil {
		return nil, err
	}

	// Services por módulo
	regionesSvc := regiones.NewService(regionesRepo)
	avisosSvc := avisos.NewService(avisosRepo, store, regionesSvc, log)

	// API JSON
	regiones.RegisterRoutes(r, regionesSvc)
	avisos.RegisterRoutes(r, avisosSvc)

	// Páginas HTML
	webHandler := web.NewHandler(avisosSvc, regionesSvc, log,
		opts.Cfg.SecretKey, opts.Cfg.MaxContentLength)
	web.RegisterRoutes(r, webHandler)

	// Fotos subidas y documentación de la API
	r.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(opts.Cfg.UploadFolder))))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json")))

	return r, nil
}
