package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	artistdb "gigbook/internal/artists/db"
	artists "gigbook/internal/artists/service"
	"gigbook/internal/artists/artist_api"
	"gigbook/internal/config"
	"gigbook/internal/database"
	"gigbook/internal/logger"
	showdb "gigbook/internal/shows/db"
	shows "gigbook/internal/shows/service"
	"gigbook/internal/shows/show_api"
	venuedb "gigbook/internal/venues/db"
	venues "gigbook/internal/venues/service"
	"gigbook/internal/venues/venue_api"
	"gigbook/internal/web"
)

// openDatabase connects with bounded retries and picks the bun
// dialect from the DSN: postgres for deployments, sqlite for local
// runs.
func openDatabase(cfg *config.Config, log *logger.Logger) *bun.DB {
	dsn := cfg.Database.DSN

	driver, dialect := "postgres", "postgres"
	if strings.HasPrefix(dsn, "file:") || strings.HasSuffix(dsn, ".db") || dsn == ":memory:" {
		driver, dialect = sqliteshim.ShimName, "sqlite"
	}

	var sqldb *sql.DB
	var err error
	maxRetries := 5

	for i := 0; i < maxRetries; i++ {
		log.Info("DATABASE", fmt.Sprintf("Connecting to %s (attempt %d/%d)", dialect, i+1, maxRetries))
		sqldb, err = sql.Open(driver, dsn)
		if err == nil {
			err = sqldb.Ping()
		}
		if err == nil {
			break
		}
		log.Error("DATABASE", fmt.Sprintf("Failed to connect: %v", err))
		if i < maxRetries-1 {
			time.Sleep(2 * time.Second)
		}
	}
	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to connect after %d attempts: %v", maxRetries, err))
	}

	sqldb.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	log.Info("DATABASE", fmt.Sprintf("Connected to %s", dialect))

	if dialect == "sqlite" {
		bunDB := bun.NewDB(sqldb, sqlitedialect.New())
		if err := database.CreateSchema(context.Background(), bunDB); err != nil {
			log.Fatal("DATABASE", fmt.Sprintf("Failed to create schema: %v", err))
		}
		return bunDB
	}
	return bun.NewDB(sqldb, pgdialect.New())
}

func main() {
	log := logger.NewLogger()
	defer log.Close()

	log.Info("APP", "Starting Gigbook")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	}
	cfg := config.Load()

	bunDB := openDatabase(cfg, log)
	defer bunDB.Close()

	renderer := web.NewRenderer(log)

	venueService := venues.NewVenueService(&venuedb.DB{Bun: bunDB})
	artistService := artists.NewArtistService(&artistdb.DB{Bun: bunDB})
	showService := shows.NewShowService(&showdb.DB{Bun: bunDB})

	venueHandler := venue_api.NewHandler(venueService, log, renderer)
	artistHandler := artist_api.NewHandler(artistService, log, renderer)
	showHandler := show_api.NewHandler(showService, log, renderer)

	log.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()
	r.Use(web.RequestLogger(log))
	r.Use(web.Recoverer(log, renderer))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		renderer.RenderNotFound(w)
	})

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		renderer.Render(w, "home.html", web.Page{Flash: web.PopFlash(w, req)})
	})

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", venueHandler.Directory)
		r.Post("/search", venueHandler.Search)
		r.Get("/create", venueHandler.NewForm)
		r.Post("/create", venueHandler.Create)
		r.Get("/{venueID}", venueHandler.Show)
		r.Post("/{venueID}", venueHandler.Delete)
		r.Get("/{venueID}/edit", venueHandler.EditForm)
		r.Post("/{venueID}/edit", venueHandler.EditSubmit)
	})
	log.Info("ROUTER", "Venue routes registered under /venues")

	r.Route("/artists", func(r chi.Router) {
		r.Get("/", artistHandler.List)
		r.Post("/search", artistHandler.Search)
		r.Get("/create", artistHandler.NewForm)
		r.Post("/create", artistHandler.Create)
		r.Get("/{artistID}", artistHandler.Show)
		r.Get("/{artistID}/edit", artistHandler.EditForm)
		r.Post("/{artistID}/edit", artistHandler.EditSubmit)
	})
	log.Info("ROUTER", "Artist routes registered under /artists")

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", showHandler.List)
		r.Get("/create", showHandler.NewForm)
		r.Post("/create", showHandler.Create)
	})
	log.Info("ROUTER", "Show routes registered under /shows")

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", fmt.Sprintf("Gigbook running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server shutdown failed: %v", err))
	} else {
		log.Info("HTTP", "Gigbook shutdown complete")
	}
}
