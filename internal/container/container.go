package container

import (
	"context"
	"fmt"

	"catalog/sitegen/internal/catalog"
	"catalog/sitegen/internal/client"
	"catalog/sitegen/internal/config"
	"catalog/sitegen/internal/domain"
	"catalog/sitegen/internal/queue"
	"catalog/sitegen/internal/render"
	"catalog/sitegen/internal/repository"
	"catalog/sitegen/internal/service"
	"catalog/sitegen/internal/site"
	"catalog/sitegen/internal/state"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config       *config.Config
	Source       catalog.Source
	Renderer     *render.Renderer
	Site         *site.Site
	Repository   repository.ProductRepository
	Queue        queue.Queue
	StateManager state.StateManager

	Service *service.Service

	db    *pgxpool.Pool
	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	if cfg.Sheets.Enabled {
		container.Source = client.NewSheetsClient(cfg.Sheets)
	} else {
		container.Source = catalog.NewFileSource(cfg.Site.DataFile)
	}
	log.Infof("Catalog source: %s", container.Source.Name())

	renderer, err := render.NewRenderer(cfg.Site.TemplateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}
	container.Renderer = renderer
	container.Site = site.New(cfg.Site.OutputDir, cfg.Site.StaticDir)

	if cfg.Database.Enabled {
		db, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to create database pool: %w", err)
		}
		container.db = db

		// The pool connects lazily
		if err := db.Ping(ctx); err != nil {
			container.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		log.Info("✅ Connected to database successfully")

		container.Repository = repository.NewProductRepository(db)
	}

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})
		container.redis = rdb

		// Test connection
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			container.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("✅ Connected to Redis successfully")

		container.Queue = queue.NewRedisQueue(rdb, cfg.Redis.Stream)
		container.StateManager = state.NewRedisStateManager(rdb)
	}

	container.Service = service.NewService(
		container.Source,
		container.Renderer,
		container.Site,
		container.Repository,
		container.Queue,
		container.StateManager,
	)

	return container, nil
}

// Run generates the site once
func (c *Container) Run(ctx context.Context) (*domain.Report, error) {
	return c.Service.Generate(ctx)
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	if c.db != nil {
		c.db.Close()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			return fmt.Errorf("failed to close Redis client: %w", err)
		}
	}
	return nil
}
