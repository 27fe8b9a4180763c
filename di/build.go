package di

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"go.uber.org/dig"

	"main/api"
	"main/config"
	"main/db"
	"main/domain"
	"main/events"
	"main/logger"
	"main/repo"
	"main/service"
)

type App struct {
	Config config.Config
	Server *api.Server
	Pool   *pgxpool.Pool
	Log    zerolog.Logger
}

func Build(ctx context.Context) (*App, error) {
	c := dig.New()

	if err := c.Provide(func() context.Context { return ctx }); err != nil {
		return nil, err
	}
	if err := c.Provide(config.Load); err != nil {
		return nil, err
	}
	if err := c.Provide(logger.New); err != nil {
		return nil, err
	}
	if err := c.Provide(func() domain.Factory { return domain.Factory{} }); err != nil {
		return nil, err
	}
	if err := c.Provide(func(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
		return db.Connect(ctx, cfg.DatabaseURL)
	}); err != nil {
		return nil, err
	}
	if err := c.Provide(repo.NewPgStore); err != nil {
		return nil, err
	}
	if err := c.Provide(func(s *repo.PgStore) repo.Store { return s }); err != nil {
		return nil, err
	}
	if err := c.Provide(func(cfg config.Config) events.Publisher {
		if len(cfg.KafkaBrokers) == 0 {
			return events.NoopPublisher{}
		}
		return events.NewKafkaPublisher(cfg.KafkaBrokers)
	}); err != nil {
		return nil, err
	}

	if err := c.Provide(service.NewUserService); err != nil {
		return nil, err
	}
	if err := c.Provide(service.NewTransactionService); err != nil {
		return nil, err
	}
	if err := c.Provide(service.NewImportService); err != nil {
		return nil, err
	}
	if err := c.Provide(service.NewExportService); err != nil {
		return nil, err
	}
	if err := c.Provide(service.NewAnalyticsService); err != nil {
		return nil, err
	}
	if err := c.Provide(api.NewServer); err != nil {
		return nil, err
	}

	var app *App
	err := c.Invoke(func(cfg config.Config, srv *api.Server, pool *pgxpool.Pool, log zerolog.Logger) {
		app = &App{Config: cfg, Server: srv, Pool: pool, Log: log}
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}
