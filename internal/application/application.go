package application

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"namegen/internal/config"
	"namegen/internal/domain/service/person"
	"namegen/internal/infrastructure/namefile"
	"namegen/internal/infrastructure/persistence"
	"namegen/internal/server"
	"namegen/pkg/application/connectors"
	"namegen/pkg/application/modules"
	"namegen/pkg/contextx"
	"namegen/pkg/logx"
	"namegen/pkg/probe"
)

func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	ctx = contextx.WithLogger(ctx, log.With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	))

	// 1. Name pool source
	source, closeSource, err := newPoolSource(ctx, cfg)
	if err != nil {
		return fmt.Errorf("newPoolSource: %w", err)
	}
	defer closeSource()

	// 2. Services
	personService := person.NewService(source).WithPoolTTL(cfg.Names.CacheTTL)

	if err = personService.Warmup(ctx); err != nil {
		return fmt.Errorf("personService.Warmup: %w", err)
	}

	// 3. HTTP
	srv := server.NewServer(server.NewPersonServer(personService))

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ListenAddress:   cfg.HTTP.ListenAddress,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, srv.Handler(cfg.HTTP.LogFieldMaxLen))
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
		ReadyChecks:   []probe.ReadyCheck{personService.Ready},
	}.Run(ctx, g)
	modules.MetricServer{ListenAddress: cfg.HTTP.MetricsListenAddress}.Run(ctx, g)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func newPoolSource(ctx context.Context, cfg config.Config) (person.PoolSource, func(), error) {
	logger := contextx.LoggerFromContextOrDefault(ctx)

	switch cfg.Names.Source {
	case config.NamesSourceFile:
		logger.Info("using file name pool", slog.String(logx.FieldNamesSource, cfg.Names.Source))

		return namefile.Source{
			Female:  cfg.Names.FemaleFiles,
			Male:    cfg.Names.MaleFiles,
			Surname: cfg.Names.SurnameFiles,
		}, func() {}, nil
	case config.NamesSourcePostgres:
		pg := &connectors.Postgres{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		}
		db := pg.Client(ctx)

		if err := db.PingContext(ctx); err != nil {
			pg.Close(ctx)
			return nil, nil, fmt.Errorf("db.PingContext: %w", err)
		}

		logger.Info("using postgres name pool", slog.String(logx.FieldNamesSource, cfg.Names.Source))

		return persistence.NewNameRepository(db), func() { pg.Close(ctx) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown names source %q", cfg.Names.Source)
	}
}
