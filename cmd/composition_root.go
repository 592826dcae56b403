package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "canteen/internal/adapters/in/http"
	"canteen/internal/adapters/out/eventlog"
	"canteen/internal/adapters/out/metrics"
	"canteen/internal/adapters/out/postgres/journalrepo"
	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/services"
	"canteen/internal/jobs"
	"canteen/internal/pkg/clock"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config   Config
	logger   *slog.Logger
	clock    clock.Clock
	ledger   *services.OrderLedger
	registry *prometheus.Registry
}

// NewCompositionRoot builds the ledger and subscribes the outbound
// listeners. gormDB may be nil, in which case no journal is attached.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger, gormDB *gorm.DB) (*CompositionRoot, error) {
	clk := clock.NewSystem()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c := &CompositionRoot{
		config:   config,
		logger:   logger,
		clock:    clk,
		ledger:   services.NewOrderLedger(services.NewTokenSequence(config.TokenStart), clk),
		registry: registry,
	}

	c.ledger.Subscribe(eventlog.NewListener(logger))
	c.ledger.Subscribe(metrics.NewListener(registry))

	if gormDB != nil {
		journal := journalrepo.NewGormOrderEventJournal(gormDB, config.JournalTable, clk)
		if err := journal.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("failed to migrate order journal: %w", err)
		}
		c.ledger.Subscribe(journalrepo.NewListener(journal, journalrepo.DefaultWriteTimeout, logger))
		logger.InfoContext(ctx, "Order journal enabled", "table", journal.Table())
	}

	return c, nil
}

func (c *CompositionRoot) Ledger() *services.OrderLedger {
	return c.ledger
}

func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.ledger)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.ledger)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateGetReceiptQueryHandler() queries.GetReceiptQueryHandler {
	return queries.NewGetReceiptQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetPendingOrdersQueryHandler(),
		c.CreateGetReceiptQueryHandler(),
		c.ledger,
	)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpin.NewRouter(c.CreateHTTPServer(), c.registry)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetPendingOrdersQueryHandler(), c.config.ReportSchedule, c.logger)
}
