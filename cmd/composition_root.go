package cmd

import (
	"log/slog"
	"time"

	httpin "picking/internal/adapters/in/http"
	"picking/internal/adapters/out/kafka"
	"picking/internal/adapters/out/postgres"
	"picking/internal/adapters/out/postgres/storagecellrepo"
	"picking/internal/core/application/usecases/commands"
	"picking/internal/core/application/usecases/queries"
	"picking/internal/core/domain/services"
	"picking/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Handlers are cheap
// value types; the root creates them on demand from the shared connections.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	resolver   *storagecellrepo.GormLocationResolver
	notifier   *kafka.InventoryNotifier
	optimizer  services.RouteOptimizer
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		resolver:   storagecellrepo.NewGormLocationResolver(gormDB),
		notifier:   kafka.NewInventoryNotifier([]string{config.KafkaHost}, config.KafkaStockPickedTopic),
		optimizer:  services.NewRouteOptimizer(),
		logger:     logger,
	}
}

// Close releases outbound connections held by the root.
func (c *CompositionRoot) Close() error {
	return c.notifier.Close()
}

func (c *CompositionRoot) pickingListUoWFactory() commands.PickingListUoWFactory {
	return FuncPickingListUoWFactory(func() commands.PickingListUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreatePickingListCommandHandler() commands.CreatePickingListCommandHandler {
	return commands.NewCreatePickingListCommandHandler(c.pickingListUoWFactory(), c.resolver, c.optimizer)
}

func (c *CompositionRoot) CreateAssignListCommandHandler() commands.AssignListCommandHandler {
	return commands.NewAssignListCommandHandler(c.pickingListUoWFactory())
}

func (c *CompositionRoot) CreateStartPickingCommandHandler() commands.StartPickingCommandHandler {
	return commands.NewStartPickingCommandHandler(c.pickingListUoWFactory())
}

func (c *CompositionRoot) CreateConfirmItemCommandHandler() commands.ConfirmItemCommandHandler {
	return commands.NewConfirmItemCommandHandler(c.pickingListUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateReportIssueCommandHandler() commands.ReportIssueCommandHandler {
	return commands.NewReportIssueCommandHandler(c.pickingListUoWFactory())
}

func (c *CompositionRoot) CreateCompletePickingCommandHandler() commands.CompletePickingCommandHandler {
	return commands.NewCompletePickingCommandHandler(c.pickingListUoWFactory())
}

func (c *CompositionRoot) CreateCancelListCommandHandler() commands.CancelListCommandHandler {
	return commands.NewCancelListCommandHandler(c.pickingListUoWFactory())
}

func (c *CompositionRoot) CreateCancelStaleListsCommandHandler() commands.CancelStaleListsCommandHandler {
	return commands.NewCancelStaleListsCommandHandler(c.pickingListUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetPickingListQueryHandler() queries.GetPickingListQueryHandler {
	return queries.NewGetPickingListQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetListsByStatusQueryHandler() queries.GetListsByStatusQueryHandler {
	return queries.NewGetListsByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProgressQueryHandler() queries.GetProgressQueryHandler {
	return queries.NewGetProgressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNextItemQueryHandler() queries.GetNextItemQueryHandler {
	return queries.NewGetNextItemQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the HTTP server over all handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreatePickingListCommandHandler(),
		c.CreateAssignListCommandHandler(),
		c.CreateStartPickingCommandHandler(),
		c.CreateConfirmItemCommandHandler(),
		c.CreateReportIssueCommandHandler(),
		c.CreateCompletePickingCommandHandler(),
		c.CreateCancelListCommandHandler(),
		c.CreateGetPickingListQueryHandler(),
		c.CreateGetListsByStatusQueryHandler(),
		c.CreateGetProgressQueryHandler(),
		c.CreateGetNextItemQueryHandler(),
		c.optimizer,
	)
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager(staleAge time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCancelStaleListsCommandHandler(), staleAge, c.logger)
}

// FuncPickingListUoWFactory adapts a closure to the unit of work factory
// contract the command handlers expect.
type FuncPickingListUoWFactory func() commands.PickingListUoW

func (f FuncPickingListUoWFactory) Create() commands.PickingListUoW {
	return f()
}
