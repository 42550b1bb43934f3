package cmd

import (
	"time"

	httpin "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/gormdb"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/jobs"
	"orderdesk/internal/pkg/logger"
	"orderdesk/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// CompositionRoot builds every handler, the HTTP server and the jobs from one
// database handle, one clock and one metrics registry.
type CompositionRoot struct {
	cfg          Config
	gormDB       *gorm.DB
	uowFactory   *gormdb.GormUnitOfWorkFactory
	clock        kernel.Clock
	location     *time.Location
	orderMetrics *metrics.OrderMetrics
	jobMetrics   *metrics.CronJobMetrics
	log          zerolog.Logger
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	clock kernel.Clock,
	location *time.Location,
	reg prometheus.Registerer,
	log zerolog.Logger,
) CompositionRoot {
	return CompositionRoot{
		cfg:          cfg,
		gormDB:       gormDB,
		uowFactory:   gormdb.NewGormUnitOfWorkFactory(gormDB).WithLogger(logger.Component(log, "unit-of-work")),
		clock:        clock,
		location:     location,
		orderMetrics: metrics.NewOrderMetrics(reg),
		jobMetrics:   metrics.NewCronJobMetrics(reg),
		log:          log,
	}
}

func (c *CompositionRoot) handlerLogger(name string) zerolog.Logger {
	return logger.Component(c.log, name)
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateNextOrderNumberCommandHandler() commands.NextOrderNumberCommandHandler {
	var f commands.SequenceUoWFactory = FuncSequenceUoWFactory(func() commands.SequenceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewNextOrderNumberCommandHandler(f, c.clock, c.orderMetrics, c.handlerLogger("next_order_number"))
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.uow(), c.cfg.OrderPrefix, c.clock, c.orderMetrics, c.handlerLogger("create_order"))
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.uow(), c.clock, c.orderMetrics, c.handlerLogger("update_order_status"))
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.clock, c.orderMetrics, c.handlerLogger("cancel_order"))
}

func (c *CompositionRoot) CreateGenerateDailyDraftsCommandHandler() commands.GenerateDailyDraftsCommandHandler {
	return commands.NewGenerateDailyDraftsCommandHandler(
		c.uow(), c.cfg.OrderPrefix, c.clock, c.orderMetrics, c.handlerLogger("generate_daily_drafts"))
}

func (c *CompositionRoot) CreateSaveClientCommandHandler() commands.SaveClientCommandHandler {
	return commands.NewSaveClientCommandHandler(c.clientUoW(), c.clock, c.handlerLogger("save_client"))
}

func (c *CompositionRoot) CreateDeleteClientCommandHandler() commands.DeleteClientCommandHandler {
	return commands.NewDeleteClientCommandHandler(c.clientUoW(), c.handlerLogger("delete_client"))
}

func (c *CompositionRoot) CreateSaveProductCommandHandler() commands.SaveProductCommandHandler {
	return commands.NewSaveProductCommandHandler(c.productUoW(), c.clock, c.handlerLogger("save_product"))
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoW(), c.handlerLogger("delete_product"))
}

func (c *CompositionRoot) clientUoW() commands.ClientUoWFactory {
	return FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoW() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateGetAllClientsQueryHandler() queries.GetAllClientsQueryHandler {
	return queries.NewGetAllClientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDraftsQueryHandler() queries.GetDraftsQueryHandler {
	return queries.NewGetDraftsQueryHandler(c.gormDB)
}

// CreateServer wires the HTTP adapter to every handler.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		NextOrderNumber:   c.CreateNextOrderNumberCommandHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),
		GenerateDrafts:    c.CreateGenerateDailyDraftsCommandHandler(),
		SaveClient:        c.CreateSaveClientCommandHandler(),
		DeleteClient:      c.CreateDeleteClientCommandHandler(),
		SaveProduct:       c.CreateSaveProductCommandHandler(),
		DeleteProduct:     c.CreateDeleteProductCommandHandler(),
		GetAllClients:     c.CreateGetAllClientsQueryHandler(),
		GetAllProducts:    c.CreateGetAllProductsQueryHandler(),
		GetAllOrders:      c.CreateGetAllOrdersQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetDrafts:         c.CreateGetDraftsQueryHandler(),
	}, c.clock, c.handlerLogger("http"))
}

// CreateJobManager schedules the daily draft generation.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	job := jobs.NewDailyDraftsJob(
		c.CreateGenerateDailyDraftsCommandHandler(),
		c.cfg.DraftsSchedule,
		c.location,
		c.jobMetrics,
		c.log,
	)
	return jobs.NewJobManager(job)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncSequenceUoWFactory func() commands.SequenceUoW

func (f FuncSequenceUoWFactory) Create() commands.SequenceUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
