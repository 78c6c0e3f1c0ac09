package cmd

import (
	"log/slog"

	"solarstore/internal/adapters/in/http"
	"solarstore/internal/adapters/out/pdf"
	"solarstore/internal/adapters/out/postgres"
	"solarstore/internal/adapters/out/postgres/accountrepo"
	"solarstore/internal/adapters/out/postgres/counterrepo"
	"solarstore/internal/adapters/out/smtp"
	"solarstore/internal/core/application/notifications"
	"solarstore/internal/core/application/usecases/commands"
	"solarstore/internal/core/application/usecases/queries"
	"solarstore/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	allocator  *counterrepo.GormSequenceAllocator
	dispatcher *notifications.Dispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	mailer, err := smtp.NewGomailMailer(smtp.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	accountRepo := accountrepo.NewGormAccountRepository(gormDB)
	dispatcher := notifications.NewDispatcher(
		mailer,
		pdf.NewFpdfInvoiceRenderer(cfg.InvoiceDir),
		accountrepo.NewGormAccountProvider(accountRepo, logger),
		cfg.AdminEmail,
		logger,
	)

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		allocator:  counterrepo.NewGormSequenceAllocator(gormDB),
		dispatcher: dispatcher,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.allocator, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateAccountCommandHandler() commands.UpdateAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAccountQueryHandler() queries.GetAccountQueryHandler {
	return queries.NewGetAccountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateUpdateAccountCommandHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetOrderByIDQueryHandler(),
		c.CreateGetAccountQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetPendingOrdersQueryHandler(),
		c.dispatcher,
		c.cfg.DigestSchedule,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
