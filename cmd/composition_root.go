package cmd

import (
	"fmt"

	"bookstore/internal/adapters/out/inmem"
	inmemorderrepo "bookstore/internal/adapters/out/inmem/orderrepo"
	"bookstore/internal/adapters/out/postgres"
	pgorderrepo "bookstore/internal/adapters/out/postgres/orderrepo"
	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/ports"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// unitOfWorkFactory is the storage-agnostic factory both adapters provide.
type unitOfWorkFactory interface {
	Create() ports.UnitOfWork
}

// CompositionRoot wires adapters into use case handlers. The storage
// adapter is chosen once at startup: Postgres when the config carries a
// database, the in-memory registry otherwise.
type CompositionRoot struct {
	orders     ports.OrderRepository
	uowFactory unitOfWorkFactory
}

// NewCompositionRoot builds the object graph for the configured storage.
func NewCompositionRoot(config Config) (CompositionRoot, error) {
	if !config.HasDatabase() {
		registry := inmemorderrepo.NewInMemoryOrderRepository()
		return CompositionRoot{
			orders:     registry,
			uowFactory: inmem.NewUnitOfWorkFactory(registry),
		}, nil
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to connect database: %w", err)
	}

	if err = db.AutoMigrate(&pgorderrepo.OrderDTO{}); err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return CompositionRoot{
		orders:     pgorderrepo.NewGormOrderRepository(db),
		uowFactory: postgres.NewGormUnitOfWorkFactory(db),
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
