package cmd

import (
	"fulfillment/internal/adapters/out/docgen"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	generator  ports.DocumentGenerator
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		generator:  docgen.NewFileDocumentGenerator(configs.DocsBaseDir),
	}
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateClientCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateEmployeeCommandHandler() commands.CreateEmployeeCommandHandler {
	return commands.NewCreateEmployeeCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateCreateDraftOrderCommandHandler() commands.CreateDraftOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDraftOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGenerateOrderCommandHandler() commands.GenerateOrderCommandHandler {
	return commands.NewGenerateOrderCommandHandler(c.orderUoWFactory(), c.generator)
}

func (c *CompositionRoot) CreateSignOrderByClientCommandHandler() commands.SignOrderByClientCommandHandler {
	return commands.NewSignOrderByClientCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateFinishOrderCommandHandler() commands.FinishOrderCommandHandler {
	return commands.NewFinishOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderStockUoWFactory = FuncOrderStockUoWFactory(func() commands.OrderStockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePreparingOrderCommandHandler() commands.CreatePreparingOrderCommandHandler {
	var f commands.PreparingCreationUoWFactory = FuncPreparingCreationUoWFactory(func() commands.PreparingCreationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePreparingOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAppointPickerCommandHandler() commands.AppointPickerCommandHandler {
	return commands.NewAppointPickerCommandHandler(c.preparingUoWFactory())
}

func (c *CompositionRoot) CreateFinishPreparingCommandHandler() commands.FinishPreparingCommandHandler {
	return commands.NewFinishPreparingCommandHandler(c.preparingUoWFactory())
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.DeliveryCreationUoWFactory = FuncDeliveryCreationUoWFactory(func() commands.DeliveryCreationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateAppointCourierCommandHandler() commands.AppointCourierCommandHandler {
	return commands.NewAppointCourierCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateFinishDeliveryCommandHandler() commands.FinishDeliveryCommandHandler {
	return commands.NewFinishDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPreparingOrdersQueryHandler() queries.GetPreparingOrdersQueryHandler {
	return queries.NewGetPreparingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesQueryHandler() queries.GetDeliveriesQueryHandler {
	return queries.NewGetDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) staffUoWFactory() commands.StaffUoWFactory {
	return FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) preparingUoWFactory() commands.PreparingUoWFactory {
	return FuncPreparingUoWFactory(func() commands.PreparingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderStockUoWFactory func() commands.OrderStockUoW

func (f FuncOrderStockUoWFactory) Create() commands.OrderStockUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncPreparingUoWFactory func() commands.PreparingUoW

func (f FuncPreparingUoWFactory) Create() commands.PreparingUoW {
	return f()
}

type FuncPreparingCreationUoWFactory func() commands.PreparingCreationUoW

func (f FuncPreparingCreationUoWFactory) Create() commands.PreparingCreationUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncDeliveryCreationUoWFactory func() commands.DeliveryCreationUoW

func (f FuncDeliveryCreationUoWFactory) Create() commands.DeliveryCreationUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}
