// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface that covers the aggregates
// it touches, so every operation runs in exactly one transaction.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// ClientRepoFactory provides access to the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// EmployeeRepoFactory provides access to the employee repository within a transaction.
	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// PreparingOrderRepoFactory provides access to the preparing task repository
	// within a transaction.
	PreparingOrderRepoFactory interface {
		PreparingOrderRepository() ports.PreparingOrderRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// OrderUoW manages transactions for order-only operations such as status
	// transitions that touch no other aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderStockUoW manages transactions that move stock together with an
	// order, such as deleting a draft and returning its reservations.
	OrderStockUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// OrderStockUoWFactory creates new order and stock unit of work instances.
	OrderStockUoWFactory interface {
		Create() OrderStockUoW
	}

	// CheckoutUoW manages transactions for draft creation, which reserves
	// stock and references both the client and the responsible employee.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		ClientRepoFactory
		EmployeeRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// PreparingUoW manages transactions for appointing an employee to a
	// preparing task and completing it.
	PreparingUoW interface {
		TxManager
		PreparingOrderRepoFactory
		EmployeeRepoFactory
	}

	// PreparingUoWFactory creates new preparing unit of work instances.
	PreparingUoWFactory interface {
		Create() PreparingUoW
	}

	// PreparingCreationUoW manages transactions that open preparing tasks for
	// finished orders.
	PreparingCreationUoW interface {
		TxManager
		OrderRepoFactory
		PreparingOrderRepoFactory
	}

	// PreparingCreationUoWFactory creates new preparing creation unit of work instances.
	PreparingCreationUoWFactory interface {
		Create() PreparingCreationUoW
	}

	// DeliveryUoW manages transactions for courier appointment and delivery
	// completion. Completing a delivery also closes the parent order, so the
	// order repository is part of the same transaction.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		CourierRepoFactory
		OrderRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// DeliveryCreationUoW manages transactions that open deliveries for
	// completed preparing tasks.
	DeliveryCreationUoW interface {
		TxManager
		PreparingOrderRepoFactory
		DeliveryRepoFactory
	}

	// DeliveryCreationUoWFactory creates new delivery creation unit of work instances.
	DeliveryCreationUoWFactory interface {
		Create() DeliveryCreationUoW
	}

	// ProductUoW manages transactions for product catalog registration.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// ClientUoW manages transactions for client registration.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	// ClientUoWFactory creates new client unit of work instances.
	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// StaffUoW manages transactions for employee and courier registration.
	StaffUoW interface {
		TxManager
		EmployeeRepoFactory
		CourierRepoFactory
	}

	// StaffUoWFactory creates new staff unit of work instances.
	StaffUoWFactory interface {
		Create() StaffUoW
	}
)
