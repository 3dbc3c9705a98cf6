// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the fulfillment system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - AssignmentRegistry: a generic claim/release service binding one
//     available worker to one task, instantiated for employee/preparing-order
//     and courier/delivery assignments
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
