package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with strictly forward transitions:
//
//	Draft ──> SignedByEmployee ──> SignedByClient ──> Finished ──> DeliveryFinished
//
// No backward moves are allowed; an operation attempted from a state that
// does not permit it fails with an InvalidStatus error.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status. The order's inventory is already reserved,
	// its item list is immutable, and it is the only status in which the
	// order may be deleted.
	Draft

	// SignedByEmployee indicates the order document was generated and signed
	// by the owning employee.
	SignedByEmployee

	// SignedByClient indicates the client countersigned the order document.
	SignedByClient

	// Finished indicates the order was finalized and is ready for assembly.
	Finished

	// DeliveryFinished indicates the courier delivery completed.
	// This is the terminal state.
	DeliveryFinished
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		Draft:            "Draft",
		SignedByEmployee: "SignedByEmployee",
		SignedByClient:   "SignedByClient",
		Finished:         "Finished",
		DeliveryFinished: "DeliveryFinished",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:            "Draft",
		SignedByEmployee: "SignedByEmployee",
		SignedByClient:   "SignedByClient",
		Finished:         "Finished",
		DeliveryFinished: "DeliveryFinished",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// SignByEmployee transitions Draft to SignedByEmployee.
func (s Status) SignByEmployee() (Status, error) {
	if s != Draft {
		return 0, errs.NewInvalidStatusErrorWithCause(
			"order",
			fmt.Errorf("%s is not a valid status to sign by employee", s.String()),
		)
	}

	return SignedByEmployee, nil
}

// SignByClient transitions SignedByEmployee to SignedByClient.
func (s Status) SignByClient() (Status, error) {
	if s != SignedByEmployee {
		return 0, errs.NewInvalidStatusErrorWithCause(
			"order",
			fmt.Errorf("%s is not a valid status to sign by client", s.String()),
		)
	}

	return SignedByClient, nil
}

// Finish transitions SignedByClient to Finished.
func (s Status) Finish() (Status, error) {
	if s != SignedByClient {
		return 0, errs.NewInvalidStatusErrorWithCause(
			"order",
			fmt.Errorf("%s is not a valid status to finish", s.String()),
		)
	}

	return Finished, nil
}

// FinishDelivery transitions Finished to DeliveryFinished.
func (s Status) FinishDelivery() (Status, error) {
	if s != Finished {
		return 0, errs.NewInvalidStatusErrorWithCause(
			"order",
			fmt.Errorf("%s is not a valid status to finish delivery", s.String()),
		)
	}

	return DeliveryFinished, nil
}
