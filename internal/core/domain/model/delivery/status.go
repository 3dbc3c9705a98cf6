package delivery

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery task:
//
//	WaitingForDelivery ──> InProcess ──> Done
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// WaitingForDelivery is the initial status: the delivery awaits a courier.
	WaitingForDelivery

	// InProcess indicates a courier is delivering the order.
	InProcess

	// Done is the terminal status; reaching it marks the parent order
	// DeliveryFinished.
	Done
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		WaitingForDelivery: "WaitingForDelivery",
		InProcess:          "InProcess",
		Done:               "Done",
	}
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if s != WaitingForDelivery && s != InProcess && s != Done {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name as produced by String.
func StatusFromString(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == name && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}
