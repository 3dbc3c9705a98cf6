// Package order contains the Order aggregate root and its lifecycle state
// machine. An order moves strictly forward from Draft through employee and
// client signatures to Finished and, once the courier delivery completes,
// DeliveryFinished. The aggregate snapshots product name, unit and price into
// its items at draft creation, which is also the moment inventory is
// reserved.
package order
