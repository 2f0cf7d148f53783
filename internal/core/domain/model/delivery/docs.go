// Package delivery provides the Delivery aggregate: the ordered steps of one
// delivery run and the totals derived from them.
//
// The package includes:
//   - Delivery: owns its steps and checks that each one carries its delivery and shift ids
//   - Derived totals: mileage, orders and time spent at stops
//   - Derived status: NotStarted, InProgress or Complete, computed from the steps
package delivery
