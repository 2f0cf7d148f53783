// Package kernel provides the identifier and timestamp primitives shared by the
// gigdelivery domain model.
//
// The package includes:
//   - UUID: the opaque, comparable identifier for locations, deliveries, steps and shifts
//   - Clock: the source of "now" for every recorded timestamp, with SystemClock for
//     production use and ClockFunc for tests and replays
package kernel
