// Package services provides domain services that coordinate several aggregates.
//
// The package includes:
//   - DeliveryManager: the registry that owns locations, deliveries and delivery steps
//     and keeps the links between them consistent
//
// The registry keeps everything in memory; storing it anywhere is left to the caller.
package services
