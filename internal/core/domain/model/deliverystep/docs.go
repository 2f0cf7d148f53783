// Package deliverystep provides the DeliveryStep entity, one stop of a delivery
// route, and its Status state machine.
//
// Key business rules:
//   - The current odometer reading never falls below the previous one; mileage is their difference
//   - Recording the arrival moves the step to InProgress, the departure to Complete
//   - Resetting clears both timestamps and the duration and returns to NotStarted
//   - The duration exists only when both timestamps exist and is never negative
//
// Steps compare equal by delivery id (IsEqual); IsSameStep compares step ids.
package deliverystep
