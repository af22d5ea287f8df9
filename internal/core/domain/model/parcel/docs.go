// Package parcel implements the Parcel aggregate: a tracked shipment that moves
// through a fixed sequence of custody states and owns an append-only history.
//
// The package includes:
//   - Parcel: the aggregate root holding identity, parties, goods and lifecycle
//   - Status: the ordered lifecycle states BOOKED -> IN_TRANSIT -> ARRIVED -> DELIVERED
//   - TrackingEvent: one immutable entry of the history log
//   - TransitionPolicy: the rule deciding which status changes are legal
//   - StatusChanged: the domain event recorded for every history entry
//
// Key business rules:
//   - the first history entry is always BOOKED and is written on creation
//   - the last history entry always carries the current status
//   - history timestamps never decrease
//   - a rejected transition leaves the parcel untouched
//   - DELIVERED is terminal
package parcel
