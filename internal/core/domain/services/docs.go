// Package services contains the stateless domain services of the parcel
// lifecycle:
//   - TrackingIDGenerator mints unique tracking identifiers with bounded retries
//   - TransitionEngine derives the event location and applies status changes
//   - NotificationDispatcher maps a recorded transition to notification records
//   - TimelineProjector turns a parcel's history into display milestones
//
// None of them touch storage; ports are passed in by the application layer.
package services
