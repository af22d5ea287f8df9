// Package kernel contains the value objects shared by every aggregate:
// UUID identifiers, the parcel TrackingID, and the DomainEvent contract used
// for post-commit side effects.
package kernel
