package services

import (
	"time"

	"logitrack/internal/core/domain/model/parcel"
)

// Milestone is one fixed checkpoint of the tracking timeline.
type Milestone struct {
	Label     string
	Status    parcel.Status
	Completed bool
	Current   bool
	// Timestamp is nil until the parcel reaches the milestone.
	Timestamp *time.Time
}

var milestoneLabels = []struct {
	status parcel.Status
	label  string
}{
	{parcel.Booked, "Order Booked"},
	{parcel.InTransit, "In Transit"},
	{parcel.Arrived, "Arrived at Facility"},
	{parcel.Delivered, "Delivered"},
}

// TimelineProjector derives the display timeline from a parcel's history.
type TimelineProjector struct{}

// NewTimelineProjector creates the projector. It holds no state.
func NewTimelineProjector() TimelineProjector {
	return TimelineProjector{}
}

// Project returns the four milestones in order. It only reads the parcel.
//
// A milestone is completed once the parcel has moved past it. Booked is always
// completed, and a terminal milestone is completed as soon as it is reached.
// Timestamps come from the first history entry with the milestone status;
// Booked uses the creation time.
func (TimelineProjector) Project(p *parcel.Parcel) []Milestone {
	current := p.Status()
	out := make([]Milestone, 0, len(milestoneLabels))

	for _, m := range milestoneLabels {
		milestone := Milestone{
			Label:   m.label,
			Status:  m.status,
			Current: current == m.status,
		}

		switch {
		case m.status == parcel.Booked:
			milestone.Completed = true
		case m.status.IsBefore(current):
			milestone.Completed = true
		case m.status == current && current.IsTerminal():
			milestone.Completed = true
		}

		if m.status == parcel.Booked {
			createdAt := p.CreatedAt()
			milestone.Timestamp = &createdAt
		} else if entry, ok := p.FirstEventWith(m.status); ok {
			ts := entry.Timestamp()
			milestone.Timestamp = &ts
		}

		out = append(out, milestone)
	}

	return out
}
