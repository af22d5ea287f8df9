package services_test

import (
	"testing"
	"time"

	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flags struct{ completed, current bool }

func milestoneFlags(ms []services.Milestone) []flags {
	out := make([]flags, len(ms))
	for i, m := range ms {
		out[i] = flags{m.Completed, m.Current}
	}
	return out
}

func TestTimelineProjector_Project(t *testing.T) {
	projector := services.NewTimelineProjector()

	t.Run("labels are fixed and ordered", func(t *testing.T) {
		ms := projector.Project(bookParcel(t))

		require.Len(t, ms, 4)
		assert.Equal(t, "Order Booked", ms[0].Label)
		assert.Equal(t, "In Transit", ms[1].Label)
		assert.Equal(t, "Arrived at Facility", ms[2].Label)
		assert.Equal(t, "Delivered", ms[3].Label)
	})

	tests := []struct {
		status parcel.Status
		want   []flags
	}{
		{parcel.Booked, []flags{{true, true}, {false, false}, {false, false}, {false, false}}},
		{parcel.InTransit, []flags{{true, false}, {false, true}, {false, false}, {false, false}}},
		{parcel.Arrived, []flags{{true, false}, {true, false}, {false, true}, {false, false}}},
		{parcel.Delivered, []flags{{true, false}, {true, false}, {true, false}, {true, true}}},
	}
	for _, tt := range tests {
		t.Run("flags at "+tt.status.String(), func(t *testing.T) {
			p := bookParcel(t)
			advance(t, p, tt.status)

			assert.Equal(t, tt.want, milestoneFlags(projector.Project(p)))
		})
	}

	t.Run("timestamps come from the first matching entry", func(t *testing.T) {
		p := bookParcel(t)
		advance(t, p, parcel.Arrived)

		ms := projector.Project(p)

		require.NotNil(t, ms[0].Timestamp)
		assert.Equal(t, p.CreatedAt(), *ms[0].Timestamp)
		require.NotNil(t, ms[1].Timestamp)
		assert.Equal(t, bookedAt.Add(time.Hour), *ms[1].Timestamp)
		require.NotNil(t, ms[2].Timestamp)
		assert.Equal(t, bookedAt.Add(2*time.Hour), *ms[2].Timestamp)
		assert.Nil(t, ms[3].Timestamp)
	})

	t.Run("projection does not touch history", func(t *testing.T) {
		p := bookParcel(t)
		advance(t, p, parcel.InTransit)
		before := p.History()

		_ = projector.Project(p)

		assert.Equal(t, before, p.History())
	})
}
