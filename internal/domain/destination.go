package domain

import (
	"iter"
	"log/slog"

	"github.com/google/uuid"
)

// Destination is a stop on a travel package's itinerary.
// It owns its activities; each activity appears at most once, by ID.
type Destination struct {
	ID   uuid.UUID
	Name string

	activities []*Activity
}

// NewDestination returns an empty Destination with a fresh ID.
func NewDestination(name string) *Destination {
	return &Destination{ID: uuid.New(), Name: name}
}

// AddActivity appends a unless an activity with the same ID is already
// present. A duplicate is logged and ignored; the return value reports
// whether a was added.
func (d *Destination) AddActivity(a *Activity) bool {
	if d.Activity(a.ID) != nil {
		slog.Warn("activity already exists in destination",
			"destination", d.Name,
			"activity_id", a.ID,
			"activity", a.Name,
		)
		return false
	}
	d.activities = append(d.activities, a)
	return true
}

// Activity returns the activity with the given ID, or nil.
func (d *Destination) Activity(id uuid.UUID) *Activity {
	for _, a := range d.activities {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// Activities returns all activities in insertion order. The slice is a copy.
func (d *Destination) Activities() []*Activity {
	out := make([]*Activity, len(d.activities))
	copy(out, d.activities)
	return out
}

// AvailableActivities yields the activities that still have free spaces.
// Each range over the sequence re-scans the destination.
func (d *Destination) AvailableActivities() iter.Seq[*Activity] {
	return func(yield func(*Activity) bool) {
		for _, a := range d.activities {
			if a.hasSpace() && !yield(a) {
				return
			}
		}
	}
}

// View returns a value snapshot of the destination and its activities.
func (d *Destination) View() DestinationView {
	v := DestinationView{ID: d.ID, Name: d.Name, Activities: make([]ActivityView, 0, len(d.activities))}
	for _, a := range d.activities {
		v.Activities = append(v.Activities, a.View())
	}
	return v
}
