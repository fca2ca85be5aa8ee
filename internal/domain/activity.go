// Package domain contains the core booking model: travel packages, their
// destinations and activities, and the passengers who book them.
// Entity methods are not safe for concurrent use; the repo layer serialises
// access per package. This package is imported by every other internal package.
package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Activity is something passengers can do at a destination.
// At most Capacity passengers can be enrolled at once.
type Activity struct {
	ID          uuid.UUID
	Name        string
	Description string
	Cost        float64
	Capacity    int

	passengers []*Passenger
}

// NewActivity returns an Activity with a fresh ID and no enrolled passengers.
func NewActivity(name, description string, cost float64, capacity int) *Activity {
	return &Activity{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Cost:        cost,
		Capacity:    capacity,
	}
}

// Enroll records p as a participant if a space is free.
// It returns false, leaving the activity untouched, when the activity is full.
func (a *Activity) Enroll(p *Passenger) bool {
	if len(a.passengers) >= a.Capacity {
		return false
	}
	a.passengers = append(a.passengers, p)
	return true
}

// AvailableSpaces returns how many more passengers can enroll.
func (a *Activity) AvailableSpaces() int {
	return a.Capacity - len(a.passengers)
}

func (a *Activity) hasSpace() bool {
	return len(a.passengers) < a.Capacity
}

// Passengers returns the enrolled passengers in enrollment order.
// The returned slice is a copy.
func (a *Activity) Passengers() []*Passenger {
	out := make([]*Passenger, len(a.passengers))
	copy(out, a.passengers)
	return out
}

// String returns the one-line summary used by the itinerary reports.
func (a *Activity) String() string {
	return fmt.Sprintf("%s - %s, Cost: %.2f, Capacity: %d", a.Name, a.Description, a.Cost, a.Capacity)
}

// View returns a value snapshot of the activity.
func (a *Activity) View() ActivityView {
	return ActivityView{
		ID:              a.ID,
		Name:            a.Name,
		Description:     a.Description,
		Cost:            a.Cost,
		Capacity:        a.Capacity,
		Enrolled:        len(a.passengers),
		AvailableSpaces: a.AvailableSpaces(),
	}
}
