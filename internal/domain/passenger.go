package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Passenger is a traveller who pays for activities out of a balance.
type Passenger struct {
	ID   uuid.UUID
	Name string
	Tier Tier

	balance float64
	joins   []Join
}

// Join records one activity a passenger signed up for and what they paid.
type Join struct {
	Activity *Activity
	Paid     float64
}

// NewPassenger returns a Passenger with a fresh ID and the given starting balance.
func NewPassenger(name string, tier Tier, balance float64) *Passenger {
	return &Passenger{ID: uuid.New(), Name: name, Tier: tier, balance: balance}
}

// Balance returns the passenger's remaining balance. It is negative only for
// tiers that waive the balance check.
func (p *Passenger) Balance() float64 {
	return p.balance
}

// JoinActivity charges the passenger for a and records the join.
// The charge is the tier price of a.Cost. It returns false, leaving the
// balance untouched, when the charge exceeds the balance and the tier does
// not waive the check.
//
// JoinActivity does not enroll the passenger on the activity side; use
// TravelPackage.Book to update both.
func (p *Passenger) JoinActivity(a *Activity) bool {
	cost := p.Tier.Price(a.Cost)
	if !p.canAfford(cost) {
		return false
	}
	p.balance -= cost
	p.joins = append(p.joins, Join{Activity: a, Paid: cost})
	return true
}

func (p *Passenger) canAfford(cost float64) bool {
	return p.Tier.WaivesBalanceCheck() || cost <= p.balance
}

// Activities returns the joined activities in join order.
func (p *Passenger) Activities() []*Activity {
	out := make([]*Activity, 0, len(p.joins))
	for _, j := range p.joins {
		out = append(out, j.Activity)
	}
	return out
}

// Joins returns the join history. The slice is a copy.
func (p *Passenger) Joins() []Join {
	out := make([]Join, len(p.joins))
	copy(out, p.joins)
	return out
}

func (p *Passenger) String() string {
	return fmt.Sprintf("%s, Balance: %.2f", p.Name, p.balance)
}

// View returns a value snapshot of the passenger.
func (p *Passenger) View() PassengerView {
	v := PassengerView{
		ID:          p.ID,
		Name:        p.Name,
		Tier:        p.Tier,
		Balance:     p.balance,
		ActivityIDs: make([]uuid.UUID, 0, len(p.joins)),
	}
	for _, j := range p.joins {
		v.ActivityIDs = append(v.ActivityIDs, j.Activity.ID)
	}
	return v
}
