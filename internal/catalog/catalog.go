// Package catalog loads travel packages from a YAML seed file.
// It is used at start-up to pre-populate the in-memory repo.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/travel-booking/internal/domain"
)

// Catalog is the root of a seed file.
type Catalog struct {
	Packages []Package `yaml:"packages"`
}

// Package describes one travel package and everything booked on it.
type Package struct {
	Name         string        `yaml:"name"`
	Capacity     int           `yaml:"capacity"`
	Destinations []Destination `yaml:"destinations"`
	Passengers   []Passenger   `yaml:"passengers"`
}

type Destination struct {
	Name       string     `yaml:"name"`
	Activities []Activity `yaml:"activities"`
}

type Activity struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Cost        float64 `yaml:"cost"`
	Capacity    int     `yaml:"capacity"`
}

// Passenger is booked onto the enclosing package. Bookings lists activity
// names; each resolves to the first activity with that name in itinerary order.
type Passenger struct {
	Name     string   `yaml:"name"`
	Tier     string   `yaml:"tier"`
	Balance  float64  `yaml:"balance"`
	Bookings []string `yaml:"bookings"`
}

// Load decodes a catalog from r. Unknown keys are rejected so that typos in
// a seed file fail loudly instead of silently dropping data.
func Load(r io.Reader) (Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return Catalog{}, nil
		}
		return Catalog{}, fmt.Errorf("catalog.Load: %w", err)
	}
	return c, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog.LoadFile: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog.LoadFile %s: %w", path, err)
	}
	return c, nil
}

// Build turns the catalog into live travel packages. Every add and booking
// goes through the domain methods, so the result satisfies the same
// capacity and balance rules as packages built through the API.
func (c Catalog) Build() ([]*domain.TravelPackage, error) {
	out := make([]*domain.TravelPackage, 0, len(c.Packages))
	for i, p := range c.Packages {
		tp, err := p.build()
		if err != nil {
			return nil, fmt.Errorf("catalog.Build: packages[%d] %q: %w", i, p.Name, err)
		}
		out = append(out, tp)
	}
	return out, nil
}

func (p Package) build() (*domain.TravelPackage, error) {
	if err := domain.ValidatePackage(p.Name, p.Capacity); err != nil {
		return nil, err
	}
	tp := domain.NewTravelPackage(strings.TrimSpace(p.Name), p.Capacity)

	// Names are trimmed the same way the API trims them, so a seeded
	// destination is reachable by the name the API would give it.
	for _, ds := range p.Destinations {
		if err := domain.ValidateName("destination name", ds.Name); err != nil {
			return nil, err
		}
		dest := strings.TrimSpace(ds.Name)
		if tp.Destination(dest) != nil {
			return nil, fmt.Errorf("destination %q: %w", dest, domain.ErrConflict)
		}
		tp.AddDestination(domain.NewDestination(dest))
		for _, as := range ds.Activities {
			if err := domain.ValidateActivity(as.Name, as.Cost, as.Capacity); err != nil {
				return nil, fmt.Errorf("destination %q: activity %q: %w", dest, as.Name, err)
			}
			a := domain.NewActivity(strings.TrimSpace(as.Name), as.Description, as.Cost, as.Capacity)
			if err := tp.AddActivityToDestination(dest, a); err != nil {
				return nil, err
			}
		}
	}

	for _, ps := range p.Passengers {
		if err := domain.ValidatePassenger(ps.Name, ps.Balance); err != nil {
			return nil, fmt.Errorf("passenger %q: %w", ps.Name, err)
		}
		tier, err := domain.ParseTier(ps.Tier)
		if err != nil {
			return nil, fmt.Errorf("passenger %q: %w", ps.Name, err)
		}
		passenger := domain.NewPassenger(strings.TrimSpace(ps.Name), tier, ps.Balance)
		if !tp.AddPassenger(passenger) {
			return nil, fmt.Errorf("passenger %q: %w", ps.Name, domain.ErrPackageFull)
		}
		for _, name := range ps.Bookings {
			a := activityByName(tp, strings.TrimSpace(name))
			if a == nil {
				return nil, fmt.Errorf("passenger %q: activity %q: %w", ps.Name, name, domain.ErrNotFound)
			}
			if _, err := tp.Book(passenger.ID, a.ID); err != nil {
				return nil, fmt.Errorf("passenger %q: %w", ps.Name, err)
			}
		}
	}
	return tp, nil
}

func activityByName(tp *domain.TravelPackage, name string) *domain.Activity {
	for _, d := range tp.Destinations() {
		for _, a := range d.Activities() {
			if a.Name == name {
				return a
			}
		}
	}
	return nil
}
