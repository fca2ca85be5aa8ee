// Package service contains the business logic for the travel booking API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// Services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/travel-booking/internal/domain"
	"github.com/pkordes/travel-booking/internal/events"
	"github.com/pkordes/travel-booking/internal/repo"
)

// PackageService implements business logic for travel packages and
// everything they contain. Each call touches exactly one package, under
// that package's lock.
type PackageService struct {
	packages repo.PackageRepo
	events   events.Publisher
	now      func() time.Time
}

// NewPackageService constructs a PackageService backed by the provided repo.
// Booking events are sent to pub.
func NewPackageService(r repo.PackageRepo, pub events.Publisher) *PackageService {
	return &PackageService{packages: r, events: pub, now: time.Now}
}

// CreatePackage validates and stores a new, empty travel package.
// Returns domain.ErrValidation if the name is blank or capacity < 1.
func (s *PackageService) CreatePackage(ctx context.Context, name string, capacity int) (domain.PackageView, error) {
	if err := domain.ValidatePackage(name, capacity); err != nil {
		return domain.PackageView{}, err
	}

	tp := domain.NewTravelPackage(strings.TrimSpace(name), capacity)
	if err := s.packages.Create(ctx, tp); err != nil {
		return domain.PackageView{}, fmt.Errorf("service.PackageService.CreatePackage: %w", err)
	}
	// tp is not shared yet, so reading it outside the lock is safe.
	return tp.View(), nil
}

// Import stores packages built elsewhere, such as from a seed catalog.
// It stops at the first failure and reports how many were stored.
func (s *PackageService) Import(ctx context.Context, pkgs []*domain.TravelPackage) (int, error) {
	for i, tp := range pkgs {
		if err := s.packages.Create(ctx, tp); err != nil {
			return i, fmt.Errorf("service.PackageService.Import: %w", err)
		}
	}
	return len(pkgs), nil
}

// ListPackages returns one page of packages and the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *PackageService) ListPackages(ctx context.Context, params domain.PaginationParams) ([]domain.PackageView, int, error) {
	views, total, err := s.packages.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("service.PackageService.ListPackages: %w", err)
	}
	if views == nil {
		views = []domain.PackageView{}
	}
	return views, total, nil
}

// GetPackage returns a snapshot of one package.
// Returns domain.ErrNotFound if it does not exist.
func (s *PackageService) GetPackage(ctx context.Context, id uuid.UUID) (domain.PackageView, error) {
	var v domain.PackageView
	err := s.packages.View(ctx, id, func(tp *domain.TravelPackage) error {
		v = tp.View()
		return nil
	})
	if err != nil {
		return domain.PackageView{}, fmt.Errorf("service.PackageService.GetPackage: %w", err)
	}
	return v, nil
}

// AddDestination appends a destination to the package itinerary.
// Destination names are unique within a package because activities are
// added to destinations by name.
// Returns domain.ErrConflict if the name is taken.
func (s *PackageService) AddDestination(ctx context.Context, pkgID uuid.UUID, name string) (domain.DestinationView, error) {
	if err := domain.ValidateName("name", name); err != nil {
		return domain.DestinationView{}, err
	}
	name = strings.TrimSpace(name)

	var v domain.DestinationView
	err := s.packages.Update(ctx, pkgID, func(tp *domain.TravelPackage) error {
		if tp.Destination(name) != nil {
			return fmt.Errorf("destination %q: %w", name, domain.ErrConflict)
		}
		d := domain.NewDestination(name)
		tp.AddDestination(d)
		v = d.View()
		return nil
	})
	if err != nil {
		return domain.DestinationView{}, fmt.Errorf("service.PackageService.AddDestination: %w", err)
	}
	return v, nil
}

// AddActivity creates an activity from in and adds it to the named destination.
// Only Name, Description, Cost, and Capacity are read from in.
// Returns domain.ErrNotFound if the package or destination does not exist.
func (s *PackageService) AddActivity(ctx context.Context, pkgID uuid.UUID, destination string, in domain.ActivityView) (domain.ActivityView, error) {
	if err := domain.ValidateActivity(in.Name, in.Cost, in.Capacity); err != nil {
		return domain.ActivityView{}, err
	}

	var v domain.ActivityView
	err := s.packages.Update(ctx, pkgID, func(tp *domain.TravelPackage) error {
		a := domain.NewActivity(strings.TrimSpace(in.Name), in.Description, in.Cost, in.Capacity)
		if err := tp.AddActivityToDestination(destination, a); err != nil {
			return err
		}
		v = a.View()
		return nil
	})
	if err != nil {
		return domain.ActivityView{}, fmt.Errorf("service.PackageService.AddActivity: %w", err)
	}
	return v, nil
}

// AddPassenger creates a passenger from in and books them onto the package.
// Only Name, Tier, and Balance are read from in; an empty tier means Standard.
// Returns domain.ErrPackageFull if the package is at capacity.
func (s *PackageService) AddPassenger(ctx context.Context, pkgID uuid.UUID, in domain.PassengerView) (domain.PassengerView, error) {
	if err := domain.ValidatePassenger(in.Name, in.Balance); err != nil {
		return domain.PassengerView{}, err
	}
	tier, err := domain.ParseTier(string(in.Tier))
	if err != nil {
		return domain.PassengerView{}, err
	}

	var v domain.PassengerView
	err = s.packages.Update(ctx, pkgID, func(tp *domain.TravelPackage) error {
		p := domain.NewPassenger(strings.TrimSpace(in.Name), tier, in.Balance)
		if !tp.AddPassenger(p) {
			return fmt.Errorf("%s holds %d passengers: %w", tp.Name, tp.Capacity, domain.ErrPackageFull)
		}
		v = p.View()
		return nil
	})
	if err != nil {
		return domain.PassengerView{}, fmt.Errorf("service.PackageService.AddPassenger: %w", err)
	}

	s.publish(ctx, events.Event{
		Type:        events.PassengerAdded,
		PackageID:   pkgID,
		PassengerID: v.ID,
		Balance:     v.Balance,
	})
	return v, nil
}

// Book charges a passenger for an activity and enrolls them on it.
// Returns domain.ErrCapacityExceeded if the activity is full and
// domain.ErrInsufficientBalance if the passenger cannot pay.
func (s *PackageService) Book(ctx context.Context, pkgID, passengerID, activityID uuid.UUID) (domain.BookingView, error) {
	var v domain.BookingView
	err := s.packages.Update(ctx, pkgID, func(tp *domain.TravelPackage) error {
		var err error
		v, err = tp.Book(passengerID, activityID)
		return err
	})
	if err != nil {
		return domain.BookingView{}, fmt.Errorf("service.PackageService.Book: %w", err)
	}

	s.publish(ctx, events.Event{
		Type:        events.ActivityBooked,
		PackageID:   v.PackageID,
		PassengerID: v.PassengerID,
		ActivityID:  v.ActivityID,
		Amount:      v.Charged,
		Balance:     v.Balance,
	})
	return v, nil
}

// Report renders one of the package-wide text reports.
func (s *PackageService) Report(ctx context.Context, pkgID uuid.UUID, kind domain.ReportKind) (string, error) {
	var out string
	err := s.packages.View(ctx, pkgID, func(tp *domain.TravelPackage) error {
		var err error
		out, err = tp.Report(kind)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("service.PackageService.Report: %w", err)
	}
	return out, nil
}

// PassengerDetails renders the text report for one passenger.
func (s *PackageService) PassengerDetails(ctx context.Context, pkgID, passengerID uuid.UUID) (string, error) {
	var out string
	err := s.packages.View(ctx, pkgID, func(tp *domain.TravelPackage) error {
		var err error
		out, err = tp.PassengerDetails(passengerID)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("service.PackageService.PassengerDetails: %w", err)
	}
	return out, nil
}

// publish sends e after the mutation it describes has been applied.
// A delivery failure is logged; the mutation stands.
func (s *PackageService) publish(ctx context.Context, e events.Event) {
	e.OccurredAt = s.now().UTC()
	if err := s.events.Publish(ctx, e); err != nil {
		slog.WarnContext(ctx, "publish booking event failed",
			"type", e.Type,
			"package_id", e.PackageID,
			"error", err,
		)
	}
}
