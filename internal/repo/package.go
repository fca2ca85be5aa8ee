// Package repo holds the travel packages the API serves.
// Packages live in memory only; each one is guarded by its own lock so
// that every mutation of a package, its destinations, activities, and
// passengers is applied atomically.
package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/travel-booking/internal/domain"
)

// PackageRepo defines the storage operations for TravelPackages.
// The service layer depends on this interface, not the in-memory
// implementation, which allows the service to be unit-tested with a mock.
type PackageRepo interface {
	// Create stores a new package. Returns domain.ErrConflict if a package
	// with the same ID is already stored.
	Create(ctx context.Context, pkg *domain.TravelPackage) error

	// List returns one page of package snapshots in insertion order, plus
	// the total number of stored packages.
	List(ctx context.Context, params domain.PaginationParams) ([]domain.PackageView, int, error)

	// View runs fn with shared access to the package.
	// fn must not mutate the package or retain it after returning.
	// Returns domain.ErrNotFound if no package with that ID exists.
	View(ctx context.Context, id uuid.UUID, fn func(*domain.TravelPackage) error) error

	// Update runs fn with exclusive access to the package and returns fn's error.
	// Returns domain.ErrNotFound if no package with that ID exists.
	Update(ctx context.Context, id uuid.UUID, fn func(*domain.TravelPackage) error) error
}

// entry pairs a package with the lock that guards it.
type entry struct {
	mu  sync.RWMutex
	pkg *domain.TravelPackage
}

// memPackageRepo is the in-memory implementation of PackageRepo.
// mu guards the index only; package contents are guarded by entry.mu.
type memPackageRepo struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*entry
	order []uuid.UUID
}

// NewPackageRepo constructs an empty in-memory PackageRepo.
func NewPackageRepo() PackageRepo {
	return &memPackageRepo{byID: make(map[uuid.UUID]*entry)}
}

func (r *memPackageRepo) Create(ctx context.Context, pkg *domain.TravelPackage) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("repo.PackageRepo.Create: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[pkg.ID]; ok {
		return fmt.Errorf("repo.PackageRepo.Create: package %s: %w", pkg.ID, domain.ErrConflict)
	}
	r.byID[pkg.ID] = &entry{pkg: pkg}
	r.order = append(r.order, pkg.ID)
	return nil
}

func (r *memPackageRepo) List(ctx context.Context, params domain.PaginationParams) ([]domain.PackageView, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.PackageRepo.List: %w", err)
	}

	r.mu.RLock()
	total := len(r.order)
	start, end := params.Bounds(total)
	page := make([]*entry, 0, end-start)
	for _, id := range r.order[start:end] {
		page = append(page, r.byID[id])
	}
	r.mu.RUnlock()

	views := make([]domain.PackageView, 0, len(page))
	for _, e := range page {
		e.mu.RLock()
		views = append(views, e.pkg.View())
		e.mu.RUnlock()
	}
	return views, total, nil
}

func (r *memPackageRepo) View(ctx context.Context, id uuid.UUID, fn func(*domain.TravelPackage) error) error {
	e, err := r.lookup(ctx, id)
	if err != nil {
		return fmt.Errorf("repo.PackageRepo.View: %w", err)
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return fn(e.pkg)
}

func (r *memPackageRepo) Update(ctx context.Context, id uuid.UUID, fn func(*domain.TravelPackage) error) error {
	e, err := r.lookup(ctx, id)
	if err != nil {
		return fmt.Errorf("repo.PackageRepo.Update: %w", err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.pkg)
}

func (r *memPackageRepo) lookup(ctx context.Context, id uuid.UUID) (*entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("package %s: %w", id, domain.ErrNotFound)
	}
	return e, nil
}
