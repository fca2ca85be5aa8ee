package service_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-booking/internal/domain"
	"github.com/pkordes/travel-booking/internal/events"
	"github.com/pkordes/travel-booking/internal/repo"
	"github.com/pkordes/travel-booking/internal/service"
)

// mockPackageRepo is a hand-written test double for repo.PackageRepo.
// Each method is a function field; set only the ones your test needs.
type mockPackageRepo struct {
	create func(ctx context.Context, pkg *domain.TravelPackage) error
	list   func(ctx context.Context, params domain.PaginationParams) ([]domain.PackageView, int, error)
	view   func(ctx context.Context, id uuid.UUID, fn func(*domain.TravelPackage) error) error
	update func(ctx context.Context, id uuid.UUID, fn func(*domain.TravelPackage) error) error
}

func (m *mockPackageRepo) Create(ctx context.Context, pkg *domain.TravelPackage) error {
	return m.create(ctx, pkg)
}
func (m *mockPackageRepo) List(ctx context.Context, params domain.PaginationParams) ([]domain.PackageView, int, error) {
	return m.list(ctx, params)
}
func (m *mockPackageRepo) View(ctx context.Context, id uuid.UUID, fn func(*domain.TravelPackage) error) error {
	return m.view(ctx, id, fn)
}
func (m *mockPackageRepo) Update(ctx context.Context, id uuid.UUID, fn func(*domain.TravelPackage) error) error {
	return m.update(ctx, id, fn)
}

// compile-time check: mockPackageRepo must satisfy repo.PackageRepo.
var _ repo.PackageRepo = (*mockPackageRepo)(nil)

// mockPublisher records published events via testify/mock.
type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, e events.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockPublisher) Close() error { return nil }

var _ events.Publisher = (*mockPublisher)(nil)

// ---- helpers ---------------------------------------------------------------

// quietPublisher accepts every event.
func quietPublisher() *mockPublisher {
	p := &mockPublisher{}
	p.On("Publish", mock.Anything, mock.Anything).Return(nil)
	return p
}

// fixture wires a service to a real in-memory repo holding one package with
// a Lisbon destination, a two-seat tram activity, and one Standard passenger.
type fixture struct {
	svc       *service.PackageService
	pub       *mockPublisher
	pkgID     uuid.UUID
	activity  uuid.UUID
	passenger uuid.UUID
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	pub := quietPublisher()
	svc := service.NewPackageService(repo.NewPackageRepo(), pub)

	pkg, err := svc.CreatePackage(ctx, "Iberia", 3)
	require.NoError(t, err)
	_, err = svc.AddDestination(ctx, pkg.ID, "Lisbon")
	require.NoError(t, err)
	a, err := svc.AddActivity(ctx, pkg.ID, "Lisbon", domain.ActivityView{Name: "Tram 28", Cost: 5, Capacity: 2})
	require.NoError(t, err)
	p, err := svc.AddPassenger(ctx, pkg.ID, domain.PassengerView{Name: "Ada", Balance: 100})
	require.NoError(t, err)

	return fixture{svc: svc, pub: pub, pkgID: pkg.ID, activity: a.ID, passenger: p.ID}
}

// ---- CreatePackage ---------------------------------------------------------

func TestPackageService_CreatePackage_Valid(t *testing.T) {
	svc := service.NewPackageService(repo.NewPackageRepo(), quietPublisher())

	got, err := svc.CreatePackage(context.Background(), "  Iberia  ", 10)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "Iberia", got.Name)
	assert.Equal(t, 10, got.Capacity)
	assert.NotNil(t, got.Destinations)
}

func TestPackageService_CreatePackage_Validation(t *testing.T) {
	svc := service.NewPackageService(repo.NewPackageRepo(), quietPublisher())

	_, err := svc.CreatePackage(context.Background(), "   ", 10)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreatePackage(context.Background(), "Iberia", 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPackageService_CreatePackage_RepoError(t *testing.T) {
	repoErr := errors.New("store exploded")
	r := &mockPackageRepo{
		create: func(context.Context, *domain.TravelPackage) error { return repoErr },
	}
	svc := service.NewPackageService(r, quietPublisher())

	_, err := svc.CreatePackage(context.Background(), "Iberia", 10)

	// The service should propagate repo errors unchanged.
	assert.ErrorIs(t, err, repoErr)
}

// ---- Import ----------------------------------------------------------------

func TestPackageService_Import(t *testing.T) {
	svc := service.NewPackageService(repo.NewPackageRepo(), quietPublisher())
	a := domain.NewTravelPackage("A", 1)
	b := domain.NewTravelPackage("B", 1)

	n, err := svc.Import(context.Background(), []*domain.TravelPackage{a, b, a})

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 2, n)
}

// ---- ListPackages / GetPackage ---------------------------------------------

func TestPackageService_ListPackages_Empty(t *testing.T) {
	r := &mockPackageRepo{
		list: func(context.Context, domain.PaginationParams) ([]domain.PackageView, int, error) {
			return nil, 0, nil
		},
	}
	svc := service.NewPackageService(r, quietPublisher())

	got, total, err := svc.ListPackages(context.Background(), domain.NewPaginationParams(nil, nil))

	require.NoError(t, err)
	assert.Zero(t, total)
	// Should return an empty slice, not nil; callers can safely range over it.
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPackageService_GetPackage_NotFound(t *testing.T) {
	svc := service.NewPackageService(repo.NewPackageRepo(), quietPublisher())

	_, err := svc.GetPackage(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPackageService_GetPackage(t *testing.T) {
	f := newFixture(t)

	got, err := f.svc.GetPackage(context.Background(), f.pkgID)

	require.NoError(t, err)
	assert.Equal(t, "Iberia", got.Name)
	require.Len(t, got.Destinations, 1)
	require.Len(t, got.Destinations[0].Activities, 1)
	assert.Equal(t, f.activity, got.Destinations[0].Activities[0].ID)
	require.Len(t, got.Passengers, 1)
}

// ---- AddDestination / AddActivity ------------------------------------------

func TestPackageService_AddDestination_DuplicateName(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.AddDestination(context.Background(), f.pkgID, "Lisbon")

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestPackageService_AddDestination_PackageNotFound(t *testing.T) {
	svc := service.NewPackageService(repo.NewPackageRepo(), quietPublisher())

	_, err := svc.AddDestination(context.Background(), uuid.New(), "Lisbon")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPackageService_AddActivity_DestinationNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.AddActivity(context.Background(), f.pkgID, "Madrid",
		domain.ActivityView{Name: "Prado", Cost: 15, Capacity: 10})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPackageService_AddActivity_Validation(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name string
		in   domain.ActivityView
	}{
		{name: "blank name", in: domain.ActivityView{Name: " ", Cost: 1, Capacity: 1}},
		{name: "negative cost", in: domain.ActivityView{Name: "A", Cost: -1, Capacity: 1}},
		{name: "zero capacity", in: domain.ActivityView{Name: "A", Cost: 1}},
		{name: "NaN cost", in: domain.ActivityView{Name: "A", Cost: math.NaN(), Capacity: 1}},
		{name: "infinite cost", in: domain.ActivityView{Name: "A", Cost: math.Inf(1), Capacity: 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.AddActivity(context.Background(), f.pkgID, "Lisbon", tc.in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

// ---- AddPassenger ----------------------------------------------------------

func TestPackageService_AddPassenger_PublishesEvent(t *testing.T) {
	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool {
		return e.Type == events.PassengerAdded && e.Balance == 80 && !e.OccurredAt.IsZero()
	})).Return(nil).Once()
	svc := service.NewPackageService(repo.NewPackageRepo(), pub)
	pkg, err := svc.CreatePackage(context.Background(), "Iberia", 2)
	require.NoError(t, err)

	got, err := svc.AddPassenger(context.Background(), pkg.ID, domain.PassengerView{Name: "Grace", Tier: "gold", Balance: 80})

	require.NoError(t, err)
	assert.Equal(t, domain.TierGold, got.Tier)
	pub.AssertExpectations(t)
}

func TestPackageService_AddPassenger_PackageFull(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, name := range []string{"Grace", "Linus"} {
		_, err := f.svc.AddPassenger(ctx, f.pkgID, domain.PassengerView{Name: name})
		require.NoError(t, err)
	}

	_, err := f.svc.AddPassenger(ctx, f.pkgID, domain.PassengerView{Name: "Ken"})

	assert.ErrorIs(t, err, domain.ErrPackageFull)
}

func TestPackageService_AddPassenger_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddPassenger(ctx, f.pkgID, domain.PassengerView{Name: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.svc.AddPassenger(ctx, f.pkgID, domain.PassengerView{Name: "P", Balance: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.svc.AddPassenger(ctx, f.pkgID, domain.PassengerView{Name: "P", Balance: math.NaN()})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.svc.AddPassenger(ctx, f.pkgID, domain.PassengerView{Name: "P", Tier: "platinum"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Book ------------------------------------------------------------------

func TestPackageService_Book(t *testing.T) {
	f := newFixture(t)

	got, err := f.svc.Book(context.Background(), f.pkgID, f.passenger, f.activity)

	require.NoError(t, err)
	assert.Equal(t, 5.0, got.Charged)
	assert.Equal(t, 95.0, got.Balance)
	f.pub.AssertCalled(t, "Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool {
		return e.Type == events.ActivityBooked && e.ActivityID == f.activity && e.Amount == 5
	}))
}

func TestPackageService_Book_CapacityExceeded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, name := range []string{"Grace", "Linus"} {
		p, err := f.svc.AddPassenger(ctx, f.pkgID, domain.PassengerView{Name: name, Balance: 50})
		require.NoError(t, err)
		_, err = f.svc.Book(ctx, f.pkgID, p.ID, f.activity)
		require.NoError(t, err)
	}

	_, err := f.svc.Book(ctx, f.pkgID, f.passenger, f.activity)

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestPackageService_Book_InsufficientBalance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	poor, err := f.svc.AddPassenger(ctx, f.pkgID, domain.PassengerView{Name: "Poor", Balance: 1})
	require.NoError(t, err)

	_, err = f.svc.Book(ctx, f.pkgID, poor.ID, f.activity)

	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestPackageService_Book_PublishFailureKeepsBooking(t *testing.T) {
	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))
	svc := service.NewPackageService(repo.NewPackageRepo(), pub)
	ctx := context.Background()
	pkg, err := svc.CreatePackage(ctx, "Iberia", 1)
	require.NoError(t, err)
	_, err = svc.AddDestination(ctx, pkg.ID, "Lisbon")
	require.NoError(t, err)
	a, err := svc.AddActivity(ctx, pkg.ID, "Lisbon", domain.ActivityView{Name: "Tram", Cost: 5, Capacity: 1})
	require.NoError(t, err)
	p, err := svc.AddPassenger(ctx, pkg.ID, domain.PassengerView{Name: "Ada", Balance: 10})
	require.NoError(t, err)

	_, err = svc.Book(ctx, pkg.ID, p.ID, a.ID)
	require.NoError(t, err)

	view, err := svc.GetPackage(ctx, pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Destinations[0].Activities[0].Enrolled)
}

// ---- reports ---------------------------------------------------------------

func TestPackageService_Report(t *testing.T) {
	f := newFixture(t)

	got, err := f.svc.Report(context.Background(), f.pkgID, domain.ReportPassengers)

	require.NoError(t, err)
	assert.Contains(t, got, "Number of Passengers: 1\n")
	assert.Contains(t, got, "Ada, Balance: 100.00\n")
}

func TestPackageService_Report_UnknownKind(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Report(context.Background(), f.pkgID, "brochure")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPackageService_PassengerDetails(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Book(context.Background(), f.pkgID, f.passenger, f.activity)
	require.NoError(t, err)

	got, err := f.svc.PassengerDetails(context.Background(), f.pkgID, f.passenger)

	require.NoError(t, err)
	assert.Contains(t, got, "Activity: Tram 28 at Lisbon, Paid: 5.00\n")

	_, err = f.svc.PassengerDetails(context.Background(), f.pkgID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
