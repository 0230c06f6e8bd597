package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creekriver/backend/internal/domain"
	"github.com/creekriver/backend/internal/repo"
	"github.com/creekriver/backend/internal/service"
)

// echoCampsiteRepo echoes whatever it receives back — useful for Create/Update
// tests that only care about validation logic, not what the DB returns.
func echoCampsiteRepo() *mockCampsiteRepo {
	return &mockCampsiteRepo{
		create: func(_ context.Context, c domain.Campsite) (domain.Campsite, error) { return c, nil },
		update: func(_ context.Context, c domain.Campsite) (domain.Campsite, error) { return c, nil },
	}
}

func validCampsite() domain.Campsite {
	return domain.Campsite{
		CampsiteTypeID: 1,
		Nickname:       "Barred Owl",
		ImageURL:       "https://example.com/site.jpg",
	}
}

func TestCampsiteService_Create_Valid(t *testing.T) {
	svc := service.NewCampsiteService(echoCampsiteRepo())

	got, err := svc.Create(context.Background(), validCampsite())

	require.NoError(t, err)
	assert.Equal(t, "Barred Owl", got.Nickname)
}

func TestCampsiteService_Create_MissingNickname(t *testing.T) {
	svc := service.NewCampsiteService(echoCampsiteRepo())

	c := validCampsite()
	c.Nickname = "   " // whitespace-only should be treated as empty

	_, err := svc.Create(context.Background(), c)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCampsiteService_Create_MissingImageURL(t *testing.T) {
	svc := service.NewCampsiteService(echoCampsiteRepo())

	c := validCampsite()
	c.ImageURL = ""

	_, err := svc.Create(context.Background(), c)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCampsiteService_Create_MissingTypeReference(t *testing.T) {
	svc := service.NewCampsiteService(echoCampsiteRepo())

	c := validCampsite()
	c.CampsiteTypeID = 0

	_, err := svc.Create(context.Background(), c)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCampsiteService_Update_ConstraintPassthrough(t *testing.T) {
	r := echoCampsiteRepo()
	r.update = func(_ context.Context, _ domain.Campsite) (domain.Campsite, error) {
		return domain.Campsite{}, domain.ErrConstraint
	}
	svc := service.NewCampsiteService(r)

	c := validCampsite()
	c.ID = 1
	c.CampsiteTypeID = 999 // repo reports the FK failure

	_, err := svc.Update(context.Background(), c)

	assert.ErrorIs(t, err, domain.ErrConstraint)
}

func TestCampsiteService_ListPaged_NeverNil(t *testing.T) {
	r := echoCampsiteRepo()
	r.listPaged = func(_ context.Context, _ domain.PaginationParams) ([]domain.Campsite, int64, error) {
		return nil, 0, nil
	}
	svc := service.NewCampsiteService(r)

	got, total, err := svc.ListPaged(context.Background(), domain.NewPaginationParams(nil, nil))

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Zero(t, total)
}

func TestCampsiteService_Delete_NotFound(t *testing.T) {
	r := echoCampsiteRepo()
	r.delete = func(_ context.Context, _ int64) error { return domain.ErrNotFound }
	svc := service.NewCampsiteService(r)

	err := svc.Delete(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCampsiteTypeService_Create_Validation(t *testing.T) {
	types := &mockCampsiteTypeRepo{
		create: func(_ context.Context, ct domain.CampsiteType) (domain.CampsiteType, error) { return ct, nil },
	}
	svc := service.NewCampsiteTypeService(types)

	_, err := svc.Create(context.Background(), domain.CampsiteType{Name: "", MaxReservationDays: 7})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), domain.CampsiteType{Name: "Yurt", MaxReservationDays: 0})
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := svc.Create(context.Background(), domain.CampsiteType{Name: "Yurt", FeePerNight: 3000, MaxReservationDays: 7})
	require.NoError(t, err)
	assert.Equal(t, "Yurt", got.Name)
}

func TestUserProfileService_Create_Validation(t *testing.T) {
	users := &mockUserProfileRepo{
		create: func(_ context.Context, up domain.UserProfile) (domain.UserProfile, error) { return up, nil },
	}
	svc := service.NewUserProfileService(users)

	_, err := svc.Create(context.Background(), domain.UserProfile{FirstName: "", LastName: "McDavid", Email: "d@d.com"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), domain.UserProfile{FirstName: "David", LastName: "McDavid", Email: " "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := svc.Create(context.Background(), domain.UserProfile{FirstName: "David", LastName: "McDavid", Email: "d@d.com"})
	require.NoError(t, err)
	assert.Equal(t, "David", got.FirstName)
}

// mockCampsiteTypeRepo is a test double for repo.CampsiteTypeRepo.
type mockCampsiteTypeRepo struct {
	create  func(ctx context.Context, ct domain.CampsiteType) (domain.CampsiteType, error)
	getByID func(ctx context.Context, id int64) (domain.CampsiteType, error)
	list    func(ctx context.Context) ([]domain.CampsiteType, error)
	update  func(ctx context.Context, ct domain.CampsiteType) (domain.CampsiteType, error)
}

func (m *mockCampsiteTypeRepo) Create(ctx context.Context, ct domain.CampsiteType) (domain.CampsiteType, error) {
	return m.create(ctx, ct)
}
func (m *mockCampsiteTypeRepo) GetByID(ctx context.Context, id int64) (domain.CampsiteType, error) {
	return m.getByID(ctx, id)
}
func (m *mockCampsiteTypeRepo) List(ctx context.Context) ([]domain.CampsiteType, error) {
	return m.list(ctx)
}
func (m *mockCampsiteTypeRepo) Update(ctx context.Context, ct domain.CampsiteType) (domain.CampsiteType, error) {
	return m.update(ctx, ct)
}

// compile-time check: mockCampsiteTypeRepo must satisfy repo.CampsiteTypeRepo.
var _ repo.CampsiteTypeRepo = (*mockCampsiteTypeRepo)(nil)
