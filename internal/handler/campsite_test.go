package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creekriver/backend/internal/domain"
	"github.com/creekriver/backend/internal/handler"
)

// mockCampsiteServicer is a test double for handler.CampsiteServicer.
type mockCampsiteServicer struct {
	create    func(ctx context.Context, c domain.Campsite) (domain.Campsite, error)
	getByID   func(ctx context.Context, id int64) (domain.Campsite, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Campsite, int64, error)
	update    func(ctx context.Context, c domain.Campsite) (domain.Campsite, error)
	delete    func(ctx context.Context, id int64) error
}

func (m *mockCampsiteServicer) Create(ctx context.Context, c domain.Campsite) (domain.Campsite, error) {
	return m.create(ctx, c)
}
func (m *mockCampsiteServicer) GetByID(ctx context.Context, id int64) (domain.Campsite, error) {
	return m.getByID(ctx, id)
}
func (m *mockCampsiteServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Campsite, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockCampsiteServicer) Update(ctx context.Context, c domain.Campsite) (domain.Campsite, error) {
	return m.update(ctx, c)
}
func (m *mockCampsiteServicer) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// compile-time check: mockCampsiteServicer must satisfy handler.CampsiteServicer.
var _ handler.CampsiteServicer = (*mockCampsiteServicer)(nil)

func campsiteFixture() domain.Campsite {
	return domain.Campsite{
		ID:             1,
		CampsiteTypeID: 1,
		Nickname:       "Barred Owl",
		ImageURL:       "https://example.com/site.jpg",
	}
}

func TestCreateCampsite(t *testing.T) {
	svc := &mockCampsiteServicer{
		create: func(_ context.Context, c domain.Campsite) (domain.Campsite, error) {
			c.ID = 7
			return c, nil
		},
	}
	h := newRouter(svc, nil, nil, nil)

	body := jsonBody(t, map[string]any{
		"campsite_type_id": 1,
		"nickname":         "Barred Owl",
		"image_url":        "https://example.com/site.jpg",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/campsites", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/campsites/7", rec.Header().Get("Location"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 7, resp["id"])
	assert.Equal(t, "Barred Owl", resp["nickname"])
}

func TestCreateCampsite_UnknownType_Returns409(t *testing.T) {
	svc := &mockCampsiteServicer{
		create: func(_ context.Context, _ domain.Campsite) (domain.Campsite, error) {
			return domain.Campsite{}, domain.ErrConstraint
		},
	}
	h := newRouter(svc, nil, nil, nil)

	body := jsonBody(t, map[string]any{
		"campsite_type_id": 999,
		"nickname":         "Orphan",
		"image_url":        "https://example.com/site.jpg",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/campsites", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp map[string]map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "constraint_violation", resp["error"]["code"])
}

func TestListCampsites_Paginated(t *testing.T) {
	var gotParams domain.PaginationParams
	svc := &mockCampsiteServicer{
		listPaged: func(_ context.Context, p domain.PaginationParams) ([]domain.Campsite, int64, error) {
			gotParams = p
			return []domain.Campsite{campsiteFixture()}, 6, nil
		},
	}
	h := newRouter(svc, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/campsites?page=2&limit=5", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, gotParams.Page)
	assert.Equal(t, 5, gotParams.Limit)

	var resp struct {
		Data       []map[string]any `json:"data"`
		Pagination map[string]int   `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 6, resp.Pagination["total"])
	assert.Equal(t, 2, resp.Pagination["page"])
}

func TestGetCampsite_IncludesType(t *testing.T) {
	fixture := campsiteFixture()
	fixture.Type = &domain.CampsiteType{ID: 1, Name: "Tent", FeePerNight: 1599, MaxReservationDays: 7}
	svc := &mockCampsiteServicer{
		getByID: func(_ context.Context, _ int64) (domain.Campsite, error) { return fixture, nil },
	}
	h := newRouter(svc, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/campsites/1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	campsiteType, ok := resp["campsite_type"].(map[string]any)
	require.True(t, ok, "campsite_type should be embedded")
	assert.Equal(t, "Tent", campsiteType["name"])
	assert.Equal(t, "15.99", campsiteType["fee_per_night"])
}

func TestGetCampsite_NotFound(t *testing.T) {
	svc := &mockCampsiteServicer{
		getByID: func(_ context.Context, _ int64) (domain.Campsite, error) {
			return domain.Campsite{}, domain.ErrNotFound
		},
	}
	h := newRouter(svc, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/campsites/999", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp["error"]["code"])
	assert.Equal(t, "campsite not found", resp["error"]["message"])
}

func TestUpdateCampsite(t *testing.T) {
	svc := &mockCampsiteServicer{
		update: func(_ context.Context, c domain.Campsite) (domain.Campsite, error) { return c, nil },
	}
	h := newRouter(svc, nil, nil, nil)

	body := jsonBody(t, map[string]any{
		"campsite_type_id": 2,
		"nickname":         "Renamed",
		"image_url":        "https://example.com/new.jpg",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/campsites/1", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp["id"], "path id wins over any body id")
	assert.Equal(t, "Renamed", resp["nickname"])
}

func TestDeleteCampsite(t *testing.T) {
	svc := &mockCampsiteServicer{
		delete: func(_ context.Context, _ int64) error { return nil },
	}
	h := newRouter(svc, nil, nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/campsites/1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
