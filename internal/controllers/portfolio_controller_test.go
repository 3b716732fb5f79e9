package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"print3d-backend/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPortfolioService struct {
	public  []dto.PublicPortfolioItemDTO
	full    []dto.PortfolioItemDTO
	created uint64
	err     error

	updated   *dto.UpdatePortfolioItemDTO
	deletedID uint64
}

func (s *stubPortfolioService) GetPublicPortfolio(ctx context.Context) ([]dto.PublicPortfolioItemDTO, error) {
	return s.public, s.err
}

func (s *stubPortfolioService) GetPortfolio(ctx context.Context) ([]dto.PortfolioItemDTO, error) {
	return s.full, s.err
}

func (s *stubPortfolioService) CreatePortfolioItem(ctx context.Context, payload dto.CreatePortfolioItemDTO) (uint64, error) {
	return s.created, s.err
}

func (s *stubPortfolioService) UpdatePortfolioItem(ctx context.Context, payload dto.UpdatePortfolioItemDTO) error {
	s.updated = &payload
	return s.err
}

func (s *stubPortfolioService) DeletePortfolioItem(ctx context.Context, id uint64) error {
	s.deletedID = id
	return s.err
}

func TestGetPublicPortfolio_Envelope(t *testing.T) {
	svc := &stubPortfolioService{public: []dto.PublicPortfolioItemDTO{
		{ID: 1, Title: "Корпус датчика", ImageURL: "/s.jpg", IsVisible: true, CreatedAt: "2026-08-01T10:00:00Z"},
	}}
	ctrl := NewPortfolioController(svc, zap.NewNop())

	ctx, rec := newTestContext(t, http.MethodGet, "/api/portfolio", "")
	require.NoError(t, ctrl.GetPublicPortfolio(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string][]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body["portfolio"], 1)
	assert.Equal(t, "Корпус датчика", body["portfolio"][0]["title"])
}

func TestGetPortfolio_AdminEnvelope(t *testing.T) {
	svc := &stubPortfolioService{full: []dto.PortfolioItemDTO{
		{ID: 2, Title: "Прототип редуктора", ImageURL: "/g.jpg", IsVisible: false, CreatedAt: "2026-08-01T10:00:00Z"},
	}}
	ctrl := NewPortfolioController(svc, zap.NewNop())

	ctx, rec := newTestContext(t, http.MethodGet, "/api/admin/portfolio", "")
	require.NoError(t, ctrl.GetPortfolio(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string][]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body["portfolio"], 1)
	assert.Equal(t, false, body["portfolio"][0]["is_visible"])
}

func TestCreatePortfolioItem_MissingFields(t *testing.T) {
	ctrl := NewPortfolioController(&stubPortfolioService{}, zap.NewNop())

	for _, body := range []string{
		`{"title":"Без картинки"}`,
		`{"image_url":"/x.jpg"}`,
		`{}`,
	} {
		ctx, rec := newTestContext(t, http.MethodPost, "/api/admin/portfolio", body)
		require.NoError(t, ctrl.CreatePortfolioItem(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.JSONEq(t, `{"error":"Title and image_url are required"}`, rec.Body.String(), body)
	}
}

func TestCreatePortfolioItem_Success(t *testing.T) {
	svc := &stubPortfolioService{created: 9}
	ctrl := NewPortfolioController(svc, zap.NewNop())

	ctx, rec := newTestContext(t, http.MethodPost, "/api/admin/portfolio", `{"title":"Макет","image_url":"/m.jpg","display_order":3}`)
	require.NoError(t, ctrl.CreatePortfolioItem(ctx))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"id":9}`, rec.Body.String())
}

func TestUpdatePortfolioItem_RequiresID(t *testing.T) {
	ctrl := NewPortfolioController(&stubPortfolioService{}, zap.NewNop())

	ctx, rec := newTestContext(t, http.MethodPut, "/api/admin/portfolio", `{"title":"Новое название"}`)
	require.NoError(t, ctrl.UpdatePortfolioItem(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"ID is required"}`, rec.Body.String())
}

func TestDeletePortfolioItem(t *testing.T) {
	svc := &stubPortfolioService{}
	ctrl := NewPortfolioController(svc, zap.NewNop())

	ctx, rec := newTestContext(t, http.MethodDelete, "/api/admin/portfolio", `{"id":4}`)
	require.NoError(t, ctrl.DeletePortfolioItem(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, uint64(4), svc.deletedID)
}
