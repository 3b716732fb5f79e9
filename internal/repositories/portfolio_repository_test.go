package repositories

import (
	"context"
	"testing"

	"print3d-backend/internal/dto"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioRepository_Integration_PublicList(t *testing.T) {
	requirePool(t)
	cleanupTables(t)
	repo := NewPortfolioRepository(testPool)
	ctx := context.Background()

	_, err := repo.CreatePortfolioItem(ctx, dto.CreatePortfolioItemDTO{
		Title: "Скрытая работа", ImageURL: "/h.jpg", IsVisible: boolPtr(false),
	})
	require.NoError(t, err)

	visibleID, err := repo.CreatePortfolioItem(ctx, dto.CreatePortfolioItemDTO{
		Title: "Корпус датчика", Description: "Серия из 200 штук", ImageURL: "/s.jpg", DisplayOrder: 1,
	})
	require.NoError(t, err)

	public, err := repo.GetPublicPortfolio(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, visibleID, public[0].ID)
	assert.NotEmpty(t, public[0].CreatedAt)

	all, err := repo.GetPortfolio(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPortfolioRepository_Integration_UpdateDescription(t *testing.T) {
	requirePool(t)
	cleanupTables(t)
	repo := NewPortfolioRepository(testPool)
	ctx := context.Background()

	id, err := repo.CreatePortfolioItem(ctx, dto.CreatePortfolioItemDTO{
		Title: "Прототип редуктора", ImageURL: "/g.jpg",
	})
	require.NoError(t, err)

	err = repo.UpdatePortfolioItem(ctx, dto.UpdatePortfolioItemDTO{ID: id, Description: null.StringFrom("Из PETG за 3 дня")})
	require.NoError(t, err)

	all, err := repo.GetPortfolio(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Из PETG за 3 дня", all[0].Description)
	assert.Equal(t, "Прототип редуктора", all[0].Title)
}
