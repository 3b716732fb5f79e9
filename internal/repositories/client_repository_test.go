package repositories

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	"print3d-backend/internal/dto"
	apperrors "print3d-backend/pkg/errors"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPool *pgxpool.Pool

// TestMain подключается к тестовой БД из TEST_DATABASE_URL и применяет схему.
// Без переменной окружения интеграционные тесты пропускаются.
func TestMain(m *testing.M) {
	testDbUrl := os.Getenv("TEST_DATABASE_URL")
	if testDbUrl == "" {
		os.Exit(m.Run())
	}

	var err error
	testPool, err = pgxpool.New(context.Background(), testDbUrl)
	if err != nil {
		log.Fatalf("Не удалось подключиться к тестовой БД: %v", err)
	}
	defer testPool.Close()

	applySchema(testPool)

	os.Exit(m.Run())
}

func applySchema(pool *pgxpool.Pool) {
	path, _ := filepath.Abs("../../testdata/schema.sql")
	schema, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Не удалось прочитать schema.sql: %v", err)
	}
	if _, err := pool.Exec(context.Background(), string(schema)); err != nil {
		log.Fatalf("Не удалось применить схему БД: %v", err)
	}
}

func requirePool(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL не задан, интеграционные тесты пропущены")
	}
}

func cleanupTables(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE clients, portfolio, orders RESTART IDENTITY CASCADE;`)
	require.NoError(t, err, "Не удалось очистить таблицы")
}

func boolPtr(b bool) *bool { return &b }

func TestClientRepository_Integration_CreateAndList(t *testing.T) {
	requirePool(t)
	cleanupTables(t)
	repo := NewClientRepository(testPool)
	ctx := context.Background()

	hiddenID, err := repo.CreateClient(ctx, dto.CreateClientDTO{
		Name: "Скрытый клиент", LogoURL: "/h.png", DisplayOrder: 1, IsVisible: boolPtr(false),
	})
	require.NoError(t, err)
	require.NotZero(t, hiddenID)

	visibleID, err := repo.CreateClient(ctx, dto.CreateClientDTO{
		Name: "Видимый клиент", LogoURL: "/v.png", DisplayOrder: 2,
	})
	require.NoError(t, err)

	public, err := repo.GetPublicClients(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1, "в публичном списке только видимые")
	assert.Equal(t, visibleID, public[0].ID)

	all, err := repo.GetClients(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestClientRepository_Integration_PartialUpdate(t *testing.T) {
	requirePool(t)
	cleanupTables(t)
	repo := NewClientRepository(testPool)
	ctx := context.Background()

	id, err := repo.CreateClient(ctx, dto.CreateClientDTO{Name: "Ротор", LogoURL: "/r.png", DisplayOrder: 1})
	require.NoError(t, err)

	before, err := repo.GetClients(ctx)
	require.NoError(t, err)
	require.Len(t, before, 1)
	assert.False(t, before[0].UpdatedAt.Valid, "до первого обновления updated_at пуст")

	err = repo.UpdateClient(ctx, dto.UpdateClientDTO{ID: id, IsVisible: null.BoolFrom(false)})
	require.NoError(t, err)

	all, err := repo.GetClients(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Ротор", all[0].Name, "не присланные поля не меняются")
	assert.False(t, all[0].IsVisible)
	assert.True(t, all[0].UpdatedAt.Valid, "updated_at проставляется при обновлении")
}

func TestClientRepository_Integration_NotFound(t *testing.T) {
	requirePool(t)
	cleanupTables(t)
	repo := NewClientRepository(testPool)
	ctx := context.Background()

	err := repo.UpdateClient(ctx, dto.UpdateClientDTO{ID: 9999, Name: null.StringFrom("Нет такого")})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repo.DeleteClient(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestClientRepository_Integration_Delete(t *testing.T) {
	requirePool(t)
	cleanupTables(t)
	repo := NewClientRepository(testPool)
	ctx := context.Background()

	id, err := repo.CreateClient(ctx, dto.CreateClientDTO{Name: "Удаляемый", LogoURL: "/d.png"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteClient(ctx, id))

	all, err := repo.GetClients(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
