package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"print3d-backend/internal/dto"
	apperrors "print3d-backend/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const clientTable = "clients"

var clientColumns = []string{"id", "name", "logo_url", "display_order", "is_visible", "created_at", "updated_at"}

type dbClient struct {
	ID           uint64
	Name         string
	LogoURL      string
	DisplayOrder int
	IsVisible    bool
	CreatedAt    time.Time
	UpdatedAt    sql.NullTime
}

func (db *dbClient) ToDTO() dto.ClientDTO {
	return dto.ClientDTO{
		ID:           db.ID,
		Name:         db.Name,
		LogoURL:      db.LogoURL,
		DisplayOrder: db.DisplayOrder,
		IsVisible:    db.IsVisible,
		CreatedAt:    timeToISO(db.CreatedAt),
		UpdatedAt:    nullTimeToISO(db.UpdatedAt),
	}
}

type ClientRepositoryInterface interface {
	GetPublicClients(ctx context.Context) ([]dto.PublicClientDTO, error)
	GetClients(ctx context.Context) ([]dto.ClientDTO, error)
	CreateClient(ctx context.Context, payload dto.CreateClientDTO) (uint64, error)
	UpdateClient(ctx context.Context, payload dto.UpdateClientDTO) error
	DeleteClient(ctx context.Context, id uint64) error
}

type clientRepository struct{ storage *pgxpool.Pool }

func NewClientRepository(storage *pgxpool.Pool) ClientRepositoryInterface {
	return &clientRepository{storage: storage}
}

// GetPublicClients отдаёт только видимые записи и только публичные поля.
func (r *clientRepository) GetPublicClients(ctx context.Context) ([]dto.PublicClientDTO, error) {
	query, args, err := qb.
		Select("id", "name", "logo_url", "display_order").
		From(clientTable).
		Where(sq.Eq{"is_visible": true}).
		OrderBy("display_order ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]dto.PublicClientDTO, 0)
	for rows.Next() {
		var c dto.PublicClientDTO
		if err := rows.Scan(&c.ID, &c.Name, &c.LogoURL, &c.DisplayOrder); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *clientRepository) GetClients(ctx context.Context) ([]dto.ClientDTO, error) {
	query, args, err := qb.
		Select(clientColumns...).
		From(clientTable).
		OrderBy("display_order ASC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]dto.ClientDTO, 0)
	for rows.Next() {
		var dbRow dbClient
		if err := rows.Scan(&dbRow.ID, &dbRow.Name, &dbRow.LogoURL, &dbRow.DisplayOrder, &dbRow.IsVisible, &dbRow.CreatedAt, &dbRow.UpdatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, dbRow.ToDTO())
	}
	return clients, rows.Err()
}

func (r *clientRepository) CreateClient(ctx context.Context, payload dto.CreateClientDTO) (uint64, error) {
	isVisible := true
	if payload.IsVisible != nil {
		isVisible = *payload.IsVisible
	}

	query, args, err := qb.
		Insert(clientTable).
		Columns("name", "logo_url", "display_order", "is_visible").
		Values(payload.Name, payload.LogoURL, payload.DisplayOrder, isVisible).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var newID uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		return 0, err
	}
	return newID, nil
}

// UpdateClient обновляет только присланные поля, остальные сохраняют значения.
func (r *clientRepository) UpdateClient(ctx context.Context, payload dto.UpdateClientDTO) error {
	builder := qb.Update(clientTable)
	if payload.Name.Valid {
		builder = builder.Set("name", payload.Name.String)
	}
	if payload.LogoURL.Valid {
		builder = builder.Set("logo_url", payload.LogoURL.String)
	}
	if payload.DisplayOrder.Valid {
		builder = builder.Set("display_order", payload.DisplayOrder.Int)
	}
	if payload.IsVisible.Valid {
		builder = builder.Set("is_visible", payload.IsVisible.Bool)
	}
	builder = builder.Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	query, args, err := builder.
		Where(sq.Eq{"id": payload.ID}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}

	var id uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *clientRepository) DeleteClient(ctx context.Context, id uint64) error {
	query, args, err := qb.Delete(clientTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
