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

const portfolioTable = "portfolio"

var portfolioColumns = []string{"id", "title", "description", "image_url", "display_order", "is_visible", "created_at", "updated_at"}

type dbPortfolioItem struct {
	ID           uint64
	Title        string
	Description  sql.NullString
	ImageURL     string
	DisplayOrder int
	IsVisible    bool
	CreatedAt    time.Time
	UpdatedAt    sql.NullTime
}

func (db *dbPortfolioItem) ToDTO() dto.PortfolioItemDTO {
	return dto.PortfolioItemDTO{
		ID:           db.ID,
		Title:        db.Title,
		Description:  db.Description.String,
		ImageURL:     db.ImageURL,
		DisplayOrder: db.DisplayOrder,
		IsVisible:    db.IsVisible,
		CreatedAt:    timeToISO(db.CreatedAt),
		UpdatedAt:    nullTimeToISO(db.UpdatedAt),
	}
}

type PortfolioRepositoryInterface interface {
	GetPublicPortfolio(ctx context.Context) ([]dto.PublicPortfolioItemDTO, error)
	GetPortfolio(ctx context.Context) ([]dto.PortfolioItemDTO, error)
	CreatePortfolioItem(ctx context.Context, payload dto.CreatePortfolioItemDTO) (uint64, error)
	UpdatePortfolioItem(ctx context.Context, payload dto.UpdatePortfolioItemDTO) error
	DeletePortfolioItem(ctx context.Context, id uint64) error
}

type portfolioRepository struct{ storage *pgxpool.Pool }

func NewPortfolioRepository(storage *pgxpool.Pool) PortfolioRepositoryInterface {
	return &portfolioRepository{storage: storage}
}

// GetPublicPortfolio отдаёт видимые работы для витрины сайта.
func (r *portfolioRepository) GetPublicPortfolio(ctx context.Context) ([]dto.PublicPortfolioItemDTO, error) {
	query, args, err := qb.
		Select("id", "title", "description", "image_url", "display_order", "is_visible", "created_at").
		From(portfolioTable).
		Where(sq.Eq{"is_visible": true}).
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

	items := make([]dto.PublicPortfolioItemDTO, 0)
	for rows.Next() {
		var dbRow dbPortfolioItem
		if err := rows.Scan(&dbRow.ID, &dbRow.Title, &dbRow.Description, &dbRow.ImageURL, &dbRow.DisplayOrder, &dbRow.IsVisible, &dbRow.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, dto.PublicPortfolioItemDTO{
			ID:           dbRow.ID,
			Title:        dbRow.Title,
			Description:  dbRow.Description.String,
			ImageURL:     dbRow.ImageURL,
			DisplayOrder: dbRow.DisplayOrder,
			IsVisible:    dbRow.IsVisible,
			CreatedAt:    timeToISO(dbRow.CreatedAt),
		})
	}
	return items, rows.Err()
}

func (r *portfolioRepository) GetPortfolio(ctx context.Context) ([]dto.PortfolioItemDTO, error) {
	query, args, err := qb.
		Select(portfolioColumns...).
		From(portfolioTable).
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

	items := make([]dto.PortfolioItemDTO, 0)
	for rows.Next() {
		var dbRow dbPortfolioItem
		if err := rows.Scan(&dbRow.ID, &dbRow.Title, &dbRow.Description, &dbRow.ImageURL, &dbRow.DisplayOrder, &dbRow.IsVisible, &dbRow.CreatedAt, &dbRow.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, dbRow.ToDTO())
	}
	return items, rows.Err()
}

func (r *portfolioRepository) CreatePortfolioItem(ctx context.Context, payload dto.CreatePortfolioItemDTO) (uint64, error) {
	isVisible := true
	if payload.IsVisible != nil {
		isVisible = *payload.IsVisible
	}

	query, args, err := qb.
		Insert(portfolioTable).
		Columns("title", "description", "image_url", "display_order", "is_visible").
		Values(payload.Title, payload.Description, payload.ImageURL, payload.DisplayOrder, isVisible).
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

func (r *portfolioRepository) UpdatePortfolioItem(ctx context.Context, payload dto.UpdatePortfolioItemDTO) error {
	builder := qb.Update(portfolioTable)
	if payload.Title.Valid {
		builder = builder.Set("title", payload.Title.String)
	}
	if payload.Description.Valid {
		builder = builder.Set("description", payload.Description.String)
	}
	if payload.ImageURL.Valid {
		builder = builder.Set("image_url", payload.ImageURL.String)
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

func (r *portfolioRepository) DeletePortfolioItem(ctx context.Context, id uint64) error {
	query, args, err := qb.Delete(portfolioTable).Where(sq.Eq{"id": id}).ToSql()
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
