package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"print3d-backend/internal/dto"
	apperrors "print3d-backend/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderTable = "orders"

var orderColumns = []string{
	"id", "customer_type", "company_name", "inn", "email", "phone",
	"length", "width", "height", "plastic_type", "color", "infill",
	"quantity", "description", "file_url", "file_name", "status",
	"created_at", "updated_at",
}

type dbOrder struct {
	ID           uint64
	CustomerType string
	CompanyName  null.String
	INN          null.String
	Email        string
	Phone        null.String
	Length       null.Float64
	Width        null.Float64
	Height       null.Float64
	PlasticType  null.String
	Color        null.String
	Infill       null.Int
	Quantity     int
	Description  null.String
	FileURL      null.String
	FileName     null.String
	Status       string
	CreatedAt    time.Time
	UpdatedAt    sql.NullTime
}

func (db *dbOrder) ToDTO() dto.OrderDTO {
	return dto.OrderDTO{
		ID:           db.ID,
		CustomerType: db.CustomerType,
		CompanyName:  db.CompanyName,
		INN:          db.INN,
		Email:        db.Email,
		Phone:        db.Phone,
		Length:       db.Length,
		Width:        db.Width,
		Height:       db.Height,
		PlasticType:  db.PlasticType,
		Color:        db.Color,
		Infill:       db.Infill,
		Quantity:     db.Quantity,
		Description:  db.Description,
		FileURL:      db.FileURL,
		FileName:     db.FileName,
		Status:       db.Status,
		CreatedAt:    timeToISO(db.CreatedAt),
		UpdatedAt:    nullTimeToISO(db.UpdatedAt),
	}
}

type OrderRepositoryInterface interface {
	GetOrders(ctx context.Context) ([]dto.OrderDTO, error)
	UpdateOrderStatus(ctx context.Context, orderID uint64, status string) error
}

type orderRepository struct{ storage *pgxpool.Pool }

func NewOrderRepository(storage *pgxpool.Pool) OrderRepositoryInterface {
	return &orderRepository{storage: storage}
}

func (r *orderRepository) GetOrders(ctx context.Context) ([]dto.OrderDTO, error) {
	query, args, err := qb.
		Select(orderColumns...).
		From(orderTable).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]dto.OrderDTO, 0)
	for rows.Next() {
		var dbRow dbOrder
		if err := rows.Scan(
			&dbRow.ID, &dbRow.CustomerType, &dbRow.CompanyName, &dbRow.INN, &dbRow.Email, &dbRow.Phone,
			&dbRow.Length, &dbRow.Width, &dbRow.Height, &dbRow.PlasticType, &dbRow.Color, &dbRow.Infill,
			&dbRow.Quantity, &dbRow.Description, &dbRow.FileURL, &dbRow.FileName, &dbRow.Status,
			&dbRow.CreatedAt, &dbRow.UpdatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, dbRow.ToDTO())
	}
	return orders, rows.Err()
}

// UpdateOrderStatus меняет только статус и updated_at, остальные колонки не трогает.
func (r *orderRepository) UpdateOrderStatus(ctx context.Context, orderID uint64, status string) error {
	query, args, err := qb.
		Update(orderTable).
		Set("status", status).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": orderID}).
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
