package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedPortfolio(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'portfolio'...")
	query := `INSERT INTO portfolio (title, description, image_url, display_order) VALUES ($1, $2, $3, $4) ON CONFLICT (title) DO UPDATE SET description = EXCLUDED.description, image_url = EXCLUDED.image_url, display_order = EXCLUDED.display_order;`
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	for _, s := range portfolioData {
		if _, err := tx.Exec(ctx, query, s.Title, s.Description, s.ImageURL, s.DisplayOrder); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
