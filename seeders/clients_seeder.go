package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedClients(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'clients'...")
	query := `INSERT INTO clients (name, logo_url, display_order) VALUES ($1, $2, $3) ON CONFLICT (name) DO UPDATE SET logo_url = EXCLUDED.logo_url, display_order = EXCLUDED.display_order;`
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	for _, s := range clientsData {
		if _, err := tx.Exec(ctx, query, s.Name, s.LogoURL, s.DisplayOrder); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
