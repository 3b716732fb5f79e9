package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		logo_url TEXT NOT NULL,
		display_order INT NOT NULL DEFAULT 0,
		is_visible BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ
	);`,
	`CREATE TABLE IF NOT EXISTS portfolio (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL UNIQUE,
		description TEXT,
		image_url TEXT NOT NULL,
		display_order INT NOT NULL DEFAULT 0,
		is_visible BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ
	);`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		customer_type TEXT NOT NULL DEFAULT 'individual',
		company_name TEXT,
		inn TEXT,
		email TEXT NOT NULL,
		phone TEXT,
		length DOUBLE PRECISION,
		width DOUBLE PRECISION,
		height DOUBLE PRECISION,
		plastic_type TEXT,
		color TEXT,
		infill INT,
		quantity INT NOT NULL DEFAULT 1,
		description TEXT,
		file_url TEXT,
		file_name TEXT,
		status TEXT NOT NULL DEFAULT 'new',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ
	);`,
}

// SeedSchema создаёт таблицы сайта, если их ещё нет.
func SeedSchema(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Создание схемы...")

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			log.Fatalf("❌ Ошибка создания схемы: %v", err)
		}
	}
	log.Println("✅ Схема готова!")
}

// SeedDemoContent наполняет витрину демо-данными: логотипы клиентов и работы
// портфолио. Повторный запуск безопасен.
func SeedDemoContent(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения демо-контента...")

	if err := seedClients(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Клиентов (Clients): %v", err)
	}
	if err := seedPortfolio(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Портфолио (Portfolio): %v", err)
	}
	log.Println("✅ Наполнение демо-контента завершено!")
}
