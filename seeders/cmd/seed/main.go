package main

import (
	"flag"
	"log"

	"print3d-backend/pkg/config"
	"print3d-backend/pkg/database/postgresql"
	"print3d-backend/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runSchema := flag.Bool("schema", false, "Создать таблицы сайта (clients, portfolio, orders)")
	runDemo := flag.Bool("demo", false, "Наполнить витрину демо-контентом")
	runAll := flag.Bool("all", false, "Запустить все сидеры (эквивалентно -schema -demo)")

	flag.Parse()

	if !*runSchema && !*runDemo && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed/main.go -schema")
		log.Println("  go run ./seeders/cmd/seed/main.go -schema -demo")
		log.Println("  go run ./seeders/cmd/seed/main.go -all")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	log.Println("======================================================")

	if *runAll || *runSchema {
		seeders.SeedSchema(dbPool)
		log.Println("======================================================")
	}

	if *runAll || *runDemo {
		seeders.SeedDemoContent(dbPool)
		log.Println("======================================================")
	}

	log.Println("✅ Все указанные операции сидирования успешно завершены.")
	log.Println("======================================================")
}
