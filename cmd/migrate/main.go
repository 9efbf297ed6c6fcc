package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"inventory-system/pkg/config"
)

func main() {
	command := flag.String("command", "up", "comando de goose: up, down, status, version")
	dir := flag.String("dir", "migrations", "directorio con los archivos de migración")
	flag.Parse()

	cfg := config.New()

	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("❌ No se pudo abrir la conexión a PostgreSQL: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("❌ Dialecto inválido: %v", err)
	}

	if err := goose.Run(*command, db, *dir); err != nil {
		log.Fatalf("❌ Error ejecutando goose %s: %v", *command, err)
	}

	log.Printf("✅ Migraciones: comando %q ejecutado correctamente", *command)
}
