package main

import (
	"flag"
	"log"

	"inventory-system/pkg/config"
	"inventory-system/pkg/database/postgresql"
	"inventory-system/seeders"
)

func main() {
	log.Println("======================================")
	log.Println("   🌱 Sembrado de la base de datos")
	log.Println("======================================")

	runAdmin := flag.Bool("admin", false, "Crear el usuario administrador")
	runCatalog := flag.Bool("catalog", false, "Cargar el catálogo de demostración")
	runAll := flag.Bool("all", false, "Ejecutar todos los sembradores")
	flag.Parse()

	if !*runAdmin && !*runCatalog && !*runAll {
		log.Println("❌ No se eligió ningún sembrador.")
		log.Println("   Uso: seed -admin | -catalog | -all")
		return
	}

	cfg := config.New()
	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	if *runAdmin || *runAll {
		seeders.SeedAdmin(db)
	}
	if *runCatalog || *runAll {
		seeders.SeedDemoCatalog(db)
	}

	log.Println("✅ Sembrado terminado.")
}
