package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedAdmin crea el usuario administrador inicial si no existe.
func SeedAdmin(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Creando usuario administrador...")

	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("❌ Error creando el administrador: %v", err)
	}
	log.Println("✅ Administrador listo.")
}

// SeedDemoCatalog llena el catálogo de demostración: ubicaciones, responsables
// y equipos de ejemplo.
func SeedDemoCatalog(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Cargando catálogo de demostración...")

	if err := seedLocations(ctx, db); err != nil {
		log.Fatalf("❌ Error cargando ubicaciones: %v", err)
	}
	if err := seedResponsibles(ctx, db); err != nil {
		log.Fatalf("❌ Error cargando responsables: %v", err)
	}
	if err := seedEquipment(ctx, db); err != nil {
		log.Fatalf("❌ Error cargando equipos: %v", err)
	}
	log.Println("✅ Catálogo de demostración cargado.")
}
