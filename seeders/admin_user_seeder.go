package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	email := "admin@hospital.local"

	var userID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	if err == nil {
		log.Println("  - El administrador ya existe. Se omite.")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("error verificando el administrador: %w", err)
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("  - ADMIN_PASSWORD no definida; se usa la contraseña por defecto.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error generando el hash de la contraseña: %w", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO users (nombre, email, password_hash, rol, estado, permisos)
		VALUES ($1, $2, $3, 'admin', 'activo', '{}')`,
		"Administrador", email, string(hash),
	)
	if err != nil {
		return fmt.Errorf("error insertando el administrador: %w", err)
	}

	log.Printf("  - Administrador creado: %s", email)
	return nil
}
