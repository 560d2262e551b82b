package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func InitDB() (*sql.DB, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS usuarios (
			id CHAR(24) PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			nome VARCHAR(255) NOT NULL,
			sobrenome VARCHAR(255) NOT NULL DEFAULT '',
			senha_hash VARCHAR(255) NOT NULL,
			totp_secret VARCHAR(255) NOT NULL DEFAULT '',
			totp_enabled BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS categorias (
			id CHAR(24) PRIMARY KEY,
			nome VARCHAR(255) NOT NULL,
			descricao TEXT NOT NULL DEFAULT '',
			usuario_id CHAR(24) NOT NULL REFERENCES usuarios(id)
		)`,

		// categoria_id is a soft reference with '' meaning "no category";
		// categoria_nome is the denormalized copy the rename cascade keeps
		// in sync. No FK on purpose.
		`CREATE TABLE IF NOT EXISTS receitas (
			id CHAR(24) PRIMARY KEY,
			data VARCHAR(10) NOT NULL,
			valor DOUBLE PRECISION NOT NULL,
			descricao TEXT NOT NULL DEFAULT '',
			usuario_id CHAR(24) NOT NULL REFERENCES usuarios(id),
			categoria_id VARCHAR(24) NOT NULL DEFAULT '',
			categoria_nome VARCHAR(255) NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS despesas (
			id CHAR(24) PRIMARY KEY,
			data VARCHAR(10) NOT NULL,
			valor DOUBLE PRECISION NOT NULL,
			descricao TEXT NOT NULL DEFAULT '',
			usuario_id CHAR(24) NOT NULL REFERENCES usuarios(id),
			categoria_id VARCHAR(24) NOT NULL DEFAULT '',
			categoria_nome VARCHAR(255) NOT NULL DEFAULT ''
		)`,

		`CREATE INDEX IF NOT EXISTS idx_categorias_usuario_id ON categorias(usuario_id)`,
		`CREATE INDEX IF NOT EXISTS idx_receitas_usuario_data ON receitas(usuario_id, data)`,
		`CREATE INDEX IF NOT EXISTS idx_receitas_usuario_categoria ON receitas(usuario_id, categoria_id)`,
		`CREATE INDEX IF NOT EXISTS idx_despesas_usuario_data ON despesas(usuario_id, data)`,
		`CREATE INDEX IF NOT EXISTS idx_despesas_usuario_categoria ON despesas(usuario_id, categoria_id)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
