package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/cryptofolio/wallet-api/config"
	"github.com/cryptofolio/wallet-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET updated_at = now()
		RETURNING id
	`, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	wallets := []struct {
		chain   string
		address string
		tag     string
	}{
		{"Ethereum", "0x742d35Cc6634C0532925a3b844Bc454e4438f44e", "main"},
		{"Bitcoin", "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh", "cold storage"},
	}
	for _, w := range wallets {
		if _, err := db.Exec(`
			INSERT INTO wallets (user_id, chain, address, tag)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (address) DO NOTHING
		`, id, w.chain, w.address, w.tag); err != nil {
			log.Fatalf("failed to seed wallet %s: %v", w.address, err)
		}
		fmt.Printf("seeded wallet: chain=%s address=%s\n", w.chain, w.address)
	}
}
