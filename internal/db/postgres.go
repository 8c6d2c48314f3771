package db

import (
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

var DB *sqlx.DB

// DSNFromEnv builds the postgres DSN from the REFORESTA_DB_* environment.
// Both the sqlx and the GORM connection use it.
func DSNFromEnv() string {
	host := envOr("REFORESTA_DB_HOST", "localhost")
	port := envOr("REFORESTA_DB_PORT", "5432")
	user := os.Getenv("REFORESTA_DB_USER")
	password := os.Getenv("REFORESTA_DB_PASSWORD")
	name := os.Getenv("REFORESTA_DB_NAME")

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
}

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// InitPostgres opens the sqlx connection, retrying while the database
// container comes up.
func InitPostgres() error {
	dsn := DSNFromEnv()

	var err error
	for i := 0; i < 10; i++ {
		DB, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return err
}
