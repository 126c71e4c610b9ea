package main

import (
	"bookshelf/internal/config"
)

func dsn() string {
	return config.GetEnv("DB_DSN", config.DefaultDSN)
}

func migrationsDir() string {
	return config.GetEnv("MIGRATIONS_DIR", "db/migrations")
}

func logSettings() (level, format string) {
	return config.GetEnv("LOG_LEVEL", "info"), config.GetEnv("LOG_FORMAT", "text")
}
