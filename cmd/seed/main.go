package main

import (
	"context"
	"flag"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"bookshelf/internal/book"
	"bookshelf/internal/config"
	"bookshelf/internal/platform/database"
	"bookshelf/internal/platform/logging"
)

type seedBook struct {
	title, author, notes string
}

var demoBooks = []seedBook{
	{"Dune", "Frank Herbert", "Desert planet, spice, politics."},
	{"Emma", "Jane Austen", ""},
	{"The Left Hand of Darkness", "Ursula K. Le Guin", "Reread the Gethen chapters."},
	{"Invisible Cities", "Italo Calvino", ""},
	{"The Name of the Rose", "Umberto Eco", "Start with the appendix on the library."},
}

func main() {
	count := flag.Int("count", len(demoBooks), "Number of demo books to insert (cycles through the list)")
	flag.Parse()
	if err := validateCount(*count); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	config.LoadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := database.Open(ctx, cfg.DatabaseDSN, 1)
	if err != nil {
		logger.Error("cannot open database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := book.NewPostgresRepo(pool, cfg.QueryTimeout, logger)
	inserted, err := seed(ctx, repo, *count, logger)
	if err != nil {
		logger.Error("seed failed", "inserted", inserted, "error", err)
		pool.Close()
		os.Exit(1)
	}
	logger.Info("seed complete", "inserted", inserted)
}

type creator interface {
	Create(ctx context.Context, title, author, notes string) error
}

func validateCount(n int) error {
	if n < 1 {
		return errors.New("-count must be at least 1")
	}
	return nil
}

func seed(ctx context.Context, repo creator, count int, logger *slog.Logger) (int, error) {
	for i := 0; i < count; i++ {
		b := demoBooks[i%len(demoBooks)]
		title := b.title
		if i >= len(demoBooks) {
			title = fmt.Sprintf("%s (copy %d)", b.title, i/len(demoBooks)+1)
		}
		if err := repo.Create(ctx, title, b.author, b.notes); err != nil {
			return i, err
		}
	}
	logger.Debug("seeded demo books", "count", count)
	return count, nil
}
