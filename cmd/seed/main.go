// Bootstraps the foods table and loads the sample menu. Safe to run more
// than once: rows are only inserted into an empty table.
package main

import (
	"context"
	"fmt"
	"os"

	"foodiehaven/internal/config"
	"foodiehaven/internal/logging"
	"foodiehaven/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

const createTable = `
CREATE TABLE IF NOT EXISTS foods (
	id SERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	category VARCHAR(100) NOT NULL,
	price DECIMAL(10, 2) NOT NULL,
	description TEXT,
	image VARCHAR(500) DEFAULT '🍽️',
	in_stock BOOLEAN DEFAULT true,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

var sampleFoods = []model.Food{
	{Name: "Margherita Pizza", Category: "Italian", Price: 12.99, Description: "Classic pizza with tomato and mozzarella", Image: "🍕", InStock: true},
	{Name: "Cheeseburger", Category: "American", Price: 9.99, Description: "Juicy beef burger with cheese", Image: "🍔", InStock: true},
	{Name: "Caesar Salad", Category: "Salads", Price: 7.99, Description: "Fresh romaine with Caesar dressing", Image: "🥗", InStock: true},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	dbPool, err := pgxpool.New(ctx, cfg.DatabaseURL())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	if _, err := dbPool.Exec(ctx, createTable); err != nil {
		logger.Fatal().Err(err).Msg("failed to create foods table")
	}
	logger.Info().Msg("foods table ready")

	var count int
	if err := dbPool.QueryRow(ctx, "SELECT COUNT(*) FROM foods").Scan(&count); err != nil {
		logger.Fatal().Err(err).Msg("failed to count foods")
	}
	if count > 0 {
		logger.Info().Int("rows", count).Msg("table already seeded, skipping")
		return
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, f := range sampleFoods {
		f := f
		g.Go(func() error {
			_, err := dbPool.Exec(ctx,
				"INSERT INTO foods (name, category, price, description, image, in_stock) VALUES ($1, $2, $3, $4, $5, $6)",
				f.Name, f.Category, f.Price, f.Description, f.Image, f.InStock,
			)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed foods")
	}

	logger.Info().Int("rows", len(sampleFoods)).Msg("sample data added")
}
