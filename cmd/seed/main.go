package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tair/storefront/internal/config"
	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/internal/repository"
	"github.com/tair/storefront/internal/seed"
	"github.com/tair/storefront/internal/storefront"
	"github.com/tair/storefront/pkg/database"
	"github.com/tair/storefront/pkg/logger"
)

var seedCfg = seed.DefaultConfig()

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the storefront database contents with demo data",
	Long: `Seed deletes every row of the storefront database and inserts fake users,
categories, products with images, customer orders and wishlist items.

Examples:
  seed                                 # default volume
  seed --products 200 --orders 100     # larger catalog
  seed --seed 42                       # reproducible run`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().IntVar(&seedCfg.Users, "users", seedCfg.Users, "Number of regular users besides the admin")
	rootCmd.Flags().IntVar(&seedCfg.Products, "products", seedCfg.Products, "Number of products")
	rootCmd.Flags().IntVar(&seedCfg.Orders, "orders", seedCfg.Orders, "Number of customer orders")
	rootCmd.Flags().IntVar(&seedCfg.Wishlists, "wishlists", seedCfg.Wishlists, "Number of wishlist items")
	rootCmd.Flags().Uint64Var(&seedCfg.Seed, "seed", 0, "Random seed, 0 for a random run")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(logger.Options{
		Service:     cfg.ServiceName + "-seed",
		Development: cfg.IsDevelopment(),
		Level:       cfg.LogLevel,
	})

	db, err := database.NewGormConnection(cfg.Database())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Logger.Error().Err(err).Msg("Database close failed")
		}
		logger.Logger.Info().Msg("Database connection closed")
	}()

	if err := repository.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	generator, err := storefront.InitializeGenerator(db, domain.NopPublisher{})
	if err != nil {
		return err
	}

	summary, err := generator.Run(ctx, seedCfg)
	if err != nil {
		return err
	}

	logger.Logger.Info().
		Int("users", summary.Users).
		Int("categories", summary.Categories).
		Int("products", summary.Products).
		Int("images", summary.Images).
		Int("orders", summary.Orders).
		Int("order_lines", summary.OrderLines).
		Int("wishlists", summary.Wishlists).
		Msg("All demo data inserted successfully")
	return nil
}
