// Package seed fills an empty storefront with demo data.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/internal/repository"
	"github.com/tair/storefront/internal/usecase/command"
	"github.com/tair/storefront/pkg/apperr"
	"github.com/tair/storefront/pkg/logger"
)

// Admin account created on every run
const (
	AdminEmail    = "admin@example.com"
	AdminPassword = "admin123"
	UserPassword  = "password123"
)

// Categories is the fixed demo category list
var Categories = []string{
	"speakers", "trimmers", "laptops", "watches", "headphones",
	"juicers", "earbuds", "tablet-keyboards", "phone-gimbals",
	"mixer-grinders", "cameras", "smart-phones", "gaming", "televisions", "home-appliances",
}

// Manufacturers is the fixed demo manufacturer list
var Manufacturers = []string{
	"Samsung", "Apple", "Sony", "LG", "Bosch", "Canon", "Nikon",
	"HP", "Dell", "Lenovo", "Asus", "Acer", "Microsoft", "Philips",
	"Panasonic", "ZunVolt", "SOWO", "Gillete",
}

const (
	slugSuffixChars   = "abcdefghijklmnopqrstuvwxyz0123456789"
	slugSuffixLength  = 5
	maxImages         = 4
	maxOrderLines     = 5
	maxLineQuantity   = 3
	minPrice          = 10
	maxPrice          = 1000
	maxStock          = 100
	maxUniqueAttempts = 100
)

// Config sets how many rows of each kind a run creates
type Config struct {
	Users     int
	Products  int
	Orders    int
	Wishlists int
	// Seed makes a run reproducible; 0 picks a random seed
	Seed uint64
}

// DefaultConfig returns the standard demo data volume
func DefaultConfig() Config {
	return Config{Users: 10, Products: 50, Orders: 20, Wishlists: 15}
}

// Validate rejects counts the generator cannot satisfy
func (c Config) Validate() error {
	if c.Users < 0 || c.Products < 0 || c.Orders < 0 || c.Wishlists < 0 {
		return apperr.Validationf("counts cannot be negative")
	}
	if c.Orders > 0 && c.Products == 0 {
		return apperr.Validationf("orders need at least one product")
	}
	return nil
}

// Summary counts the rows a run created
type Summary struct {
	Purged     []repository.PurgeResult
	Users      int
	Categories int
	Products   int
	Images     int
	Orders     int
	OrderLines int
	Wishlists  int
}

// Builder assembles the purger and command handlers on top of tx
type Builder func(tx *gorm.DB) (*repository.Purger, *command.Handlers)

// Generator replaces the storefront contents with fake data. Every row is
// created through the command handlers, so the usual validation applies.
type Generator struct {
	db    *gorm.DB
	build Builder
}

// NewGenerator creates a new generator
func NewGenerator(db *gorm.DB, build Builder) *Generator {
	return &Generator{db: db, build: build}
}

// run holds the state of one Run
type run struct {
	purger   *repository.Purger
	commands *command.Handlers
	cfg      Config
	faker *gofakeit.Faker

	users      []*domain.User
	categories []*domain.Category
	products   []*domain.Product
	summary    Summary
}

// Run purges every table and generates new data in a single transaction.
// Steps run in sequence and the first failure rolls the whole run back,
// leaving the previous contents in place.
func (g *Generator) Run(ctx context.Context, cfg Config) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	logger.WithContext(ctx).Info().
		Int("users", cfg.Users).
		Int("products", cfg.Products).
		Int("orders", cfg.Orders).
		Int("wishlists", cfg.Wishlists).
		Msg("Starting demo data generation")

	var r *run
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		purger, commands := g.build(tx)
		r = &run{purger: purger, commands: commands, cfg: cfg, faker: gofakeit.New(cfg.Seed)}
		for _, step := range r.steps() {
			if err := step.fn(ctx); err != nil {
				logger.WithContext(ctx).Error().Err(err).Str("step", step.name).Msg("Demo data generation failed, rolling back")
				return fmt.Errorf("seed %s: %w", step.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).Info().
		Dur("duration", time.Since(start)).
		Msg("Demo data inserted successfully")
	return &r.summary, nil
}

type step struct {
	name string
	fn   func(context.Context) error
}

func (r *run) steps() []step {
	return []step{
		{"purge", r.purge},
		{"users", r.generateUsers},
		{"categories", r.generateCategories},
		{"products", r.generateProducts},
		{"orders", r.generateOrders},
		{"wishlists", r.generateWishlists},
	}
}

func (r *run) purge(ctx context.Context) error {
	purged, err := r.purger.PurgeAll(ctx)
	if err != nil {
		return err
	}
	r.summary.Purged = purged
	return nil
}

func (r *run) generateUsers(ctx context.Context) error {
	admin, err := r.commands.CreateUser.Handle(ctx, command.CreateUserCommand{
		Email:    AdminEmail,
		Password: AdminPassword,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		return err
	}

	used := map[string]bool{AdminEmail: true}
	for i := 0; i < r.cfg.Users; i++ {
		email, err := r.unique(used, func() string { return strings.ToLower(r.faker.Email()) })
		if err != nil {
			return err
		}
		user, err := r.commands.CreateUser.Handle(ctx, command.CreateUserCommand{
			Email:    email,
			Password: UserPassword,
			Role:     domain.RoleUser,
		})
		if err != nil {
			return err
		}
		r.users = append(r.users, user)
	}

	r.summary.Users = len(r.users) + 1
	logger.WithContext(ctx).Info().Str("admin_id", admin.ID).Int("count", r.summary.Users).Msg("Users created")
	return nil
}

func (r *run) generateCategories(ctx context.Context) error {
	for _, name := range Categories {
		category, err := r.commands.CreateCategory.Handle(ctx, command.CreateCategoryCommand{Name: name})
		if err != nil {
			return err
		}
		r.categories = append(r.categories, category)
	}

	r.summary.Categories = len(r.categories)
	logger.WithContext(ctx).Info().Int("count", r.summary.Categories).Msg("Categories created")
	return nil
}

func (r *run) generateProducts(ctx context.Context) error {
	used := make(map[string]bool, r.cfg.Products)
	for i := 0; i < r.cfg.Products; i++ {
		title := r.faker.ProductName()
		productSlug, err := r.unique(used, func() string {
			return slug.Make(title) + "-" + r.slugSuffix()
		})
		if err != nil {
			return err
		}

		images := make([]string, r.faker.IntRange(0, maxImages))
		for j := range images {
			images[j] = fmt.Sprintf("%s-image-%d.webp", productSlug, j+1)
		}

		category := r.categories[r.faker.IntN(len(r.categories))]
		product, err := r.commands.CreateProduct.Handle(ctx, command.CreateProductCommand{
			Title:        title,
			Slug:         productSlug,
			Price:        decimal.NewFromInt(int64(r.faker.IntRange(minPrice, maxPrice))),
			Manufacturer: r.faker.RandomString(Manufacturers),
			Description:  r.faker.ProductDescription(),
			MainImage:    fmt.Sprintf("product%d.webp", i+1),
			InStock:      r.faker.IntRange(0, maxStock),
			Rating:       r.faker.IntRange(1, domain.MaxRating),
			CategoryID:   category.ID,
			Images:       images,
		})
		if err != nil {
			return err
		}
		r.products = append(r.products, product)
		r.summary.Images += len(images)
	}

	r.summary.Products = len(r.products)
	logger.WithContext(ctx).Info().
		Int("count", r.summary.Products).
		Int("images", r.summary.Images).
		Msg("Products created")
	return nil
}

func (r *run) generateOrders(ctx context.Context) error {
	for i := 0; i < r.cfg.Orders; i++ {
		picks := r.sample(len(r.products), r.faker.IntRange(1, min(maxOrderLines, len(r.products))))
		lines := make([]domain.OrderLine, 0, len(picks))
		for _, idx := range picks {
			lines = append(lines, domain.OrderLine{
				ProductID: r.products[idx].ID,
				Quantity:  r.faker.IntRange(1, maxLineQuantity),
			})
		}

		var notice *string
		if r.faker.Bool() {
			s := r.faker.Sentence(8)
			notice = &s
		}

		_, err := r.commands.CreateOrder.Handle(ctx, command.CreateOrderCommand{
			Contact: command.Contact{
				Name:        r.faker.FirstName(),
				Lastname:    r.faker.LastName(),
				Phone:       r.faker.Phone(),
				Email:       r.faker.Email(),
				Company:     r.faker.Company(),
				Address:     r.faker.Street(),
				Apartment:   fmt.Sprintf("Apt. %d", r.faker.IntRange(1, 999)),
				PostalCode:  r.faker.Zip(),
				City:        r.faker.City(),
				Country:     r.faker.Country(),
				OrderNotice: notice,
			},
			Status: string(domain.OrderStatuses[r.faker.IntN(len(domain.OrderStatuses))]),
			Lines:  lines,
		})
		if err != nil {
			return err
		}
		r.summary.Orders++
		r.summary.OrderLines += len(lines)
	}

	logger.WithContext(ctx).Info().
		Int("count", r.summary.Orders).
		Int("lines", r.summary.OrderLines).
		Msg("Customer orders created")
	return nil
}

// generateWishlists pairs regular users with products. Pairs are drawn
// without replacement, so the count is capped at users x products.
func (r *run) generateWishlists(ctx context.Context) error {
	pairs := len(r.users) * len(r.products)
	want := min(r.cfg.Wishlists, pairs)
	if want < r.cfg.Wishlists {
		logger.WithContext(ctx).Warn().
			Int("requested", r.cfg.Wishlists).
			Int("available", pairs).
			Msg("Wishlist count capped to distinct user/product pairs")
	}

	for _, idx := range r.sample(pairs, want) {
		user := r.users[idx/len(r.products)]
		product := r.products[idx%len(r.products)]
		if _, err := r.commands.AddWishlistItem.Handle(ctx, command.AddWishlistItemCommand{
			UserID:    user.ID,
			ProductID: product.ID,
		}); err != nil {
			return err
		}
		r.summary.Wishlists++
	}

	logger.WithContext(ctx).Info().Int("count", r.summary.Wishlists).Msg("Wishlist items created")
	return nil
}

// sample draws k distinct indexes from [0, n) with a partial Fisher-Yates
// shuffle over a sparse swap table
func (r *run) sample(n, k int) []int {
	swapped := make(map[int]int, k)
	at := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}

	out := make([]int, k)
	for i := 0; i < k; i++ {
		j := r.faker.IntRange(i, n-1)
		out[i] = at(j)
		swapped[j] = at(i)
	}
	return out
}

func (r *run) slugSuffix() string {
	b := make([]byte, slugSuffixLength)
	for i := range b {
		b[i] = slugSuffixChars[r.faker.IntN(len(slugSuffixChars))]
	}
	return string(b)
}

// unique draws from next until it returns a value not in used
func (r *run) unique(used map[string]bool, next func() string) (string, error) {
	for attempt := 0; attempt < maxUniqueAttempts; attempt++ {
		v := next()
		if !used[v] {
			used[v] = true
			return v, nil
		}
	}
	return "", apperr.Conflictf("could not draw a unique value after %d attempts", maxUniqueAttempts)
}
