package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/internal/repository"
	"github.com/tair/storefront/internal/testutil"
	"github.com/tair/storefront/internal/usecase/command"
	"github.com/tair/storefront/internal/usecase/query"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

type failingPinger struct{}

func (failingPinger) PingContext(context.Context) error { return errors.New("connection refused") }

type HandlerSuite struct {
	suite.Suite
	db     *gorm.DB
	reg    *prometheus.Registry
	router *mux.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.db = testutil.NewDB(s.T())
	s.reg = prometheus.NewRegistry()

	users := repository.NewGormUserRepository(s.db)
	categories := repository.NewGormCategoryRepository(s.db)
	products := repository.NewGormProductRepository(s.db)
	orders := repository.NewGormOrderRepository(s.db)
	wishlist := repository.NewGormWishlistRepository(s.db)

	sqlDB, err := s.db.DB()
	s.Require().NoError(err)

	api := NewAPI(
		command.NewHandlers(users, categories, products, orders, wishlist, domain.NopPublisher{}),
		query.NewHandlers(users, categories, products, orders, wishlist),
		NewMetrics(s.reg),
		sqlDB,
	)
	s.router = mux.NewRouter()
	api.RegisterRoutes(s.router)
	RegisterMetrics(s.router, s.reg)
}

func (s *HandlerSuite) do(method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Code != http.StatusNoContent && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func (s *HandlerSuite) decode(env envelope, v any) {
	s.Require().NoError(json.Unmarshal(env.Data, v))
}

func (s *HandlerSuite) createCategory(name string) domain.Category {
	rec, env := s.do("POST", "/api/categories", map[string]any{"name": name})
	s.Require().Equal(http.StatusCreated, rec.Code, env.Error)
	var category domain.Category
	s.decode(env, &category)
	return category
}

func (s *HandlerSuite) createProduct(categoryID, slug, price string, stock int) domain.Product {
	rec, env := s.do("POST", "/api/products", map[string]any{
		"title":        "Product " + slug,
		"slug":         slug,
		"price":        price,
		"manufacturer": "Samsung",
		"description":  "A product",
		"mainImage":    "product1.webp",
		"inStock":      stock,
		"rating":       4,
		"categoryId":   categoryID,
		"images":       []string{slug + "-image-1.webp"},
	})
	s.Require().Equal(http.StatusCreated, rec.Code, env.Error)
	var product domain.Product
	s.decode(env, &product)
	return product
}

func orderBody(lines ...map[string]any) map[string]any {
	return map[string]any{
		"name":       "Ada",
		"lastname":   "Lovelace",
		"phone":      "+44 20 7946 0000",
		"email":      "ada@example.com",
		"company":    "Analytical Engines",
		"address":    "12 St James's Square",
		"apartment":  "1",
		"postalCode": "SW1Y 4JH",
		"city":       "London",
		"country":    "United Kingdom",
		"products":   lines,
	}
}

func line(productID string, quantity int) map[string]any {
	return map[string]any{"productId": productID, "quantity": quantity}
}

func (s *HandlerSuite) TestOrderLifecycle() {
	category := s.createCategory("Electronics")
	s.Equal("electronics", category.Name)

	phone := s.createProduct(category.ID, "smart-phone", "499.99", 5)
	watch := s.createProduct(category.ID, "smart-watch", "15.75", 5)

	rec, env := s.do("POST", "/api/orders", orderBody(line(phone.ID, 2), line(watch.ID, 2)))
	s.Require().Equal(http.StatusCreated, rec.Code, env.Error)
	var order domain.CustomerOrder
	s.decode(env, &order)
	s.True(decimal.RequireFromString("1031.48").Equal(order.Total), order.Total.String())
	s.Equal(domain.OrderStatusProcessing, order.Status)

	rec, env = s.do("GET", "/api/order-product/"+order.ID, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var lines []domain.OrderProduct
	s.decode(env, &lines)
	s.Len(lines, 2)

	rec, env = s.do("DELETE", "/api/products/"+phone.ID, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("constraint_violation", env.Code)
	s.False(env.Success)

	rec, env = s.do("DELETE", "/api/categories/"+category.ID, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("constraint_violation", env.Code)

	rec, _ = s.do("DELETE", "/api/orders/"+order.ID, nil)
	s.Equal(http.StatusNoContent, rec.Code)
	s.Empty(rec.Body.Bytes())

	rec, _ = s.do("DELETE", "/api/products/"+phone.ID, nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec, env = s.do("GET", "/api/products/"+phone.ID, nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("not_found", env.Code)

	rec, _ = s.do("DELETE", "/api/categories/"+category.ID, nil)
	s.Equal(http.StatusNoContent, rec.Code)
	s.Zero(testutil.Count(s.T(), s.db, &domain.Product{}))
	s.Zero(testutil.Count(s.T(), s.db, &domain.Image{}))
}

func (s *HandlerSuite) TestCreateOrderErrors() {
	category := s.createCategory("audio")
	product := s.createProduct(category.ID, "speaker", "10.00", 1)

	rec, env := s.do("POST", "/api/orders", orderBody())
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("validation_failed", env.Code)

	rec, env = s.do("POST", "/api/orders", orderBody(line(product.ID, 0)))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("validation_failed", env.Code)

	rec, env = s.do("POST", "/api/orders", orderBody(line(product.ID, 1), line("missing", 1)))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("not_found", env.Code)
	s.Zero(testutil.Count(s.T(), s.db, &domain.CustomerOrder{}))

	body := orderBody(line(product.ID, 1))
	body["status"] = "lost"
	rec, env = s.do("POST", "/api/orders", body)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("validation_failed", env.Code)
}

func (s *HandlerSuite) TestMalformedBody() {
	req := httptest.NewRequest("POST", "/api/users", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "invalid request body")
}

func (s *HandlerSuite) TestUserEndpoints() {
	rec, env := s.do("POST", "/api/users", map[string]any{"email": "shopper@example.com", "password": "short"})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(env.Error, "at least 8 characters")

	rec, env = s.do("POST", "/api/users", map[string]any{"email": "Shopper@Example.com", "password": "password1"})
	s.Require().Equal(http.StatusCreated, rec.Code, env.Error)
	s.NotContains(string(env.Data), "password")

	rec, env = s.do("POST", "/api/users", map[string]any{"email": "shopper@example.com", "password": "password2"})
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("conflict", env.Code)

	rec, env = s.do("GET", "/api/users/email/shopper@example.com", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var user domain.User
	s.decode(env, &user)
	s.Equal(domain.RoleUser, user.Role)

	rec, _ = s.do("DELETE", "/api/users/"+user.ID, nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec, _ = s.do("DELETE", "/api/users/"+user.ID, nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerSuite) TestProductListing() {
	category := s.createCategory("laptops")
	s.createProduct(category.ID, "thin-book", "900.00", 3)
	s.createProduct(category.ID, "old-book", "300.00", 0)

	rec, env := s.do("GET", "/api/products", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var public []domain.Product
	s.decode(env, &public)
	s.Require().Len(public, 1)
	s.Equal("thin-book", public[0].Slug)

	rec, env = s.do("GET", "/api/products?mode=admin", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var all []domain.Product
	s.decode(env, &all)
	s.Len(all, 2)

	rec, env = s.do("GET", "/api/products?minPrice=abc", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("validation_failed", env.Code)

	rec, env = s.do("GET", "/api/slugs/thin-book", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var bySlug domain.Product
	s.decode(env, &bySlug)
	s.Equal("900", bySlug.Price.String())

	rec, env = s.do("GET", "/api/images/"+bySlug.ID, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var images []domain.Image
	s.decode(env, &images)
	s.Len(images, 1)

	rec, env = s.do("POST", "/api/products", map[string]any{
		"title": "Dup", "slug": "thin-book", "price": "1", "manufacturer": "Acme",
		"description": "dup", "mainImage": "x.webp", "inStock": 1, "rating": 1, "categoryId": category.ID,
	})
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("conflict", env.Code)
}

func (s *HandlerSuite) TestWishlistEndpoints() {
	category := s.createCategory("toys")
	product := s.createProduct(category.ID, "robot", "25.00", 2)
	user := testutil.User(s.T(), s.db, "kid@example.com")

	pair := map[string]any{"userId": user.ID, "productId": product.ID}
	rec, env := s.do("POST", "/api/wishlist", pair)
	s.Require().Equal(http.StatusCreated, rec.Code, env.Error)

	rec, env = s.do("POST", "/api/wishlist", pair)
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("conflict", env.Code)

	rec, env = s.do("GET", "/api/wishlist/"+user.ID, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var items []domain.Wishlist
	s.decode(env, &items)
	s.Len(items, 1)

	rec, _ = s.do("DELETE", "/api/wishlist/"+user.ID+"/"+product.ID, nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec, _ = s.do("DELETE", "/api/wishlist/"+user.ID+"/"+product.ID, nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerSuite) TestStatsAndMetrics() {
	category := s.createCategory("garden")
	product := s.createProduct(category.ID, "hose", "20.00", 4)

	rec, env := s.do("POST", "/api/orders", orderBody(line(product.ID, 3)))
	s.Require().Equal(http.StatusCreated, rec.Code, env.Error)

	canceled := orderBody(line(product.ID, 1))
	canceled["status"] = "cancelled"
	rec, env = s.do("POST", "/api/orders", canceled)
	s.Require().Equal(http.StatusCreated, rec.Code, env.Error)

	rec, env = s.do("GET", "/api/stats", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var stats query.Stats
	s.decode(env, &stats)
	s.EqualValues(1, stats.Products)
	s.EqualValues(1, stats.Categories)
	s.EqualValues(2, stats.Orders)
	s.True(decimal.NewFromInt(60).Equal(stats.Revenue), stats.Revenue.String())

	rec, _ = s.do("GET", "/metrics", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	s.Contains(body, `storefront_requests_total{endpoint="/api/orders",method="POST",status="201"} 2`)
	s.Contains(body, `storefront_entities{entity="order"} 2`)
	s.Contains(body, "storefront_revenue 60")
}

func (s *HandlerSuite) TestHealthCheck() {
	rec, env := s.do("GET", "/health", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.True(env.Success)
}

func TestHealthCheckDatabaseDown(t *testing.T) {
	api := &API{db: failingPinger{}}
	router := mux.NewRouter()
	router.HandleFunc("/health", api.HealthCheck)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Database unavailable")
}
