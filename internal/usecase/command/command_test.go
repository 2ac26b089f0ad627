package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/internal/repository"
	"github.com/tair/storefront/internal/testutil"
	"github.com/tair/storefront/internal/usecase/command"
	"github.com/tair/storefront/pkg/apperr"
	"github.com/tair/storefront/pkg/auth"
)

type recordingPublisher struct {
	placed  []string
	deleted []string
	err     error
}

func (p *recordingPublisher) PublishOrderPlaced(_ context.Context, order *domain.CustomerOrder) error {
	p.placed = append(p.placed, order.ID)
	return p.err
}

func (p *recordingPublisher) PublishOrderDeleted(_ context.Context, orderID string) error {
	p.deleted = append(p.deleted, orderID)
	return p.err
}

type CommandSuite struct {
	suite.Suite
	ctx    context.Context
	db     *gorm.DB
	events *recordingPublisher

	users      *repository.GormUserRepository
	categories *repository.GormCategoryRepository
	products   *repository.GormProductRepository
	orders     *repository.GormOrderRepository
	wishlist   *repository.GormWishlistRepository
}

func TestCommandSuite(t *testing.T) {
	suite.Run(t, new(CommandSuite))
}

func (s *CommandSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutil.NewDB(s.T())
	s.events = &recordingPublisher{}
	s.users = repository.NewGormUserRepository(s.db)
	s.categories = repository.NewGormCategoryRepository(s.db)
	s.products = repository.NewGormProductRepository(s.db)
	s.orders = repository.NewGormOrderRepository(s.db)
	s.wishlist = repository.NewGormWishlistRepository(s.db)
}

func (s *CommandSuite) contact() command.Contact {
	return command.Contact{
		Name:       "Grace",
		Lastname:   "Hopper",
		Phone:      "+1 555 0199",
		Email:      "Grace@Example.com",
		Company:    "Navy",
		Address:    "7 Harbor St",
		Apartment:  "Apt. 4",
		PostalCode: "20001",
		City:       "Arlington",
		Country:    "USA",
	}
}

func (s *CommandSuite) createProduct(categoryID, slug string, price int64) *domain.Product {
	product, err := command.NewCreateProductHandler(s.products).Handle(s.ctx, command.CreateProductCommand{
		Title:        "Product " + slug,
		Slug:         slug,
		Price:        decimal.NewFromInt(price),
		Manufacturer: "Sony",
		Description:  "A product",
		InStock:      5,
		Rating:       4,
		CategoryID:   categoryID,
	})
	s.Require().NoError(err)
	return product
}

func (s *CommandSuite) TestCreateUserPasswordLength() {
	handler := command.NewCreateUserHandler(s.users)

	_, err := handler.Handle(s.ctx, command.CreateUserCommand{Email: "short@example.com", Password: "passwor"})
	s.Require().Error(err)
	s.True(apperr.IsValidation(err))
	s.Contains(apperr.PublicMessage(err), "at least 8 characters")
	s.Contains(apperr.PublicMessage(err), "got 7")
	s.Zero(testutil.Count(s.T(), s.db, &domain.User{}))

	user, err := handler.Handle(s.ctx, command.CreateUserCommand{Email: "short@example.com", Password: "password1"})
	s.Require().NoError(err)
	s.Equal(domain.RoleUser, user.Role)
	s.NotEqual("password1", user.Password)
	s.True(auth.CheckPassword(user.Password, "password1"))
}

func (s *CommandSuite) TestCreateUserValidation() {
	handler := command.NewCreateUserHandler(s.users)

	_, err := handler.Handle(s.ctx, command.CreateUserCommand{Email: "not-an-email", Password: "password1"})
	s.True(apperr.IsValidation(err))

	_, err = handler.Handle(s.ctx, command.CreateUserCommand{Email: "a@example.com", Password: "password1", Role: "root"})
	s.True(apperr.IsValidation(err))

	_, err = handler.Handle(s.ctx, command.CreateUserCommand{Email: "A@Example.com", Password: "password1", Role: domain.RoleAdmin})
	s.Require().NoError(err)
	_, err = handler.Handle(s.ctx, command.CreateUserCommand{Email: "a@example.com", Password: "password2"})
	s.True(apperr.IsConflict(err))
}

func (s *CommandSuite) TestUpdateUser() {
	user, err := command.NewCreateUserHandler(s.users).Handle(s.ctx, command.CreateUserCommand{Email: "u@example.com", Password: "password1"})
	s.Require().NoError(err)
	handler := command.NewUpdateUserHandler(s.users)

	short := "short"
	_, err = handler.Handle(s.ctx, command.UpdateUserCommand{ID: user.ID, Password: &short})
	s.True(apperr.IsValidation(err))

	role := domain.RoleAdmin
	newPassword := "password2"
	updated, err := handler.Handle(s.ctx, command.UpdateUserCommand{ID: user.ID, Role: &role, Password: &newPassword})
	s.Require().NoError(err)
	s.True(updated.IsAdmin())
	s.True(auth.CheckPassword(updated.Password, newPassword))

	_, err = handler.Handle(s.ctx, command.UpdateUserCommand{ID: "missing", Role: &role})
	s.True(apperr.IsNotFound(err))
}

func (s *CommandSuite) TestCategoryNameIsSlugged() {
	category, err := command.NewCreateCategoryHandler(s.categories).Handle(s.ctx, command.CreateCategoryCommand{Name: "Mixer Grinders"})
	s.Require().NoError(err)
	s.Equal("mixer-grinders", category.Name)
	s.Equal("Mixer Grinders", category.DisplayName())

	_, err = command.NewCreateCategoryHandler(s.categories).Handle(s.ctx, command.CreateCategoryCommand{Name: "mixer grinders"})
	s.True(apperr.IsConflict(err))

	_, err = command.NewCreateCategoryHandler(s.categories).Handle(s.ctx, command.CreateCategoryCommand{Name: "  "})
	s.True(apperr.IsValidation(err))

	renamed, err := command.NewUpdateCategoryHandler(s.categories).Handle(s.ctx, command.UpdateCategoryCommand{ID: category.ID, Name: "Grinders"})
	s.Require().NoError(err)
	s.Equal("grinders", renamed.Name)
}

func (s *CommandSuite) TestCreateProductValidation() {
	category := testutil.Category(s.T(), s.db, "laptops")
	handler := command.NewCreateProductHandler(s.products)
	valid := command.CreateProductCommand{
		Title:        "Book Pro",
		Slug:         "book-pro",
		Price:        decimal.NewFromInt(1500),
		Manufacturer: "Apple",
		Description:  "Laptop",
		Rating:       5,
		CategoryID:   category.ID,
		Images:       []string{"book-pro-image-1.webp"},
	}

	cases := map[string]func(c *command.CreateProductCommand){
		"missing title":   func(c *command.CreateProductCommand) { c.Title = "" },
		"bad slug":        func(c *command.CreateProductCommand) { c.Slug = "Book Pro" },
		"negative price":  func(c *command.CreateProductCommand) { c.Price = decimal.NewFromInt(-1) },
		"negative stock":  func(c *command.CreateProductCommand) { c.InStock = -1 },
		"rating too high": func(c *command.CreateProductCommand) { c.Rating = 6 },
		"blank image":     func(c *command.CreateProductCommand) { c.Images = []string{" "} },
	}
	for name, mutate := range cases {
		s.Run(name, func() {
			cmd := valid
			mutate(&cmd)
			_, err := handler.Handle(s.ctx, cmd)
			s.True(apperr.IsValidation(err), "got %v", err)
		})
	}

	product, err := handler.Handle(s.ctx, valid)
	s.Require().NoError(err)
	s.Len(product.Images, 1)

	_, err = handler.Handle(s.ctx, valid)
	s.True(apperr.IsConflict(err))

	missingCategory := valid
	missingCategory.Slug = "book-air"
	missingCategory.CategoryID = "missing"
	_, err = handler.Handle(s.ctx, missingCategory)
	s.True(apperr.IsNotFound(err))
}

func (s *CommandSuite) TestUpdateProduct() {
	category := testutil.Category(s.T(), s.db, "watches")
	product := s.createProduct(category.ID, "watch", 100)
	other := s.createProduct(category.ID, "watch-two", 120)
	handler := command.NewUpdateProductHandler(s.products)

	price := decimal.RequireFromString("89.90")
	updated, err := handler.Handle(s.ctx, command.UpdateProductCommand{ID: product.ID, Price: &price})
	s.Require().NoError(err)
	s.True(price.Equal(updated.Price))

	taken := other.Slug
	_, err = handler.Handle(s.ctx, command.UpdateProductCommand{ID: product.ID, Slug: &taken})
	s.True(apperr.IsConflict(err))

	rating := 9
	_, err = handler.Handle(s.ctx, command.UpdateProductCommand{ID: product.ID, Rating: &rating})
	s.True(apperr.IsValidation(err))
}

// category -> product -> order of 2 units -> product delete refused ->
// order delete -> product delete succeeds
func (s *CommandSuite) TestOrderLifecycleScenario() {
	category, err := command.NewCreateCategoryHandler(s.categories).Handle(s.ctx, command.CreateCategoryCommand{Name: "speakers"})
	s.Require().NoError(err)
	product := s.createProduct(category.ID, "party-speaker", 250)

	order, err := command.NewCreateOrderHandler(s.orders, s.events).Handle(s.ctx, command.CreateOrderCommand{
		Contact: s.contact(),
		Lines:   []domain.OrderLine{{ProductID: product.ID, Quantity: 2}},
	})
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusProcessing, order.Status)
	s.Equal("grace@example.com", order.Email)
	s.True(decimal.NewFromInt(500).Equal(order.Total))
	s.Equal([]string{order.ID}, s.events.placed)

	deleteProduct := command.NewDeleteProductHandler(s.products)
	err = deleteProduct.Handle(s.ctx, command.DeleteProductCommand{ID: product.ID})
	s.True(apperr.IsConstraint(err))

	s.Require().NoError(command.NewDeleteOrderHandler(s.orders, s.events).Handle(s.ctx, command.DeleteOrderCommand{ID: order.ID}))
	s.Equal([]string{order.ID}, s.events.deleted)
	s.Zero(testutil.Count(s.T(), s.db, &domain.OrderProduct{}, "customer_order_id = ?", order.ID))

	s.Require().NoError(deleteProduct.Handle(s.ctx, command.DeleteProductCommand{ID: product.ID}))
	s.Zero(testutil.Count(s.T(), s.db, &domain.Product{}))
}

func (s *CommandSuite) TestCreateOrderValidation() {
	category := testutil.Category(s.T(), s.db, "gaming")
	product := s.createProduct(category.ID, "console", 400)
	handler := command.NewCreateOrderHandler(s.orders, s.events)

	noLines := command.CreateOrderCommand{Contact: s.contact()}
	_, err := handler.Handle(s.ctx, noLines)
	s.True(apperr.IsValidation(err))

	zeroQty := command.CreateOrderCommand{Contact: s.contact(), Lines: []domain.OrderLine{{ProductID: product.ID, Quantity: 0}}}
	_, err = handler.Handle(s.ctx, zeroQty)
	s.True(apperr.IsValidation(err))

	dup := command.CreateOrderCommand{Contact: s.contact(), Lines: []domain.OrderLine{
		{ProductID: product.ID, Quantity: 1},
		{ProductID: product.ID, Quantity: 1},
	}}
	_, err = handler.Handle(s.ctx, dup)
	s.True(apperr.IsValidation(err))

	badStatus := command.CreateOrderCommand{Contact: s.contact(), Status: "lost", Lines: []domain.OrderLine{{ProductID: product.ID, Quantity: 1}}}
	_, err = handler.Handle(s.ctx, badStatus)
	s.True(apperr.IsValidation(err))

	contact := s.contact()
	contact.City = ""
	_, err = handler.Handle(s.ctx, command.CreateOrderCommand{Contact: contact, Lines: []domain.OrderLine{{ProductID: product.ID, Quantity: 1}}})
	s.True(apperr.IsValidation(err))
	s.Contains(apperr.PublicMessage(err), "city")

	_, err = handler.Handle(s.ctx, command.CreateOrderCommand{Contact: s.contact(), Lines: []domain.OrderLine{{ProductID: "missing", Quantity: 1}}})
	s.True(apperr.IsNotFound(err))

	s.Zero(testutil.Count(s.T(), s.db, &domain.CustomerOrder{}))
	s.Empty(s.events.placed)
}

func (s *CommandSuite) TestCreateOrderSurvivesPublisherFailure() {
	category := testutil.Category(s.T(), s.db, "cameras")
	product := s.createProduct(category.ID, "camera", 700)
	s.events.err = errors.New("broker down")

	order, err := command.NewCreateOrderHandler(s.orders, s.events).Handle(s.ctx, command.CreateOrderCommand{
		Contact: s.contact(),
		Status:  "cancelled",
		Lines:   []domain.OrderLine{{ProductID: product.ID, Quantity: 1}},
	})
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusCanceled, order.Status)
	s.Equal(int64(1), testutil.Count(s.T(), s.db, &domain.CustomerOrder{}))
}

func (s *CommandSuite) TestUpdateOrder() {
	category := testutil.Category(s.T(), s.db, "tablets")
	product := s.createProduct(category.ID, "tablet", 300)
	order, err := command.NewCreateOrderHandler(s.orders, s.events).Handle(s.ctx, command.CreateOrderCommand{
		Contact: s.contact(),
		Lines:   []domain.OrderLine{{ProductID: product.ID, Quantity: 1}},
	})
	s.Require().NoError(err)
	handler := command.NewUpdateOrderHandler(s.orders)

	status := "delivered"
	notice := "leave at the door"
	updated, err := handler.Handle(s.ctx, command.UpdateOrderCommand{ID: order.ID, Status: &status, OrderNotice: &notice})
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusDelivered, updated.Status)
	s.Require().NotNil(updated.OrderNotice)
	s.Equal(notice, *updated.OrderNotice)
	s.True(decimal.NewFromInt(300).Equal(updated.Total))

	bad := "teleported"
	_, err = handler.Handle(s.ctx, command.UpdateOrderCommand{ID: order.ID, Status: &bad})
	s.True(apperr.IsValidation(err))

	blank := ""
	_, err = handler.Handle(s.ctx, command.UpdateOrderCommand{ID: order.ID, Name: &blank})
	s.True(apperr.IsValidation(err))
}

func (s *CommandSuite) TestOrderLines() {
	category := testutil.Category(s.T(), s.db, "earbuds")
	first := s.createProduct(category.ID, "buds", 50)
	second := s.createProduct(category.ID, "case", 15)
	order, err := command.NewCreateOrderHandler(s.orders, s.events).Handle(s.ctx, command.CreateOrderCommand{
		Contact: s.contact(),
		Lines:   []domain.OrderLine{{ProductID: first.ID, Quantity: 1}},
	})
	s.Require().NoError(err)

	addLine := command.NewAddOrderLineHandler(s.orders)
	_, err = addLine.Handle(s.ctx, command.AddOrderLineCommand{OrderID: order.ID, ProductID: second.ID, Quantity: 0})
	s.True(apperr.IsValidation(err))

	line, err := addLine.Handle(s.ctx, command.AddOrderLineCommand{OrderID: order.ID, ProductID: second.ID, Quantity: 2})
	s.Require().NoError(err)
	s.Equal(second.ID, line.ProductID)

	n, err := command.NewDeleteOrderLinesHandler(s.orders).Handle(s.ctx, command.DeleteOrderLinesCommand{OrderID: order.ID})
	s.Require().NoError(err)
	s.Equal(int64(2), n)
}

func (s *CommandSuite) TestWishlist() {
	category := testutil.Category(s.T(), s.db, "juicers")
	product := s.createProduct(category.ID, "juicer", 90)
	user := testutil.User(s.T(), s.db, "w@example.com")

	add := command.NewAddWishlistItemHandler(s.wishlist)
	_, err := add.Handle(s.ctx, command.AddWishlistItemCommand{UserID: user.ID})
	s.True(apperr.IsValidation(err))

	_, err = add.Handle(s.ctx, command.AddWishlistItemCommand{UserID: user.ID, ProductID: product.ID})
	s.Require().NoError(err)
	_, err = add.Handle(s.ctx, command.AddWishlistItemCommand{UserID: user.ID, ProductID: product.ID})
	s.True(apperr.IsConflict(err))
	s.Equal(int64(1), testutil.Count(s.T(), s.db, &domain.Wishlist{}))

	remove := command.NewRemoveWishlistItemHandler(s.wishlist)
	s.Require().NoError(remove.Handle(s.ctx, command.RemoveWishlistItemCommand{UserID: user.ID, ProductID: product.ID}))
	s.True(apperr.IsNotFound(remove.Handle(s.ctx, command.RemoveWishlistItemCommand{UserID: user.ID, ProductID: product.ID})))

	_, err = add.Handle(s.ctx, command.AddWishlistItemCommand{UserID: user.ID, ProductID: product.ID})
	s.Require().NoError(err)
	n, err := command.NewClearWishlistHandler(s.wishlist).Handle(s.ctx, command.ClearWishlistCommand{UserID: user.ID})
	s.Require().NoError(err)
	s.Equal(int64(1), n)
}

func (s *CommandSuite) TestDeleteCategoryCascade() {
	category := testutil.Category(s.T(), s.db, "televisions")
	s.createProduct(category.ID, "tv-one", 800)
	handler := command.NewDeleteCategoryHandler(s.categories)

	s.True(apperr.IsValidation(handler.Handle(s.ctx, command.DeleteCategoryCommand{})))
	s.Require().NoError(handler.Handle(s.ctx, command.DeleteCategoryCommand{ID: category.ID}))
	s.Zero(testutil.Count(s.T(), s.db, &domain.Product{}))
}

func TestDeleteHandlersRequireID(t *testing.T) {
	ctx := context.Background()
	require.True(t, apperr.IsValidation(command.NewDeleteUserHandler(nil).Handle(ctx, command.DeleteUserCommand{})))
	require.True(t, apperr.IsValidation(command.NewDeleteProductHandler(nil).Handle(ctx, command.DeleteProductCommand{})))
	require.True(t, apperr.IsValidation(command.NewDeleteOrderHandler(nil, domain.NopPublisher{}).Handle(ctx, command.DeleteOrderCommand{})))

	_, err := command.NewDeleteOrderLinesHandler(nil).Handle(ctx, command.DeleteOrderLinesCommand{})
	assert.True(t, apperr.IsValidation(err))
}
