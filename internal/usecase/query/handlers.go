package query

import "github.com/tair/storefront/internal/domain"

// Handlers holds every query handler
type Handlers struct {
	GetUser   *GetUserHandler
	ListUsers *ListUsersHandler

	GetCategory    *GetCategoryHandler
	ListCategories *ListCategoriesHandler

	GetProduct   *GetProductHandler
	ListProducts *ListProductsHandler
	ListImages   *ListImagesHandler

	GetOrder       *GetOrderHandler
	ListOrders     *ListOrdersHandler
	ListOrderLines *ListOrderLinesHandler

	ListWishlist    *ListWishlistHandler
	GetWishlistItem *GetWishlistItemHandler

	Stats *GetStatsHandler
}

// NewHandlers builds every query handler on top of the repositories
func NewHandlers(
	users domain.UserRepository,
	categories domain.CategoryRepository,
	products domain.ProductRepository,
	orders domain.OrderRepository,
	wishlist domain.WishlistRepository,
) *Handlers {
	return &Handlers{
		GetUser:   NewGetUserHandler(users),
		ListUsers: NewListUsersHandler(users),

		GetCategory:    NewGetCategoryHandler(categories),
		ListCategories: NewListCategoriesHandler(categories),

		GetProduct:   NewGetProductHandler(products),
		ListProducts: NewListProductsHandler(products),
		ListImages:   NewListImagesHandler(products),

		GetOrder:       NewGetOrderHandler(orders),
		ListOrders:     NewListOrdersHandler(orders),
		ListOrderLines: NewListOrderLinesHandler(orders),

		ListWishlist:    NewListWishlistHandler(wishlist),
		GetWishlistItem: NewGetWishlistItemHandler(wishlist),

		Stats: NewGetStatsHandler(products, categories, users, orders),
	}
}
