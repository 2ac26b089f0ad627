package command

import "github.com/tair/storefront/internal/domain"

// Handlers holds every command handler
type Handlers struct {
	CreateUser *CreateUserHandler
	UpdateUser *UpdateUserHandler
	DeleteUser *DeleteUserHandler

	CreateCategory *CreateCategoryHandler
	UpdateCategory *UpdateCategoryHandler
	DeleteCategory *DeleteCategoryHandler

	CreateProduct *CreateProductHandler
	UpdateProduct *UpdateProductHandler
	DeleteProduct *DeleteProductHandler

	CreateOrder      *CreateOrderHandler
	UpdateOrder      *UpdateOrderHandler
	DeleteOrder      *DeleteOrderHandler
	AddOrderLine     *AddOrderLineHandler
	DeleteOrderLines *DeleteOrderLinesHandler

	AddWishlistItem    *AddWishlistItemHandler
	RemoveWishlistItem *RemoveWishlistItemHandler
	ClearWishlist      *ClearWishlistHandler
}

// NewHandlers builds every command handler on top of the repositories
func NewHandlers(
	users domain.UserRepository,
	categories domain.CategoryRepository,
	products domain.ProductRepository,
	orders domain.OrderRepository,
	wishlist domain.WishlistRepository,
	events domain.EventPublisher,
) *Handlers {
	return &Handlers{
		CreateUser: NewCreateUserHandler(users),
		UpdateUser: NewUpdateUserHandler(users),
		DeleteUser: NewDeleteUserHandler(users),

		CreateCategory: NewCreateCategoryHandler(categories),
		UpdateCategory: NewUpdateCategoryHandler(categories),
		DeleteCategory: NewDeleteCategoryHandler(categories),

		CreateProduct: NewCreateProductHandler(products),
		UpdateProduct: NewUpdateProductHandler(products),
		DeleteProduct: NewDeleteProductHandler(products),

		CreateOrder:      NewCreateOrderHandler(orders, events),
		UpdateOrder:      NewUpdateOrderHandler(orders),
		DeleteOrder:      NewDeleteOrderHandler(orders, events),
		AddOrderLine:     NewAddOrderLineHandler(orders),
		DeleteOrderLines: NewDeleteOrderLinesHandler(orders),

		AddWishlistItem:    NewAddWishlistItemHandler(wishlist),
		RemoveWishlistItem: NewRemoveWishlistItemHandler(wishlist),
		ClearWishlist:      NewClearWishlistHandler(wishlist),
	}
}
