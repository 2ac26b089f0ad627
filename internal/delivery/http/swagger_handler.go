package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// ListProducts godoc
// @Summary List products
// @Description Public listings hide products that are out of stock; mode=admin shows all
// @Tags Products
// @Produce json
// @Param mode query string false "admin for the back-office listing"
// @Param q query string false "Search in title and description"
// @Param category query string false "Category ID"
// @Param minPrice query number false "Lowest price"
// @Param maxPrice query number false "Highest price"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 400 {object} object{success=bool,error=string,code=string}
// @Router /api/products [get]
func (h *ProductHandler) ListProductsDoc() {}

// CreateProduct godoc
// @Summary Create a product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body object{title=string,slug=string,price=number,manufacturer=string,description=string,mainImage=string,inStock=int,rating=int,categoryId=string,images=[]string} true "Product data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string,code=string}
// @Failure 404 {object} object{success=bool,error=string,code=string}
// @Failure 409 {object} object{success=bool,error=string,code=string}
// @Router /api/products [post]
func (h *ProductHandler) CreateProductDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string,code=string}
// @Router /api/products/{id} [get]
func (h *ProductHandler) GetProductDoc() {}

// UpdateProduct godoc
// @Summary Update a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body object{title=string,slug=string,price=number,manufacturer=string,description=string,mainImage=string,inStock=int,rating=int,categoryId=string} true "Fields to change"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string,code=string}
// @Failure 404 {object} object{success=bool,error=string,code=string}
// @Failure 409 {object} object{success=bool,error=string,code=string}
// @Router /api/products/{id} [put]
func (h *ProductHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Refused with constraint_violation while an order references the product
// @Tags Products
// @Param id path string true "Product ID"
// @Success 204
// @Failure 400 {object} object{success=bool,error=string,code=string}
// @Failure 404 {object} object{success=bool,error=string,code=string}
// @Router /api/products/{id} [delete]
func (h *ProductHandler) DeleteProductDoc() {}

// GetProductBySlug godoc
// @Summary Get product by slug
// @Tags Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string,code=string}
// @Router /api/slugs/{slug} [get]
func (h *ProductHandler) GetProductBySlugDoc() {}

// ListImages godoc
// @Summary List the gallery images of a product
// @Tags Products
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/images/{productId} [get]
func (h *ProductHandler) ListImagesDoc() {}

// ListCategories godoc
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/categories [get]
func (h *CategoryHandler) ListCategoriesDoc() {}

// CreateCategory godoc
// @Summary Create a category
// @Description The name is stored in slug form
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body object{name=string} true "Category data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string,code=string}
// @Failure 409 {object} object{success=bool,error=string,code=string}
// @Router /api/categories [post]
func (h *CategoryHandler) CreateCategoryDoc() {}

// DeleteCategory godoc
// @Summary Delete a category with its products
// @Description Fails with constraint_violation, deleting nothing, when an order references one of its products
// @Tags Categories
// @Param id path string true "Category ID"
// @Success 204
// @Failure 400 {object} object{success=bool,error=string,code=string}
// @Failure 404 {object} object{success=bool,error=string,code=string}
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategoryDoc() {}

// CreateUser godoc
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string,role=string} true "User data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string,code=string}
// @Failure 409 {object} object{success=bool,error=string,code=string}
// @Router /api/users [post]
func (h *UserHandler) CreateUserDoc() {}

// GetUserByEmail godoc
// @Summary Get user by email
// @Tags Users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string,code=string}
// @Router /api/users/email/{email} [get]
func (h *UserHandler) GetUserByEmailDoc() {}

// CreateOrder godoc
// @Summary Place an order
// @Description The total is computed from current product prices
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body object{name=string,lastname=string,phone=string,email=string,company=string,address=string,apartment=string,postalCode=string,city=string,country=string,orderNotice=string,status=string,products=[]object{productId=string,quantity=int}} true "Order data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string,code=string}
// @Failure 404 {object} object{success=bool,error=string,code=string}
// @Router /api/orders [post]
func (h *OrderHandler) CreateOrderDoc() {}

// ListOrders godoc
// @Summary List orders, newest first
// @Tags Orders
// @Produce json
// @Param status query string false "Status filter"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/orders [get]
func (h *OrderHandler) ListOrdersDoc() {}

// DeleteOrder godoc
// @Summary Delete an order and its lines
// @Tags Orders
// @Param id path string true "Order ID"
// @Success 204
// @Failure 404 {object} object{success=bool,error=string,code=string}
// @Router /api/orders/{id} [delete]
func (h *OrderHandler) DeleteOrderDoc() {}

// AddOrderLine godoc
// @Summary Add a product to an order
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body object{customerOrderId=string,productId=string,quantity=int} true "Line data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string,code=string}
// @Failure 404 {object} object{success=bool,error=string,code=string}
// @Router /api/order-product [post]
func (h *OrderHandler) AddOrderLineDoc() {}

// ListOrderLines godoc
// @Summary List the lines of an order
// @Tags Orders
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/order-product/{orderId} [get]
func (h *OrderHandler) ListOrderLinesDoc() {}

// AddWishlistItem godoc
// @Summary Add a product to a wishlist
// @Tags Wishlist
// @Accept json
// @Produce json
// @Param request body object{userId=string,productId=string} true "Wishlist pair"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 404 {object} object{success=bool,error=string,code=string}
// @Failure 409 {object} object{success=bool,error=string,code=string}
// @Router /api/wishlist [post]
func (h *WishlistHandler) AddItemDoc() {}

// GetStats godoc
// @Summary Dashboard statistics
// @Description Row counts and revenue of orders that were not canceled
// @Tags Stats
// @Produce json
// @Success 200 {object} object{success=bool,data=object{products=int,categories=int,users=int,orders=int,revenue=number}}
// @Router /api/stats [get]
func (a *API) GetStatsDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (a *API) HealthCheckDoc() {}
