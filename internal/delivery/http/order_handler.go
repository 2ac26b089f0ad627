package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/internal/usecase/command"
	"github.com/tair/storefront/internal/usecase/query"
)

// OrderHandler handles HTTP requests for orders and order lines
type OrderHandler struct {
	commands *command.Handlers
	queries  *query.Handlers
	metrics  *Metrics
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(commands *command.Handlers, queries *query.Handlers, metrics *Metrics) *OrderHandler {
	return &OrderHandler{commands: commands, queries: queries, metrics: metrics}
}

func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders", h.metrics.middleware("/api/orders", h.ListOrders)).Methods("GET")
	router.HandleFunc("/api/orders", h.metrics.middleware("/api/orders", h.CreateOrder)).Methods("POST")
	router.HandleFunc("/api/orders/{id}", h.metrics.middleware("/api/orders/{id}", h.GetOrder)).Methods("GET")
	router.HandleFunc("/api/orders/{id}", h.metrics.middleware("/api/orders/{id}", h.UpdateOrder)).Methods("PUT")
	router.HandleFunc("/api/orders/{id}", h.metrics.middleware("/api/orders/{id}", h.DeleteOrder)).Methods("DELETE")
	router.HandleFunc("/api/order-product", h.metrics.middleware("/api/order-product", h.AddOrderLine)).Methods("POST")
	router.HandleFunc("/api/order-product/{orderId}", h.metrics.middleware("/api/order-product/{orderId}", h.ListOrderLines)).Methods("GET")
	router.HandleFunc("/api/order-product/{orderId}", h.metrics.middleware("/api/order-product/{orderId}", h.DeleteOrderLines)).Methods("DELETE")
}

type orderLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type createOrderRequest struct {
	Name        string             `json:"name"`
	Lastname    string             `json:"lastname"`
	Phone       string             `json:"phone"`
	Email       string             `json:"email"`
	Company     string             `json:"company"`
	Address     string             `json:"address"`
	Apartment   string             `json:"apartment"`
	PostalCode  string             `json:"postalCode"`
	City        string             `json:"city"`
	Country     string             `json:"country"`
	OrderNotice *string            `json:"orderNotice"`
	Status      string             `json:"status"`
	Products    []orderLineRequest `json:"products"`
}

type updateOrderRequest struct {
	Name        *string `json:"name"`
	Lastname    *string `json:"lastname"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Company     *string `json:"company"`
	Address     *string `json:"address"`
	Apartment   *string `json:"apartment"`
	PostalCode  *string `json:"postalCode"`
	City        *string `json:"city"`
	Country     *string `json:"country"`
	OrderNotice *string `json:"orderNotice"`
	Status      *string `json:"status"`
}

type addOrderLineRequest struct {
	CustomerOrderID string `json:"customerOrderId"`
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	lines := make([]domain.OrderLine, 0, len(req.Products))
	for _, p := range req.Products {
		lines = append(lines, domain.OrderLine{ProductID: p.ProductID, Quantity: p.Quantity})
	}

	order, err := h.commands.CreateOrder.Handle(r.Context(), command.CreateOrderCommand{
		Contact: command.Contact{
			Name:        req.Name,
			Lastname:    req.Lastname,
			Phone:       req.Phone,
			Email:       req.Email,
			Company:     req.Company,
			Address:     req.Address,
			Apartment:   req.Apartment,
			PostalCode:  req.PostalCode,
			City:        req.City,
			Country:     req.Country,
			OrderNotice: req.OrderNotice,
		},
		Status: req.Status,
		Lines:  lines,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.metrics.refresh(r.Context(), h.queries.Stats)
	respondData(w, http.StatusCreated, "Order created successfully", order)
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := queryPage(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	orders, err := h.queries.ListOrders.Handle(r.Context(), query.ListOrdersQuery{
		Status: r.URL.Query().Get("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, "", orders)
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.queries.GetOrder.Handle(r.Context(), query.GetOrderQuery{ID: mux.Vars(r)["id"]})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, "", order)
}

// UpdateOrder handles PUT /api/orders/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req updateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	order, err := h.commands.UpdateOrder.Handle(r.Context(), command.UpdateOrderCommand{
		ID:          mux.Vars(r)["id"],
		Name:        req.Name,
		Lastname:    req.Lastname,
		Phone:       req.Phone,
		Email:       req.Email,
		Company:     req.Company,
		Address:     req.Address,
		Apartment:   req.Apartment,
		PostalCode:  req.PostalCode,
		City:        req.City,
		Country:     req.Country,
		OrderNotice: req.OrderNotice,
		Status:      req.Status,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.metrics.refresh(r.Context(), h.queries.Stats)
	respondData(w, http.StatusOK, "Order updated successfully", order)
}

// DeleteOrder handles DELETE /api/orders/{id}. Lines are removed first.
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.commands.DeleteOrder.Handle(r.Context(), command.DeleteOrderCommand{ID: mux.Vars(r)["id"]}); err != nil {
		respondError(w, r, err)
		return
	}

	h.metrics.refresh(r.Context(), h.queries.Stats)
	respondNoContent(w)
}

// AddOrderLine handles POST /api/order-product
func (h *OrderHandler) AddOrderLine(w http.ResponseWriter, r *http.Request) {
	var req addOrderLineRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	line, err := h.commands.AddOrderLine.Handle(r.Context(), command.AddOrderLineCommand{
		OrderID:   req.CustomerOrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.metrics.refresh(r.Context(), h.queries.Stats)
	respondData(w, http.StatusCreated, "Order line added successfully", line)
}

// ListOrderLines handles GET /api/order-product/{orderId}
func (h *OrderHandler) ListOrderLines(w http.ResponseWriter, r *http.Request) {
	lines, err := h.queries.ListOrderLines.Handle(r.Context(), query.ListOrderLinesQuery{OrderID: mux.Vars(r)["orderId"]})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, "", lines)
}

// DeleteOrderLines handles DELETE /api/order-product/{orderId}
func (h *OrderHandler) DeleteOrderLines(w http.ResponseWriter, r *http.Request) {
	if _, err := h.commands.DeleteOrderLines.Handle(r.Context(), command.DeleteOrderLinesCommand{OrderID: mux.Vars(r)["orderId"]}); err != nil {
		respondError(w, r, err)
		return
	}

	h.metrics.refresh(r.Context(), h.queries.Stats)
	respondNoContent(w)
}
