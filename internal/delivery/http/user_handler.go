package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/internal/usecase/command"
	"github.com/tair/storefront/internal/usecase/query"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	commands *command.Handlers
	queries  *query.Handlers
	metrics  *Metrics
}

// NewUserHandler creates a new user handler
func NewUserHandler(commands *command.Handlers, queries *query.Handlers, metrics *Metrics) *UserHandler {
	return &UserHandler{commands: commands, queries: queries, metrics: metrics}
}

func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/users", h.metrics.middleware("/api/users", h.ListUsers)).Methods("GET")
	router.HandleFunc("/api/users", h.metrics.middleware("/api/users", h.CreateUser)).Methods("POST")
	router.HandleFunc("/api/users/email/{email}", h.metrics.middleware("/api/users/email/{email}", h.GetUserByEmail)).Methods("GET")
	router.HandleFunc("/api/users/{id}", h.metrics.middleware("/api/users/{id}", h.GetUser)).Methods("GET")
	router.HandleFunc("/api/users/{id}", h.metrics.middleware("/api/users/{id}", h.UpdateUser)).Methods("PUT")
	router.HandleFunc("/api/users/{id}", h.metrics.middleware("/api/users/{id}", h.DeleteUser)).Methods("DELETE")
}

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type updateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	user, err := h.commands.CreateUser.Handle(r.Context(), command.CreateUserCommand{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.metrics.refresh(r.Context(), h.queries.Stats)
	respondData(w, http.StatusCreated, "User created successfully", user)
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := queryPage(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	users, err := h.queries.ListUsers.Handle(r.Context(), query.ListUsersQuery{
		Role:   r.URL.Query().Get("role"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, "", users)
}

// GetUser handles GET /api/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.queries.GetUser.Handle(r.Context(), query.GetUserQuery{ID: mux.Vars(r)["id"]})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, "", user)
}

// GetUserByEmail handles GET /api/users/email/{email}
func (h *UserHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	user, err := h.queries.GetUser.Handle(r.Context(), query.GetUserQuery{Email: mux.Vars(r)["email"]})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, "", user)
}

// UpdateUser handles PUT /api/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	user, err := h.commands.UpdateUser.Handle(r.Context(), command.UpdateUserCommand{
		ID:       mux.Vars(r)["id"],
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, "User updated successfully", user)
}

// DeleteUser handles DELETE /api/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.commands.DeleteUser.Handle(r.Context(), command.DeleteUserCommand{ID: mux.Vars(r)["id"]}); err != nil {
		respondError(w, r, err)
		return
	}

	h.metrics.refresh(r.Context(), h.queries.Stats)
	respondNoContent(w)
}
