// Package httpapi exposes the order desk over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	_ "orderdesk/docs"
	"orderdesk/pkg/catalog"
	"orderdesk/pkg/desk"
	"orderdesk/pkg/logger"
	"orderdesk/pkg/order"
	"orderdesk/pkg/otel"
)

// Server serves the HTTP API. All desk calls are serialized through mu.
type Server struct {
	mu       sync.Mutex
	desk     *desk.Desk
	log      *logger.Logger
	tracer   trace.Tracer
	validate *validator.Validate
}

// New creates a server for d. A nil tracer disables request spans.
func New(d *desk.Desk, log *logger.Logger, tracer trace.Tracer) *Server {
	if log == nil {
		log = logger.Nop()
	}
	v := validator.New()
	v.RegisterValidation("name", func(fl validator.FieldLevel) bool {
		return catalog.ValidateName(fl.Field().String()) == nil
	})
	return &Server{desk: d, log: log, tracer: tracer, validate: v}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.requestIDMiddleware)
	if s.tracer != nil {
		r.Use(s.traceMiddleware)
	}

	r.HandleFunc("/restaurants", s.listRestaurantsHandler).Methods(http.MethodGet)
	r.HandleFunc("/restaurants", s.addRestaurantHandler).Methods(http.MethodPost)
	r.HandleFunc("/restaurants/{id}/menu", s.getMenuHandler).Methods(http.MethodGet)
	r.HandleFunc("/restaurants/{id}/menu", s.addMenuItemHandler).Methods(http.MethodPost)

	r.HandleFunc("/orders", s.placeOrderHandler).Methods(http.MethodPost)
	r.HandleFunc("/orders/pending", s.pendingOrdersHandler).Methods(http.MethodGet)
	r.HandleFunc("/orders/process", s.processNextHandler).Methods(http.MethodPost)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	return r
}

// restaurantResponse describes a restaurant.
type restaurantResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	MenuItems int    `json:"menu_items"`
}

// addRestaurantRequest is the body of POST /restaurants.
type addRestaurantRequest struct {
	ID   string `json:"id" validate:"required,max=9"`
	Name string `json:"name" validate:"required,name"`
}

// addMenuItemRequest is the body of POST /restaurants/{id}/menu.
type addMenuItemRequest struct {
	Name  string          `json:"name" validate:"required,name"`
	Price decimal.Decimal `json:"price"`
}

// placeOrderRequest is the body of POST /orders.
type placeOrderRequest struct {
	Customer     string      `json:"customer" validate:"required,name"`
	Address      string      `json:"address" validate:"required,name"`
	RestaurantID string      `json:"restaurant_id" validate:"required"`
	Lines        []desk.Line `json:"lines"`
}

// skippedLine reports a requested line left out of the order.
type skippedLine struct {
	Position int    `json:"position"`
	Quantity int    `json:"quantity"`
	Error    string `json:"error"`
}

// placeOrderResponse is returned by POST /orders.
type placeOrderResponse struct {
	Order   order.Order   `json:"order"`
	Skipped []skippedLine `json:"skipped,omitempty"`
}

// processResponse is returned by POST /orders/process.
type processResponse struct {
	Order   order.Order `json:"order"`
	Receipt string      `json:"receipt"`
	Warning string      `json:"warning,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// listRestaurantsHandler lists restaurants.
// @Summary List restaurants
// @Produce json
// @Success 200 {array} restaurantResponse
// @Router /restaurants [get]
func (s *Server) listRestaurantsHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []restaurantResponse{}
	for _, rest := range s.desk.Restaurants(r.Context()) {
		out = append(out, restaurantResponse{ID: rest.ID, Name: rest.Name, MenuItems: rest.Menu.Len()})
	}
	writeJSON(w, http.StatusOK, out)
}

// addRestaurantHandler adds a restaurant.
// @Summary Add restaurant
// @Accept json
// @Produce json
// @Param restaurant body addRestaurantRequest true "Restaurant"
// @Success 201 {object} restaurantResponse
// @Failure 400 {object} errorResponse
// @Router /restaurants [post]
func (s *Server) addRestaurantHandler(w http.ResponseWriter, r *http.Request) {
	var req addRestaurantRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := catalog.ValidateID(req.ID); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rest := s.desk.AddRestaurant(r.Context(), req.ID, req.Name)
	writeJSON(w, http.StatusCreated, restaurantResponse{ID: rest.ID, Name: rest.Name})
}

// getMenuHandler returns a restaurant's menu.
// @Summary Get menu
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {array} menu.Item
// @Failure 404 {object} errorResponse
// @Router /restaurants/{id}/menu [get]
func (s *Server) getMenuHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.desk.Menu(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// addMenuItemHandler appends a menu item.
// @Summary Add menu item
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param item body addMenuItemRequest true "Menu item"
// @Success 201 {object} menu.Item
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /restaurants/{id}/menu [post]
func (s *Server) addMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	var req addMenuItemRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Price.IsNegative() {
		writeError(w, http.StatusBadRequest, errors.New("price must not be negative"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	it, err := s.desk.AddMenuItem(r.Context(), mux.Vars(r)["id"], req.Name, req.Price)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

// placeOrderHandler places an order.
// @Summary Place order
// @Accept json
// @Produce json
// @Param order body placeOrderRequest true "Order"
// @Success 201 {object} placeOrderResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /orders [post]
func (s *Server) placeOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if !s.decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.desk.PlaceOrder(r.Context(), desk.PlaceRequest{
		Customer:     req.Customer,
		Address:      req.Address,
		RestaurantID: req.RestaurantID,
		Lines:        req.Lines,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	resp := placeOrderResponse{Order: p.Order}
	for _, sk := range p.Skipped {
		resp.Skipped = append(resp.Skipped, skippedLine{Position: sk.Line.Position, Quantity: sk.Line.Quantity, Error: sk.Err.Error()})
	}
	writeJSON(w, http.StatusCreated, resp)
}

// pendingOrdersHandler lists pending orders oldest first.
// @Summary Pending orders
// @Produce json
// @Success 200 {array} order.Order
// @Router /orders/pending [get]
func (s *Server) pendingOrdersHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.desk.Pending(r.Context()))
}

// processNextHandler processes the oldest pending order.
// @Summary Process next order
// @Produce json
// @Success 200 {object} processResponse
// @Failure 409 {object} errorResponse
// @Router /orders/process [post]
func (s *Server) processNextHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.desk.ProcessNext(r.Context())
	if errors.Is(err, order.ErrEmptyQueue) {
		s.fail(w, r, err)
		return
	}
	resp := processResponse{Order: o, Receipt: order.Receipt(o)}
	if err != nil {
		resp.Warning = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, order.ErrEmptyQueue):
		writeError(w, http.StatusConflict, err)
	default:
		s.log.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// requestIDMiddleware tags each request with an X-Request-ID, generating one when absent.
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		s.log.Debug(r.Context(), "request", "method", r.Method, "path", r.URL.Path, "request_id", id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := otel.InjectTracing(r.Context(), s.tracer)
		defer span.End()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
