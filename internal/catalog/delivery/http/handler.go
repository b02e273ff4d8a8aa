package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/beanscout/beanscout/internal/catalog/domain"
	"github.com/beanscout/beanscout/internal/catalog/reviews"
	"github.com/beanscout/beanscout/internal/catalog/search"
	"github.com/beanscout/beanscout/internal/catalog/usecase/command"
	"github.com/beanscout/beanscout/internal/catalog/usecase/query"
	"github.com/beanscout/beanscout/pkg/logger"
)

// CatalogHandler handles HTTP requests for the catalog using CQRS pattern
type CatalogHandler struct {
	// Command handlers
	createProductHandler  *command.CreateProductHandler
	updateProductHandler  *command.UpdateProductHandler
	deleteProductHandler  *command.DeleteProductHandler
	createRoasteryHandler *command.CreateRoasteryHandler
	deleteRoasteryHandler *command.DeleteRoasteryHandler
	createCoffeeHandler   *command.CreateStandardCoffeeHandler

	// Query handlers
	searchHandler         *query.SearchCoffeesHandler
	filterOptionsHandler  *query.FilterOptionsHandler
	statsHandler          *query.GetStatsHandler
	getProductHandler     *query.GetProductHandler
	listRoasteriesHandler *query.ListRoasteriesHandler
	listCoffeesHandler    *query.ListStandardCoffeesHandler

	engine  *search.Engine
	store   domain.CatalogStore
	reviews reviews.Provider

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	totalProducts  prometheus.Gauge
}

// NewCatalogHandler creates a new catalog handler with CQRS pattern (manual DI for backwards compatibility)
func NewCatalogHandler(store domain.CatalogStore, reviewsProvider reviews.Provider, notifier command.Notifier) *CatalogHandler {
	cache := search.NewCache(store)
	engine := search.NewEngine(cache)

	// Initialize command handlers
	createProductHandler := command.NewCreateProductHandler(store, cache, notifier)
	updateProductHandler := command.NewUpdateProductHandler(store, cache, notifier)
	deleteProductHandler := command.NewDeleteProductHandler(store, cache, notifier)
	createRoasteryHandler := command.NewCreateRoasteryHandler(store, cache, notifier)
	deleteRoasteryHandler := command.NewDeleteRoasteryHandler(store, cache, notifier)
	createCoffeeHandler := command.NewCreateStandardCoffeeHandler(store, cache, notifier)

	// Initialize query handlers
	searchHandler := query.NewSearchCoffeesHandler(engine)
	filterOptionsHandler := query.NewFilterOptionsHandler(engine)
	statsHandler := query.NewGetStatsHandler(engine)
	getProductHandler := query.NewGetProductHandler(store)
	listRoasteriesHandler := query.NewListRoasteriesHandler(store)
	listCoffeesHandler := query.NewListStandardCoffeesHandler(store)

	return newCatalogHandler(
		createProductHandler, updateProductHandler, deleteProductHandler,
		createRoasteryHandler, deleteRoasteryHandler, createCoffeeHandler,
		searchHandler, filterOptionsHandler, statsHandler,
		getProductHandler, listRoasteriesHandler, listCoffeesHandler,
		engine, store, reviewsProvider,
		prometheus.DefaultRegisterer,
	)
}

// NewCatalogHandlerWithDI creates a new catalog handler using dependency injection
// This is used by Wire for automatic dependency injection
func NewCatalogHandlerWithDI(
	createProductHandler *command.CreateProductHandler,
	updateProductHandler *command.UpdateProductHandler,
	deleteProductHandler *command.DeleteProductHandler,
	createRoasteryHandler *command.CreateRoasteryHandler,
	deleteRoasteryHandler *command.DeleteRoasteryHandler,
	createCoffeeHandler *command.CreateStandardCoffeeHandler,
	searchHandler *query.SearchCoffeesHandler,
	filterOptionsHandler *query.FilterOptionsHandler,
	statsHandler *query.GetStatsHandler,
	getProductHandler *query.GetProductHandler,
	listRoasteriesHandler *query.ListRoasteriesHandler,
	listCoffeesHandler *query.ListStandardCoffeesHandler,
	engine *search.Engine,
	store domain.CatalogStore,
	reviewsProvider reviews.Provider,
	registerer prometheus.Registerer,
) *CatalogHandler {
	return newCatalogHandler(
		createProductHandler, updateProductHandler, deleteProductHandler,
		createRoasteryHandler, deleteRoasteryHandler, createCoffeeHandler,
		searchHandler, filterOptionsHandler, statsHandler,
		getProductHandler, listRoasteriesHandler, listCoffeesHandler,
		engine, store, reviewsProvider,
		registerer,
	)
}

// newCatalogHandler is the internal constructor used by both manual and Wire DI
func newCatalogHandler(
	createProductHandler *command.CreateProductHandler,
	updateProductHandler *command.UpdateProductHandler,
	deleteProductHandler *command.DeleteProductHandler,
	createRoasteryHandler *command.CreateRoasteryHandler,
	deleteRoasteryHandler *command.DeleteRoasteryHandler,
	createCoffeeHandler *command.CreateStandardCoffeeHandler,
	searchHandler *query.SearchCoffeesHandler,
	filterOptionsHandler *query.FilterOptionsHandler,
	statsHandler *query.GetStatsHandler,
	getProductHandler *query.GetProductHandler,
	listRoasteriesHandler *query.ListRoasteriesHandler,
	listCoffeesHandler *query.ListStandardCoffeesHandler,
	engine *search.Engine,
	store domain.CatalogStore,
	reviewsProvider reviews.Provider,
	registerer prometheus.Registerer,
) *CatalogHandler {
	// Initialize Prometheus metrics
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_service_requests_total",
			Help: "Total number of requests to catalog service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_service_request_duration_seconds",
			Help:    "Duration of catalog service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "catalog_service_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,  // p50 (median) with 5% error
				0.9:  0.01,  // p90 with 1% error
				0.95: 0.01,  // p95 with 1% error
				0.99: 0.001, // p99 with 0.1% error
			},
			MaxAge: 10 * time.Minute, // Keep data for 10 minutes
		},
		[]string{"method", "endpoint"},
	)

	totalProducts := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_service_total_products",
			Help: "Total number of product listings in the catalog",
		},
	)

	registerer.MustRegister(requestCounter)
	registerer.MustRegister(requestLatency)
	registerer.MustRegister(requestSummary)
	registerer.MustRegister(totalProducts)

	return &CatalogHandler{
		createProductHandler:  createProductHandler,
		updateProductHandler:  updateProductHandler,
		deleteProductHandler:  deleteProductHandler,
		createRoasteryHandler: createRoasteryHandler,
		deleteRoasteryHandler: deleteRoasteryHandler,
		createCoffeeHandler:   createCoffeeHandler,
		searchHandler:         searchHandler,
		filterOptionsHandler:  filterOptionsHandler,
		statsHandler:          statsHandler,
		getProductHandler:     getProductHandler,
		listRoasteriesHandler: listRoasteriesHandler,
		listCoffeesHandler:    listCoffeesHandler,
		engine:                engine,
		store:                 store,
		reviews:               reviewsProvider,
		requestCounter:        requestCounter,
		requestLatency:        requestLatency,
		requestSummary:        requestSummary,
		totalProducts:         totalProducts,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		// Record metrics
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	// Search and discovery
	router.HandleFunc("/api/search", h.metricsMiddleware("/api/search", h.Search)).Methods("GET")
	router.HandleFunc("/api/search/refresh", h.metricsMiddleware("/api/search/refresh", h.RefreshSnapshot)).Methods("POST")
	router.HandleFunc("/api/filters/roast-levels", h.metricsMiddleware("/api/filters/roast-levels", h.ListRoastLevels)).Methods("GET")
	router.HandleFunc("/api/filters/processing-methods", h.metricsMiddleware("/api/filters/processing-methods", h.ListProcessingMethods)).Methods("GET")
	router.HandleFunc("/api/stats", h.metricsMiddleware("/api/stats", h.GetStats)).Methods("GET")

	// Catalog reads
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/roasteries", h.metricsMiddleware("/api/roasteries", h.ListRoasteries)).Methods("GET")
	router.HandleFunc("/api/coffees", h.metricsMiddleware("/api/coffees", h.ListCoffees)).Methods("GET")

	// Catalog admin writes
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.CreateProduct)).Methods("POST")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.UpdateProduct)).Methods("PUT")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.DeleteProduct)).Methods("DELETE")
	router.HandleFunc("/api/roasteries", h.metricsMiddleware("/api/roasteries", h.CreateRoastery)).Methods("POST")
	router.HandleFunc("/api/roasteries/{id}", h.metricsMiddleware("/api/roasteries/{id}", h.DeleteRoastery)).Methods("DELETE")
	router.HandleFunc("/api/coffees", h.metricsMiddleware("/api/coffees", h.CreateCoffee)).Methods("POST")
}

// searchResultPayload decorates a search result with review aggregates when a
// review backend is configured.
type searchResultPayload struct {
	domain.SearchResult
	Reviews *domain.ReviewStats `json:"reviews,omitempty"`
}

// Search handles GET /api/search
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q := query.SearchCoffeesQuery{
		Term:                params.Get("q"),
		OnlyPartners:        parseBool(params.Get("partners")),
		RoastLevels:         parseList(params.Get("roast")),
		ProcessingMethods:   parseList(params.Get("processing")),
		IncludeDiscontinued: parseBool(params.Get("discontinued")),
	}

	outcome, err := h.searchHandler.Handle(r.Context(), q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("query", q.Term).Msg("Search failed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Search failed",
		})
		return
	}

	results := h.decorateResults(r, outcome.Results)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"query":            q.Term,
			"results":          results,
			"count":            len(results),
			"skipped_products": outcome.SkippedProducts,
		},
	})
}

// decorateResults attaches review aggregates to each group. A review backend
// failure degrades to undecorated results.
func (h *CatalogHandler) decorateResults(r *http.Request, results []domain.SearchResult) []searchResultPayload {
	payload := make([]searchResultPayload, len(results))
	keys := make([]string, len(results))
	for i := range results {
		payload[i] = searchResultPayload{SearchResult: results[i]}
		keys[i] = results[i].GroupKey()
	}

	stats, err := h.reviews.StatsFor(r.Context(), keys)
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Review aggregates unavailable, returning undecorated results")
		return payload
	}
	for i := range payload {
		if s, ok := stats[keys[i]]; ok {
			stat := s
			payload[i].Reviews = &stat
		}
	}
	return payload
}

// RefreshSnapshot handles POST /api/search/refresh
func (h *CatalogHandler) RefreshSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.Refresh(r.Context()); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Snapshot refresh failed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to refresh catalog snapshot",
		})
		return
	}

	h.updateProductsMetric(r)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Catalog snapshot refreshed",
	})
}

// ListRoastLevels handles GET /api/filters/roast-levels
func (h *CatalogHandler) ListRoastLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.filterOptionsHandler.HandleRoastLevels(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list roast levels")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list roast levels",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]interface{}{"roast_levels": levels},
	})
}

// ListProcessingMethods handles GET /api/filters/processing-methods
func (h *CatalogHandler) ListProcessingMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.filterOptionsHandler.HandleProcessingMethods(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list processing methods")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list processing methods",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]interface{}{"processing_methods": methods},
	})
}

// GetStats handles GET /api/stats
func (h *CatalogHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get stats")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get statistics",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	q := query.GetProductQuery{ID: vars["id"]}
	product, err := h.getProductHandler.Handle(r.Context(), q)
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// ListRoasteries handles GET /api/roasteries
func (h *CatalogHandler) ListRoasteries(w http.ResponseWriter, r *http.Request) {
	roasteries, err := h.listRoasteriesHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list roasteries")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list roasteries",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"roasteries": roasteries,
			"total":      len(roasteries),
		},
	})
}

// ListCoffees handles GET /api/coffees
func (h *CatalogHandler) ListCoffees(w http.ResponseWriter, r *http.Request) {
	coffees, err := h.listCoffeesHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list standard coffees")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list standard coffees",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"coffees": coffees,
			"total":   len(coffees),
		},
	})
}

type productRequest struct {
	ID               string   `json:"id,omitempty"`
	RoasteryID       string   `json:"roastery_id"`
	Name             string   `json:"name"`
	StandardCoffeeID string   `json:"standard_coffee_id"`
	Origin           string   `json:"origin"`
	Region           string   `json:"region"`
	Farm             string   `json:"farm"`
	Processing       string   `json:"processing"`
	RoastLevel       string   `json:"roast_level"`
	Description      string   `json:"description"`
	Price            int64    `json:"price"`
	Weight           string   `json:"weight"`
	URL              string   `json:"url"`
	InStock          bool     `json:"in_stock"`
	SaleStatus       string   `json:"sale_status"`
	TastingNotes     []string `json:"tasting_notes"`
	Altitude         string   `json:"altitude"`
	Variety          string   `json:"variety"`
}

// CreateProduct handles POST /api/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateProductCommand{
		ID:               req.ID,
		RoasteryID:       req.RoasteryID,
		Name:             req.Name,
		StandardCoffeeID: req.StandardCoffeeID,
		Origin:           req.Origin,
		Region:           req.Region,
		Farm:             req.Farm,
		Processing:       req.Processing,
		RoastLevel:       req.RoastLevel,
		Description:      req.Description,
		Price:            req.Price,
		Weight:           req.Weight,
		URL:              req.URL,
		InStock:          req.InStock,
		SaleStatus:       req.SaleStatus,
		TastingNotes:     req.TastingNotes,
		Altitude:         req.Altitude,
		Variety:          req.Variety,
	}

	product, err := h.createProductHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateProductsMetric(r)

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateProductCommand{
		ID:               vars["id"],
		RoasteryID:       req.RoasteryID,
		Name:             req.Name,
		StandardCoffeeID: req.StandardCoffeeID,
		Origin:           req.Origin,
		Region:           req.Region,
		Farm:             req.Farm,
		Processing:       req.Processing,
		RoastLevel:       req.RoastLevel,
		Description:      req.Description,
		Price:            req.Price,
		Weight:           req.Weight,
		URL:              req.URL,
		InStock:          req.InStock,
		SaleStatus:       req.SaleStatus,
		TastingNotes:     req.TastingNotes,
		Altitude:         req.Altitude,
		Variety:          req.Variety,
	}

	product, err := h.updateProductHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to update product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cmd := command.DeleteProductCommand{ID: vars["id"]}
	if err := h.deleteProductHandler.Handle(r.Context(), cmd); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to delete product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateProductsMetric(r)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// CreateRoastery handles POST /api/roasteries
func (h *CatalogHandler) CreateRoastery(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID          string   `json:"id,omitempty"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Website     string   `json:"website"`
		Location    string   `json:"location"`
		Founded     int      `json:"founded"`
		Specialties []string `json:"specialties"`
		LogoURL     string   `json:"logo_url"`
		BrandColor  string   `json:"brand_color"`
		IsPartner   bool     `json:"is_partner"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateRoasteryCommand{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		Founded:     req.Founded,
		Specialties: req.Specialties,
		LogoURL:     req.LogoURL,
		BrandColor:  req.BrandColor,
		IsPartner:   req.IsPartner,
	}

	roastery, err := h.createRoasteryHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create roastery")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Roastery created successfully",
		Data:    roastery,
	})
}

// DeleteRoastery handles DELETE /api/roasteries/{id}
func (h *CatalogHandler) DeleteRoastery(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cmd := command.DeleteRoasteryCommand{ID: vars["id"]}
	if err := h.deleteRoasteryHandler.Handle(r.Context(), cmd); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to delete roastery")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Roastery deleted successfully",
	})
}

// CreateCoffee handles POST /api/coffees
func (h *CatalogHandler) CreateCoffee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID                 string            `json:"id,omitempty"`
		PrimaryName        string            `json:"primary_name"`
		AlternativeNames   []string          `json:"alternative_names"`
		Origin             string            `json:"origin"`
		Region             string            `json:"region"`
		Processing         []string          `json:"processing"`
		CommonRoastLevels  []string          `json:"common_roast_levels"`
		Description        string            `json:"description"`
		CommonTastingNotes []string          `json:"common_tasting_notes"`
		CommonVarieties    []string          `json:"common_varieties"`
		AltitudeRange      string            `json:"altitude_range"`
		HarvestSeason      string            `json:"harvest_season"`
		TypicalPrice       domain.PriceRange `json:"typical_price"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateStandardCoffeeCommand{
		ID:                 req.ID,
		PrimaryName:        req.PrimaryName,
		AlternativeNames:   req.AlternativeNames,
		Origin:             req.Origin,
		Region:             req.Region,
		Processing:         req.Processing,
		CommonRoastLevels:  req.CommonRoastLevels,
		Description:        req.Description,
		CommonTastingNotes: req.CommonTastingNotes,
		CommonVarieties:    req.CommonVarieties,
		AltitudeRange:      req.AltitudeRange,
		HarvestSeason:      req.HarvestSeason,
		TypicalPrice:       req.TypicalPrice,
	}

	coffee, err := h.createCoffeeHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create standard coffee")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Standard coffee created successfully",
		Data:    coffee,
	})
}

func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if _, err := h.store.GetAll(r.Context(), domain.KindRoastery); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Catalog store unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Catalog service is healthy",
		})
	}).Methods("GET")
}

// Refresh reloads the catalog snapshot. Exposed for the Kafka consumer, which
// refreshes on every catalog change event.
func (h *CatalogHandler) Refresh(ctx context.Context) error {
	return h.engine.Refresh(ctx)
}

// updateProductsMetric updates the total products gauge
func (h *CatalogHandler) updateProductsMetric(r *http.Request) {
	stats, err := h.statsHandler.Handle(r.Context())
	if err == nil {
		h.totalProducts.Set(float64(stats.TotalProducts))
	}
}

// parseBool reads a query flag; absent or malformed values are false.
func parseBool(value string) bool {
	parsed, err := strconv.ParseBool(value)
	return err == nil && parsed
}

// parseList splits a comma-separated query value, dropping empty entries.
func parseList(value string) []string {
	if value == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
