package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beanscout/beanscout/internal/catalog/domain"
	"github.com/beanscout/beanscout/internal/catalog/repository"
	"github.com/beanscout/beanscout/internal/catalog/reviews"
	"github.com/beanscout/beanscout/internal/catalog/search"
	"github.com/beanscout/beanscout/internal/catalog/usecase/command"
	"github.com/beanscout/beanscout/internal/catalog/usecase/query"
)

type stubReviews struct {
	stats map[string]domain.ReviewStats
}

func (s *stubReviews) StatsFor(ctx context.Context, ids []string) (map[string]domain.ReviewStats, error) {
	out := make(map[string]domain.ReviewStats)
	for _, id := range ids {
		if stat, ok := s.stats[id]; ok {
			out[id] = stat
		}
	}
	return out, nil
}

func newTestHandler(t *testing.T, reviewsProvider reviews.Provider) (*CatalogHandler, *repository.MemoryCatalogStore) {
	t.Helper()
	store := repository.NewMemoryCatalogStore()

	require.NoError(t, store.Seed(domain.KindRoastery, "roast-1", domain.Roastery{
		ID: "roast-1", Name: "빈브라더스", IsPartner: true,
	}))
	require.NoError(t, store.Seed(domain.KindStandardCoffee, "std-1", domain.StandardCoffee{
		ID: "std-1", PrimaryName: "예가체프", Origin: "에티오피아",
	}))
	require.NoError(t, store.Seed(domain.KindProduct, "p1", domain.Product{
		ID: "p1", RoasteryID: "roast-1", StandardCoffeeID: "std-1",
		Name: "에티오피아 예가체프", Price: 25000, RoastLevel: "라이트",
		Processing: "워시드", InStock: true, SaleStatus: domain.SaleStatusActive,
	}))

	if reviewsProvider == nil {
		reviewsProvider = reviews.NoopProvider{}
	}

	cache := search.NewCache(store)
	engine := search.NewEngine(cache)

	handler := newCatalogHandler(
		command.NewCreateProductHandler(store, cache, nil),
		command.NewUpdateProductHandler(store, cache, nil),
		command.NewDeleteProductHandler(store, cache, nil),
		command.NewCreateRoasteryHandler(store, cache, nil),
		command.NewDeleteRoasteryHandler(store, cache, nil),
		command.NewCreateStandardCoffeeHandler(store, cache, nil),
		query.NewSearchCoffeesHandler(engine),
		query.NewFilterOptionsHandler(engine),
		query.NewGetStatsHandler(engine),
		query.NewGetProductHandler(store),
		query.NewListRoasteriesHandler(store),
		query.NewListStandardCoffeesHandler(store),
		engine,
		store,
		reviewsProvider,
		prometheus.NewRegistry(),
	)
	return handler, store
}

func newTestRouter(t *testing.T, reviewsProvider reviews.Provider) (*mux.Router, *repository.MemoryCatalogStore) {
	t.Helper()
	handler, store := newTestHandler(t, reviewsProvider)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router)
	return router, store
}

func doRequest(router *mux.Router, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSearchEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := doRequest(router, "GET", "/api/search?q=예가체프", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "예가체프", data["query"])
	assert.Equal(t, float64(1), data["count"])

	results := data["results"].([]interface{})
	first := results[0].(map[string]interface{})
	coffee := first["standard_coffee"].(map[string]interface{})
	assert.Equal(t, "std-1", coffee["id"])
	assert.Equal(t, float64(25000), first["lowest_price"])
}

func TestSearchEndpointWithFilters(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := doRequest(router, "GET", "/api/search?q=예가체프&roast=다크", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeResponse(t, rec).Data.(map[string]interface{})
	assert.Equal(t, float64(0), data["count"])
}

func TestSearchEndpointReviewDecoration(t *testing.T) {
	provider := &stubReviews{stats: map[string]domain.ReviewStats{
		"std-1": {AvgRating: 4.5, TotalCount: 12},
	}}
	router, _ := newTestRouter(t, provider)

	rec := doRequest(router, "GET", "/api/search?q=예가체프", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeResponse(t, rec).Data.(map[string]interface{})
	first := data["results"].([]interface{})[0].(map[string]interface{})
	review := first["reviews"].(map[string]interface{})
	assert.Equal(t, 4.5, review["avg_rating"])
	assert.Equal(t, float64(12), review["total_count"])
}

func TestFilterOptionEndpoints(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := doRequest(router, "GET", "/api/filters/roast-levels", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeResponse(t, rec).Data.(map[string]interface{})
	assert.Equal(t, []interface{}{"라이트"}, data["roast_levels"])

	rec = doRequest(router, "GET", "/api/filters/processing-methods", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data = decodeResponse(t, rec).Data.(map[string]interface{})
	assert.Equal(t, []interface{}{"워시드"}, data["processing_methods"])
}

func TestRefreshEndpoint(t *testing.T) {
	router, store := newTestRouter(t, nil)

	rec := doRequest(router, "GET", "/api/search?q=케냐", "")
	data := decodeResponse(t, rec).Data.(map[string]interface{})
	assert.Equal(t, float64(0), data["count"])

	require.NoError(t, store.Seed(domain.KindProduct, "p2", domain.Product{
		ID: "p2", RoasteryID: "roast-1", Name: "케냐 AA", Price: 30000,
		InStock: true, SaleStatus: domain.SaleStatusActive,
	}))

	rec = doRequest(router, "POST", "/api/search/refresh", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeResponse(t, rec).Success)

	rec = doRequest(router, "GET", "/api/search?q=케냐", "")
	data = decodeResponse(t, rec).Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])
}

func TestStatsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := doRequest(router, "GET", "/api/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeResponse(t, rec).Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["total_roasteries"])
	assert.Equal(t, float64(1), data["total_standard_coffees"])
	assert.Equal(t, float64(1), data["total_products"])
}

func TestProductCRUDEndpoints(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	body := `{"roastery_id":"roast-1","name":"케냐 AA","price":30000,"in_stock":true}`
	rec := doRequest(router, "POST", "/api/products", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeResponse(t, rec)
	created := resp.Data.(map[string]interface{})
	id := created["id"].(string)
	require.NotEmpty(t, id)

	rec = doRequest(router, "GET", "/api/products/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, "PUT", "/api/products/"+id, `{"roastery_id":"roast-1","name":"케냐 AA 탑","price":33000,"in_stock":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, "DELETE", "/api/products/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, "GET", "/api/products/"+id, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProductRejectsInvalid(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := doRequest(router, "POST", "/api/products", `{"name":"no roastery","price":1000}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeResponse(t, rec).Success)

	rec = doRequest(router, "POST", "/api/products", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoasteryAndCoffeeEndpoints(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := doRequest(router, "GET", "/api/roasteries", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeResponse(t, rec).Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])

	rec = doRequest(router, "POST", "/api/roasteries", `{"name":"커피리브레","location":"서울"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(router, "POST", "/api/coffees", `{"primary_name":"게이샤","origin":"파나마"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(router, "GET", "/api/coffees", "")
	data = decodeResponse(t, rec).Data.(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := doRequest(router, "GET", "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeResponse(t, rec).Success)
}
