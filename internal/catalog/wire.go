//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/beanscout/beanscout/internal/catalog/delivery/http"
	"github.com/beanscout/beanscout/internal/catalog/domain"
	"github.com/beanscout/beanscout/internal/catalog/reviews"
	"github.com/beanscout/beanscout/internal/catalog/search"
	"github.com/beanscout/beanscout/internal/catalog/usecase/command"
	"github.com/beanscout/beanscout/internal/catalog/usecase/query"
)

// ProvideCache provides the catalog snapshot cache
func ProvideCache(store domain.CatalogStore) *search.Cache {
	return search.NewCache(store)
}

// ProvideEngine provides the search engine
func ProvideEngine(cache *search.Cache) *search.Engine {
	return search.NewEngine(cache)
}

// Command Handlers Providers
func ProvideCreateProductHandler(store domain.CatalogStore, cache *search.Cache, notifier command.Notifier) *command.CreateProductHandler {
	return command.NewCreateProductHandler(store, cache, notifier)
}

func ProvideUpdateProductHandler(store domain.CatalogStore, cache *search.Cache, notifier command.Notifier) *command.UpdateProductHandler {
	return command.NewUpdateProductHandler(store, cache, notifier)
}

func ProvideDeleteProductHandler(store domain.CatalogStore, cache *search.Cache, notifier command.Notifier) *command.DeleteProductHandler {
	return command.NewDeleteProductHandler(store, cache, notifier)
}

func ProvideCreateRoasteryHandler(store domain.CatalogStore, cache *search.Cache, notifier command.Notifier) *command.CreateRoasteryHandler {
	return command.NewCreateRoasteryHandler(store, cache, notifier)
}

func ProvideDeleteRoasteryHandler(store domain.CatalogStore, cache *search.Cache, notifier command.Notifier) *command.DeleteRoasteryHandler {
	return command.NewDeleteRoasteryHandler(store, cache, notifier)
}

func ProvideCreateStandardCoffeeHandler(store domain.CatalogStore, cache *search.Cache, notifier command.Notifier) *command.CreateStandardCoffeeHandler {
	return command.NewCreateStandardCoffeeHandler(store, cache, notifier)
}

// Query Handlers Providers
func ProvideSearchCoffeesHandler(engine *search.Engine) *query.SearchCoffeesHandler {
	return query.NewSearchCoffeesHandler(engine)
}

func ProvideFilterOptionsHandler(engine *search.Engine) *query.FilterOptionsHandler {
	return query.NewFilterOptionsHandler(engine)
}

func ProvideGetStatsHandler(engine *search.Engine) *query.GetStatsHandler {
	return query.NewGetStatsHandler(engine)
}

func ProvideGetProductHandler(store domain.CatalogStore) *query.GetProductHandler {
	return query.NewGetProductHandler(store)
}

func ProvideListRoasteriesHandler(store domain.CatalogStore) *query.ListRoasteriesHandler {
	return query.NewListRoasteriesHandler(store)
}

func ProvideListStandardCoffeesHandler(store domain.CatalogStore) *query.ListStandardCoffeesHandler {
	return query.NewListStandardCoffeesHandler(store)
}

// Wire sets
var SearchSet = wire.NewSet(
	ProvideCache,
	ProvideEngine,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateProductHandler,
	ProvideUpdateProductHandler,
	ProvideDeleteProductHandler,
	ProvideCreateRoasteryHandler,
	ProvideDeleteRoasteryHandler,
	ProvideCreateStandardCoffeeHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideSearchCoffeesHandler,
	ProvideFilterOptionsHandler,
	ProvideGetStatsHandler,
	ProvideGetProductHandler,
	ProvideListRoasteriesHandler,
	ProvideListStandardCoffeesHandler,
)

var AllHandlersSet = wire.NewSet(
	SearchSet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(
	store domain.CatalogStore,
	reviewsProvider reviews.Provider,
	notifier command.Notifier,
	registerer prometheus.Registerer,
) (*http.CatalogHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewCatalogHandlerWithDI,
	)
	return nil, nil
}
