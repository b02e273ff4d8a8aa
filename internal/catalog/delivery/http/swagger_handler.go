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
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// Search godoc
// @Summary Search the catalog
// @Description Search coffees, roasteries and product listings, grouped under standard coffees with price statistics
// @Tags Search
// @Produce json
// @Param q query string true "Search term"
// @Param partners query bool false "Only partner roasteries"
// @Param roast query string false "Comma-separated roast levels"
// @Param processing query string false "Comma-separated processing methods"
// @Param discontinued query bool false "Include discontinued listings"
// @Success 200 {object} object{success=bool,data=object{query=string,results=array,count=int,skipped_products=array}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/search [get]
func (h *CatalogHandler) SearchDoc() {}

// RefreshSnapshot godoc
// @Summary Refresh the catalog snapshot
// @Description Drop the cached catalog snapshot and reload it from the store
// @Tags Search
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/search/refresh [post]
func (h *CatalogHandler) RefreshSnapshotDoc() {}

// ListRoastLevels godoc
// @Summary List roast levels
// @Description List the distinct roast levels present in the catalog
// @Tags Filters
// @Produce json
// @Success 200 {object} object{success=bool,data=object{roast_levels=array}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/filters/roast-levels [get]
func (h *CatalogHandler) ListRoastLevelsDoc() {}

// ListProcessingMethods godoc
// @Summary List processing methods
// @Description List the distinct processing methods present in the catalog
// @Tags Filters
// @Produce json
// @Success 200 {object} object{success=bool,data=object{processing_methods=array}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/filters/processing-methods [get]
func (h *CatalogHandler) ListProcessingMethodsDoc() {}

// GetStats godoc
// @Summary Get catalog statistics
// @Description Get record totals per kind and the overall price range
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/stats [get]
func (h *CatalogHandler) GetStatsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Description Get a specific product listing by its ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProductDoc() {}

// CreateProduct godoc
// @Summary Create a product listing
// @Description Create a new product listing under an existing roastery
// @Tags Products
// @Accept json
// @Produce json
// @Param request body object{roastery_id=string,name=string,standard_coffee_id=string,origin=string,price=int,in_stock=bool,sale_status=string} true "Product data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/products [post]
func (h *CatalogHandler) CreateProductDoc() {}

// UpdateProduct godoc
// @Summary Update a product listing
// @Description Replace an existing product listing
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body object{roastery_id=string,name=string,standard_coffee_id=string,origin=string,price=int,in_stock=bool,sale_status=string} true "Product data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/products/{id} [put]
func (h *CatalogHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Delete a product listing
// @Description Delete a product listing by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/products/{id} [delete]
func (h *CatalogHandler) DeleteProductDoc() {}

// ListRoasteries godoc
// @Summary List roasteries
// @Description Get every roastery in the catalog
// @Tags Roasteries
// @Produce json
// @Success 200 {object} object{success=bool,data=object{roasteries=array,total=int}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/roasteries [get]
func (h *CatalogHandler) ListRoasteriesDoc() {}

// CreateRoastery godoc
// @Summary Create a roastery
// @Description Create a new roastery
// @Tags Roasteries
// @Accept json
// @Produce json
// @Param request body object{name=string,location=string,website=string,is_partner=bool} true "Roastery data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/roasteries [post]
func (h *CatalogHandler) CreateRoasteryDoc() {}

// DeleteRoastery godoc
// @Summary Delete a roastery
// @Description Delete a roastery by ID; its listings become dangling and are skipped in search results
// @Tags Roasteries
// @Produce json
// @Param id path string true "Roastery ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/roasteries/{id} [delete]
func (h *CatalogHandler) DeleteRoasteryDoc() {}

// ListCoffees godoc
// @Summary List standard coffees
// @Description Get every canonical coffee record in the catalog
// @Tags Coffees
// @Produce json
// @Success 200 {object} object{success=bool,data=object{coffees=array,total=int}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/coffees [get]
func (h *CatalogHandler) ListCoffeesDoc() {}

// CreateCoffee godoc
// @Summary Create a standard coffee
// @Description Create a new canonical coffee record
// @Tags Coffees
// @Accept json
// @Produce json
// @Param request body object{primary_name=string,alternative_names=array,origin=string,region=string} true "Standard coffee data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/coffees [post]
func (h *CatalogHandler) CreateCoffeeDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and catalog store connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *CatalogHandler) HealthCheckDoc() {}
