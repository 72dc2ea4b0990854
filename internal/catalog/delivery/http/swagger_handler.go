package http

// ListProducts godoc
// @Summary List products
// @Description Filtered, sorted and paginated product listing. Missing or invalid parameters fall back to their defaults.
// @Tags Catalog
// @Produce json
// @Param category query string false "Category or all" default(all)
// @Param sort query string false "default, price-low-high, price-high-low, rating-high-low, newest" default(default)
// @Param minPrice query number false "Lowest effective price" default(0)
// @Param maxPrice query number false "Highest effective price" default(3000)
// @Param inStock query bool false "Only items in stock" default(false)
// @Param search query string false "Case-insensitive text in name or description"
// @Param page query int false "1-based page" default(1)
// @Success 200 {object} object{success=bool,data=object{items=array,page=int,page_size=int,total=int,total_pages=int,query=string}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products [get]
func (h *CatalogHandler) ListProductsDoc() {}

// ListPandits godoc
// @Summary List pandits
// @Description Filtered, sorted and paginated pandit listing
// @Tags Catalog
// @Produce json
// @Param category query string false "Expertise category or all" default(all)
// @Param sort query string false "Sort option" default(default)
// @Param minPrice query number false "Lowest effective price" default(0)
// @Param maxPrice query number false "Highest effective price" default(50000)
// @Param search query string false "Case-insensitive text in name or description"
// @Param location query string false "City"
// @Param language query string false "Spoken language"
// @Param rating query number false "Minimum rating"
// @Param page query int false "1-based page" default(1)
// @Success 200 {object} object{success=bool,data=object{items=array,page=int,page_size=int,total=int,total_pages=int,query=string}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/pandits [get]
func (h *CatalogHandler) ListPanditsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProductDoc() {}

// GetPandit godoc
// @Summary Get pandit by ID
// @Tags Catalog
// @Produce json
// @Param id path string true "Pandit ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/pandits/{id} [get]
func (h *CatalogHandler) GetPanditDoc() {}

// GetProductStats godoc
// @Summary Get product statistics
// @Description Counts, price bounds and per-category totals
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,data=object{total=int,in_stock=int,featured=int,min_price=string,max_price=string,categories=object}}
// @Router /api/products/stats [get]
func (h *CatalogHandler) GetProductStatsDoc() {}

// GetRelatedProducts godoc
// @Summary Related products
// @Description Up to four products from the same category
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id}/related [get]
func (h *CatalogHandler) GetRelatedProductsDoc() {}
