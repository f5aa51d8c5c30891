// internal/handlers/catalog_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/machineryhub/b2b-backend/internal/catalog"
	"github.com/machineryhub/b2b-backend/internal/store"
)

type staticPicker struct{}

func (staticPicker) Pick(category string) string {
	return "https://img.test/" + category + ".jpg"
}

type noopNotifier struct{}

func (noopNotifier) NotifyContact(ctx context.Context, ev catalog.ContactEvent) {}

type CatalogHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	service := catalog.NewService(store.NewMemory(), noopNotifier{}, staticPicker{})
	suite.Require().NoError(service.SeedIfEmpty(context.Background()))

	handler := NewCatalogHandler(service)

	suite.router = gin.New()
	api := suite.router.Group("/api")
	{
		api.GET("/products", handler.ListProducts)
		api.GET("/products/:id", handler.GetProduct)
		api.POST("/contact", handler.ContactSupplier)
		api.POST("/scrape", handler.ScrapeProducts)
		api.GET("/stats", handler.GetStats)
	}
}

func (suite *CatalogHandlerTestSuite) request(method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return w, response
}

func (suite *CatalogHandlerTestSuite) TestListProducts() {
	w, response := suite.request("GET", "/api/products", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.True(suite.T(), response["success"].(bool))
	assert.Equal(suite.T(), float64(10), response["count"])
	assert.Equal(suite.T(), float64(1), response["page"])
	assert.Equal(suite.T(), float64(20), response["per_page"])
	assert.Equal(suite.T(), float64(1), response["total_pages"])
	assert.Len(suite.T(), response["products"], 10)
}

func (suite *CatalogHandlerTestSuite) TestListProductsFilteredAndPaged() {
	w, response := suite.request("GET", "/api/products?category=cnc&per_page=3&page=2", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), float64(5), response["count"])
	assert.Equal(suite.T(), float64(2), response["total_pages"])
	assert.Len(suite.T(), response["products"], 2)

	for _, raw := range response["products"].([]interface{}) {
		product := raw.(map[string]interface{})
		assert.Equal(suite.T(), "cnc", product["category"])
	}
}

func (suite *CatalogHandlerTestSuite) TestListProductsCoercesMalformedInput() {
	w, response := suite.request("GET", "/api/products?page=abc&per_page=-5", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), float64(1), response["page"])
	assert.Equal(suite.T(), float64(20), response["per_page"])
}

func (suite *CatalogHandlerTestSuite) TestListProductsBeyondLastPage() {
	w, response := suite.request("GET", "/api/products?page=50", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), float64(10), response["count"])
	assert.Empty(suite.T(), response["products"])
}

func (suite *CatalogHandlerTestSuite) TestGetProductDetail() {
	w, response := suite.request("GET", "/api/products/1", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.True(suite.T(), response["success"].(bool))

	product := response["product"].(map[string]interface{})
	assert.Equal(suite.T(), "CNC Vertical Machining Center 3 Axis", product["product_name"])
	assert.NotEmpty(suite.T(), product["image_url"])
}

func (suite *CatalogHandlerTestSuite) TestGetProductDetailNotFound() {
	w, response := suite.request("GET", "/api/products/999", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.False(suite.T(), response["success"].(bool))
	assert.Equal(suite.T(), "Product not found", response["error"])

	// Non-numeric ids are not an error class of their own.
	w, _ = suite.request("GET", "/api/products/abc", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *CatalogHandlerTestSuite) TestContactSupplier() {
	w, response := suite.request("POST", "/api/contact", map[string]interface{}{
		"product_id":  1,
		"buyer_name":  "Jane Buyer",
		"buyer_email": "jane@example.com",
		"message":     "Please quote for 2 units",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.True(suite.T(), response["success"].(bool))
	assert.Equal(suite.T(), "Your inquiry has been sent to Shanghai Precision Machinery Ltd.", response["message"])
}

func (suite *CatalogHandlerTestSuite) TestContactSupplierUnknownProduct() {
	w, response := suite.request("POST", "/api/contact", map[string]interface{}{
		"product_id":  -1,
		"buyer_name":  "Jane Buyer",
		"buyer_email": "jane@example.com",
		"message":     "Please quote",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "Product not found", response["error"])
}

func (suite *CatalogHandlerTestSuite) TestContactSupplierValidation() {
	w, response := suite.request("POST", "/api/contact", map[string]interface{}{
		"product_id": 1,
		"buyer_name": "Jane Buyer",
		"message":    "Missing email",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.False(suite.T(), response["success"].(bool))
}

func (suite *CatalogHandlerTestSuite) TestScrapeProducts() {
	w, response := suite.request("POST", "/api/scrape", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.True(suite.T(), response["success"].(bool))
	assert.Equal(suite.T(), "Successfully added 10 new products", response["message"])
	assert.Equal(suite.T(), float64(20), response["total_products"])
}

func (suite *CatalogHandlerTestSuite) TestGetStats() {
	w, response := suite.request("GET", "/api/stats", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.True(suite.T(), response["success"].(bool))
	assert.Equal(suite.T(), float64(10), response["total_products"])
	assert.Equal(suite.T(), float64(7), response["total_suppliers"])

	categories := response["categories"].(map[string]interface{})
	assert.Equal(suite.T(), float64(5), categories["cnc"])

	locations := response["locations"].(map[string]interface{})
	assert.Equal(suite.T(), float64(5), locations["china"])
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}
