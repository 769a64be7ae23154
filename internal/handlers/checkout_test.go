// internal/handlers/checkout_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/shopkart/backend/internal/config"
	"github.com/shopkart/backend/internal/middleware"
	"github.com/shopkart/backend/internal/models"
	"github.com/shopkart/backend/internal/services"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	cartService *services.CartService
	phone       *models.Product
}

func (suite *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	phone := &models.Product{Name: "iPhone 15", Price: 300}
	phone.ID = uuid.New()
	suite.phone = phone

	catalog := &stubCatalog{products: map[uuid.UUID]*models.Product{phone.ID: phone}}
	suite.cartService = services.NewCartService(newMemStore(), catalog)

	cfg := &config.Config{}
	paymentService := services.NewPaymentService(cfg)

	// Rejection paths return before any database write, so the order service
	// runs without a connection.
	orderService := services.NewOrderService(nil, suite.cartService, nil)
	checkoutHandler := NewCheckoutHandler(orderService, paymentService)

	suite.router = gin.New()
	suite.router.Use(middleware.SessionKeys("test_cart", "test_wishlist"))
	suite.router.POST("/checkout", checkoutHandler.Checkout)
}

func (suite *CheckoutHandlerTestSuite) checkout(payment map[string]interface{}, address map[string]interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]interface{}{
		"address": address,
		"payment": payment,
	})
	req, _ := http.NewRequest("POST", "/checkout", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func validAddressBody() map[string]interface{} {
	return map[string]interface{}{
		"name":    "Test Shopper",
		"phone":   "9876543210",
		"address": "12 MG Road",
		"city":    "Bengaluru",
		"state":   "Karnataka",
		"pincode": "560001",
	}
}

func (suite *CheckoutHandlerTestSuite) TestCheckoutInvalidAddress() {
	address := validAddressBody()
	address["phone"] = "12345"

	w := suite.checkout(map[string]interface{}{"method": "COD"}, address)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(suite.T(), response["success"].(bool))

	apiError := response["error"].(map[string]interface{})
	assert.Equal(suite.T(), "VALIDATION_ERROR", apiError["code"])
}

func (suite *CheckoutHandlerTestSuite) TestCheckoutPaymentFailureLeavesCartIntact() {
	_, err := suite.cartService.Add("test_cart", suite.phone.ID.String(), 1)
	assert.NoError(suite.T(), err)

	w := suite.checkout(map[string]interface{}{
		"method": "UPI",
		"upi_id": "not-a-upi-id",
	}, validAddressBody())

	// Payment runs before order creation; a failed payment must leave the
	// cart untouched and write nothing.
	assert.Equal(suite.T(), http.StatusPaymentRequired, w.Code)

	var response map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	apiError := response["error"].(map[string]interface{})
	assert.Equal(suite.T(), "PAYMENT_FAILED", apiError["code"])
	assert.Equal(suite.T(), "Invalid UPI ID", apiError["message"])

	items, err := suite.cartService.Items("test_cart")
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), items, 1)
}

func (suite *CheckoutHandlerTestSuite) TestCheckoutEmptyCart() {
	w := suite.checkout(map[string]interface{}{"method": "COD"}, validAddressBody())
	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	var response map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	apiError := response["error"].(map[string]interface{})
	assert.Equal(suite.T(), "CONFLICT", apiError["code"])
}

func (suite *CheckoutHandlerTestSuite) TestCheckoutInvalidMethod() {
	w := suite.checkout(map[string]interface{}{"method": "BITCOIN"}, validAddressBody())
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}
