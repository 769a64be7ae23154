// internal/services/cart_service_test.go
package services

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/shopkart/backend/internal/models"
)

// memStore is an in-memory stand-in for the blob store with the same missing
// key semantics: a key never written leaves the destination untouched.
type memStore struct {
	blobs map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{blobs: make(map[string][]byte)}
}

func (m *memStore) Load(key string, out interface{}) error {
	data, ok := m.blobs[key]
	if !ok {
		return nil
	}
	return json.Unmarshal(data, out)
}

func (m *memStore) Save(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.blobs[key] = data
	return nil
}

func (m *memStore) Delete(key string) error {
	delete(m.blobs, key)
	return nil
}

// stubCatalog resolves products from a fixed map.
type stubCatalog struct {
	products map[uuid.UUID]*models.Product
}

func (s *stubCatalog) FetchProduct(id uuid.UUID) (*models.Product, error) {
	if product, ok := s.products[id]; ok {
		return product, nil
	}
	return nil, fmt.Errorf("product not found")
}

type CartServiceTestSuite struct {
	suite.Suite
	service *CartService
	phone   *models.Product
	shoes   *models.Product
}

func (suite *CartServiceTestSuite) SetupTest() {
	phone := &models.Product{Name: "iPhone 15", Price: 300}
	phone.ID = uuid.New()
	shoes := &models.Product{Name: "Running Shoes", Price: 250}
	shoes.ID = uuid.New()

	catalog := &stubCatalog{products: map[uuid.UUID]*models.Product{
		phone.ID: phone,
		shoes.ID: shoes,
	}}

	suite.service = NewCartService(newMemStore(), catalog)
	suite.phone = phone
	suite.shoes = shoes
}

func (suite *CartServiceTestSuite) TestEmptyCart() {
	items, err := suite.service.Items("cart")
	suite.NoError(err)
	suite.Empty(items)
}

func (suite *CartServiceTestSuite) TestAddMergesExistingLine() {
	_, err := suite.service.Add("cart", suite.phone.ID.String(), 1)
	suite.NoError(err)

	items, err := suite.service.Add("cart", suite.phone.ID.String(), 1)
	suite.NoError(err)

	suite.Len(items, 1)
	suite.Equal(2, items[0].Quantity)
	suite.Equal(suite.phone.ID.String(), items[0].ProductID)
}

func (suite *CartServiceTestSuite) TestAddAppendsNewProduct() {
	_, err := suite.service.Add("cart", suite.phone.ID.String(), 1)
	suite.NoError(err)

	items, err := suite.service.Add("cart", suite.shoes.ID.String(), 2)
	suite.NoError(err)

	suite.Len(items, 2)
	suite.Equal(suite.phone.ID.String(), items[0].ProductID)
	suite.Equal(suite.shoes.ID.String(), items[1].ProductID)
	suite.Equal(2, items[1].Quantity)
}

func (suite *CartServiceTestSuite) TestAddClampsQuantity() {
	items, err := suite.service.Add("cart", suite.phone.ID.String(), 0)
	suite.NoError(err)

	suite.Len(items, 1)
	suite.Equal(1, items[0].Quantity)
}

func (suite *CartServiceTestSuite) TestSetQuantity() {
	items, err := suite.service.Add("cart", suite.phone.ID.String(), 1)
	suite.NoError(err)

	items, err = suite.service.SetQuantity("cart", items[0].ID, 5)
	suite.NoError(err)

	suite.Len(items, 1)
	suite.Equal(5, items[0].Quantity)
}

func (suite *CartServiceTestSuite) TestSetQuantityZeroDeletesLine() {
	items, err := suite.service.Add("cart", suite.phone.ID.String(), 3)
	suite.NoError(err)
	lineID := items[0].ID

	items, err = suite.service.SetQuantity("cart", lineID, 0)
	suite.NoError(err)
	suite.Empty(items)

	// Repeating the delete is a no-op, not an error.
	items, err = suite.service.SetQuantity("cart", lineID, 0)
	suite.NoError(err)
	suite.Empty(items)
}

func (suite *CartServiceTestSuite) TestSetQuantityUnknownLineIsNoOp() {
	_, err := suite.service.Add("cart", suite.phone.ID.String(), 1)
	suite.NoError(err)

	items, err := suite.service.SetQuantity("cart", "no-such-line", 9)
	suite.NoError(err)

	suite.Len(items, 1)
	suite.Equal(1, items[0].Quantity)
}

func (suite *CartServiceTestSuite) TestRemove() {
	items, err := suite.service.Add("cart", suite.phone.ID.String(), 1)
	suite.NoError(err)

	items, err = suite.service.Remove("cart", items[0].ID)
	suite.NoError(err)
	suite.Empty(items)
}

func (suite *CartServiceTestSuite) TestClear() {
	_, err := suite.service.Add("cart", suite.phone.ID.String(), 1)
	suite.NoError(err)

	suite.NoError(suite.service.Clear("cart"))

	items, err := suite.service.Items("cart")
	suite.NoError(err)
	suite.Empty(items)
}

func (suite *CartServiceTestSuite) TestKeysAreIsolated() {
	_, err := suite.service.Add("cart-a", suite.phone.ID.String(), 1)
	suite.NoError(err)

	items, err := suite.service.Items("cart-b")
	suite.NoError(err)
	suite.Empty(items)
}

func (suite *CartServiceTestSuite) TestUnresolvedProductKeepsLine() {
	items, err := suite.service.Add("cart", uuid.NewString(), 1)
	suite.NoError(err)

	suite.Len(items, 1)
	suite.Nil(items[0].Product)

	// A stale line contributes nothing to the totals.
	totals := suite.service.Totals(items)
	suite.Equal(0.0, totals.Subtotal)
}

func (suite *CartServiceTestSuite) TestTotalsEndToEnd() {
	_, err := suite.service.Add("cart", suite.phone.ID.String(), 1)
	suite.NoError(err)
	items, err := suite.service.Add("cart", suite.shoes.ID.String(), 2)
	suite.NoError(err)

	totals := suite.service.Totals(items)
	suite.Equal(800.0, totals.Subtotal)
	suite.Equal(0.0, totals.ShippingCost)
	suite.Equal(800.0, totals.GrandTotal)
}

func TestCartServiceSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}
