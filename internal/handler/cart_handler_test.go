package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodie-kart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cartWith(items ...model.CartItem) *model.Cart {
	return &model.Cart{Items: items, LastUpdated: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}
}

func TestCartHandler_Cart(t *testing.T) {
	logger := zerolog.Nop()
	cart := cartWith(model.CartItem{Food: testFoods[0], Quantity: 2})

	tests := []struct {
		name           string
		method         string
		mockMethod     string
		mockReturn     *model.Cart
		mockError      error
		expectedStatus int
	}{
		{name: "Get cart", method: http.MethodGet, mockMethod: "GetCart", mockReturn: cart, expectedStatus: http.StatusOK},
		{name: "Clear cart", method: http.MethodDelete, mockMethod: "Clear", mockReturn: cartWith(), expectedStatus: http.StatusOK},
		{name: "Storage failure", method: http.MethodGet, mockMethod: "GetCart", mockError: errors.New("storage offline"), expectedStatus: http.StatusInternalServerError},
		{name: "Method not allowed", method: http.MethodPatch, expectedStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCarts := new(MockCartService)
			handler := NewCartHandler(mockCarts, new(MockCatalogService), logger)

			if tt.mockMethod != "" {
				mockCarts.On(tt.mockMethod, mock.Anything).Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, "/api/cart", nil)
			w := httptest.NewRecorder()

			handler.Cart(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockCarts.AssertExpectations(t)
		})
	}
}

func TestCartHandler_AddItem(t *testing.T) {
	logger := zerolog.Nop()
	burger := testFoods[0]

	tests := []struct {
		name             string
		requestBody      interface{}
		catalogReturn    *model.Food
		catalogError     error
		expectCatalog    bool
		expectedQuantity int
		cartError        error
		expectCart       bool
		expectedStatus   int
		expectedCode     string
	}{
		{
			name:             "Success with explicit quantity",
			requestBody:      map[string]interface{}{"foodId": "1", "quantity": 3},
			catalogReturn:    &burger,
			expectCatalog:    true,
			expectedQuantity: 3,
			expectCart:       true,
			expectedStatus:   http.StatusOK,
		},
		{
			name:             "Quantity defaults to one",
			requestBody:      map[string]interface{}{"foodId": "1"},
			catalogReturn:    &burger,
			expectCatalog:    true,
			expectedQuantity: 1,
			expectCart:       true,
			expectedStatus:   http.StatusOK,
		},
		{
			name:             "Zero quantity is rejected by the cart",
			requestBody:      map[string]interface{}{"foodId": "1", "quantity": 0},
			catalogReturn:    &burger,
			expectCatalog:    true,
			expectedQuantity: 0,
			cartError:        model.ErrInvalidQuantity,
			expectCart:       true,
			expectedStatus:   http.StatusBadRequest,
			expectedCode:     model.ErrCodeInvalidQuantity,
		},
		{
			name:           "Unknown food",
			requestBody:    map[string]interface{}{"foodId": "404"},
			catalogError:   model.ErrFoodNotFound,
			expectCatalog:  true,
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeFoodNotFound,
		},
		{
			name:           "Missing food ID",
			requestBody:    map[string]interface{}{"quantity": 2},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeMissingField,
		},
		{
			name:           "Invalid JSON",
			requestBody:    "not json",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCarts := new(MockCartService)
			mockCatalog := new(MockCatalogService)
			handler := NewCartHandler(mockCarts, mockCatalog, logger)

			var body []byte
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				var err error
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			if tt.expectCatalog {
				mockCatalog.On("GetFood", mock.Anything, mock.AnythingOfType("string")).
					Return(tt.catalogReturn, tt.catalogError)
			}
			if tt.expectCart {
				var ret *model.Cart
				if tt.cartError == nil {
					ret = cartWith(model.CartItem{Food: burger, Quantity: tt.expectedQuantity})
				}
				mockCarts.On("AddItem", mock.Anything, burger, tt.expectedQuantity).Return(ret, tt.cartError)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.AddItem(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedCode != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedCode, resp.Error)
			}

			mockCatalog.AssertExpectations(t)
			mockCarts.AssertExpectations(t)
			if !tt.expectCart {
				mockCarts.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestCartHandler_Item(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		method         string
		body           string
		mockMethod     string
		mockArgs       []interface{}
		expectedStatus int
	}{
		{
			name:           "Update quantity",
			method:         http.MethodPut,
			body:           `{"quantity": 4}`,
			mockMethod:     "UpdateQuantity",
			mockArgs:       []interface{}{mock.Anything, "1", 4},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Update to zero removes",
			method:         http.MethodPut,
			body:           `{"quantity": 0}`,
			mockMethod:     "UpdateQuantity",
			mockArgs:       []interface{}{mock.Anything, "1", 0},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Update without quantity",
			method:         http.MethodPut,
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Update with empty body",
			method:         http.MethodPut,
			body:           ``,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Remove item",
			method:         http.MethodDelete,
			mockMethod:     "RemoveItem",
			mockArgs:       []interface{}{mock.Anything, "1"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodGet,
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCarts := new(MockCartService)
			handler := NewCartHandler(mockCarts, new(MockCatalogService), logger)

			if tt.mockMethod != "" {
				mockCarts.On(tt.mockMethod, tt.mockArgs...).Return(cartWith(), nil)
			}

			req := httptest.NewRequest(tt.method, "/api/cart/items/1", bytes.NewBufferString(tt.body))
			req.SetPathValue("foodId", "1")
			w := httptest.NewRecorder()

			handler.Item(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockCarts.AssertExpectations(t)
		})
	}
}

func TestCartHandler_Total(t *testing.T) {
	logger := zerolog.Nop()
	mockCarts := new(MockCartService)
	handler := NewCartHandler(mockCarts, new(MockCatalogService), logger)

	mockCarts.On("GetCart", mock.Anything).Return(cartWith(
		model.CartItem{Food: testFoods[0], Quantity: 3},
		model.CartItem{Food: testFoods[1], Quantity: 1},
	), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/cart/total", nil)
	w := httptest.NewRecorder()

	handler.Total(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp model.CartTotalResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.InDelta(t, 36.96, resp.Total, 1e-9)
	assert.Equal(t, 4, resp.ItemCount)
}
