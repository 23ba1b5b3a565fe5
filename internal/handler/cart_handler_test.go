package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/model"
	"shopfront/internal/service"
)

// recordingCartService counts delegated calls so tests can assert that
// malformed requests never reach the data layer.
type recordingCartService struct {
	addCalls    int
	updateCalls int
	removeCalls int
}

func (s *recordingCartService) List(ctx context.Context, username string) ([]model.CartLine, error) {
	return nil, nil
}

func (s *recordingCartService) Stock(ctx context.Context, username string) ([]model.CartStock, error) {
	return []model.CartStock{{Username: username, Sequence: 1, QuantityInCart: 2, QuantityOnHand: 7}}, nil
}

func (s *recordingCartService) Add(ctx context.Context, in service.AddItemInput) error {
	s.addCalls++
	return nil
}

func (s *recordingCartService) UpdateQuantity(ctx context.Context, username string, sequence, newQuantity int) error {
	s.updateCalls++
	return nil
}

func (s *recordingCartService) Remove(ctx context.Context, username string, sequence int) error {
	s.removeCalls++
	return nil
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newCartTestEnv() (*echo.Echo, *CartHandler, *recordingCartService) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	svc := &recordingCartService{}
	return e, NewCartHandler(svc, nil), svc
}

func doGet(e *echo.Echo, target string, h echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, h(c)
}

func TestCartHandler_InsertIntoCart(t *testing.T) {
	e, h, svc := newCartTestEnv()

	rec, err := doGet(e, "/db/insertIntoCart?username=alice"+
		"&inventory_quantities_inventory_model=TEE100"+
		"&inventory_quantities_size=M"+
		"&inventory_quantities_color_color_code=BLK"+
		"&inventory_quantities_gender=unisex"+
		"&quantity_in_cart=2", h.InsertIntoCart)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.addCalls)
}

func TestCartHandler_InsertIntoCart_RejectsBeforeDataStore(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{
			name: "missing username",
			target: "/db/insertIntoCart?inventory_quantities_inventory_model=TEE100" +
				"&inventory_quantities_size=M&inventory_quantities_color_color_code=BLK" +
				"&inventory_quantities_gender=unisex&quantity_in_cart=2",
		},
		{
			name: "missing quantity",
			target: "/db/insertIntoCart?username=alice&inventory_quantities_inventory_model=TEE100" +
				"&inventory_quantities_size=M&inventory_quantities_color_color_code=BLK" +
				"&inventory_quantities_gender=unisex",
		},
		{
			name: "zero quantity",
			target: "/db/insertIntoCart?username=alice&inventory_quantities_inventory_model=TEE100" +
				"&inventory_quantities_size=M&inventory_quantities_color_color_code=BLK" +
				"&inventory_quantities_gender=unisex&quantity_in_cart=0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, h, svc := newCartTestEnv()

			_, err := doGet(e, tt.target, h.InsertIntoCart)

			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
			assert.Zero(t, svc.addCalls)
		})
	}
}

func TestCartHandler_UpdateCartQuantity(t *testing.T) {
	e, h, svc := newCartTestEnv()

	rec, err := doGet(e, "/api/updateCartQuantity?newQuantity=5&username=alice&sequence=1", h.UpdateCartQuantity)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.updateCalls)

	_, err = doGet(e, "/api/updateCartQuantity?newQuantity=5&sequence=1", h.UpdateCartQuantity)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Equal(t, 1, svc.updateCalls)
}

// An omitted newQuantity must reject, never coerce to zero and empty the
// cart line. An explicit newQuantity=0 stays legal.
func TestCartHandler_UpdateCartQuantity_MissingQuantity(t *testing.T) {
	e, h, svc := newCartTestEnv()

	_, err := doGet(e, "/api/updateCartQuantity?username=alice&sequence=1", h.UpdateCartQuantity)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Zero(t, svc.updateCalls)

	rec, err := doGet(e, "/api/updateCartQuantity?newQuantity=0&username=alice&sequence=1", h.UpdateCartQuantity)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.updateCalls)
}

func TestCartHandler_DeleteFromCart(t *testing.T) {
	e, h, svc := newCartTestEnv()

	rec, err := doGet(e, "/api/deleteFromCart?username=alice&sequence=1", h.DeleteFromCart)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.removeCalls)
}

func TestCartHandler_GetInventoryForCartItems(t *testing.T) {
	e, h, _ := newCartTestEnv()

	rec, err := doGet(e, "/api/getInventoryForCartItems?username=alice", h.GetInventoryForCartItems)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quantity_on_hand":7`)
}
