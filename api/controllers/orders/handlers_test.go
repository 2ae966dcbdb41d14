package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ordersvc "github.com/angelmondragon/pantrycost-backend/internal/orders"
	"github.com/angelmondragon/pantrycost-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/pantrycost-backend/pkg/errors"
)

type stubService struct {
	err       error
	calls     int
	lastInput ordersvc.CreateOrderInput
	lastID    uint
}

func (s *stubService) CreateOrder(_ context.Context, input ordersvc.CreateOrderInput) (*ordersvc.CreatedOrderDTO, error) {
	s.calls++
	s.lastInput = input
	if s.err != nil {
		return nil, s.err
	}
	return &ordersvc.CreatedOrderDTO{ID: 1, OrderName: input.Name, TotalPrice: decimal.NewFromInt(160), Message: "Order added successfully!"}, nil
}

func (s *stubService) QuoteOrder(_ context.Context, input ordersvc.CreateOrderInput) (*ordersvc.OrderQuoteDTO, error) {
	s.calls++
	s.lastInput = input
	if s.err != nil {
		return nil, s.err
	}
	return &ordersvc.OrderQuoteDTO{Items: []ordersvc.OrderLineDTO{}, TotalPrice: decimal.NewFromInt(15)}, nil
}

func (s *stubService) GetOrder(_ context.Context, id uint) (*ordersvc.OrderDTO, error) {
	s.calls++
	s.lastID = id
	if s.err != nil {
		return nil, s.err
	}
	return &ordersvc.OrderDTO{ID: id, OrderName: "Party"}, nil
}

func TestCreateMapsRequest(t *testing.T) {
	svc := &stubService{}
	body := `{"order_name":" Party ","order_date":"2026-05-01","notes":"  ","labor_cost":20,"profit_margin":"0.25",
		"items":[{"item_id":1,"item_type":"Recipe","quantity":10},{"item_id":2,"item_type":"ingredient","quantity":1}]}`

	resp := httptest.NewRecorder()
	Create(svc, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.JSONEq(t, `{"id":1,"order_name":"Party","total_price":160,"message":"Order added successfully!"}`, resp.Body.String())

	input := svc.lastInput
	assert.Equal(t, "Party", input.Name)
	require.NotNil(t, input.OrderDate)
	assert.Equal(t, "2026-05-01", input.OrderDate.String())
	assert.Nil(t, input.Notes)
	assert.True(t, input.LaborCost.Equal(decimal.NewFromInt(20)))
	assert.True(t, input.ProfitMargin.Equal(decimal.RequireFromString("0.25")))
	require.Len(t, input.Items, 2)
	assert.Equal(t, enums.OrderItemTypeRecipe, input.Items[0].ItemType)
	assert.Equal(t, 10, input.Items[0].Quantity)
}

func TestCreateOmittedPricingStaysNil(t *testing.T) {
	svc := &stubService{}
	body := `{"order_name":"Party","items":[{"item_id":1,"item_type":"recipe","quantity":1}]}`

	resp := httptest.NewRecorder()
	Create(svc, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Nil(t, svc.lastInput.LaborCost)
	assert.Nil(t, svc.lastInput.ProfitMargin)
	assert.Nil(t, svc.lastInput.OrderDate)
}

func TestCreateRejectsInvalidBodies(t *testing.T) {
	for _, body := range []string{
		`{"order_name":"Party","items":[]}`,
		`{"items":[{"item_id":1,"item_type":"recipe","quantity":1}]}`,
		`{"order_name":"Party","items":[{"item_id":1,"item_type":"recipe","quantity":0}]}`,
		`{"order_name":"Party","items":[{"item_id":1,"item_type":"recipe","quantity":1.5}]}`,
		`{"order_name":"Party","items":[{"item_id":1,"item_type":"dessert","quantity":1}]}`,
		`{"order_name":"Party","order_date":"05/01/2026","items":[{"item_id":1,"item_type":"recipe","quantity":1}]}`,
		`{"order_name":"Party","total_price":99,"items":[{"item_id":1,"item_type":"recipe","quantity":1}]}`,
	} {
		svc := &stubService{}
		resp := httptest.NewRecorder()
		Create(svc, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, resp.Code, body)
		assert.Zero(t, svc.calls, body)
	}
}

func TestQuoteAllowsEmptyItems(t *testing.T) {
	svc := &stubService{}

	resp := httptest.NewRecorder()
	Quote(svc, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/orders/quote", strings.NewReader(`{"labor_cost":15,"items":[]}`)))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, svc.lastInput.Items)
	assert.True(t, svc.lastInput.LaborCost.Equal(decimal.NewFromInt(15)))
}

func TestGetRoutesID(t *testing.T) {
	router := chi.NewRouter()
	svc := &stubService{}
	router.Get("/orders/{id}", Get(svc, nil))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/orders/7", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, uint(7), svc.lastID)

	notFound := chi.NewRouter()
	notFound.Get("/orders/{id}", Get(&stubService{err: pkgerrors.New(pkgerrors.CodeNotFound, "order not found")}, nil))
	resp = httptest.NewRecorder()
	notFound.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/orders/7", nil))
	require.Equal(t, http.StatusNotFound, resp.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, "order not found", payload["error"])
}

func TestMain(m *testing.M) {
	decimal.MarshalJSONWithoutQuotes = true
	m.Run()
}
