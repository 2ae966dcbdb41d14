package ingredients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ingredientsvc "github.com/angelmondragon/pantrycost-backend/internal/ingredients"
	"github.com/angelmondragon/pantrycost-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/pantrycost-backend/pkg/errors"
	"github.com/angelmondragon/pantrycost-backend/pkg/types"
)

type stubService struct {
	created   *ingredientsvc.CreatedIngredientDTO
	list      []ingredientsvc.IngredientDTO
	err       error
	calls     int
	lastInput ingredientsvc.CreateIngredientInput
}

func (s *stubService) CreateIngredient(_ context.Context, input ingredientsvc.CreateIngredientInput) (*ingredientsvc.CreatedIngredientDTO, error) {
	s.calls++
	s.lastInput = input
	return s.created, s.err
}

func (s *stubService) ListIngredients(context.Context) ([]ingredientsvc.IngredientDTO, error) {
	s.calls++
	return s.list, s.err
}

func post(t *testing.T, svc ingredientsvc.Service, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ingredients", strings.NewReader(body))
	resp := httptest.NewRecorder()
	Create(svc, nil).ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	return payload
}

func TestCreateMapsRequest(t *testing.T) {
	svc := &stubService{created: &ingredientsvc.CreatedIngredientDTO{ID: 3, ItemName: "Flour", Message: "Ingredient added successfully!"}}

	resp := post(t, svc, `{"name":"  Flour ","price":4.5,"store":" Costco ","measurement_value":2,"measurement_type":"KG","description":""}`)

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.JSONEq(t, `{"id":3,"item_name":"Flour","message":"Ingredient added successfully!"}`, resp.Body.String())
	assert.Equal(t, "Flour", svc.lastInput.Name)
	assert.True(t, svc.lastInput.Price.Equal(decimal.RequireFromString("4.5")))
	assert.True(t, svc.lastInput.MeasurementValue.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, enums.MeasurementUnitKilogram, svc.lastInput.MeasurementType)
	require.NotNil(t, svc.lastInput.Store)
	assert.Equal(t, "Costco", *svc.lastInput.Store)
	assert.Nil(t, svc.lastInput.Description)
}

func TestCreateMissingFields(t *testing.T) {
	svc := &stubService{}

	resp := post(t, svc, `{"name":"Flour","measurement_value":2,"measurement_type":"kg"}`)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	payload := decodeBody(t, resp)
	assert.Equal(t, "Missing required fields", payload["error"])
	assert.Equal(t, map[string]any{"price": "is required"}, payload["details"])
	assert.Zero(t, svc.calls)
}

func TestCreateRejectsUnknownUnitAndMalformedBody(t *testing.T) {
	svc := &stubService{}

	resp := post(t, svc, `{"name":"Flour","price":1,"measurement_value":2,"measurement_type":"Select measurement"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = post(t, svc, `{"name":"Flour","price":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Zero(t, svc.calls)
}

func TestCreateDuplicate(t *testing.T) {
	existing := ingredientsvc.IngredientDTO{ID: 1, Name: "Flour", MeasurementType: "kg"}
	svc := &stubService{err: pkgerrors.New(pkgerrors.CodeConflict, "Ingredient already exists").
		WithDetails(types.Duplicate{ExistingItem: existing})}

	resp := post(t, svc, `{"name":"flour","price":1,"measurement_value":1,"measurement_type":"kg"}`)

	require.Equal(t, http.StatusConflict, resp.Code)
	payload := decodeBody(t, resp)
	assert.Equal(t, "Ingredient already exists", payload["error"])
	assert.Equal(t, true, payload["isDuplicate"])
	item, ok := payload["existingItem"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Flour", item["name"])
}

func TestListReturnsArray(t *testing.T) {
	svc := &stubService{list: []ingredientsvc.IngredientDTO{}}

	resp := httptest.NewRecorder()
	List(svc, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/ingredients", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestListFailureIsGeneric(t *testing.T) {
	svc := &stubService{err: pkgerrors.New(pkgerrors.CodePersistence, "db: list ingredients")}

	resp := httptest.NewRecorder()
	List(svc, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/ingredients", nil))

	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "Internal Server Error", decodeBody(t, resp)["error"])
}
