package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JMirval/watchmapper-sub001/internal/dto"
)

// Validation happens at the binding layer: invalid criteria are rejected with
// per-field messages before any service logic runs, so handlers built on nil
// services are enough here.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	api := engine.Group("/api")
	NewShopHandler(nil, nil, nil, zap.NewNop()).RegisterRoutes(api)
	NewAuthHandler(nil, zap.NewNop()).RegisterRoutes(api)
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, dto.Result) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var result dto.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return rec, result
}

func TestFindShopsRejectsInvalidSortBy(t *testing.T) {
	engine := newTestRouter()
	rec, result := doRequest(t, engine, http.MethodGet, "/api/shops?sortBy=price", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, result.Success)
	assert.Contains(t, result.Fields, "SortBy")
}

func TestFindShopsRejectsInvalidSortOrder(t *testing.T) {
	engine := newTestRouter()
	rec, _ := doRequest(t, engine, http.MethodGet, "/api/shops?sortOrder=sideways", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindShopsRejectsOutOfRangeLimit(t *testing.T) {
	engine := newTestRouter()
	for _, q := range []string{"limit=0", "limit=51", "page=0", "minRating=0", "minRating=6"} {
		rec, result := doRequest(t, engine, http.MethodGet, "/api/shops?"+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
		assert.False(t, result.Success, q)
	}
}

func TestFindShopsRejectsBadCoordinates(t *testing.T) {
	engine := newTestRouter()
	rec, _ := doRequest(t, engine, http.MethodGet, "/api/shops?userLat=91&userLng=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShopDetailsRejectsBadID(t *testing.T) {
	engine := newTestRouter()
	rec, _ := doRequest(t, engine, http.MethodGet, "/api/shops/banana", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitReviewRequiresAuth(t *testing.T) {
	engine := newTestRouter()
	rec, _ := doRequest(t, engine, http.MethodPost, "/api/shops/1/reviews", `{"rating":5}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignupRejectsInvalidBody(t *testing.T) {
	engine := newTestRouter()

	rec, result := doRequest(t, engine, http.MethodPost, "/api/auth/signup", `{"email":"not-an-email","password":"longenough"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, result.Fields, "Email")

	rec, result = doRequest(t, engine, http.MethodPost, "/api/auth/signup", `{"email":"a@b.com","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, result.Fields, "Password")
}
