package review

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"consultdesk/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(store *MockReviewStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	NewHandler(NewService(store, nil)).RegisterRoutes(api, api)
	return r
}

func TestHandler_Submit(t *testing.T) {
	store := new(MockReviewStore)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)
	r := newTestRouter(store)

	b, _ := json.Marshal(validRequest())
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":"rv-1","status":"pending"}}`, w.Body.String())
}

func TestHandler_SubmitRatingOutOfRange(t *testing.T) {
	r := newTestRouter(new(MockReviewStore))

	body := validRequest()
	body.Rating = 6
	b, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader(b)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"rating"`)
}

func TestHandler_ListApproved(t *testing.T) {
	store := new(MockReviewStore)
	store.On("List", mock.Anything, domain.ReviewApproved, 2).Return([]domain.Review{}, nil)
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reviews?limit=2", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reviews?limit=abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
