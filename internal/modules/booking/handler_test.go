package booking

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

func newTestRouter(ledger *MockLedger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	NewHandler(NewService(ledger, testCalendar(), nil)).RegisterRoutes(api, api)
	return r
}

func postJSON(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Create(t *testing.T) {
	ledger := new(MockLedger)
	ledger.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	ledger.On("Commit", mock.Anything, mock.Anything).Return(domain.ErrSlotConflict).Once()
	r := newTestRouter(ledger)

	w := postJSON(r, "/api/bookings", validRequest())
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"res-1"`)

	w = postJSON(r, "/api/bookings", validRequest())
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"SLOT_TAKEN"`)
}

func TestHandler_CreateInvalid(t *testing.T) {
	r := newTestRouter(new(MockLedger))

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/api/bookings", map[string]string{"name": "Ada"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"VALIDATION_ERROR"`)
}

func TestHandler_ListSlots(t *testing.T) {
	ledger := new(MockLedger)
	ledger.On("ListSlots", mock.Anything, "2025-03-10", "2025-03-14").
		Return([]domain.Slot{{Date: "2025-03-10", Time: "10:00"}}, nil)
	r := newTestRouter(ledger)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings?from=2025-03-10&to=2025-03-14", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[{"booking_date":"2025-03-10","booking_time":"10:00"}]}`, w.Body.String())
}

func TestHandler_AvailabilityRequiresDate(t *testing.T) {
	r := newTestRouter(new(MockLedger))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/availability", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
