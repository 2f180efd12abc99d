package admin

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"consultdesk/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T, store *fakeReviewStore) (*gin.Engine, *testDeps) {
	gin.SetMode(gin.TestMode)
	svc, deps := newTestService(t, Credentials{}, store)
	log := zerolog.Nop()

	r := gin.New()
	api := r.Group("/api")
	gated := api.Group("", middleware.AdminOnly(middleware.NewGate(testToken), &log))
	NewHandler(svc).RegisterRoutes(api, gated)
	return r, deps
}

func do(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.AdminTokenHeader, token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_SetApproval(t *testing.T) {
	store := newFakeReviewStore(pending("r1"))
	r, _ := newTestRouter(t, store)

	w := do(r, http.MethodPatch, "/api/admin/reviews/r1/approve", `{"approved":true}`, testToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"approved"`)

	w = do(r, http.MethodPatch, "/api/admin/reviews/r1/approve", `{}`, testToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"approved"`)

	w = do(r, http.MethodPatch, "/api/admin/reviews/nope/approve", `{"approved":false}`, testToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPatch, "/api/admin/reviews/r1/approve", `{"approved":false}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 2, store.setCalls)
}

func TestHandler_DeleteAlias(t *testing.T) {
	store := newFakeReviewStore(pending("r1"), pending("r2"))
	r, _ := newTestRouter(t, store)

	w := do(r, http.MethodDelete, "/api/reviews/r1", "", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Len(t, store.reviews, 2)

	w = do(r, http.MethodDelete, "/api/reviews/r1", "", testToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodDelete, "/api/admin/reviews/r2", "", testToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodDelete, "/api/admin/reviews/r2", "", testToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Login(t *testing.T) {
	r, _ := newTestRouter(t, newFakeReviewStore())

	w := do(r, http.MethodPost, "/api/admin/login", `{"password":"`+testToken+`"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"token":"`+testToken+`"}}`, w.Body.String())

	w = do(r, http.MethodPost, "/api/admin/login", `{"password":"nope"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/admin/login", `{}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListReviewsBadLimit(t *testing.T) {
	r, _ := newTestRouter(t, newFakeReviewStore())

	w := do(r, http.MethodGet, "/api/admin/reviews?limit=0", "", testToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/api/admin/reviews?status=approved", "", testToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_TestEmail(t *testing.T) {
	r, deps := newTestRouter(t, newFakeReviewStore())

	w := do(r, http.MethodPost, "/api/admin/test-email", "", testToken)
	assert.Equal(t, http.StatusOK, w.Code)

	deps.mailErr = assert.AnError
	w = do(r, http.MethodPost, "/api/admin/test-email", "", testToken)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), `"DELIVERY_FAILED"`)
}
