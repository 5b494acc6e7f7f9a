package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"acaradashboard/internal/delivery/http/controllers"
	"acaradashboard/internal/delivery/http/helpers"
	"acaradashboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

type fakeVerifier struct{}

func (fakeVerifier) Verify(token string) (*domain.Identity, error) {
	if token != validToken {
		return nil, domain.ErrUnauthorized
	}
	return &domain.Identity{UserID: "user-123", Email: "owner@example.com"}, nil
}

type routerAcaraService struct {
	panicOnList bool
	lastUserID  string
}

func (s *routerAcaraService) CreateAcara(ctx context.Context, identity domain.Identity, form *domain.AcaraForm) (*domain.CreateAcaraResult, error) {
	return nil, errors.New("not used")
}

func (s *routerAcaraService) ListAcara(ctx context.Context, userID string, opts domain.ListOptions) ([]*domain.Acara, error) {
	if s.panicOnList {
		panic("boom")
	}
	s.lastUserID = userID
	return []*domain.Acara{{ID: "a1", Name: "Tech Talk", UserID: userID}}, nil
}

func (s *routerAcaraService) CountAcara(ctx context.Context, userID string) (int, error) {
	return 1, nil
}

func (s *routerAcaraService) SubmissionState(ctx context.Context, userID string) (domain.SubmissionState, error) {
	return domain.SubmissionIdle, nil
}

func newTestRouter(t *testing.T, svc domain.AcaraService, logs io.Writer) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(logs, nil))
	return NewRouter(RouterConfig{
		Logger:          logger,
		Verifier:        fakeVerifier{},
		AcaraController: controllers.NewAcaraController(logger, svc),
		CORSOrigins:     []string{"http://localhost:3000"},
	})
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t, &routerAcaraService{}, io.Discard)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t, &routerAcaraService{}, io.Discard)
	routes := []struct{ method, path string }{
		{http.MethodPost, "/acara"},
		{http.MethodGet, "/acara"},
		{http.MethodGet, "/dashboard/acara"},
		{http.MethodGet, "/dashboard/acara/new"},
	}
	for _, rt := range routes {
		for _, header := range []string{"", "Bearer wrong"} {
			t.Run(rt.method+" "+rt.path+" "+header, func(t *testing.T) {
				req := httptest.NewRequest(rt.method, rt.path, nil)
				if header != "" {
					req.Header.Set("Authorization", header)
				}
				rr := httptest.NewRecorder()
				router.ServeHTTP(rr, req)

				require.Equal(t, http.StatusUnauthorized, rr.Code)
				var resp helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				require.NotNil(t, resp.Error)
				assert.Equal(t, helpers.ErrCodeUnauthorized, resp.Error.Code)
			})
		}
	}
}

func TestRouter_ListUsesTokenSubject(t *testing.T) {
	svc := &routerAcaraService{}
	router := newTestRouter(t, svc, io.Discard)
	req := httptest.NewRequest(http.MethodGet, "/acara", nil)
	req.Header.Set("Authorization", "Bearer "+validToken)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "user-123", svc.lastUserID)
}

func TestRouter_FormPathValue(t *testing.T) {
	router := newTestRouter(t, &routerAcaraService{}, io.Discard)
	req := httptest.NewRequest(http.MethodGet, "/dashboard/acara/abc123", nil)
	req.Header.Set("Authorization", "Bearer "+validToken)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Data controllers.FormView `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "abc123", body.Data.AcaraID)
	assert.Equal(t, controllers.CreateFormTitle, body.Data.Title)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, &routerAcaraService{}, io.Discard)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/acara", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(t, &routerAcaraService{}, io.Discard)
	req := httptest.NewRequest(http.MethodOptions, "/acara", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RecoversPanics(t *testing.T) {
	var logs bytes.Buffer
	router := newTestRouter(t, &routerAcaraService{panicOnList: true}, &logs)
	req := httptest.NewRequest(http.MethodGet, "/acara", nil)
	req.Header.Set("Authorization", "Bearer "+validToken)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, logs.String(), "status=500")
	assert.True(t, strings.Contains(logs.String(), "request_id="), logs.String())
}
