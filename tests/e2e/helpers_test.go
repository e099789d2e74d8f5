//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/languidpie/smit-homework-v2/internal/adapter/postgres"
	partrepo "github.com/languidpie/smit-homework-v2/internal/adapter/postgres/part"
	recordrepo "github.com/languidpie/smit-homework-v2/internal/adapter/postgres/record"
	"github.com/languidpie/smit-homework-v2/internal/adapter/postgres/testhelper"
	authpkg "github.com/languidpie/smit-homework-v2/internal/auth"
	"github.com/languidpie/smit-homework-v2/internal/config"
	"github.com/languidpie/smit-homework-v2/internal/domain"
	authsvc "github.com/languidpie/smit-homework-v2/internal/service/auth"
	partsvc "github.com/languidpie/smit-homework-v2/internal/service/part"
	recordsvc "github.com/languidpie/smit-homework-v2/internal/service/record"
	"github.com/languidpie/smit-homework-v2/internal/transport/rest"
)

// Fixed test principals. The passwords are hashed at setup time so the
// suite never carries a pre-baked bcrypt string.
const (
	partsUser       = "mart"
	partsPassword   = "mart-test-password"
	recordsUser     = "katrin"
	recordsPassword = "katrin-test-password"
)

// testServer wraps the full HTTP stack for end to end tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	parts := partrepo.New(pool)
	records := recordrepo.New(pool)

	store := authpkg.NewStaticStore([]authpkg.User{
		{Username: partsUser, SecretHash: hashPassword(t, partsPassword), Role: domain.RoleParts},
		{Username: recordsUser, SecretHash: hashPassword(t, recordsPassword), Role: domain.RoleRecords},
	})
	authenticator := authpkg.NewAuthenticator(store)

	accessTTL := 15 * time.Minute
	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", accessTTL)

	router := rest.NewRouter(rest.RouterDeps{
		Logger:             logger,
		CORS:               config.CORSConfig{},
		Health:             rest.NewHealthHandler(pool, "e2e"),
		Auth:               rest.NewAuthHandler(authsvc.NewService(logger, authenticator, jwtMgr, accessTTL), logger),
		Parts:              rest.NewPartsHandler(partsvc.NewService(logger, parts, txm), logger),
		Records:            rest.NewRecordsHandler(recordsvc.NewService(logger, records, txm), logger),
		TokenValidator:     jwtMgr,
		BasicAuthenticator: authenticator,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// login authenticates against /api/auth/login and returns the access token.
func login(t *testing.T, ts *testServer, username, password string) string {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/api/auth/login", "",
		map[string]any{"username": username, "password": password})
	require.Equal(t, http.StatusOK, status, "login failed: %v", body)

	token, ok := body["accessToken"].(string)
	require.True(t, ok, "expected accessToken string, got %v", body)
	require.NotEmpty(t, token)
	return token
}

// doJSON performs a request with an optional bearer token and JSON body and
// decodes the JSON response. A 204 yields a nil body map.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, payload any) (int, map[string]any) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body), "response is not a JSON object: %s", raw)
	return resp.StatusCode, body
}

// doJSONList is doJSON for endpoints that answer with a bare JSON array.
func (ts *testServer) doJSONList(t *testing.T, method, path, token string) (int, []any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body []any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}
