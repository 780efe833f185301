//go:build integration

package e2e

// End-to-end integration tests using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// Covered flows:
//   - Full weekly cycle: login → master data → production → rate change →
//     latched-rate verification → advance → salary report → payment
//   - Duplicate role name conflict
//   - Labour delete guard while production records exist
//   - Dashboard stats endpoint

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ARUNKUMAR016/suganya-metals/internal/config"
	"github.com/ARUNKUMAR016/suganya-metals/internal/infra"
	"github.com/ARUNKUMAR016/suganya-metals/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
	engine *gin.Engine
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("suganya_test"),
		tcPostgres.WithUsername("suganya"),
		tcPostgres.WithPassword("suganya"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("e2e-password"), 12)
	require.NoError(t, err)
	require.NoError(t, db.Exec(`INSERT INTO users (id, username, name, password_hash, role, active, created_at)
		VALUES (gen_random_uuid(), 'admin@e2e.test', 'Admin E2E', ?, 'admin', true, NOW())
		ON CONFLICT DO NOTHING`, string(hash)).Error)

	r := router.New(cfg, db, rdb)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"username": "admin@e2e.test", "password": "e2e-password"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{
		server: srv,
		token:  loginBody.AccessToken,
		engine: r,
	}
}

type idResp struct {
	ID string `json:"id"`
}

func createRole(t *testing.T, env *testEnv, name, rate string) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/v1/roles",
		jsonBody(t, map[string]any{"role_name": name, "rate_per_kg": rate}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var r idResp
	decodeJSON(t, resp, &r)
	return r.ID
}

func createLabour(t *testing.T, env *testEnv, name, roleID string) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/v1/labours",
		jsonBody(t, map[string]any{"name": name, "role_id": roleID}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var r idResp
	decodeJSON(t, resp, &r)
	return r.ID
}

func createProduct(t *testing.T, env *testEnv, name string) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/v1/products",
		jsonBody(t, map[string]any{"product_name": name}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var r idResp
	decodeJSON(t, resp, &r)
	return r.ID
}

func recordProduction(t *testing.T, env *testEnv, date, labourID, productID, qty string) *http.Response {
	t.Helper()
	return do(t, env.server, "POST", "/v1/production",
		jsonBody(t, map[string]any{
			"date":      date,
			"labour_id": labourID,
			"items": []map[string]any{
				{"product_id": productID, "pcs": 10, "quantity_kg": qty},
			},
		}), env.token)
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_FullWeeklyCycle(t *testing.T) {
	env := setupTestEnv(t)

	roleID := createRole(t, env, "Moulder", "10")
	labourID := createLabour(t, env, "Anu", roleID)
	productID := createProduct(t, env, "Valve Body")

	// Monday: 5 kg at the current rate of 10/kg.
	resp := recordProduction(t, env, "2026-03-02", labourID, productID, "5")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var entry struct {
		RatePerKg decimal.Decimal `json:"rate_per_kg"`
	}
	decodeJSON(t, resp, &entry)
	assert.True(t, entry.RatePerKg.Equal(decimal.NewFromInt(10)))

	// Rate hike to 12/kg.
	updResp := do(t, env.server, "PUT", "/v1/roles/"+roleID,
		jsonBody(t, map[string]any{"rate_per_kg": "12"}), env.token)
	require.Equal(t, http.StatusOK, updResp.StatusCode)
	updResp.Body.Close()

	// Second entry for the same Monday keeps the latched 10/kg.
	resp = recordProduction(t, env, "2026-03-02", labourID, productID, "3")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decodeJSON(t, resp, &entry)
	assert.True(t, entry.RatePerKg.Equal(decimal.NewFromInt(10)), "existing day keeps its latched rate")

	// Wednesday latches the new 12/kg.
	resp = recordProduction(t, env, "2026-03-04", labourID, productID, "5")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decodeJSON(t, resp, &entry)
	assert.True(t, entry.RatePerKg.Equal(decimal.NewFromInt(12)))

	// Advance of 30 inside the week.
	advResp := do(t, env.server, "POST", "/v1/advances",
		jsonBody(t, map[string]any{"labour_id": labourID, "amount": "30", "date": "2026-03-03"}), env.token)
	require.Equal(t, http.StatusCreated, advResp.StatusCode)
	advResp.Body.Close()

	// Salary: 8 kg × 10 + 5 kg × 12 = 140, minus 30 advance = 110.
	salResp := do(t, env.server, "GET",
		"/v1/salary?startOfWeek=2026-03-02&endOfWeek=2026-03-08", nil, env.token)
	require.Equal(t, http.StatusOK, salResp.StatusCode)
	var rows []struct {
		LabourName   string          `json:"labour_name"`
		TotalKg      decimal.Decimal `json:"total_kg"`
		TotalAmount  decimal.Decimal `json:"total_amount"`
		TotalAdvance decimal.Decimal `json:"total_advance"`
		NetPayable   decimal.Decimal `json:"net_payable"`
		DaysWorked   int             `json:"days_worked"`
	}
	decodeJSON(t, salResp, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "Anu", rows[0].LabourName)
	assert.True(t, rows[0].TotalKg.Equal(decimal.NewFromInt(13)))
	assert.True(t, rows[0].TotalAmount.Equal(decimal.NewFromInt(140)))
	assert.True(t, rows[0].TotalAdvance.Equal(decimal.NewFromInt(30)))
	assert.True(t, rows[0].NetPayable.Equal(decimal.NewFromInt(110)))
	assert.Equal(t, 2, rows[0].DaysWorked)

	// Settle the week.
	payResp := do(t, env.server, "POST", "/v1/payments",
		jsonBody(t, map[string]any{
			"labour_id": labourID, "week_start": "2026-03-02", "week_end": "2026-03-08",
			"total_amount": "110",
		}), env.token)
	require.Equal(t, http.StatusCreated, payResp.StatusCode)
	var pay struct {
		PaidOn string `json:"paid_on"`
	}
	decodeJSON(t, payResp, &pay)
	assert.NotEmpty(t, pay.PaidOn)
}

func TestE2E_DuplicateRoleName(t *testing.T) {
	env := setupTestEnv(t)

	createRole(t, env, "Moulder", "10")
	resp := do(t, env.server, "POST", "/v1/roles",
		jsonBody(t, map[string]any{"role_name": "moulder", "rate_per_kg": "11"}), env.token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestE2E_LabourDeleteGuard(t *testing.T) {
	env := setupTestEnv(t)

	roleID := createRole(t, env, "Moulder", "10")
	labourID := createLabour(t, env, "Anu", roleID)
	productID := createProduct(t, env, "Valve Body")

	resp := recordProduction(t, env, "2026-03-02", labourID, productID, "5")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	delResp := do(t, env.server, "DELETE", "/v1/labours/"+labourID, nil, env.token)
	defer delResp.Body.Close()
	assert.Equal(t, http.StatusConflict, delResp.StatusCode)
}

func TestE2E_DashboardStats(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "GET", "/v1/dashboard/stats", nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats struct {
		Resources struct {
			ActiveLabours int64 `json:"activeLabours"`
		} `json:"resources"`
	}
	decodeJSON(t, resp, &stats)
	assert.Equal(t, int64(0), stats.Resources.ActiveLabours)
}
