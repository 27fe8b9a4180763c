package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/api"
	"main/domain"
	"main/repo"
	"main/service"
)

func newTestServer(t *testing.T) (*api.Server, *repo.MemStore) {
	t.Helper()
	store := repo.NewMemStore()
	f := domain.Factory{}
	log := zerolog.Nop()

	srv := api.NewServer(
		service.NewUserService(store, f, log),
		service.NewTransactionService(store, f, nil, log),
		service.NewImportService(store, f, log),
		service.NewExportService(store, log),
		service.NewAnalyticsService(store, log),
		log,
	)
	return srv, store
}

func seedUser(t *testing.T, store *repo.MemStore, id, balance string) {
	t.Helper()
	require.NoError(t, store.CreateUser(context.Background(), domain.User{
		ID: domain.UserID(id), Name: "User " + id, Balance: decimal.RequireFromString(balance),
	}))
}

func doJSON(t *testing.T, srv *api.Server, method, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCreateTransactionEndpoint(t *testing.T) {
	srv, store := newTestServer(t)
	seedUser(t, store, "u1", "100.00")

	resp := doJSON(t, srv, http.MethodPost, "/transactions",
		`{"user_id":"u1","amount":"40.00","type":"Withdrawal"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])

	u, err := store.GetUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "60.00", u.Balance.StringFixed(2))
}

func TestCreateTransactionEndpoint_ErrorMapping(t *testing.T) {
	srv, store := newTestServer(t)
	seedUser(t, store, "u1", "10.00")

	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"insufficient balance", `{"user_id":"u1","amount":"999.00","type":"Withdrawal"}`, http.StatusUnprocessableEntity},
		{"unknown user", `{"user_id":"ghost","amount":"1.00","type":"Deposit"}`, http.StatusNotFound},
		{"unknown type", `{"user_id":"u1","amount":"1.00","type":"Transfer"}`, http.StatusBadRequest},
		{"invalid amount", `{"user_id":"u1","amount":"0","type":"Deposit"}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, srv, http.MethodPost, "/transactions", tc.body)
			assert.Equal(t, tc.status, resp.StatusCode)
			body := decodeBody(t, resp)
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestListTransactionsEndpoint(t *testing.T) {
	srv, store := newTestServer(t)
	seedUser(t, store, "u1", "1000.00")
	for i := 0; i < 12; i++ {
		resp := doJSON(t, srv, http.MethodPost, "/transactions",
			`{"user_id":"u1","amount":"1.00","type":"Deposit"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, srv, http.MethodGet, "/transactions?pageNumber=2&pageSize=10", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(2), data["page_number"])
	assert.Equal(t, float64(2), data["total_pages"])
	assert.Len(t, data["items"], 2)

	resp = doJSON(t, srv, http.MethodGet, "/transactions?pageNumber=3&pageSize=10", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestListTransactionsEndpoint_EmptyLedger(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, srv, http.MethodGet, "/transactions", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestUserBalanceEndpoint(t *testing.T) {
	srv, store := newTestServer(t)
	seedUser(t, store, "u1", "55.50")

	resp := doJSON(t, srv, http.MethodGet, "/users/u1/balance", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, "u1", data["user_id"])

	resp = doJSON(t, srv, http.MethodGet, "/users/ghost/balance", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestImportEndpoint(t *testing.T) {
	srv, store := newTestServer(t)
	seedUser(t, store, "u1", "0.00")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "transactions.csv")
	require.NoError(t, err)
	_, err = io.WriteString(fw, "UserId,Amount,Type,Date\nu1,10.00,Deposit,2024-02-01\nghost,5.00,Purchase,2024-02-02\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/files/import?format=csv", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(1), data["imported"])
	assert.Contains(t, data["message"], "1 transactions were ignored")
}

func TestExportEndpoint(t *testing.T) {
	srv, store := newTestServer(t)
	seedUser(t, store, "u1", "100.00")
	resp := doJSON(t, srv, http.MethodPost, "/transactions",
		`{"user_id":"u1","amount":"10.00","type":"Deposit"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, srv, http.MethodGet, "/files/export?format=csv", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	b, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "Id,UserId,Amount,Type,Date"))
}
