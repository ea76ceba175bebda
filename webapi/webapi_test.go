package webapi_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/eaglebank/eaglebank/internal/fixtures"
	"github.com/eaglebank/eaglebank/pkg/app"
	"github.com/eaglebank/eaglebank/pkg/config"
	"github.com/eaglebank/eaglebank/pkg/idgen"
	"github.com/eaglebank/eaglebank/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.App{
		Env:       "test",
		Server:    &config.Server{Host: "localhost", Port: 3000},
		DB:        &config.DB{},
		Jwt:       &config.Jwt{Secret: "test-secret", Expiry: time.Hour},
		Log:       &config.Log{},
		RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
		Ledger: &config.Ledger{
			MaxTransactionAmount:  decimal.RequireFromString("10000.00"),
			AccountNumberAttempts: 10,
		},
	}
	deps := app.Deps{
		Uow:    fixtures.NewMemoryUoW(),
		IDs:    idgen.New(rand.NewSource(1)),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return webapi.SetupApp(app.New(deps, cfg))
}

func request(t *testing.T, a *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Data
}

const userBody = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"password": "hunter22",
	"phoneNumber": "+447700900123",
	"address": {"line1": "1 High Street", "town": "London", "county": "Greater London", "postcode": "E1 6AN"}
}`

func registerAndLogin(t *testing.T, a *fiber.App) (userID, token string) {
	t.Helper()
	resp := request(t, a, fiber.MethodPost, "/v1/users", userBody, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	userID = decodeData(t, resp)["id"].(string)

	resp = request(t, a, fiber.MethodPost, "/v1/auth/login",
		`{"email": "jane@example.com", "password": "hunter22"}`, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	token = decodeData(t, resp)["token"].(string)
	require.NotEmpty(t, token)
	return userID, token
}

func TestUserJourney(t *testing.T) {
	a := newTestApp(t)
	userID, token := registerAndLogin(t, a)

	// Self access works.
	resp := request(t, a, fiber.MethodGet, "/v1/users/"+userID, "", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "jane@example.com", decodeData(t, resp)["email"])

	// Another user's id is forbidden, existing or not.
	resp = request(t, a, fiber.MethodGet, "/v1/users/usr-000000000000", "", token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Partial update touches only the supplied field.
	resp = request(t, a, fiber.MethodPatch, "/v1/users/"+userID,
		`{"phoneNumber": "+447700900999"}`, token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := decodeData(t, resp)
	assert.Equal(t, "+447700900999", data["phoneNumber"])
	assert.Equal(t, "Jane Doe", data["name"])
}

func TestAuthRequired(t *testing.T) {
	a := newTestApp(t)

	resp := request(t, a, fiber.MethodGet, "/v1/accounts", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = request(t, a, fiber.MethodGet, "/v1/accounts", "", "not-a-token")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_BadCredentials(t *testing.T) {
	a := newTestApp(t)
	registerAndLogin(t, a)

	resp := request(t, a, fiber.MethodPost, "/v1/auth/login",
		`{"email": "jane@example.com", "password": "wrong"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestDuplicateEmail(t *testing.T) {
	a := newTestApp(t)
	registerAndLogin(t, a)

	resp := request(t, a, fiber.MethodPost, "/v1/users", userBody, "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestAccountAndTransactionJourney(t *testing.T) {
	a := newTestApp(t)
	_, token := registerAndLogin(t, a)

	resp := request(t, a, fiber.MethodPost, "/v1/accounts",
		`{"name": "Everyday", "accountType": "personal"}`, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	data := decodeData(t, resp)
	number := data["accountNumber"].(string)
	assert.Regexp(t, `^01\d{6}$`, number)
	assert.Equal(t, "GBP", data["currency"])

	// Deposit 100, withdraw 50.
	resp = request(t, a, fiber.MethodPost, fmt.Sprintf("/v1/accounts/%s/transactions", number),
		`{"amount": 100.00, "currency": "GBP", "type": "deposit"}`, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = request(t, a, fiber.MethodPost, fmt.Sprintf("/v1/accounts/%s/transactions", number),
		`{"amount": 50.00, "currency": "GBP", "type": "withdrawal"}`, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	txnID := decodeData(t, resp)["id"].(string)

	// Overdraw is unprocessable and does not change the balance.
	resp = request(t, a, fiber.MethodPost, fmt.Sprintf("/v1/accounts/%s/transactions", number),
		`{"amount": 100.00, "currency": "GBP", "type": "withdrawal"}`, token)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// Currency disagreement is a bad request.
	resp = request(t, a, fiber.MethodPost, fmt.Sprintf("/v1/accounts/%s/transactions", number),
		`{"amount": 25.00, "currency": "USD", "type": "deposit"}`, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = request(t, a, fiber.MethodGet, "/v1/accounts/"+number, "", token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, mustBalance(t, resp).Equal(decimal.RequireFromString("50.00")))

	// Fetch the withdrawal back through its account.
	resp = request(t, a, fiber.MethodGet,
		fmt.Sprintf("/v1/accounts/%s/transactions/%s", number, txnID), "", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = request(t, a, fiber.MethodGet,
		fmt.Sprintf("/v1/accounts/%s/transactions/tan-000000", number), "", token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func mustBalance(t *testing.T, resp *http.Response) decimal.Decimal {
	t.Helper()
	var envelope struct {
		Data struct {
			Balance decimal.Decimal `json:"balance"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Data.Balance
}

func TestTransactionValidation(t *testing.T) {
	a := newTestApp(t)
	_, token := registerAndLogin(t, a)

	resp := request(t, a, fiber.MethodPost, "/v1/accounts",
		`{"name": "Everyday", "accountType": "personal"}`, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	number := decodeData(t, resp)["accountNumber"].(string)

	// Above the per-transaction maximum.
	resp = request(t, a, fiber.MethodPost, fmt.Sprintf("/v1/accounts/%s/transactions", number),
		`{"amount": 10000.01, "currency": "GBP", "type": "deposit"}`, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Negative amount.
	resp = request(t, a, fiber.MethodPost, fmt.Sprintf("/v1/accounts/%s/transactions", number),
		`{"amount": -1.00, "currency": "GBP", "type": "deposit"}`, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Unknown type.
	resp = request(t, a, fiber.MethodPost, fmt.Sprintf("/v1/accounts/%s/transactions", number),
		`{"amount": 1.00, "currency": "GBP", "type": "transfer"}`, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Malformed account number in the path.
	resp = request(t, a, fiber.MethodPost, "/v1/accounts/99xyz/transactions",
		`{"amount": 1.00, "currency": "GBP", "type": "deposit"}`, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Missing account.
	resp = request(t, a, fiber.MethodPost, "/v1/accounts/01999999/transactions",
		`{"amount": 1.00, "currency": "GBP", "type": "deposit"}`, token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAccountOwnership(t *testing.T) {
	a := newTestApp(t)
	_, token := registerAndLogin(t, a)

	resp := request(t, a, fiber.MethodPost, "/v1/accounts",
		`{"name": "Everyday", "accountType": "personal"}`, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	number := decodeData(t, resp)["accountNumber"].(string)

	// Second user.
	otherBody := strings.Replace(userBody, "jane@example.com", "john@example.com", 1)
	resp = request(t, a, fiber.MethodPost, "/v1/users", otherBody, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp = request(t, a, fiber.MethodPost, "/v1/auth/login",
		`{"email": "john@example.com", "password": "hunter22"}`, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	otherToken := decodeData(t, resp)["token"].(string)

	resp = request(t, a, fiber.MethodGet, "/v1/accounts/"+number, "", otherToken)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = request(t, a, fiber.MethodPost, fmt.Sprintf("/v1/accounts/%s/transactions", number),
		`{"amount": 1.00, "currency": "GBP", "type": "deposit"}`, otherToken)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = request(t, a, fiber.MethodGet, "/v1/accounts/01999999", "", otherToken)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteUserWithOpenAccount(t *testing.T) {
	a := newTestApp(t)
	userID, token := registerAndLogin(t, a)

	resp := request(t, a, fiber.MethodPost, "/v1/accounts",
		`{"name": "Everyday", "accountType": "personal"}`, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	number := decodeData(t, resp)["accountNumber"].(string)

	resp = request(t, a, fiber.MethodDelete, "/v1/users/"+userID, "", token)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = request(t, a, fiber.MethodDelete, "/v1/accounts/"+number, "", token)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = request(t, a, fiber.MethodDelete, "/v1/users/"+userID, "", token)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
