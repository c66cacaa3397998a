package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finhub/finhub.go/controllers"
	"github.com/finhub/finhub.go/db/memory"
	"github.com/finhub/finhub.go/ledger"
	"github.com/finhub/finhub.go/lib"
	"github.com/finhub/finhub.go/lib/service"
)

func setupService() (*service.FinhubService, *memory.Store, *echo.Echo) {
	store := memory.NewStore()
	c := &service.Config{
		JWTSecret:             []byte("SECRET"),
		JWTAccessTokenExpiry:  3600,
		JWTRefreshTokenExpiry: 3600,
	}
	svc := &service.FinhubService{
		Config: c,
		Ledger: ledger.NewService(store, zerolog.Nop()),
		Logger: zerolog.Nop(),
	}

	e := echo.New()
	e.Validator = &lib.CustomValidator{Validator: validator.New()}
	return svc, store, e
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	payload := new(bytes.Buffer)
	json.NewEncoder(payload).Encode(body)
	req := httptest.NewRequest(method, target, payload)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestDepositEndpoint(t *testing.T) {
	svc, store, e := setupService()
	account := store.CreateAccount("alice", "alice@example.com")

	req := jsonRequest(http.MethodPost, "/api/v1/statements/deposit", controllers.DepositRequestBody{
		Amount:      100,
		Description: "salary",
	})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("UserID", account.ID)

	require.NoError(t, controllers.NewDepositController(svc).Deposit(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var statement controllers.StatementResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &statement))
	assert.Equal(t, "deposit", statement.Type)
	assert.Equal(t, int64(100), statement.Amount)
	assert.Nil(t, statement.CounterpartyID)
}

func TestDepositEndpointRejectsBadAmount(t *testing.T) {
	svc, store, e := setupService()
	account := store.CreateAccount("alice", "alice@example.com")

	req := jsonRequest(http.MethodPost, "/api/v1/statements/deposit", controllers.DepositRequestBody{
		Amount:      -5,
		Description: "nope",
	})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("UserID", account.ID)

	require.NoError(t, controllers.NewDepositController(svc).Deposit(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWithdrawEndpointInsufficientFunds(t *testing.T) {
	svc, store, e := setupService()
	account := store.CreateAccount("alice", "alice@example.com")

	_, err := svc.Deposit(context.Background(), account.ID, 50, "seed")
	require.NoError(t, err)

	req := jsonRequest(http.MethodPost, "/api/v1/statements/withdraw", controllers.WithdrawRequestBody{
		Amount:      100,
		Description: "too much",
	})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("UserID", account.ID)

	require.NoError(t, controllers.NewWithdrawController(svc).Withdraw(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not enough balance")
}

func TestTransferEndpoint(t *testing.T) {
	svc, store, e := setupService()
	sender := store.CreateAccount("alice", "alice@example.com")
	recipient := store.CreateAccount("bob", "bob@example.com")

	_, err := svc.Deposit(context.Background(), sender.ID, 100, "seed")
	require.NoError(t, err)

	req := jsonRequest(http.MethodPost, "/api/v1/statements/transfers/2", controllers.TransferRequestBody{
		Amount:      40,
		Description: "rent share",
	})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("UserID", sender.ID)
	c.SetParamNames("recipient_id")
	c.SetParamValues("2")

	require.NoError(t, controllers.NewTransferController(svc).Transfer(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var statement controllers.StatementResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &statement))
	assert.Equal(t, "transfer", statement.Type)
	require.NotNil(t, statement.CounterpartyID)
	assert.Equal(t, recipient.ID, *statement.CounterpartyID)

	// both balances moved together
	senderSummary, err := svc.Balance(context.Background(), sender.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(60), senderSummary.Balance)
	recipientSummary, err := svc.Balance(context.Background(), recipient.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(40), recipientSummary.Balance)
}

func TestBalanceEndpoint(t *testing.T) {
	svc, store, e := setupService()
	account := store.CreateAccount("alice", "alice@example.com")

	_, err := svc.Deposit(context.Background(), account.ID, 100, "seed")
	require.NoError(t, err)
	_, err = svc.Withdraw(context.Background(), account.ID, 30, "spending")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/statements/balance", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("UserID", account.ID)

	require.NoError(t, controllers.NewBalanceController(svc).Balance(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body controllers.BalanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(70), body.Balance)
	require.Len(t, body.Statement, 2)
	assert.Equal(t, "deposit", body.Statement[0].Type)
	assert.Equal(t, "withdraw", body.Statement[1].Type)
}

func TestGetStatementEndpointOwnership(t *testing.T) {
	svc, store, e := setupService()
	alice := store.CreateAccount("alice", "alice@example.com")
	bob := store.CreateAccount("bob", "bob@example.com")

	entry, err := svc.Deposit(context.Background(), bob.ID, 100, "bob's money")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/statements/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("UserID", alice.ID)
	c.SetParamNames("statement_id")
	c.SetParamValues("1")

	require.NoError(t, controllers.NewStatementController(svc).GetStatement(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// the owner still finds it
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/statements/1", nil), rec)
	c.Set("UserID", bob.ID)
	c.SetParamNames("statement_id")
	c.SetParamValues("1")

	require.NoError(t, controllers.NewStatementController(svc).GetStatement(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var statement controllers.StatementResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &statement))
	assert.Equal(t, entry.ID, statement.ID)
}
