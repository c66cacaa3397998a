package tokens_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finhub/finhub.go/lib/tokens"
)

var testSecret = []byte("SECRET")

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := tokens.GenerateAccessToken(testSecret, 3600, 7)
	require.NoError(t, err)

	userID, isRefresh, err := tokens.ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
	assert.False(t, isRefresh)
}

func TestRefreshTokenIsMarked(t *testing.T) {
	token, err := tokens.GenerateRefreshToken(testSecret, 3600, 7)
	require.NoError(t, err)

	_, isRefresh, err := tokens.ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.True(t, isRefresh)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := tokens.GenerateAccessToken(testSecret, 3600, 7)
	require.NoError(t, err)

	_, _, err = tokens.ParseToken([]byte("OTHER"), token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := tokens.GenerateAccessToken(testSecret, -1, 7)
	require.NoError(t, err)

	_, _, err = tokens.ParseToken(testSecret, token)
	assert.Error(t, err)
}

func TestMiddlewareSetsUserID(t *testing.T) {
	e := echo.New()
	token, err := tokens.GenerateAccessToken(testSecret, 3600, 7)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := tokens.Middleware(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, int64(7), c.Get("UserID"))
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := tokens.Middleware(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestMiddlewareRejectsRefreshToken(t *testing.T) {
	e := echo.New()
	token, err := tokens.GenerateRefreshToken(testSecret, 3600, 7)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := tokens.Middleware(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	err = handler(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
