package responses

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"

	"github.com/finhub/finhub.go/ledger"
)

type ErrorResponse struct {
	Error          bool   `json:"error"`
	Code           int    `json:"code"`
	Message        string `json:"message"`
	HttpStatusCode int    `json:"-"`
}

var GeneralServerError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          true,
	Code:           8,
	Message:        "Bad arguments",
	HttpStatusCode: 400,
}

var BadAuthError = ErrorResponse{
	Error:          true,
	Code:           1,
	Message:        "bad auth",
	HttpStatusCode: 401,
}

var AccountNotFoundError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "account not found",
	HttpStatusCode: 404,
}

var InsufficientFundsError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "not enough balance to complete the operation",
	HttpStatusCode: 400,
}

var EntryNotFoundError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "statement entry not found",
	HttpStatusCode: 404,
}

var SelfTransferError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "sender and recipient must be different accounts",
	HttpStatusCode: 400,
}

var EmailTakenError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "an account with this email already exists",
	HttpStatusCode: 400,
}

// LedgerError maps the ledger's typed failures onto the HTTP error
// vocabulary. The second return is false for anything that is not a business
// outcome, those keep bubbling up as server errors.
func LedgerError(err error) (ErrorResponse, bool) {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		return AccountNotFoundError, true
	case errors.Is(err, ledger.ErrEntryNotFound):
		return EntryNotFoundError, true
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return InsufficientFundsError, true
	case errors.Is(err, ledger.ErrSelfTransfer):
		return SelfTransferError, true
	case errors.Is(err, ledger.ErrInvalidAmount):
		return BadArgumentsError, true
	}
	return GeneralServerError, false
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if hub := sentryecho.GetHubFromContext(c); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("UserID", c.Get("UserID"))
			hub.CaptureException(err)
		})
	}
	if he, ok := err.(*echo.HTTPError); ok {
		c.JSON(he.Code, he.Message)
		return
	}
	if resp, ok := LedgerError(err); ok {
		c.JSON(resp.HttpStatusCode, resp)
		return
	}
	c.JSON(http.StatusInternalServerError, GeneralServerError)
}
