package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/finhub/finhub.go/ledger"
	"github.com/finhub/finhub.go/lib/responses"
	"github.com/finhub/finhub.go/lib/service"
)

// StatementResponse is the wire shape of a single ledger entry. The
// counterparty is only exposed on transfer entries.
type StatementResponse struct {
	ID             int64     `json:"id"`
	Type           string    `json:"type"`
	Amount         int64     `json:"amount"`
	Description    string    `json:"description"`
	CounterpartyID *int64    `json:"counterparty_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func newStatementResponse(entry ledger.Entry) StatementResponse {
	response := StatementResponse{
		ID:          entry.ID,
		Type:        string(entry.Kind),
		Amount:      entry.Amount,
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
	}
	if entry.Kind == ledger.KindTransfer {
		counterparty := entry.CounterpartyID
		response.CounterpartyID = &counterparty
	}
	return response
}

// StatementController : StatementController struct
type StatementController struct {
	svc *service.FinhubService
}

func NewStatementController(svc *service.FinhubService) *StatementController {
	return &StatementController{svc: svc}
}

// GetStatement : returns a single statement entry of the authenticated user
func (controller *StatementController) GetStatement(c echo.Context) error {
	userID := c.Get("UserID").(int64)

	statementID, err := strconv.ParseInt(c.Param("statement_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	entry, err := controller.svc.Entry(c.Request().Context(), userID, statementID)
	if err != nil {
		if resp, ok := responses.LedgerError(err); ok {
			return c.JSON(resp.HttpStatusCode, resp)
		}
		return err
	}
	return c.JSON(http.StatusOK, newStatementResponse(entry))
}
