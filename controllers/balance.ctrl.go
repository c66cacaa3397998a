package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/finhub/finhub.go/lib/responses"
	"github.com/finhub/finhub.go/lib/service"
)

// BalanceController : BalanceController struct
type BalanceController struct {
	svc *service.FinhubService
}

func NewBalanceController(svc *service.FinhubService) *BalanceController {
	return &BalanceController{svc: svc}
}

type BalanceResponse struct {
	Statement []StatementResponse `json:"statement"`
	Balance   int64               `json:"balance"`
}

// Balance : returns the projected balance and the full statement of the
// authenticated user, oldest entry first
func (controller *BalanceController) Balance(c echo.Context) error {
	userID := c.Get("UserID").(int64)

	summary, err := controller.svc.Balance(c.Request().Context(), userID)
	if err != nil {
		if resp, ok := responses.LedgerError(err); ok {
			return c.JSON(resp.HttpStatusCode, resp)
		}
		return err
	}

	statement := make([]StatementResponse, len(summary.Statement))
	for i, entry := range summary.Statement {
		statement[i] = newStatementResponse(entry)
	}
	return c.JSON(http.StatusOK, &BalanceResponse{
		Statement: statement,
		Balance:   summary.Balance,
	})
}
