package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/finhub/finhub.go/lib/responses"
	"github.com/finhub/finhub.go/lib/service"
)

// WithdrawController : WithdrawController struct
type WithdrawController struct {
	svc *service.FinhubService
}

func NewWithdrawController(svc *service.FinhubService) *WithdrawController {
	return &WithdrawController{svc: svc}
}

type WithdrawRequestBody struct {
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Description string `json:"description" validate:"required"`
}

// Withdraw : debits the authenticated user's ledger, provided the projected
// balance covers the amount
func (controller *WithdrawController) Withdraw(c echo.Context) error {
	userID := c.Get("UserID").(int64)

	var body WithdrawRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load withdraw request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	entry, err := controller.svc.Withdraw(c.Request().Context(), userID, body.Amount, body.Description)
	if err != nil {
		if resp, ok := responses.LedgerError(err); ok {
			return c.JSON(resp.HttpStatusCode, resp)
		}
		return err
	}
	return c.JSON(http.StatusCreated, newStatementResponse(entry))
}
