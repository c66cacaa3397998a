package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/finhub/finhub.go/lib/responses"
	"github.com/finhub/finhub.go/lib/service"
)

// DepositController : DepositController struct
type DepositController struct {
	svc *service.FinhubService
}

func NewDepositController(svc *service.FinhubService) *DepositController {
	return &DepositController{svc: svc}
}

type DepositRequestBody struct {
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Description string `json:"description" validate:"required"`
}

// Deposit : credits the authenticated user's ledger
func (controller *DepositController) Deposit(c echo.Context) error {
	userID := c.Get("UserID").(int64)

	var body DepositRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load deposit request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	entry, err := controller.svc.Deposit(c.Request().Context(), userID, body.Amount, body.Description)
	if err != nil {
		if resp, ok := responses.LedgerError(err); ok {
			return c.JSON(resp.HttpStatusCode, resp)
		}
		return err
	}
	return c.JSON(http.StatusCreated, newStatementResponse(entry))
}
