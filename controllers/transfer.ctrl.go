package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/finhub/finhub.go/lib/responses"
	"github.com/finhub/finhub.go/lib/service"
)

// TransferController : TransferController struct
type TransferController struct {
	svc *service.FinhubService
}

func NewTransferController(svc *service.FinhubService) *TransferController {
	return &TransferController{svc: svc}
}

type TransferRequestBody struct {
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Description string `json:"description" validate:"required"`
}

// Transfer : moves funds from the authenticated user to the recipient named
// in the route. Responds with the sender's debit leg.
func (controller *TransferController) Transfer(c echo.Context) error {
	userID := c.Get("UserID").(int64)

	recipientID, err := strconv.ParseInt(c.Param("recipient_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	var body TransferRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load transfer request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	entry, err := controller.svc.Transfer(c.Request().Context(), userID, recipientID, body.Amount, body.Description)
	if err != nil {
		if resp, ok := responses.LedgerError(err); ok {
			return c.JSON(resp.HttpStatusCode, resp)
		}
		return err
	}
	return c.JSON(http.StatusCreated, newStatementResponse(entry))
}
