package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/finhub/finhub.go/lib/responses"
	"github.com/finhub/finhub.go/lib/service"
)

// ProfileController : ProfileController struct
type ProfileController struct {
	svc *service.FinhubService
}

func NewProfileController(svc *service.FinhubService) *ProfileController {
	return &ProfileController{svc: svc}
}

type ProfileResponseBody struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile : returns the authenticated user's identity record
func (controller *ProfileController) Profile(c echo.Context) error {
	userID := c.Get("UserID").(int64)

	user, err := controller.svc.FindUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusNotFound, responses.AccountNotFoundError)
	}

	return c.JSON(http.StatusOK, &ProfileResponseBody{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}
