package transport

import (
	"github.com/labstack/echo/v4"

	"github.com/finhub/finhub.go/controllers"
	"github.com/finhub/finhub.go/lib/service"
)

func RegisterEndpoints(svc *service.FinhubService, e *echo.Echo, secured *echo.Group, securedWithStrictRateLimit *echo.Group, strictRateLimitMiddleware echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	if svc.Config.AllowAccountCreation {
		e.POST("/api/v1/users", controllers.NewCreateUserController(svc).CreateUser, strictRateLimitMiddleware, logMw)
	}
	e.POST("/api/v1/sessions", controllers.NewAuthController(svc).Auth, logMw)

	secured.GET("/api/v1/profile", controllers.NewProfileController(svc).Profile)

	statementCtrl := controllers.NewStatementController(svc)
	secured.POST("/api/v1/statements/deposit", controllers.NewDepositController(svc).Deposit)
	securedWithStrictRateLimit.POST("/api/v1/statements/withdraw", controllers.NewWithdrawController(svc).Withdraw)
	securedWithStrictRateLimit.POST("/api/v1/statements/transfers/:recipient_id", controllers.NewTransferController(svc).Transfer)
	secured.GET("/api/v1/statements/balance", controllers.NewBalanceController(svc).Balance)
	secured.GET("/api/v1/statements/:statement_id", statementCtrl.GetStatement)
}
