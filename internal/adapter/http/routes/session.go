package routes

import (
	"github.com/IgorSouzaLima/rjlima/internal/adapter/http/handlers"
	"github.com/IgorSouzaLima/rjlima/internal/usecase"

	"github.com/gin-gonic/gin"
)

func addSessionRoutes(rg *gin.RouterGroup, sessionHandler *handlers.SessionHandler, sessionUseCase usecase.ISessionUseCase) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/sign-in", sessionHandler.SignIn)
		auth.POST("/sign-out", sessionHandler.SignOut)
		auth.GET("/session", handlers.RequireSession(sessionUseCase), sessionHandler.GetSession)
	}
}
