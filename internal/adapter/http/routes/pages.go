package routes

import (
	"github.com/IgorSouzaLima/rjlima/internal/adapter/http/handlers"
	"github.com/IgorSouzaLima/rjlima/internal/usecase"

	"github.com/gin-gonic/gin"
)

func addPageRoutes(r *gin.Engine, pageHandler *handlers.PageHandler, sessionUseCase usecase.ISessionUseCase) {
	r.GET("/", pageHandler.Home)
	r.POST("/orcamento", pageHandler.QuoteRedirect)

	r.GET(handlers.TrackingPath, pageHandler.TrackingPage)
	r.POST(handlers.TrackingPath, pageHandler.TrackingSubmit)
	r.GET(handlers.TrackingPath+"/comprovante", pageHandler.TrackingReceipt)

	r.GET(handlers.LoginPath, pageHandler.LoginPage)
	r.POST(handlers.LoginPath, pageHandler.LoginSubmit)
	r.GET("/admin/logout", pageHandler.Logout)

	admin := r.Group("/admin", handlers.RequirePageSession(sessionUseCase))
	{
		admin.GET("/", pageHandler.AdminList)
		admin.GET("/notas/nova", pageHandler.AdminNew)
		admin.GET("/notas/:id/editar", pageHandler.AdminEdit)
		admin.POST("/notas", pageHandler.AdminSave)
		admin.POST("/notas/:id/excluir", pageHandler.AdminDelete)
		admin.POST("/notas/:id/remover-foto", pageHandler.AdminRemoveProof)
	}
}
