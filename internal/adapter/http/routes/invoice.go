package routes

import (
	"github.com/IgorSouzaLima/rjlima/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices = "/invoices"
	PathTracking = "/tracking"
	PathAuth     = "/auth"
)

func addInvoiceRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PUT("/:id", invoiceHandler.UpdateInvoice)
		invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
		invoices.DELETE("/:id/proof", invoiceHandler.RemoveProofPhoto)
	}
}

func addTrackingRoutes(rg *gin.RouterGroup, trackingHandler *handlers.TrackingHandler) {
	tracking := rg.Group(PathTracking)
	{
		tracking.GET("/:fiscal_key", trackingHandler.TrackInvoice)
		tracking.GET("/:fiscal_key/receipt", trackingHandler.DownloadReceipt)
	}
}
