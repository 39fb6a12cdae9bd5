package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"time"

	response "github.com/IgorSouzaLima/rjlima/internal/adapter/http/dto/response"
	"github.com/IgorSouzaLima/rjlima/internal/adapter/receipt"
	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
	"github.com/IgorSouzaLima/rjlima/internal/infrastructure/metrics"
	"github.com/IgorSouzaLima/rjlima/internal/usecase"
	"github.com/IgorSouzaLima/rjlima/pkg"

	"github.com/gin-gonic/gin"
)

// TrackingHandler serves the public lookup by fiscal key.

type TrackingHandler struct {
	usecase usecase.ITrackingUseCase
}

func NewTrackingHandler(uc usecase.ITrackingUseCase) *TrackingHandler {
	return &TrackingHandler{usecase: uc}
}

func (h *TrackingHandler) TrackInvoice(c *gin.Context) {
	inv, ok := h.track(c, c.Param("fiscal_key"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromTrackedInvoice(inv))
}

// DownloadReceipt renders the tracking summary as a PDF.
func (h *TrackingHandler) DownloadReceipt(c *gin.Context) {
	inv, ok := h.track(c, c.Param("fiscal_key"))
	if !ok {
		return
	}
	writeReceipt(c, inv)
}

func (h *TrackingHandler) track(c *gin.Context, rawKey string) (entities.Invoice, bool) {
	inv, err := trackAndObserve(c, h.usecase, rawKey)
	if err != nil {
		writeAppError(c, mapTrackingError(err))
		return entities.Invoice{}, false
	}
	return inv, true
}

func trackAndObserve(c *gin.Context, uc usecase.ITrackingUseCase, rawKey string) (entities.Invoice, error) {
	inv, err := uc.Track(c.Request.Context(), rawKey)
	switch {
	case err == nil:
		metrics.ObserveTrackingLookup(metrics.TrackingFound)
	case errors.Is(err, usecase.ErrInvalidFiscalKey):
		metrics.ObserveTrackingLookup(metrics.TrackingInvalid)
	default:
		metrics.ObserveTrackingLookup(metrics.TrackingNotFound)
	}
	return inv, err
}

func writeReceipt(c *gin.Context, inv entities.Invoice) {
	var buf bytes.Buffer
	if err := receipt.Render(&buf, inv, time.Now()); err != nil {
		log.Printf("[tracking][handler] receipt failed id=%s err=%v", inv.ID, err)
		writeAppError(c, pkg.NewDomainError("RECEIPT_FAILED", "Erro ao gerar comprovante", err, http.StatusInternalServerError))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="comprovante-`+inv.FiscalKey+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func mapTrackingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFiscalKey):
		return pkg.NewDomainErrorSimple("INVALID_FISCAL_KEY", "A chave da nota fiscal deve conter exatamente 44 digitos numericos", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INVOICE_NOT_FOUND", "Nao encontramos nenhuma nota fiscal com essa chave", err, http.StatusNotFound)
	}
}
