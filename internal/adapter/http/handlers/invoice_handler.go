package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/IgorSouzaLima/rjlima/internal/adapter/http/dto/request"
	response "github.com/IgorSouzaLima/rjlima/internal/adapter/http/dto/response"
	"github.com/IgorSouzaLima/rjlima/internal/infrastructure/metrics"
	"github.com/IgorSouzaLima/rjlima/internal/usecase"
	"github.com/IgorSouzaLima/rjlima/internal/usecase/interfaces"
	"github.com/IgorSouzaLima/rjlima/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
)

// InvoiceHandler serves the admin invoice API. Every route sits behind
// RequireSession.

type InvoiceHandler struct {
	usecase       usecase.IInvoiceAdminUseCase
	proofMaxBytes int64
}

func NewInvoiceHandler(uc usecase.IInvoiceAdminUseCase, proofMaxBytes int64) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc, proofMaxBytes: proofMaxBytes}
}

// ListInvoices returns one page of invoices filtered by search and status.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var q request.InvoiceListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeAppError(c, errInvalidInvoicePayload)
		return
	}

	page, err := h.usecase.List(c.Request.Context(), q.ToListState())
	if err != nil {
		writeAppError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoicePage(page))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// CreateInvoice accepts the invoice form as multipart/form-data with an
// optional proof_photo file.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	h.save(c, "", http.StatusCreated)
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	h.save(c, c.Param("id"), http.StatusOK)
}

func (h *InvoiceHandler) save(c *gin.Context, id string, successStatus int) {
	var form request.InvoiceForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("[invoice][handler] invalid payload id=%s err=%v", id, err)
		writeAppError(c, errInvalidInvoicePayload)
		return
	}

	photo, closePhoto, err := readProofPhoto(c, h.proofMaxBytes)
	if err != nil {
		log.Printf("[invoice][handler] invalid proof photo id=%s err=%v", id, err)
		writeAppError(c, mapProofPhotoError(err))
		return
	}
	defer closePhoto()

	inv, err := h.usecase.Save(c.Request.Context(), form.ToCommand(id, photo))
	observeProofUpload(photo, err)
	if err != nil {
		writeAppError(c, mapInvoiceError(err))
		return
	}
	c.JSON(successStatus, response.FromInvoice(inv))
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeAppError(c, mapInvoiceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveProofPhoto detaches and deletes the proof photo of an invoice.
func (h *InvoiceHandler) RemoveProofPhoto(c *gin.Context) {
	inv, err := h.usecase.RemoveProof(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func observeProofUpload(photo *interfaces.ProofFile, err error) {
	if photo == nil {
		return
	}
	switch {
	case err == nil:
		metrics.ObserveProofUpload(true)
	case errors.Is(err, usecase.ErrProofUploadFailed):
		metrics.ObserveProofUpload(false)
	}
}

func mapInvoiceError(err error) *pkg.AppError {
	var vErr *usecase.ValidationError
	switch {
	case errors.Is(err, usecase.ErrInvalidFiscalKey):
		return pkg.NewDomainErrorSimple("INVALID_FISCAL_KEY", "A chave da nota fiscal deve conter exatamente 44 digitos numericos", http.StatusBadRequest)
	case errors.As(err, &vErr):
		return pkg.NewDomainError("INVALID_INVOICE", vErr.Message, err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProofPhoto):
		return pkg.NewDomainErrorSimple("INVALID_PROOF_PHOTO", "A foto do comprovante deve ser uma imagem", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicateFiscalKey):
		return pkg.NewDomainErrorSimple("DUPLICATE_FISCAL_KEY", "Ja existe uma nota fiscal com essa chave", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Nota fiscal nao encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceListFailed):
		return pkg.NewDomainError("INVOICE_LIST_FAILED", "Erro ao carregar notas fiscais", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrInvoiceLoadFailed):
		return pkg.NewDomainError("INVOICE_LOAD_FAILED", "Erro ao carregar nota fiscal", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrInvoiceCreateFailed):
		return pkg.NewDomainError("INVOICE_CREATE_FAILED", "Erro ao criar nota fiscal", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrInvoiceUpdateFailed):
		return pkg.NewDomainError("INVOICE_UPDATE_FAILED", "Erro ao atualizar nota fiscal", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrInvoiceDeleteFailed):
		return pkg.NewDomainError("INVOICE_DELETE_FAILED", "Erro ao excluir nota fiscal", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrProofUploadFailed):
		return pkg.NewDomainError("PROOF_UPLOAD_FAILED", "Erro ao fazer upload da foto", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrProofAttachFailed):
		return pkg.NewDomainError("PROOF_ATTACH_FAILED", "Erro ao atualizar foto do comprovante", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
