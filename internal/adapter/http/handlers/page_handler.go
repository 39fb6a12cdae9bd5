package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	request "github.com/IgorSouzaLima/rjlima/internal/adapter/http/dto/request"
	response "github.com/IgorSouzaLima/rjlima/internal/adapter/http/dto/response"
	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
	"github.com/IgorSouzaLima/rjlima/internal/domain/fiscalkey"
	"github.com/IgorSouzaLima/rjlima/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	AdminHomePath = "/admin/"
	TrackingPath  = "/rastreio"
)

// Notices shown after a redirect, keyed by the msg query value.
var pageNotices = map[string]string{
	"created":       "Nota fiscal criada com sucesso",
	"updated":       "Nota fiscal atualizada com sucesso",
	"deleted":       "Nota fiscal excluida com sucesso",
	"proof-removed": "Foto do comprovante removida",
}

var pageErrors = map[string]string{
	"not-found":     "Nota fiscal nao encontrada",
	"delete-failed": "Erro ao excluir nota fiscal",
	"proof-failed":  "Erro ao remover foto do comprovante",
}

type navData struct {
	Admin        bool
	TrackingLink bool
}

type pageBase struct {
	Nav    navData
	Year   int
	Notice string
	Error  string
}

type trackingPage struct {
	pageBase
	Key        string
	InvalidKey bool
	NotFound   bool
	Result     *response.TrackingResponse
}

type loginPage struct {
	pageBase
	Email string
}

type adminListPage struct {
	pageBase
	State      usecase.ListState
	Statuses   []entities.InvoiceStatus
	Items      []response.InvoiceResponse
	Pagination *usecase.Pagination
	PrevURL    string
	NextURL    string
}

type adminFormPage struct {
	pageBase
	ID            string
	Form          request.InvoiceForm
	ProofPhotoURL string
	Statuses      []entities.InvoiceStatus
	States        []string
}

// PageHandler renders the HTML surface: marketing home, public tracking,
// admin login and the admin invoice pages.

type PageHandler struct {
	invoices      usecase.IInvoiceAdminUseCase
	tracking      usecase.ITrackingUseCase
	sessions      usecase.ISessionUseCase
	proofMaxBytes int64
}

func NewPageHandler(invoices usecase.IInvoiceAdminUseCase, tracking usecase.ITrackingUseCase, sessions usecase.ISessionUseCase, proofMaxBytes int64) *PageHandler {
	return &PageHandler{invoices: invoices, tracking: tracking, sessions: sessions, proofMaxBytes: proofMaxBytes}
}

func publicBase() pageBase {
	return pageBase{Nav: navData{TrackingLink: true}, Year: time.Now().Year()}
}

func adminBase(c *gin.Context) pageBase {
	return pageBase{
		Nav:    navData{Admin: true},
		Year:   time.Now().Year(),
		Notice: pageNotices[c.Query("msg")],
		Error:  pageErrors[c.Query("erro")],
	}
}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", publicBase())
}

// QuoteRedirect forwards the quote form to the WhatsApp conversation.
func (h *PageHandler) QuoteRedirect(c *gin.Context) {
	var q request.QuoteRequest
	if err := c.ShouldBind(&q); err != nil {
		c.Redirect(http.StatusSeeOther, "/#orcamento")
		return
	}
	c.Redirect(http.StatusSeeOther, q.WhatsAppURL())
}

// TrackingPage shows the lookup form and, when ?chave is present, its result.
func (h *PageHandler) TrackingPage(c *gin.Context) {
	page := trackingPage{pageBase: publicBase(), Key: fiscalkey.Clean(c.Query("chave"))}
	if page.Key == "" {
		c.HTML(http.StatusOK, "tracking.html", page)
		return
	}

	inv, err := trackAndObserve(c, h.tracking, page.Key)
	if err != nil {
		appErr := mapTrackingError(err)
		if errors.Is(err, usecase.ErrInvalidFiscalKey) {
			page.InvalidKey = true
		} else {
			page.NotFound = true
		}
		c.HTML(appErr.HTTPStatus, "tracking.html", page)
		return
	}

	res := response.FromTrackedInvoice(inv)
	page.Result = &res
	c.HTML(http.StatusOK, "tracking.html", page)
}

// TrackingSubmit normalizes the typed key and redirects to the shareable
// result URL.
func (h *PageHandler) TrackingSubmit(c *gin.Context) {
	key := fiscalkey.Sanitize(c.PostForm("chave"))
	c.Redirect(http.StatusSeeOther, TrackingPath+"?chave="+url.QueryEscape(key))
}

func (h *PageHandler) TrackingReceipt(c *gin.Context) {
	key := fiscalkey.Clean(c.Query("chave"))
	inv, err := trackAndObserve(c, h.tracking, key)
	if err != nil {
		c.Redirect(http.StatusSeeOther, TrackingPath+"?chave="+url.QueryEscape(key))
		return
	}
	writeReceipt(c, inv)
}

// LoginPage skips the form when the visitor already holds a session.
func (h *PageHandler) LoginPage(c *gin.Context) {
	if h.sessions.RequireAuth(c.Request.Context(), sessionToken(c)) {
		c.Redirect(http.StatusSeeOther, AdminHomePath)
		return
	}
	c.HTML(http.StatusOK, "login.html", loginPage{pageBase: pageBase{Year: time.Now().Year()}})
}

func (h *PageHandler) LoginSubmit(c *gin.Context) {
	var payload request.SignInRequest
	_ = c.ShouldBind(&payload)

	s, err := h.sessions.SignIn(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapSessionError(err)
		page := loginPage{pageBase: pageBase{Year: time.Now().Year(), Error: appErr.Message}, Email: payload.Email}
		c.HTML(appErr.HTTPStatus, "login.html", page)
		return
	}

	setSessionCookie(c, s.Token, int(time.Until(s.ExpiresAt).Seconds()))
	c.Redirect(http.StatusSeeOther, AdminHomePath)
}

func (h *PageHandler) Logout(c *gin.Context) {
	if err := h.sessions.SignOut(c.Request.Context(), sessionToken(c)); err != nil {
		log.Printf("[session][page] sign-out failed err=%v", err)
	}
	clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, LoginPath)
}

func (h *PageHandler) AdminList(c *gin.Context) {
	var q request.InvoiceListQuery
	_ = c.ShouldBindQuery(&q)
	state := q.ToListState()

	page := adminListPage{pageBase: adminBase(c), State: state, Statuses: entities.InvoiceStatuses}
	result, err := h.invoices.List(c.Request.Context(), state)
	if err != nil {
		appErr := mapInvoiceError(err)
		page.Error = appErr.Message
		c.HTML(appErr.HTTPStatus, "admin_list.html", page)
		return
	}

	list := response.FromInvoicePage(result)
	page.Items = list.Items
	page.Pagination = &list.Pagination
	if list.Pagination.HasPrev {
		page.PrevURL = adminListURL(state.PrevPage())
	}
	if list.Pagination.HasNext {
		page.NextURL = adminListURL(state.NextPage())
	}
	c.HTML(http.StatusOK, "admin_list.html", page)
}

func (h *PageHandler) AdminNew(c *gin.Context) {
	page := h.formPage(c, "", request.InvoiceForm{Status: string(entities.InvoiceStatuses[0])})
	c.HTML(http.StatusOK, "admin_form.html", page)
}

func (h *PageHandler) AdminEdit(c *gin.Context) {
	inv, err := h.invoices.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvoiceNotFound) || errors.Is(err, usecase.ErrInvalidInvoiceID) {
			c.Redirect(http.StatusSeeOther, AdminHomePath+"?erro=not-found")
			return
		}
		appErr := mapInvoiceError(err)
		page := h.formPage(c, c.Param("id"), request.InvoiceForm{})
		page.Error = appErr.Message
		c.HTML(appErr.HTTPStatus, "admin_form.html", page)
		return
	}

	page := h.formPage(c, inv.ID, invoiceToForm(inv))
	page.ProofPhotoURL = inv.ProofPhotoURL
	c.HTML(http.StatusOK, "admin_form.html", page)
}

// AdminSave creates the invoice when the hidden id is empty and updates it
// otherwise. Failures re-render the form with the typed values.
func (h *PageHandler) AdminSave(c *gin.Context) {
	var form request.InvoiceForm
	_ = c.ShouldBind(&form)
	id := strings.TrimSpace(c.PostForm("id"))

	photo, closePhoto, err := readProofPhoto(c, h.proofMaxBytes)
	if err != nil {
		log.Printf("[invoice][page] invalid proof photo id=%s err=%v", id, err)
		h.renderFormError(c, id, form, mapProofPhotoError(err).Message, mapProofPhotoError(err).HTTPStatus)
		return
	}
	defer closePhoto()

	_, err = h.invoices.Save(c.Request.Context(), form.ToCommand(id, photo))
	observeProofUpload(photo, err)
	if err != nil {
		appErr := mapInvoiceError(err)
		h.renderFormError(c, id, form, appErr.Message, appErr.HTTPStatus)
		return
	}

	msg := "created"
	if id != "" {
		msg = "updated"
	}
	c.Redirect(http.StatusSeeOther, AdminHomePath+"?msg="+msg)
}

func (h *PageHandler) AdminDelete(c *gin.Context) {
	if err := h.invoices.Delete(c.Request.Context(), c.Param("id")); err != nil {
		code := "delete-failed"
		if errors.Is(err, usecase.ErrInvoiceNotFound) {
			code = "not-found"
		}
		c.Redirect(http.StatusSeeOther, AdminHomePath+"?erro="+code)
		return
	}
	c.Redirect(http.StatusSeeOther, AdminHomePath+"?msg=deleted")
}

func (h *PageHandler) AdminRemoveProof(c *gin.Context) {
	id := c.Param("id")
	editURL := "/admin/notas/" + url.PathEscape(id) + "/editar"
	if _, err := h.invoices.RemoveProof(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrInvoiceNotFound) {
			c.Redirect(http.StatusSeeOther, AdminHomePath+"?erro=not-found")
			return
		}
		c.Redirect(http.StatusSeeOther, editURL+"?erro=proof-failed")
		return
	}
	c.Redirect(http.StatusSeeOther, editURL+"?msg=proof-removed")
}

func (h *PageHandler) formPage(c *gin.Context, id string, form request.InvoiceForm) adminFormPage {
	return adminFormPage{
		pageBase: adminBase(c),
		ID:       id,
		Form:     form,
		Statuses: entities.InvoiceStatuses,
		States:   entities.BrazilianStates,
	}
}

func (h *PageHandler) renderFormError(c *gin.Context, id string, form request.InvoiceForm, message string, status int) {
	page := h.formPage(c, id, form)
	page.Notice = ""
	page.Error = message
	if id != "" {
		if inv, err := h.invoices.Get(c.Request.Context(), id); err == nil {
			page.ProofPhotoURL = inv.ProofPhotoURL
		}
	}
	c.HTML(status, "admin_form.html", page)
}

func invoiceToForm(inv entities.Invoice) request.InvoiceForm {
	form := request.InvoiceForm{
		InvoiceNumber:  inv.InvoiceNumber,
		FiscalKey:      inv.FiscalKey,
		CollectionDate: entities.FormatDate(inv.CollectionDate),
		Recipient:      inv.Recipient,
		City:           inv.City,
		State:          inv.State,
		Status:         string(inv.Status),
	}
	if inv.DeliveryDate != nil {
		form.DeliveryDate = entities.FormatDate(*inv.DeliveryDate)
	}
	return form
}

func adminListURL(state usecase.ListState) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(state.Page))
	if state.Search != "" {
		q.Set("search", state.Search)
	}
	if state.Status != "" {
		q.Set("status", state.Status)
	}
	return AdminHomePath + "?" + q.Encode()
}
