package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/IgorSouzaLima/rjlima/internal/adapter/http/handlers/mocks"
	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
	"github.com/IgorSouzaLima/rjlima/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const testFiscalKey = "35240112345678000190550010000012341000012345"

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func invoiceFormBody(t *testing.T, fields map[string]string, photo []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if photo != nil {
		part, err := w.CreateFormFile(ProofPhotoField, "comprovante.png")
		if err != nil {
			t.Fatalf("create file: %v", err)
		}
		_, _ = part.Write(photo)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func validInvoiceFields() map[string]string {
	return map[string]string{
		"invoice_number":  "NF-1234",
		"fiscal_key":      testFiscalKey,
		"collection_date": "2024-01-10",
		"recipient":       "Mercado Central",
		"city":            "Varginha",
		"state":           "MG",
		"status":          "Em rota",
	}
}

func sampleInvoice() entities.Invoice {
	return entities.Invoice{
		ID:             "inv-1",
		InvoiceNumber:  "NF-1234",
		FiscalKey:      testFiscalKey,
		CollectionDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Recipient:      "Mercado Central",
		City:           "Varginha",
		State:          "MG",
		Status:         entities.InvoiceStatusEmRota,
	}
}

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("creates with proof photo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceAdminUseCase(ctrl)
		h := NewInvoiceHandler(uc, 1<<20)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		uc.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.SaveInvoiceCommand) (entities.Invoice, error) {
				if cmd.ID != "" {
					t.Fatalf("expected empty id on create, got %q", cmd.ID)
				}
				if cmd.ProofPhoto == nil || cmd.ProofPhoto.ContentType != "image/png" {
					t.Fatalf("expected png proof photo, got %+v", cmd.ProofPhoto)
				}
				inv := sampleInvoice()
				inv.ProofPhotoURL = "http://localhost:9000/proof-photos/proofs/inv-1-1.png"
				return inv, nil
			})

		body, contentType := invoiceFormBody(t, validInvoiceFields(), pngHeader)
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if res["id"] != "inv-1" || res["proof_photo_url"] == "" {
			t.Fatalf("unexpected body %v", res)
		}
	})

	t.Run("rejects non-image proof", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceAdminUseCase(ctrl)
		h := NewInvoiceHandler(uc, 1<<20)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		body, contentType := invoiceFormBody(t, validInvoiceFields(), []byte("just some text"))
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejects oversized proof", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceAdminUseCase(ctrl)
		h := NewInvoiceHandler(uc, 8)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		body, contentType := invoiceFormBody(t, validInvoiceFields(), pngHeader)
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d", w.Code)
		}
	})

	t.Run("duplicate fiscal key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceAdminUseCase(ctrl)
		h := NewInvoiceHandler(uc, 1<<20)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		uc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, usecase.ErrDuplicateFiscalKey)

		body, contentType := invoiceFormBody(t, validInvoiceFields(), nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("invalid fiscal key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceAdminUseCase(ctrl)
		h := NewInvoiceHandler(uc, 1<<20)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		fields := validInvoiceFields()
		fields["fiscal_key"] = "1234"
		uc.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.SaveInvoiceCommand) (entities.Invoice, error) {
				if cmd.FiscalKey != "1234" {
					t.Fatalf("unexpected key %q", cmd.FiscalKey)
				}
				return entities.Invoice{}, usecase.ErrInvalidFiscalKey
			})

		body, contentType := invoiceFormBody(t, fields, nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("upload failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceAdminUseCase(ctrl)
		h := NewInvoiceHandler(uc, 1<<20)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		uc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, usecase.ErrProofUploadFailed)

		body, contentType := invoiceFormBody(t, validInvoiceFields(), pngHeader)
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_UpdateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes id and remove flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceAdminUseCase(ctrl)
		h := NewInvoiceHandler(uc, 1<<20)

		r := gin.New()
		r.PUT("/v1/invoices/:id", h.UpdateInvoice)

		uc.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.SaveInvoiceCommand) (entities.Invoice, error) {
				if cmd.ID != "inv-1" || !cmd.RemoveProofPhoto || cmd.ProofPhoto != nil {
					t.Fatalf("unexpected command %+v", cmd)
				}
				return sampleInvoice(), nil
			})

		fields := validInvoiceFields()
		fields["remove_proof_photo"] = "true"
		body, contentType := invoiceFormBody(t, fields, nil)
		req := httptest.NewRequest(http.MethodPut, "/v1/invoices/inv-1", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceAdminUseCase(ctrl)
		h := NewInvoiceHandler(uc, 1<<20)

		r := gin.New()
		r.PUT("/v1/invoices/:id", h.UpdateInvoice)

		uc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		body, contentType := invoiceFormBody(t, validInvoiceFields(), nil)
		req := httptest.NewRequest(http.MethodPut, "/v1/invoices/missing", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_ListInvoices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceAdminUseCase(ctrl)
		h := NewInvoiceHandler(uc, 1<<20)

		r := gin.New()
		r.GET("/v1/invoices", h.ListInvoices)

		uc.EXPECT().List(gomock.Any(), usecase.ListState{Page: 2, Search: "mercado", Status: "Em rota"}).Return(usecase.InvoicePage{
			Items:      []entities.Invoice{sampleInvoice()},
			Pagination: usecase.NewPagination(2, 10, 11),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices?page=2&search=mercado&status=Em+rota", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res struct {
			Items      []map[string]any   `json:"items"`
			Pagination usecase.Pagination `json:"pagination"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(res.Items) != 1 || res.Pagination.From != 11 || res.Pagination.To != 11 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("list failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceAdminUseCase(ctrl)
		h := NewInvoiceHandler(uc, 1<<20)

		r := gin.New()
		r.GET("/v1/invoices", h.ListInvoices)

		uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(usecase.InvoicePage{}, errors.Join(usecase.ErrInvoiceListFailed, errors.New("boom")))

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_DeleteInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceAdminUseCase(ctrl)
		h := NewInvoiceHandler(uc, 1<<20)

		r := gin.New()
		r.DELETE("/v1/invoices/:id", h.DeleteInvoice)

		uc.EXPECT().Delete(gomock.Any(), "inv-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/invoices/inv-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceAdminUseCase(ctrl)
		h := NewInvoiceHandler(uc, 1<<20)

		r := gin.New()
		r.DELETE("/v1/invoices/:id", h.DeleteInvoice)

		uc.EXPECT().Delete(gomock.Any(), "missing").Return(usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/invoices/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_RemoveProofPhoto(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceAdminUseCase(ctrl)
	h := NewInvoiceHandler(uc, 1<<20)

	r := gin.New()
	r.DELETE("/v1/invoices/:id/proof-photo", h.RemoveProofPhoto)

	uc.EXPECT().RemoveProof(gomock.Any(), "inv-1").Return(sampleInvoice(), nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/invoices/inv-1/proof-photo", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
