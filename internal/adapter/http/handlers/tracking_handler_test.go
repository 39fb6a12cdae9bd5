package handlers

import (
	"bytes"
	"encoding/json"
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

func TestTrackingHandler_TrackInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("delivered invoice exposes proof", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc)

		r := gin.New()
		r.GET("/v1/tracking/:fiscal_key", h.TrackInvoice)

		inv := sampleInvoice()
		inv.Status = entities.InvoiceStatusEntregue
		delivered := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
		inv.DeliveryDate = &delivered
		inv.ProofPhotoURL = "http://cdn/proof.png"
		uc.EXPECT().Track(gomock.Any(), testFiscalKey).Return(inv, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/tracking/"+testFiscalKey, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if res["proof_photo_url"] != "http://cdn/proof.png" || res["delivered"] != true {
			t.Fatalf("unexpected body %v", res)
		}
		if res["delivery_date"] != "12/01/2024" {
			t.Fatalf("unexpected delivery date %v", res["delivery_date"])
		}
	})

	t.Run("in transit hides proof", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc)

		r := gin.New()
		r.GET("/v1/tracking/:fiscal_key", h.TrackInvoice)

		inv := sampleInvoice()
		inv.ProofPhotoURL = "http://cdn/proof.png"
		uc.EXPECT().Track(gomock.Any(), testFiscalKey).Return(inv, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/tracking/"+testFiscalKey, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("proof.png")) {
			t.Fatalf("proof photo leaked before delivery: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc)

		r := gin.New()
		r.GET("/v1/tracking/:fiscal_key", h.TrackInvoice)

		uc.EXPECT().Track(gomock.Any(), testFiscalKey).Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/tracking/"+testFiscalKey, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc)

		r := gin.New()
		r.GET("/v1/tracking/:fiscal_key", h.TrackInvoice)

		uc.EXPECT().Track(gomock.Any(), "123").Return(entities.Invoice{}, usecase.ErrInvalidFiscalKey)

		req := httptest.NewRequest(http.MethodGet, "/v1/tracking/123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestTrackingHandler_DownloadReceipt(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITrackingUseCase(ctrl)
	h := NewTrackingHandler(uc)

	r := gin.New()
	r.GET("/v1/tracking/:fiscal_key/receipt", h.DownloadReceipt)

	uc.EXPECT().Track(gomock.Any(), testFiscalKey).Return(sampleInvoice(), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/tracking/"+testFiscalKey+"/receipt", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Fatalf("body is not a pdf")
	}
}
