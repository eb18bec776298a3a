package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"engagement_service/internal/adapter/http/handlers/mocks"
	"engagement_service/internal/domain/entities"
	"engagement_service/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_SubmitQuote(t *testing.T) {
	t.Run("invalid price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl))
		r := newTestRouter()
		r.POST("/v1/requests/:id/quotes", h.SubmitQuote)

		for _, body := range []string{`{"price":0}`, `{"price":"-3"}`, `{"price":"abc"}`, `{}`} {
			w := serve(r, http.MethodPost, "/v1/requests/r-1/quotes", "prov-1", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("body %s: expected 400, got %d", body, w.Code)
			}
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)
		r := newTestRouter()
		r.POST("/v1/requests/:id/quotes", h.SubmitQuote)

		uc.EXPECT().SubmitQuote(gomock.Any(), "prov-1", "r-1", gomock.Any(), "tomorrow").
			DoAndReturn(func(_ context.Context, _, _ string, price decimal.Decimal, _ string) (usecase.QuoteSubmission, error) {
				if !price.Equal(decimal.RequireFromString("50.5")) {
					t.Fatalf("unexpected price %s", price)
				}
				return usecase.QuoteSubmission{
					Quote:   entities.Quote{ID: "q-1", ProviderID: "prov-1", RequestID: "r-1", Price: price, Status: entities.QuoteStatusPending},
					Created: true,
				}, nil
			})

		w := serve(r, http.MethodPost, "/v1/requests/r-1/quotes", "prov-1", `{"price":"50.5","message":"tomorrow"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Quote struct {
				ID    string `json:"id"`
				Price string `json:"price"`
			} `json:"quote"`
			Created bool `json:"created"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Quote.ID != "q-1" || body.Quote.Price != "50.50" || !body.Created {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("existing quote answers 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)
		r := newTestRouter()
		r.POST("/v1/requests/:id/quotes", h.SubmitQuote)

		uc.EXPECT().SubmitQuote(gomock.Any(), "prov-1", "r-1", gomock.Any(), "").
			Return(usecase.QuoteSubmission{Quote: entities.Quote{ID: "q-1", Price: decimal.NewFromInt(40)}}, nil)

		w := serve(r, http.MethodPost, "/v1/requests/r-1/quotes", "prov-1", `{"price":50}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("request closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)
		r := newTestRouter()
		r.POST("/v1/requests/:id/quotes", h.SubmitQuote)

		uc.EXPECT().SubmitQuote(gomock.Any(), "prov-1", "r-1", gomock.Any(), "").Return(usecase.QuoteSubmission{}, usecase.ErrRequestNotOpen)

		w := serve(r, http.MethodPost, "/v1/requests/r-1/quotes", "prov-1", `{"price":50}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "INVALID_STATE" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})
}

func TestQuoteHandler_ListAndGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)
	r := newTestRouter()
	r.GET("/v1/requests/:id/quotes", h.ListQuotes)
	r.GET("/v1/quotes/:id", h.GetQuote)

	uc.EXPECT().ListByRequest(gomock.Any(), "req-1", "r-1").Return([]entities.Quote{
		{ID: "q-1", Price: decimal.NewFromInt(10)},
		{ID: "q-2", Price: decimal.NewFromInt(20)},
	}, nil)
	uc.EXPECT().GetByID(gomock.Any(), "q-9").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

	w := serve(r, http.MethodGet, "/v1/requests/r-1/quotes", "req-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(list))
	}

	w = serve(r, http.MethodGet, "/v1/quotes/q-9", "req-1", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
