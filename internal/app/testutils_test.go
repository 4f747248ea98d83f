package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/metinatakli/cinema-tickets/api"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/metinatakli/cinema-tickets/internal/payment"
	"github.com/metinatakli/cinema-tickets/internal/seatbooking"
	"github.com/metinatakli/cinema-tickets/internal/service"
)

func newTestApplication(t *testing.T, opts ...func(*application)) *application {
	t.Helper()

	openapiRouter, err := newOpenAPIRouter()
	if err != nil {
		t.Fatalf("failed to build openapi router: %v", err)
	}

	app := &application{
		config:         Config{Env: "test", SeatBackend: "memory"},
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionManager: scs.New(),
		openapiRouter:  openapiRouter,
	}

	seats := seatbooking.NewInMemorySeatReservationService()
	app.seatCounter = seats

	withCollaborators(t, seats, payment.NewInMemoryPaymentService())(app)

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func withCollaborators(t *testing.T, seats domain.SeatReservationService, payments domain.TicketPaymentService) func(*application) {
	return func(app *application) {
		ticketService, err := service.NewTicketService(
			domain.DefaultTicketConfig(),
			domain.DefaultPurchaseRules(),
			seats,
			payments,
			app.logger,
		)
		if err != nil {
			t.Fatalf("failed to build ticket service: %v", err)
		}

		app.ticketService = ticketService
	}
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader

	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	if reader != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()

	return w, r
}

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()

	var errorResp api.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	return errorResp
}
