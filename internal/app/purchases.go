package app

import (
	"net/http"

	"github.com/metinatakli/cinema-tickets/api"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/samber/lo"
)

func (app *application) PurchaseTickets(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.PurchaseRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	requests := lo.Map(input.Tickets, func(t api.TicketRequest, _ int) domain.RawTicketTypeRequest {
		return domain.RawTicketTypeRequest{Category: t.Category, Quantity: t.Quantity}
	})

	outcome, err := app.ticketService.PurchaseTickets(r.Context(), input.AccountId, requests...)
	if err != nil {
		app.purchaseErrorResponse(w, r, err)
		return
	}

	app.rememberPurchase(r, outcome.ID)

	logger.Info("purchase completed", "purchase_id", outcome.ID, "account_id", outcome.AccountID)

	app.writeJSON(w, http.StatusCreated, toPurchaseResponse(outcome), nil)
}

func toPurchaseResponse(outcome *domain.PurchaseOutcome) api.PurchaseResponse {
	tickets := make(map[string]int)
	for category, count := range outcome.Quantities.AsMap() {
		if count > 0 {
			tickets[category.String()] = count
		}
	}

	return api.PurchaseResponse{
		PurchaseId: outcome.ID,
		AccountId:  int64(outcome.AccountID),
		TotalSeats: outcome.TotalSeats,
		TotalCost:  outcome.TotalCost.StringFixed(2),
		Tickets:    tickets,
	}
}
