package app

import (
	"net/http"

	"github.com/metinatakli/cinema-tickets/api"
	"github.com/metinatakli/cinema-tickets/internal/domain"
)

// GetAccountSeats reports the running seat total reserved for an account.
func (app *application) GetAccountSeats(w http.ResponseWriter, r *http.Request, accountId int64) {
	accountID, err := domain.ParseAccountID(accountId)
	if err != nil {
		app.purchaseErrorResponse(w, r, err)
		return
	}

	seats, err := app.seatCounter.ReservedSeats(r.Context(), accountID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.AccountSeatsResponse{
		AccountId:     int64(accountID),
		ReservedSeats: seats,
	}

	app.writeJSON(w, http.StatusOK, resp, nil)
}
