package app

import (
	"net/http"

	"github.com/metinatakli/cinema-tickets/api"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/samber/lo"
)

func (app *application) GetTicketCategories(w http.ResponseWriter, r *http.Request) {
	config := app.ticketService.Config()
	rules := app.ticketService.Rules()

	categories := lo.Map(config.Categories(), func(category domain.TicketCategory, _ int) api.TicketCategory {
		price, _ := config.Price(category)

		return api.TicketCategory{
			Category:         category.String(),
			Price:            price.StringFixed(2),
			Seated:           category != rules.ZeroSeat,
			Guardian:         category == rules.Guardian,
			RequiresGuardian: category == rules.Dependent || category == rules.ZeroSeat,
		}
	})

	resp := api.TicketCategoriesResponse{
		Categories:            categories,
		MaxTicketsPerPurchase: rules.MaxTickets,
	}

	app.writeJSON(w, http.StatusOK, resp, nil)
}
