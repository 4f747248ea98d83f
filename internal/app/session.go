package app

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-tickets/internal/service"
)

type sessionKey string

const (
	SessionKeyVisitor        = sessionKey("visitor")
	SessionKeyLastPurchaseId = sessionKey("lastPurchaseID")
)

func (s sessionKey) String() string {
	return string(s)
}

func (app *application) contextGetLogger(r *http.Request) *slog.Logger {
	return service.LoggerFromContext(r.Context(), app.logger)
}

func (app *application) rememberPurchase(r *http.Request, purchaseId uuid.UUID) {
	app.sessionManager.Put(r.Context(), SessionKeyLastPurchaseId.String(), purchaseId.String())
}
