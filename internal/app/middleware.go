package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/cinema-tickets/internal/service"
)

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// ensureSession starts a session for first time visitors so that every
// purchase attempt can be correlated by its session id in the logs.
func (app *application) ensureSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionId := app.sessionManager.Token(r.Context())

		if sessionId == "" {
			app.sessionManager.Put(r.Context(), SessionKeyVisitor.String(), true)

			_, _, err := app.sessionManager.Commit(r.Context())
			if err != nil {
				app.serverErrorResponse(w, r, err)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := app.logger.With(
			"request_id", middleware.GetReqID(r.Context()),
			"session_id", app.sessionManager.Token(r.Context()),
		)

		ctx := service.ContextWithLogger(r.Context(), logger)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// validateRequest checks the request against the OpenAPI document before it
// reaches the handler.
func (app *application) validateRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, pathParams, err := app.openapiRouter.FindRoute(r)
		if err != nil {
			if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
				next.ServeHTTP(w, r)
				return
			}

			app.serverErrorResponse(w, r, err)
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    r,
			PathParams: pathParams,
			Route:      route,
			Options: &openapi3filter.Options{
				AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
			},
		}

		err = openapi3filter.ValidateRequest(r.Context(), input)
		if err != nil {
			app.contextGetLogger(r).Warn("request rejected by openapi validation", "error", err)
			app.badRequestResponse(w, r, fmt.Errorf("request does not match the API schema: %s", requestErrorReason(err)))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func requestErrorReason(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) && requestErr.Reason != "" {
		return requestErr.Reason
	}

	return err.Error()
}
