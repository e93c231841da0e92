package http

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
)

// limitBody rejects bodies larger than n bytes. Declared lengths are checked up front,
// anything else is cut off while reading.
func (s *Server) limitBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > n {
				s.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}

// validateRequests checks requests to operations of doc against their schemas. Routes
// the document does not describe (metrics, the document itself) pass through.
func (s *Server) validateRequests(doc *openapi3.T) func(http.Handler) http.Handler {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		panic(err)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, params, err := router.FindRoute(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: params,
				Route:      route,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				if route.Operation.OperationID == "normalize" {
					s.metrics.normalizeRequests.WithLabelValues(resultInvalid).Inc()
				}
				s.logger.Warn("Request rejected", "operation", route.Operation.OperationID, "error", err)
				s.writeError(w, bodyStatus(err), err.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
