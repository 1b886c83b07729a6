package web

import (
	"net/http"

	"github.com/docbridge/docbridge/internal/core/domain"
)

// mapErrorToHTTPStatus turns the client error taxonomy into gateway
// responses. Backend trouble is a 502 from the gateway's point of view.
func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrNotFound):
		return http.StatusNotFound
	case domain.IsConnectivity(err):
		return http.StatusBadGateway
	case domain.IsDecode(err):
		return http.StatusBadGateway
	default:
		if te, ok := domain.IsTransport(err); ok && te.StatusCode >= 400 && te.StatusCode < 500 {
			return te.StatusCode
		}
		return http.StatusBadGateway
	}
}
