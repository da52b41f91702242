package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-users-posts/internal/service"
	"github.com/MKhiriev/go-users-posts/internal/store"
	"github.com/MKhiriev/go-users-posts/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrUserNotFound:     http.StatusNotFound,
	ErrInvalidJSON:      http.StatusBadRequest,
	ErrInvalidGzip:      http.StatusBadRequest,
	ErrRouteNotFound:    http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,

	validators.ErrEmptyName:     http.StatusBadRequest,
	validators.ErrEmptyText:     http.StatusBadRequest,
	validators.ErrInvalidID:     http.StatusBadRequest,
	validators.ErrInvalidUserID: http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrStorageUnavailable:  http.StatusServiceUnavailable,

	store.ErrUserNotFound: http.StatusNotFound,
	store.ErrInvalidData:  http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// statusFromError resolves the response status of err: an explicit
// StatusError wins, then an expired request deadline, then the sentinel map,
// then 500.
func statusFromError(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Status != 0 {
		return statusErr.Status
	}

	// driver errors caused by the deadline also wrap store sentinels
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
