package response

import (
	"encoding/json"
	"net/http"
	"rooming/shared/constant"
	"rooming/shared/failure"
	"rooming/shared/logger"
	"sync/atomic"
)

// Success is the envelope of every successful API response.
type Success[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    T      `json:"data,omitempty"`
}

type Error struct {
	Error string `json:"error"`
}

var exposeInternalErrors atomic.Bool

// ExposeInternalErrors controls whether 5xx responses carry the underlying error message.
func ExposeInternalErrors(enable bool) {
	exposeInternalErrors.Store(enable)
}

// WithJSON sends a success envelope around data.
func WithJSON(writer http.ResponseWriter, code int, data any) {
	WithRaw(writer, code, Success[any]{Status: constant.ResponseStatusSuccess, Data: data})
}

// WithList sends a success envelope with the number of items.
func WithList(writer http.ResponseWriter, code int, data any, count int) {
	WithRaw(writer, code, Success[any]{Status: constant.ResponseStatusSuccess, Count: &count, Data: data})
}

// WithMessage sends a success envelope carrying only a message.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	WithRaw(writer, code, Success[any]{Status: constant.ResponseStatusSuccess, Message: message})
}

func WithMessageAndData(writer http.ResponseWriter, code int, message string, data any) {
	WithRaw(writer, code, Success[any]{Status: constant.ResponseStatusSuccess, Message: message, Data: data})
}

// WithError maps err to its status code. Messages of unexpected errors are hidden
// unless ExposeInternalErrors is enabled.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	if code >= http.StatusInternalServerError && !exposeInternalErrors.Load() {
		errMsg = constant.ResponseErrorInternal
	}

	WithRaw(writer, code, Error{Error: errMsg})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithRaw(writer, http.StatusTooManyRequests, Error{Error: constant.ResponseErrorRequestLimitExceeded})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithRaw(writer, http.StatusServiceUnavailable, Error{Error: constant.ResponseErrorPrepareShutdown})
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithRaw(writer, http.StatusServiceUnavailable, Error{Error: constant.ResponseErrorUnhealthy})
}

func WithRouteNotFound(writer http.ResponseWriter) {
	WithRaw(writer, http.StatusNotFound, Error{Error: constant.ResponseErrorRouteNotFound})
}

func WithMethodNotAllowed(writer http.ResponseWriter) {
	WithRaw(writer, http.StatusMethodNotAllowed, Error{Error: constant.ResponseErrorMethodNotAllowed})
}

// WithRaw writes payload as JSON without an envelope.
func WithRaw(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
