package response

import (
	"encoding/json"
	"habitrack/shared/constant"
	"habitrack/shared/failure"
	"habitrack/shared/logger"
	"net/http"
)

type Error struct {
	Error string `json:"error"`
}

type Message struct {
	Message string `json:"message"`
}

type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: message})
}

// WithJSON sends the payload as the whole body, without an envelope
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithError sends a response with an error message. Server side failures
// never leak their cause.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	errMsg := err.Error()
	if code >= http.StatusInternalServerError && failure.GetKind(err) != failure.KindStore {
		errMsg = constant.ResponseErrorInternal
	}

	WithErrorMessage(writer, code, errMsg)
}

func WithErrorMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Error{Error: message})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func WithRouteNotFound(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusNotFound, constant.ResponseErrorRouteNotFound)
}

func WithInternalError(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusInternalServerError, constant.ResponseErrorInternal)
}

func response(writer http.ResponseWriter, code int, payload any) {
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
