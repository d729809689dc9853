package main

import (
	"fmt"
	"net/http"
)

// ErrorResponse is the failure payload of the delete and edit endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is the failure payload of the add and notify endpoints.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func BadRequest(messageID string) (int, interface{}) {
	return http.StatusBadRequest, ErrorResponse{
		Error: getLocalizedMessage(messageID),
	}
}

func NotFound(messageID string) (int, interface{}) {
	return http.StatusNotFound, ErrorResponse{
		Error: getLocalizedMessage(messageID),
	}
}

func BadRequestStatus(messageID string) (int, interface{}) {
	return http.StatusBadRequest, StatusResponse{
		Status:  "error",
		Message: getLocalizedMessage(messageID),
	}
}

// UpstreamError carries the messaging provider's non-success reply;
// its status is passed through to the caller.
type UpstreamError struct {
	Status int
	Body   string
}

func (e UpstreamError) Error() string {
	return fmt.Sprintf("provider replied %d: %s", e.Status, e.Body)
}

// TimeoutError means the provider did not answer within the fixed
// notification timeout. A single attempt is made, never a retry.
type TimeoutError struct {
	Err error
}

func (e TimeoutError) Error() string {
	return "provider request timed out: " + e.Err.Error()
}
