// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"net/http"

	"leadsync_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

// Envelope is the standard response format: every payload carries an
// explicit ok flag so polling clients can branch without inspecting status
// codes.
type Envelope struct {
	OK    bool        `json:"ok"`
	ID    string      `json:"id,omitempty"`
	Items interface{} `json:"items,omitempty"`
	Error string      `json:"error,omitempty"`
}

// OK sends a 200 response with ok=true and the given item list.
func OK(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, Envelope{OK: true, Items: items})
}

// Created sends a 200 response carrying the id assigned by the store.
func Created(c *gin.Context, id string) {
	c.JSON(http.StatusOK, Envelope{OK: true, ID: id})
}

// Error sends an error response with the given status code and message.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{OK: false, Error: message})
}

// HandleError maps domain errors to HTTP responses.
// If the error is a typed *apperr.Error, it uses the error's Kind to
// determine the HTTP status code. Otherwise, it defaults to 400 Bad Request.
// Returns true if an error was handled, false otherwise.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if domainErr, ok := err.(*apperr.Error); ok {
		c.JSON(domainErr.HTTPStatus(), Envelope{OK: false, Error: domainErr.Message})
		return true
	}

	// Fallback for non-typed errors
	c.JSON(http.StatusBadRequest, Envelope{OK: false, Error: err.Error()})
	return true
}
