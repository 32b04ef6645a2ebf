// Package transport defines the wire-level DTOs for the leads bounded context.
package transport

import (
	"time"

	"github.com/google/uuid"
)

// Format values for canonical leads.
const (
	FormatJSON = "json"
	FormatADF  = "adf"
)

// SourceWebhook is the default origin tag when a producer does not
// declare one.
const SourceWebhook = "webhook"

// Customer holds the contact fields of a lead. The container is always
// present on the wire even when every field inside is null, so consumers
// never need to null-check it.
type Customer struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// Vehicle holds the vehicle-of-interest fields of a lead. Like Customer,
// the container is always present on the wire.
type Vehicle struct {
	Year  *string `json:"year"`
	Make  *string `json:"make"`
	Model *string `json:"model"`
	VIN   *string `json:"vin"`
}

// LeadInput is the canonical shape produced by the format normalizers and
// accepted by the store. It never carries an id or receivedAt; the store
// assigns both exactly once at write time.
type LeadInput struct {
	Source             string
	Format             string
	Subject            *string
	Customer           Customer
	Vehicle            Vehicle
	VehicleDescription *string
	TradeInDescription *string
	Comments           *string
	// Raw is the original normalized-input snapshot kept for audit.
	Raw string
}

// LeadResponse is the canonical lead as returned by the read endpoint,
// newest-first. Raw is excluded from list responses on purpose: it is an
// audit artifact, not feed data.
type LeadResponse struct {
	ID                 uuid.UUID  `json:"id"`
	ReceivedAt         *time.Time `json:"receivedAt"`
	Subject            *string    `json:"subject"`
	Customer           Customer   `json:"customer"`
	Vehicle            Vehicle    `json:"vehicle"`
	VehicleDescription *string    `json:"vehicleDescription,omitempty"`
	TradeInDescription *string    `json:"tradeInDescription,omitempty"`
	Comments           *string    `json:"comments,omitempty"`
	Source             string     `json:"source"`
	Format             string     `json:"format"`
}

// ListLeadsQuery carries the query parameters of GET /leads.
// Limit is never rejected: the service clamps any value into [1,100],
// so a negative limit behaves like limit=1.
type ListLeadsQuery struct {
	Limit int    `form:"limit"`
	Since string `form:"since" validate:"omitempty,max=64"`
}
