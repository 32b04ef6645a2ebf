// Package repository provides data access for the append-only lead store.
package repository

import (
	"context"
	"time"

	"leadsync_backend/internal/leads/transport"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists canonical leads. The table is append-only: records
// are never updated or deleted. Id and received_at are assigned here,
// exactly once, inside a single INSERT, so a failed write leaves nothing
// visible to subsequent reads and id assignment is race-free under
// concurrent writers.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new lead repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Add inserts a canonical lead and returns it with the store-assigned id
// and arrival timestamp. received_at comes from the database clock so it
// is monotonically non-decreasing per store instance; the seq identity
// column breaks ties between rows that share a timestamp.
func (r *Repository) Add(ctx context.Context, input transport.LeadInput) (transport.LeadResponse, error) {
	id := uuid.New()

	var receivedAt time.Time
	err := r.pool.QueryRow(ctx, `
		INSERT INTO leads (
			id, source, format, subject,
			customer_name, customer_email, customer_phone,
			vehicle_year, vehicle_make, vehicle_model, vehicle_vin,
			vehicle_description, trade_in_description, comments, raw
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING received_at
	`,
		id, input.Source, input.Format, input.Subject,
		input.Customer.Name, input.Customer.Email, input.Customer.Phone,
		input.Vehicle.Year, input.Vehicle.Make, input.Vehicle.Model, input.Vehicle.VIN,
		input.VehicleDescription, input.TradeInDescription, input.Comments, input.Raw,
	).Scan(&receivedAt)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	return transport.LeadResponse{
		ID:                 id,
		ReceivedAt:         &receivedAt,
		Subject:            input.Subject,
		Customer:           input.Customer,
		Vehicle:            input.Vehicle,
		VehicleDescription: input.VehicleDescription,
		TradeInDescription: input.TradeInDescription,
		Comments:           input.Comments,
		Source:             input.Source,
		Format:             input.Format,
	}, nil
}

// List returns leads ordered received_at descending, seq descending (the
// documented deterministic tie-break), filtered to received_at > since
// when a cursor is supplied. The caller is responsible for clamping limit.
func (r *Repository) List(ctx context.Context, since *time.Time, limit int) ([]transport.LeadResponse, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, received_at, source, format, subject,
		       customer_name, customer_email, customer_phone,
		       vehicle_year, vehicle_make, vehicle_model, vehicle_vin,
		       vehicle_description, trade_in_description, comments
		FROM leads
		WHERE $1::timestamptz IS NULL OR received_at > $1
		ORDER BY received_at DESC, seq DESC
		LIMIT $2
	`, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]transport.LeadResponse, 0, limit)
	for rows.Next() {
		var lead transport.LeadResponse
		var receivedAt time.Time
		if err := rows.Scan(
			&lead.ID, &receivedAt, &lead.Source, &lead.Format, &lead.Subject,
			&lead.Customer.Name, &lead.Customer.Email, &lead.Customer.Phone,
			&lead.Vehicle.Year, &lead.Vehicle.Make, &lead.Vehicle.Model, &lead.Vehicle.VIN,
			&lead.VehicleDescription, &lead.TradeInDescription, &lead.Comments,
		); err != nil {
			return nil, err
		}
		lead.ReceivedAt = &receivedAt
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}
