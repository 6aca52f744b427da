package queries

import (
	"context"
	"database/sql"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentQuotesQueryHandler reads shipment quotes with direct SQL.
type GetShipmentQuotesQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQuotesQueryHandler creates a handler reading from db.
func NewGetShipmentQuotesQueryHandler(db *gorm.DB) GetShipmentQuotesQueryHandler {
	return GetShipmentQuotesQueryHandler{db: db}
}

// Handle returns the quotes of the shipment ordered by price.
func (h GetShipmentQuotesQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuotesQuery,
) ([]GetShipmentQuotesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	quotes := make([]GetShipmentQuotesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			q.id,
			q.carrier_id,
			c.name,
			q.price,
			q.currency,
			q.transport_mode,
			q.transit_days_min,
			q.transit_days_max,
			q.estimated_delivery,
			q.valid_until,
			q.is_selected
		FROM quotes q
		LEFT JOIN carriers c ON c.id = q.carrier_id
		WHERE q.shipment_id = ?
		ORDER BY q.price, q.id
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetShipmentQuotesQueryResponse
		var id, carrierID uuid.UUID
		var carrierName sql.NullString
		var mode string

		err = rows.Scan(
			&id,
			&carrierID,
			&carrierName,
			&row.Price,
			&row.Currency,
			&mode,
			&row.TransitDaysMin,
			&row.TransitDaysMax,
			&row.EstimatedDelivery,
			&row.ValidUntil,
			&row.IsSelected,
		)
		if err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if row.CarrierID, err = kernel.UUIDFromBytes(carrierID[:]); err != nil {
			return nil, err
		}
		row.CarrierName = carrierName.String
		row.TransportMode = kernel.TransportMode(mode)
		quotes = append(quotes, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return quotes, nil
}
