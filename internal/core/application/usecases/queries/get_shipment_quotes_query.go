// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetShipmentQuotesQueryIsNotConstructed = errors.New(
	"GetShipmentQuotesQuery must be created via NewGetShipmentQuotesQuery constructor",
)

// GetShipmentQuotesQuery lists the stored quotes of a shipment, cheapest first.
//
// Example:
//
//	query, err := NewGetShipmentQuotesQuery(shipmentID)
//	if err != nil {
//	    return err
//	}
//
//	quotes, err := handler.Handle(ctx, query)
//	for _, q := range quotes {
//	    fmt.Printf("%s %s %s\n", q.CarrierName, q.Price, q.Currency)
//	}
type GetShipmentQuotesQuery struct {
	shipmentID kernel.UUID
	guard      guard.ConstructorGuard
}

// NewGetShipmentQuotesQuery creates a query for one shipment.
func NewGetShipmentQuotesQuery(shipmentID kernel.UUID) (GetShipmentQuotesQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentQuotesQuery{}, err
	}
	return GetShipmentQuotesQuery{shipmentID: shipmentID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuotesQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQuotesQueryIsNotConstructed)
}

func (q GetShipmentQuotesQuery) ShipmentID() kernel.UUID { return q.shipmentID }

// GetShipmentQuotesQueryResponse is one quote in the read model.
// CarrierName is empty when the carrier was removed from the configuration.
type GetShipmentQuotesQueryResponse struct {
	ID                kernel.UUID
	CarrierID         kernel.UUID
	CarrierName       string
	Price             decimal.Decimal
	Currency          string
	TransportMode     kernel.TransportMode
	TransitDaysMin    int
	TransitDaysMax    int
	EstimatedDelivery time.Time
	ValidUntil        time.Time
	IsSelected        bool
}
