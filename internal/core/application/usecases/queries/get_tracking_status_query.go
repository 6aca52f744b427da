package queries

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrGetTrackingStatusQueryIsNotConstructed = errors.New(
		"GetTrackingStatusQuery must be created via NewGetTrackingStatusQuery constructor",
	)
	ErrTrackingNumberIsRequired = errs.NewValueIsRequiredError("tracking number")
)

// GetTrackingStatusQuery asks a carrier for the state of a booked shipment.
type GetTrackingStatusQuery struct {
	carrierID      kernel.UUID
	trackingNumber string
	guard          guard.ConstructorGuard
}

// NewGetTrackingStatusQuery creates a tracking query.
func NewGetTrackingStatusQuery(carrierID kernel.UUID, trackingNumber string) (GetTrackingStatusQuery, error) {
	var errList []error
	if err := carrierID.Validate(); err != nil {
		errList = append(errList, err)
	}
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		errList = append(errList, ErrTrackingNumberIsRequired)
	}
	if err := errors.Join(errList...); err != nil {
		return GetTrackingStatusQuery{}, err
	}

	return GetTrackingStatusQuery{
		carrierID:      carrierID,
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingStatusQueryIsNotConstructed)
}

func (q GetTrackingStatusQuery) CarrierID() kernel.UUID { return q.carrierID }
func (q GetTrackingStatusQuery) TrackingNumber() string { return q.trackingNumber }
