package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrGetNearestTerminalQueryIsNotConstructed = errors.New(
	"GetNearestTerminalQuery must be created via NewGetNearestTerminalQuery constructor",
)

// GetNearestTerminalQuery finds the active terminal of a carrier closest to a point.
type GetNearestTerminalQuery struct {
	carrierID kernel.UUID
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGetNearestTerminalQuery validates the coordinates in degrees.
func NewGetNearestTerminalQuery(carrierID kernel.UUID, latitude, longitude float64) (GetNearestTerminalQuery, error) {
	var errList []error
	if err := carrierID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if latitude < -90 || latitude > 90 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("latitude", latitude, -90, 90))
	}
	if longitude < -180 || longitude > 180 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("longitude", longitude, -180, 180))
	}
	if err := errors.Join(errList...); err != nil {
		return GetNearestTerminalQuery{}, err
	}

	return GetNearestTerminalQuery{
		carrierID: carrierID,
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNearestTerminalQuery) Validate() error {
	return q.guard.Validate(ErrGetNearestTerminalQueryIsNotConstructed)
}

func (q GetNearestTerminalQuery) CarrierID() kernel.UUID { return q.carrierID }
func (q GetNearestTerminalQuery) Latitude() float64      { return q.latitude }
func (q GetNearestTerminalQuery) Longitude() float64     { return q.longitude }
