package queries_test

import (
	"testing"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNearestTerminalQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	terminals := []pricing.Terminal{
		{Code: "AST-1", City: "Astana", Latitude: 51.1694, Longitude: 71.4491, IsActive: true},
		{Code: "ALA-OLD", City: "Almaty", Latitude: 43.2567, Longitude: 76.9286, IsActive: false},
		{Code: "ALA-1", City: "Almaty", Latitude: 43.2389, Longitude: 76.8897, IsActive: true},
	}

	store := new(MockConfigurationStore)
	store.On("Terminals", ctx, carrierID).Return(terminals, nil).Once()

	query, err := queries.NewGetNearestTerminalQuery(carrierID, 43.25, 76.95)
	require.NoError(t, err)

	h := queries.NewGetNearestTerminalQueryHandler(store)
	terminal, distance, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.NotNil(t, terminal)
	assert.Equal(t, "ALA-1", terminal.Code)
	assert.InDelta(t, 5.0, distance, 1.0)
	store.AssertExpectations(t)
}

func TestGetNearestTerminalQueryHandler_Handle_NoActiveTerminal(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()

	store := new(MockConfigurationStore)
	store.On("Terminals", ctx, carrierID).Return([]pricing.Terminal{{Code: "OLD"}}, nil).Once()

	query, _ := queries.NewGetNearestTerminalQuery(carrierID, 0, 0)
	h := queries.NewGetNearestTerminalQueryHandler(store)
	terminal, _, err := h.Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, terminal)
}

func TestNewGetNearestTerminalQuery(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		wantErr  bool
	}{
		{name: "valid", lat: 43.2, lng: 76.9},
		{name: "poles and antimeridian", lat: -90, lng: 180},
		{name: "latitude out of range", lat: 91, lng: 0, wantErr: true},
		{name: "longitude out of range", lat: 0, lng: -181, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.NewGetNearestTerminalQuery(kernel.NewUUID(), tt.lat, tt.lng)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}
			assert.NoError(t, err)
		})
	}
}
