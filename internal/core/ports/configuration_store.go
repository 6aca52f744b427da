// Package ports defines the outbound contracts of the quoting engine.
// Adapters under internal/adapters/out implement them; the application layer
// depends only on these interfaces.
package ports

import (
	"context"
	"time"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
)

// ConfigurationStore gives read access to carrier pricing configuration.
// The configuration is maintained elsewhere; the engine never writes it.
type ConfigurationStore interface {
	// ActiveCarriers returns every carrier flagged active, in a stable order.
	// Company verification is reported on the carrier and filtered by the caller.
	ActiveCarriers(ctx context.Context) ([]*carrier.Carrier, error)

	// Carrier returns one carrier regardless of its activation.
	// Returns errs.ObjectNotFoundError when it does not exist.
	Carrier(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)

	// Zones returns the zones of a carrier with their postal matchers, in storage order.
	Zones(ctx context.Context, carrierID kernel.UUID) ([]pricing.Zone, error)

	// RateCards returns the rate cards of a carrier effective at now.
	RateCards(ctx context.Context, carrierID kernel.UUID, now time.Time) ([]pricing.RateCard, error)

	// Surcharges returns the active surcharges of a carrier effective at now.
	Surcharges(ctx context.Context, carrierID kernel.UUID, now time.Time) ([]pricing.Surcharge, error)

	// PricingRules returns the pricing rules of a carrier effective at now.
	// Use pricing.CurrentRule to pick the current one.
	PricingRules(ctx context.Context, carrierID kernel.UUID, now time.Time) ([]pricing.PricingRule, error)

	// Terminals returns the active terminals of a carrier.
	Terminals(ctx context.Context, carrierID kernel.UUID) ([]pricing.Terminal, error)
}
