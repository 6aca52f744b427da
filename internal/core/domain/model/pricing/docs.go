// Package pricing holds the per-carrier pricing configuration read by the
// quoting engine: zones with postal code matchers, weight banded rate cards,
// surcharges, pricing rules and terminals.
//
// These records are maintained by the carrier configuration back office and
// are read-only for the engine, so they are plain structs with exported
// fields rather than guarded aggregates.
package pricing
