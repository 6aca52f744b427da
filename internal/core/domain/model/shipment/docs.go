// Package shipment provides the Shipment entity submitted by shippers for
// pricing, together with its Address and Item value objects.
//
// The pricing engine treats a shipment as read-only input: it never changes
// a shipment while computing quotes.
package shipment
