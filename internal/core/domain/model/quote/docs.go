// Package quote provides the priced offer a carrier makes for a shipment.
//
// RawQuote is the value produced by carrier strategies and kept in the quote
// cache. Quote is the persisted aggregate attached to a shipment; once
// produced it is immutable apart from being selected by the shipper.
package quote
