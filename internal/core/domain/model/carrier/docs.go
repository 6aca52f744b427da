// Package carrier provides the Carrier aggregate and the value types exchanged
// with carrier integrations (orders, tracking).
//
// A Carrier is owned by a company and describes which transport modes and
// countries it serves, whether it is currently taking requests and how it is
// integrated: priced from internal rate cards (manual), through a named
// external API (dhl, fedex, ups, ponyexpress) or with illustrative pricing (mock).
//
// Key business rules:
//   - A carrier without any supported countries, or with the "*" entry, serves every country
//   - Country entries may be stored as names and are normalized before comparison
//   - Only active carriers owned by a verified company are asked for quotes
package carrier
