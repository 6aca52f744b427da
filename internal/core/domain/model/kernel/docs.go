// Package kernel provides the shared value objects of the freight domain model:
// identifiers, transport modes, ISO country codes and effective date windows.
//
// Every other model package depends on kernel; kernel depends on nothing but
// internal/pkg helpers.
package kernel
