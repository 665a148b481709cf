// Package kernel provides core domain primitives used throughout the
// shipment tracking domain model.
//
// The package currently contains UUID, a value object for entity
// identifiers with validation and comparison capabilities. Primitives in
// this package are immutable and safe for concurrent use.
package kernel
