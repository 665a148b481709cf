// Package services contains stateless domain services: business rules that
// span aggregates and therefore do not belong to a single entity.
//
// DeliveryConsistencyService decides how delivery records relate to
// shipment state. It performs no IO; command handlers supply the
// aggregates and persist the results.
package services
