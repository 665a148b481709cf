// Package shipment contains the Shipment aggregate and its Status value
// object. A shipment moves cargo from an origin to a destination and may
// carry optional route and vendor references.
//
// The Status state machine is deliberately open: any defined status may be
// set by an update, and the side effects of a status change (delivery
// record materialization) are decided by comparing the status before and
// after the update, not by restricting transitions.
package shipment
