// Package delivery contains the Delivery aggregate: the record confirming
// that a shipment reached its recipient.
//
// A delivery references exactly one shipment, and at most one delivery may
// exist per shipment (enforced by a unique index at the storage layer). A
// delivery whose shipment is no longer in Delivered status is inconsistent
// and is removed by the cleanup sweep rather than inline, so a transient
// status flap does not destroy delivery history.
package delivery

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

const maxRecipientLength = 100

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery records the hand-over of one shipment to its recipient.
type Delivery struct {
	id                 kernel.UUID
	shipmentID         kernel.UUID
	actualDeliveryDate *time.Time
	recipient          string
	status             Status

	isConstructed bool
}

// NewDelivery creates a validated Delivery referencing a shipment.
func NewDelivery(
	id kernel.UUID,
	shipmentID kernel.UUID,
	actualDeliveryDate *time.Time,
	recipient string,
	status Status,
) (*Delivery, error) {
	d := &Delivery{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setShipmentID(shipmentID),
		d.setRecipient(recipient),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	d.actualDeliveryDate = actualDeliveryDate
	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence with the same
// validation as NewDelivery.
func RestoreDelivery(
	id kernel.UUID,
	shipmentID kernel.UUID,
	actualDeliveryDate *time.Time,
	recipient string,
	status Status,
) (*Delivery, error) {
	return NewDelivery(id, shipmentID, actualDeliveryDate, recipient, status)
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// ShipmentID returns the referenced shipment's identifier.
func (d *Delivery) ShipmentID() kernel.UUID {
	return d.shipmentID
}

// ActualDeliveryDate returns the confirmed hand-over timestamp, or nil.
func (d *Delivery) ActualDeliveryDate() *time.Time {
	return d.actualDeliveryDate
}

// Recipient returns who received the shipment.
func (d *Delivery) Recipient() string {
	return d.recipient
}

// Status returns the delivery record status.
func (d *Delivery) Status() Status {
	return d.status
}

// ApplyUpdate replaces the mutable fields of the delivery record. The
// shipment reference is fixed for the record's lifetime.
func (d *Delivery) ApplyUpdate(actualDeliveryDate *time.Time, recipient string, status Status) error {
	if err := errors.Join(
		d.validateRecipient(recipient),
		status.Validate(),
	); err != nil {
		return err
	}

	d.actualDeliveryDate = actualDeliveryDate
	d.recipient = recipient
	d.status = status
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipmentId", err)
	}
	d.shipmentID = shipmentID
	return nil
}

func (d *Delivery) validateRecipient(recipient string) error {
	if recipient == "" {
		return errs.NewValueIsRequiredError("recipient")
	}
	if len(recipient) > maxRecipientLength {
		return errs.NewValueIsOutOfRangeError("recipient length", len(recipient), 1, maxRecipientLength)
	}
	return nil
}

func (d *Delivery) setRecipient(recipient string) error {
	if err := d.validateRecipient(recipient); err != nil {
		return err
	}
	d.recipient = recipient
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
