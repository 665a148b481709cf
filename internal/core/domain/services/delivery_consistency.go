package services

import (
	"fmt"
	"time"

	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/pkg/errs"
)

// DeliveryConsistencyService holds the domain rules tying delivery records
// to shipment state: a delivery exists for a shipment exactly when the
// shipment is in Delivered status.
//
// The service is pure. Reading and writing records is done by the command
// handlers; this type only decides what a materialized record looks like
// and which existing records are inconsistent.
type DeliveryConsistencyService struct{}

// NewDeliveryConsistencyService creates the consistency service.
func NewDeliveryConsistencyService() DeliveryConsistencyService {
	return DeliveryConsistencyService{}
}

// MaterializeDelivery derives the delivery record for a shipment that
// entered Delivered status. The actual delivery date defaults to the
// shipment's estimated delivery normalized to midnight UTC, or to now when
// no estimate is set. The recipient defaults to "Customer at <destination>".
func (DeliveryConsistencyService) MaterializeDelivery(
	id kernel.UUID,
	s *shipment.Shipment,
	now time.Time,
) (*delivery.Delivery, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if !s.IsDelivered() {
		return nil, errs.NewValueIsInvalidErrorWithCause("shipment status",
			fmt.Errorf("cannot materialize a delivery for a shipment in %s status", s.Status()))
	}

	actual := now.UTC()
	if eta := s.EstimatedDelivery(); eta != nil {
		y, m, d := eta.UTC().Date()
		actual = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	recipient := "Customer at " + s.Destination()
	return delivery.NewDelivery(id, s.ID(), &actual, recipient, delivery.Delivered)
}

// IsConsistent reports whether a delivery record is allowed to exist given
// its shipment. A nil shipment means the reference dangles and the record
// is inconsistent.
func (DeliveryConsistencyService) IsConsistent(d *delivery.Delivery, s *shipment.Shipment) bool {
	return d != nil && s != nil && s.IsDelivered()
}

// SelectInconsistent returns the delivery records whose shipment is absent
// from the given set or not in Delivered status. These are the records the
// cleanup sweep removes.
func (svc DeliveryConsistencyService) SelectInconsistent(
	deliveries []*delivery.Delivery,
	shipments map[kernel.UUID]*shipment.Shipment,
) []*delivery.Delivery {
	var inconsistent []*delivery.Delivery
	for _, d := range deliveries {
		if !svc.IsConsistent(d, shipments[d.ShipmentID()]) {
			inconsistent = append(inconsistent, d)
		}
	}
	return inconsistent
}
