package ports

// Topic names, one per entity kind. Change notifications for an entity are
// always produced on its topic, and ordering is only guaranteed within a
// single topic.
const (
	ShipmentEventsTopic = "shipment-events"
	DeliveryEventsTopic = "delivery-events"
	RouteEventsTopic    = "route-events"
	CargoEventsTopic    = "cargo-events"
	VendorEventsTopic   = "vendor-events"
)

// Broadcast destinations for connected notification subscribers, mirroring
// the topics 1:1.
const (
	ShipmentsDestination  = "/topic/shipments"
	DeliveriesDestination = "/topic/deliveries"
	RoutesDestination     = "/topic/routes"
	CargoDestination      = "/topic/cargo"
	VendorsDestination    = "/topic/vendors"
)

// TopicDestinations maps each broker topic to the broadcast destination its
// messages are relayed to.
func TopicDestinations() map[string]string {
	return map[string]string{
		ShipmentEventsTopic: ShipmentsDestination,
		DeliveryEventsTopic: DeliveriesDestination,
		RouteEventsTopic:    RoutesDestination,
		CargoEventsTopic:    CargoDestination,
		VendorEventsTopic:   VendorsDestination,
	}
}

// EventPublisher announces a domain change onto a named topic.
//
// Publish is fire-and-forget: it must not block the caller beyond handing
// the message off, and it never reports failure. A lost event is
// acceptable because the store remains the source of truth; observers are
// expected to re-fetch, not to trust the payload as authoritative state.
// Handlers call Publish only after their transaction committed, so a
// failed business operation never produces a notification.
type EventPublisher interface {
	Publish(topic string, message string)
}

// Broadcaster pushes a message to every notification subscriber currently
// connected to a destination. Best effort: disconnected subscribers miss
// the message, there is no replay buffer and no acknowledgement.
type Broadcaster interface {
	Broadcast(destination string, message string)
}
