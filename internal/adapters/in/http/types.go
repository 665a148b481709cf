package http

import (
	"time"

	"supplychain/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse returns the identifier assigned to a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// CleanupResponse reports the outcome of a delivery cleanup sweep.
type CleanupResponse struct {
	Deleted int `json:"deleted"`
}

// ShipmentRequest is the create/update body for shipments.
type ShipmentRequest struct {
	Origin            string     `json:"origin"`
	Destination       string     `json:"destination"`
	Status            string     `json:"status"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
	RouteID           *string    `json:"routeId"`
	VendorID          *string    `json:"vendorId"`
}

// ShipmentResponse is the shipment read model on the wire.
type ShipmentResponse struct {
	ID                string     `json:"id"`
	Origin            string     `json:"origin"`
	Destination       string     `json:"destination"`
	Status            string     `json:"status"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
	RouteID           *string    `json:"routeId"`
	VendorID          *string    `json:"vendorId"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// DeliveryRequest is the create/update body for deliveries. The shipment
// reference is only honored on create; a delivery never changes shipment.
type DeliveryRequest struct {
	ShipmentID         string     `json:"shipmentId"`
	ActualDeliveryDate *time.Time `json:"actualDeliveryDate"`
	Recipient          string     `json:"recipient"`
	Status             string     `json:"status"`
}

// DeliveryResponse is the delivery read model on the wire.
type DeliveryResponse struct {
	ID                 string     `json:"id"`
	ShipmentID         string     `json:"shipmentId"`
	ActualDeliveryDate *time.Time `json:"actualDeliveryDate"`
	Recipient          string     `json:"recipient"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// RouteRequest is the create/update body for routes.
type RouteRequest struct {
	OriginPort         string   `json:"originPort"`
	DestinationPort    string   `json:"destinationPort"`
	Duration           int      `json:"duration"`
	Status             string   `json:"status"`
	Distance           *float64 `json:"distance"`
	TransportationMode string   `json:"transportationMode"`
	Cost               *float64 `json:"cost"`
}

// RouteResponse is the route read model on the wire.
type RouteResponse struct {
	ID                 string   `json:"id"`
	OriginPort         string   `json:"originPort"`
	DestinationPort    string   `json:"destinationPort"`
	Duration           int      `json:"duration"`
	Status             string   `json:"status"`
	Distance           *float64 `json:"distance"`
	TransportationMode string   `json:"transportationMode"`
	Cost               *float64 `json:"cost"`
}

// VendorRequest is the create/update body for vendors.
type VendorRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contactInfo"`
	ServiceType string `json:"serviceType"`
	IsActive    bool   `json:"isActive"`
}

// VendorResponse is the vendor read model on the wire.
type VendorResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contactInfo"`
	ServiceType string `json:"serviceType"`
	IsActive    bool   `json:"isActive"`
}

// CargoRequest is the create/update body for cargo items. The shipment
// reference is only honored on create.
type CargoRequest struct {
	ShipmentID  string   `json:"shipmentId"`
	CargoType   string   `json:"cargoType"`
	Description string   `json:"description"`
	Value       *float64 `json:"value"`
	Weight      *float64 `json:"weight"`
	WeightUnit  string   `json:"weightUnit"`
}

// CargoResponse is the cargo read model on the wire.
type CargoResponse struct {
	ID          string   `json:"id"`
	ShipmentID  string   `json:"shipmentId"`
	CargoType   string   `json:"cargoType"`
	Description string   `json:"description"`
	Value       *float64 `json:"value"`
	Weight      *float64 `json:"weight"`
	WeightUnit  string   `json:"weightUnit"`
}

func toShipmentResponse(src queries.ShipmentResponse) ShipmentResponse {
	resp := ShipmentResponse{
		ID:                src.ID.String(),
		Origin:            src.Origin,
		Destination:       src.Destination,
		Status:            src.Status,
		EstimatedDelivery: src.EstimatedDelivery,
		CreatedAt:         src.CreatedAt,
		UpdatedAt:         src.UpdatedAt,
	}
	if src.RouteID != nil {
		id := src.RouteID.String()
		resp.RouteID = &id
	}
	if src.VendorID != nil {
		id := src.VendorID.String()
		resp.VendorID = &id
	}
	return resp
}

func toDeliveryResponse(src queries.DeliveryResponse) DeliveryResponse {
	return DeliveryResponse{
		ID:                 src.ID.String(),
		ShipmentID:         src.ShipmentID.String(),
		ActualDeliveryDate: src.ActualDeliveryDate,
		Recipient:          src.Recipient,
		Status:             src.Status,
		CreatedAt:          src.CreatedAt,
	}
}

func toRouteResponse(src queries.RouteResponse) RouteResponse {
	return RouteResponse{
		ID:                 src.ID.String(),
		OriginPort:         src.OriginPort,
		DestinationPort:    src.DestinationPort,
		Duration:           src.Duration,
		Status:             src.Status,
		Distance:           src.Distance,
		TransportationMode: src.TransportationMode,
		Cost:               src.Cost,
	}
}

func toVendorResponse(src queries.VendorResponse) VendorResponse {
	return VendorResponse{
		ID:          src.ID.String(),
		Name:        src.Name,
		ContactInfo: src.ContactInfo,
		ServiceType: src.ServiceType,
		IsActive:    src.IsActive,
	}
}

func toCargoResponse(src queries.CargoResponse) CargoResponse {
	return CargoResponse{
		ID:          src.ID.String(),
		ShipmentID:  src.ShipmentID.String(),
		CargoType:   src.CargoType,
		Description: src.Description,
		Value:       src.Value,
		Weight:      src.Weight,
		WeightUnit:  src.WeightUnit,
	}
}
