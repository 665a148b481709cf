// Package routerepo provides data transfer objects and mapping functions
// for route persistence.
package routerepo

import (
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting routes.
type RouteDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OriginPort         string    `gorm:"type:varchar(100);not null"`
	DestinationPort    string    `gorm:"type:varchar(100);not null"`
	Duration           int       `gorm:"type:int;not null"`
	Status             string    `gorm:"type:varchar(20);not null"`
	Distance           *float64  `gorm:"type:numeric"`
	TransportationMode string    `gorm:"type:varchar(50)"`
	Cost               *float64  `gorm:"type:numeric"`
}

// TableName overrides GORM's default naming to use "routes".
func (RouteDTO) TableName() string {
	return "routes"
}

func fromDomain(aggregate *route.Route) RouteDTO {
	return RouteDTO{
		ID:                 aggregate.ID().Bytes(),
		OriginPort:         aggregate.OriginPort(),
		DestinationPort:    aggregate.DestinationPort(),
		Duration:           aggregate.Duration(),
		Status:             aggregate.Status().String(),
		Distance:           aggregate.Distance(),
		TransportationMode: aggregate.TransportationMode(),
		Cost:               aggregate.Cost(),
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := route.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(id, dto.OriginPort, dto.DestinationPort, dto.Duration, status, dto.Distance, dto.TransportationMode, dto.Cost)
}
