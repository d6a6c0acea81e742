package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	DispatchPending   = "pending"
	DispatchEnRoute   = "en_route"
	DispatchDelivered = "delivered"
	DispatchCancelled = "cancelled"
	DispatchDelayed   = "delayed"
)

// Dispatch is a single transport order. Route, client and cargo are required
// and protected against deletion while referenced; the assigned resources
// (vehicle/driver for ground, aircraft/pilot for air) are optional and cleared
// when the resource record is deleted.
//
// RequestedAt and CreatedByID are stamped on first save and never rewritten
// (`<-:create` field permission).
type Dispatch struct {
	gorm.Model
	Reference   string     `json:"reference" gorm:"size:50;uniqueIndex" binding:"required"`
	RequestedAt time.Time  `json:"requested_at" gorm:"<-:create;autoCreateTime;index"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	DeliveredAt *time.Time `json:"delivered_at"`

	RouteID    uint  `json:"route_id" binding:"required"`
	ClientID   uint  `json:"client_id" binding:"required"`
	CargoID    uint  `json:"cargo_id" binding:"required"`
	VehicleID  *uint `json:"vehicle_id"`
	AircraftID *uint `json:"aircraft_id"`
	DriverID   *uint `json:"driver_id"`
	PilotID    *uint `json:"pilot_id"`

	// Associations are pointers so binding a payload that carries only the
	// foreign keys does not validate zero-valued nested structs.
	Route    *Route    `json:"route,omitempty" gorm:"foreignKey:RouteID"`
	Client   *Client   `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Cargo    *Cargo    `json:"cargo,omitempty" gorm:"foreignKey:CargoID"`
	Vehicle  *Vehicle  `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	Aircraft *Aircraft `json:"aircraft,omitempty" gorm:"foreignKey:AircraftID"`
	Driver   *Driver   `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	Pilot    *Pilot    `json:"pilot,omitempty" gorm:"foreignKey:PilotID"`

	TotalWeightKg  *float64 `json:"total_weight_kg"`
	VolumeM3       *float64 `json:"volume_m3"`
	TransportCost  *float64 `json:"transport_cost"`
	CargoInsurance *float64 `json:"cargo_insurance"`

	Status string `json:"status" gorm:"size:12;default:pending;index" binding:"omitempty,oneof=pending en_route delivered cancelled delayed"`
	Notes  string `json:"notes"`

	CreatedByID *uint `json:"created_by" gorm:"<-:create"`
}

// TransportType mirrors the linked route's transport type. Empty when the
// route association is not loaded.
func (d *Dispatch) TransportType() string {
	if d.Route == nil {
		return ""
	}
	return d.Route.TransportType
}

// DelayDays returns the whole days elapsed past the scheduled date, evaluated
// at the given instant. Only pending and en-route dispatches can be late;
// anything else reports zero. Never persisted, always recomputed.
func (d *Dispatch) DelayDays(at time.Time) int {
	if d.Status != DispatchPending && d.Status != DispatchEnRoute {
		return 0
	}
	if d.ScheduledAt == nil || !at.After(*d.ScheduledAt) {
		return 0
	}
	return int(at.Sub(*d.ScheduledAt) / (24 * time.Hour))
}
