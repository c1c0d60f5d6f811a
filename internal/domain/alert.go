package domain

import "time"

// AlertType classifies a maintenance alert.
type AlertType string

const (
	AlertTypeError       AlertType = "Error"
	AlertTypeOffline     AlertType = "Offline"
	AlertTypeMaintenance AlertType = "Maintenance"
)

func (t AlertType) String() string { return string(t) }

func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeError, AlertTypeOffline, AlertTypeMaintenance:
		return true
	}
	return false
}

// MaintenanceAlert is raised against a deployed sensor.
type MaintenanceAlert struct {
	ID       string    `json:"id"`
	SensorID string    `json:"sensorId"`
	Type     AlertType `json:"type"`
	Message  string    `json:"message"`
	Date     time.Time `json:"date"`
	Resolved bool      `json:"resolved"`
}
