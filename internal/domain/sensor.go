package domain

// SensorType is the product category of a catalog sensor.
type SensorType string

const (
	SensorTypeTemperature SensorType = "Temperature"
	SensorTypeHumidity    SensorType = "Humidity"
	SensorTypeMotion      SensorType = "Motion"
	SensorTypePressure    SensorType = "Pressure"
	SensorTypeLight       SensorType = "Light"
	SensorTypeSound       SensorType = "Sound"
	SensorTypeGas         SensorType = "Gas"
	SensorTypeWater       SensorType = "Water"
)

var sensorTypes = []SensorType{
	SensorTypeTemperature, SensorTypeHumidity, SensorTypeMotion, SensorTypePressure,
	SensorTypeLight, SensorTypeSound, SensorTypeGas, SensorTypeWater,
}

// SensorTypes returns the fixed catalog of sensor types in display order.
func SensorTypes() []SensorType {
	out := make([]SensorType, len(sensorTypes))
	copy(out, sensorTypes)
	return out
}

func (t SensorType) String() string { return string(t) }

func (t SensorType) IsValid() bool {
	for _, v := range sensorTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Sensor is a catalog item offered for sale.
type Sensor struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        SensorType `json:"type"`
	Price       float64    `json:"price"`
	Stock       int        `json:"stock"`
	Description string     `json:"description"`
	LastUpdated Date       `json:"lastUpdated"`
}

// SensorUpdateParams holds a partial sensor update. Nil fields are left unchanged.
type SensorUpdateParams struct {
	Name        *string
	Type        *SensorType
	Price       *float64
	Stock       *int
	Description *string
	LastUpdated Date
}

// Apply returns a copy of s with the non-nil params merged in.
func (p SensorUpdateParams) Apply(s Sensor) Sensor {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Type != nil {
		s.Type = *p.Type
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Stock != nil {
		s.Stock = *p.Stock
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if !p.LastUpdated.IsZero() {
		s.LastUpdated = p.LastUpdated
	}
	return s
}
