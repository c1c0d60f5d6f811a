package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SensorStatus is the operational state of a deployed sensor.
type SensorStatus string

const (
	SensorStatusOnline      SensorStatus = "Online"
	SensorStatusOffline     SensorStatus = "Offline"
	SensorStatusMaintenance SensorStatus = "Maintenance"
)

func (s SensorStatus) String() string { return string(s) }

func (s SensorStatus) IsValid() bool {
	switch s {
	case SensorStatusOnline, SensorStatusOffline, SensorStatusMaintenance:
		return true
	}
	return false
}

// ReadingError is the wire sentinel for a failed reading.
const ReadingError = "ERR"

// Reading is one data point reported by a deployed sensor. A reading with
// Valid == false is an error sample and is serialized as "ERR".
type Reading struct {
	Value float64
	Valid bool
}

// ValueReading returns a valid reading.
func ValueReading(v float64) Reading { return Reading{Value: v, Valid: true} }

// ErrorReading returns the error sentinel reading.
func ErrorReading() Reading { return Reading{} }

// ParseReading parses a number or the "ERR" sentinel.
func ParseReading(s string) (Reading, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, ReadingError) {
		return ErrorReading(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Reading{}, fmt.Errorf("parse reading %q: %w", s, err)
	}
	return ValueReading(v), nil
}

func (r Reading) String() string {
	if !r.Valid {
		return ReadingError
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

func (r Reading) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return json.Marshal(ReadingError)
	}
	return json.Marshal(r.Value)
}

func (r *Reading) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := ParseReading(s)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("reading must be a number or %q", ReadingError)
	}
	*r = ValueReading(v)
	return nil
}

// DeployedSensor is a sensor installed at a client site.
type DeployedSensor struct {
	ID                string       `json:"id"`
	Location          string       `json:"location"`
	Client            string       `json:"client"`
	Status            SensorStatus `json:"status"`
	LastCommunication time.Time    `json:"lastCommunication"`
	RuntimeHours      int          `json:"runtimeHours"`
	DataPoints        []Reading    `json:"dataPoints"`
}

// HasErrors reports whether any data point is an error sample.
func (d DeployedSensor) HasErrors() bool {
	for _, r := range d.DataPoints {
		if !r.Valid {
			return true
		}
	}
	return false
}

// SeriesPoint is one sample of a chartable reading series. Value is nil for
// error samples.
type SeriesPoint struct {
	Index int      `json:"time"`
	Value *float64 `json:"value"`
}

// Series converts the data points into a chart series, mapping error samples
// to gaps.
func (d DeployedSensor) Series() []SeriesPoint {
	out := make([]SeriesPoint, len(d.DataPoints))
	for i, r := range d.DataPoints {
		out[i] = SeriesPoint{Index: i}
		if r.Valid {
			v := r.Value
			out[i].Value = &v
		}
	}
	return out
}

// Clone returns a deep copy, so callers cannot alias stored data points.
func (d DeployedSensor) Clone() DeployedSensor {
	d.DataPoints = append([]Reading(nil), d.DataPoints...)
	return d
}
