package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSensorType_IsValid(t *testing.T) {
	t.Parallel()

	for _, st := range SensorTypes() {
		if !st.IsValid() {
			t.Errorf("%q should be valid", st)
		}
	}
	if SensorType("Radar").IsValid() {
		t.Error("Radar should be invalid")
	}
	if len(SensorTypes()) != 8 {
		t.Errorf("expected 8 sensor types, got %d", len(SensorTypes()))
	}
}

func TestSensorTypes_ReturnsCopy(t *testing.T) {
	t.Parallel()

	types := SensorTypes()
	types[0] = "Radar"
	if SensorTypes()[0] != SensorTypeTemperature {
		t.Error("SensorTypes exposed its backing array")
	}
}

func TestSensorUpdateParams_Apply(t *testing.T) {
	t.Parallel()

	orig := Sensor{ID: "S001", Name: "T-100", Type: SensorTypeTemperature, Price: 49.99, Stock: 125}
	stock := 120
	today := DateOf(time.Date(2024, 3, 9, 17, 4, 0, 0, time.UTC))

	got := SensorUpdateParams{Stock: &stock, LastUpdated: today}.Apply(orig)

	if got.Stock != 120 || got.Price != 49.99 || got.Name != "T-100" || got.ID != "S001" {
		t.Errorf("unexpected merge result: %+v", got)
	}
	if got.LastUpdated.String() != "2024-03-09" {
		t.Errorf("lastUpdated: got %s", got.LastUpdated)
	}
	if orig.Stock != 125 {
		t.Error("Apply mutated its argument")
	}
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("2023-06-15")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2023-06-15"` {
		t.Errorf("got %s", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("got %v, want %v", back, d)
	}

	if _, err := ParseDate("15/06/2023"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestFormatAndParseID(t *testing.T) {
	t.Parallel()

	if got := FormatID(PrefixSensor, 7); got != "S007" {
		t.Errorf("FormatID = %q", got)
	}
	if got := FormatID(PrefixClient, 1234); got != "C1234" {
		t.Errorf("FormatID wide = %q", got)
	}

	n, ok := ParseIDSeq(PrefixOrder, "O042")
	if !ok || n != 42 {
		t.Errorf("ParseIDSeq(O042) = %d, %v", n, ok)
	}
	for _, bad := range []string{"S", "X001", "Sabc", ""} {
		if _, ok := ParseIDSeq(PrefixSensor, bad); ok {
			t.Errorf("ParseIDSeq(%q) should fail", bad)
		}
	}
}
