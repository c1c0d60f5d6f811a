package domain

import (
	"encoding/json"
	"testing"
)

func TestReading_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	in := []Reading{ValueReading(23), ValueReading(-1.5), ErrorReading()}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `[23,-1.5,"ERR"]` {
		t.Fatalf("unexpected JSON: %s", b)
	}

	var out []Reading
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("reading %d: got %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestDeployedSensor_JSONShape(t *testing.T) {
	t.Parallel()

	d := DeployedSensor{
		ID:           "D001",
		Status:       SensorStatusOnline,
		RuntimeHours: 42,
		DataPoints:   []Reading{ValueReading(7), ErrorReading()},
	}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := string(fields["runtimeHours"]); got != "42" {
		t.Errorf("runtimeHours = %q, want 42 in %s", got, b)
	}
	if _, ok := fields["runtime"]; ok {
		t.Errorf("unexpected runtime key in %s", b)
	}
	if got := string(fields["dataPoints"]); got != `[7,"ERR"]` {
		t.Errorf("dataPoints = %s", got)
	}
	for _, key := range []string{"id", "location", "client", "status", "lastCommunication"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("missing %q in %s", key, b)
		}
	}
}

func TestReading_UnmarshalRejectsGarbage(t *testing.T) {
	t.Parallel()

	var r Reading
	if err := json.Unmarshal([]byte(`"warm"`), &r); err == nil {
		t.Error("expected error for non-numeric string")
	}
	if err := json.Unmarshal([]byte(`true`), &r); err == nil {
		t.Error("expected error for bool")
	}
}

func TestParseReading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Reading
		wantErr bool
	}{
		{"23", ValueReading(23), false},
		{" -1 ", ValueReading(-1), false},
		{"ERR", ErrorReading(), false},
		{"err", ErrorReading(), false},
		{"n/a", Reading{}, true},
	}
	for _, tt := range tests {
		got, err := ParseReading(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseReading(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseReading(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestDeployedSensor_SeriesAndErrors(t *testing.T) {
	t.Parallel()

	d := DeployedSensor{DataPoints: []Reading{ValueReading(18), ErrorReading(), ValueReading(16)}}
	if !d.HasErrors() {
		t.Fatal("HasErrors should be true")
	}

	series := d.Series()
	if len(series) != 3 {
		t.Fatalf("series length: got %d", len(series))
	}
	if series[0].Value == nil || *series[0].Value != 18 {
		t.Errorf("point 0: got %v", series[0].Value)
	}
	if series[1].Value != nil {
		t.Errorf("error sample should be a gap, got %v", *series[1].Value)
	}
	if series[2].Index != 2 {
		t.Errorf("point 2 index: got %d", series[2].Index)
	}
}

func TestDeployedSensor_CloneDoesNotAlias(t *testing.T) {
	t.Parallel()

	d := DeployedSensor{DataPoints: []Reading{ValueReading(1)}}
	c := d.Clone()
	c.DataPoints[0] = ErrorReading()
	if !d.DataPoints[0].Valid {
		t.Error("clone mutated the original data points")
	}
}

func TestSensorStatus_IsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []SensorStatus{SensorStatusOnline, SensorStatusOffline, SensorStatusMaintenance} {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if SensorStatus("online").IsValid() {
		t.Error("lower-case status should be invalid")
	}
}
