// Package seed loads the demo dataset every store starts from.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/sensorfactory/nexus/internal/domain"
)

//go:embed default.yaml
var defaultYAML []byte

// Dataset holds every seeded collection in display order.
type Dataset struct {
	Sensors  []domain.Sensor
	Deployed []domain.DeployedSensor
	Clients  []domain.Client
	Orders   []domain.Order
	Sales    []domain.SalesDataPoint
	Alerts   []domain.MaintenanceAlert
	Users    []domain.User
}

var loadDefault = sync.OnceValues(func() (*Dataset, error) {
	return Parse(defaultYAML)
})

// Default returns a fresh copy of the embedded dataset. Parsing and password
// hashing happen once per process.
func Default() (*Dataset, error) {
	ds, err := loadDefault()
	if err != nil {
		return nil, err
	}
	return ds.Clone(), nil
}

// Load reads a dataset from path, or the embedded default when path is empty.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML dataset. Plain-text passwords are
// replaced by bcrypt hashes.
func Parse(data []byte) (*Dataset, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("seed: decode: %w", err)
	}
	ds, err := f.toDataset()
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return ds, nil
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{
		Sensors: append([]domain.Sensor(nil), d.Sensors...),
		Clients: append([]domain.Client(nil), d.Clients...),
		Sales:   append([]domain.SalesDataPoint(nil), d.Sales...),
		Alerts:  append([]domain.MaintenanceAlert(nil), d.Alerts...),
		Users:   append([]domain.User(nil), d.Users...),
	}
	out.Deployed = make([]domain.DeployedSensor, len(d.Deployed))
	for i, ds := range d.Deployed {
		out.Deployed[i] = ds.Clone()
	}
	out.Orders = make([]domain.Order, len(d.Orders))
	for i, o := range d.Orders {
		out.Orders[i] = o.Clone()
	}
	return out
}

type file struct {
	Sensors []struct {
		ID          string  `yaml:"id"`
		Name        string  `yaml:"name"`
		Type        string  `yaml:"type"`
		Price       float64 `yaml:"price"`
		Stock       int     `yaml:"stock"`
		Description string  `yaml:"description"`
		LastUpdated string  `yaml:"last_updated"`
	} `yaml:"sensors"`
	Deployed []struct {
		ID                string   `yaml:"id"`
		Location          string   `yaml:"location"`
		Client            string   `yaml:"client"`
		Status            string   `yaml:"status"`
		LastCommunication string   `yaml:"last_communication"`
		RuntimeHours      int      `yaml:"runtime_hours"`
		DataPoints        []string `yaml:"data_points"`
	} `yaml:"deployed_sensors"`
	Clients []struct {
		ID      string `yaml:"id"`
		Name    string `yaml:"name"`
		Contact string `yaml:"contact"`
		Email   string `yaml:"email"`
		Phone   string `yaml:"phone"`
		Address string `yaml:"address"`
	} `yaml:"clients"`
	Orders []struct {
		ID       string  `yaml:"id"`
		ClientID string  `yaml:"client_id"`
		Date     string  `yaml:"date"`
		Status   string  `yaml:"status"`
		Total    float64 `yaml:"total"`
		Items    []struct {
			SensorID string  `yaml:"sensor_id"`
			Quantity int     `yaml:"quantity"`
			Price    float64 `yaml:"price"`
		} `yaml:"items"`
	} `yaml:"orders"`
	Sales []struct {
		Month   string  `yaml:"month"`
		Revenue float64 `yaml:"revenue"`
		Units   int     `yaml:"units"`
	} `yaml:"sales"`
	Alerts []struct {
		ID       string `yaml:"id"`
		SensorID string `yaml:"sensor_id"`
		Type     string `yaml:"type"`
		Message  string `yaml:"message"`
		Date     string `yaml:"date"`
		Resolved bool   `yaml:"resolved"`
	} `yaml:"alerts"`
	Users []struct {
		ID           string `yaml:"id"`
		Username     string `yaml:"username"`
		Password     string `yaml:"password"`
		PasswordHash string `yaml:"password_hash"`
		Name         string `yaml:"name"`
		Role         string `yaml:"role"`
		Email        string `yaml:"email"`
	} `yaml:"users"`
}

func (f *file) toDataset() (*Dataset, error) {
	ds := &Dataset{}

	for _, s := range f.Sensors {
		typ := domain.SensorType(s.Type)
		if !typ.IsValid() {
			return nil, fmt.Errorf("sensor %s: unknown type %q", s.ID, s.Type)
		}
		lu, err := domain.ParseDate(s.LastUpdated)
		if err != nil {
			return nil, fmt.Errorf("sensor %s: %w", s.ID, err)
		}
		ds.Sensors = append(ds.Sensors, domain.Sensor{
			ID: s.ID, Name: s.Name, Type: typ, Price: s.Price, Stock: s.Stock,
			Description: s.Description, LastUpdated: lu,
		})
	}

	for _, d := range f.Deployed {
		status := domain.SensorStatus(d.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("deployed sensor %s: unknown status %q", d.ID, d.Status)
		}
		lc, err := ParseTimestamp(d.LastCommunication)
		if err != nil {
			return nil, fmt.Errorf("deployed sensor %s: %w", d.ID, err)
		}
		points := make([]domain.Reading, 0, len(d.DataPoints))
		for _, raw := range d.DataPoints {
			r, err := domain.ParseReading(raw)
			if err != nil {
				return nil, fmt.Errorf("deployed sensor %s: %w", d.ID, err)
			}
			points = append(points, r)
		}
		ds.Deployed = append(ds.Deployed, domain.DeployedSensor{
			ID: d.ID, Location: d.Location, Client: d.Client, Status: status,
			LastCommunication: lc, RuntimeHours: d.RuntimeHours, DataPoints: points,
		})
	}

	for _, c := range f.Clients {
		ds.Clients = append(ds.Clients, domain.Client{
			ID: c.ID, Name: c.Name, Contact: c.Contact, Email: c.Email, Phone: c.Phone, Address: c.Address,
		})
	}

	for _, o := range f.Orders {
		status := domain.OrderStatus(o.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("order %s: unknown status %q", o.ID, o.Status)
		}
		date, err := domain.ParseDate(o.Date)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", o.ID, err)
		}
		items := make([]domain.OrderItem, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, domain.OrderItem{SensorID: it.SensorID, Quantity: it.Quantity, Price: it.Price})
		}
		ds.Orders = append(ds.Orders, domain.Order{
			ID: o.ID, ClientID: o.ClientID, Date: date, Status: status, Items: items, Total: o.Total,
		})
	}

	for _, s := range f.Sales {
		ds.Sales = append(ds.Sales, domain.SalesDataPoint{Month: s.Month, Revenue: s.Revenue, Units: s.Units})
	}

	for _, a := range f.Alerts {
		typ := domain.AlertType(a.Type)
		if !typ.IsValid() {
			return nil, fmt.Errorf("alert %s: unknown type %q", a.ID, a.Type)
		}
		at, err := ParseTimestamp(a.Date)
		if err != nil {
			return nil, fmt.Errorf("alert %s: %w", a.ID, err)
		}
		ds.Alerts = append(ds.Alerts, domain.MaintenanceAlert{
			ID: a.ID, SensorID: a.SensorID, Type: typ, Message: a.Message, Date: at, Resolved: a.Resolved,
		})
	}

	for _, u := range f.Users {
		role := domain.UserRole(u.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("user %s: unknown role %q", u.ID, u.Role)
		}
		hash := u.PasswordHash
		if hash == "" {
			b, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("user %s: hash password: %w", u.ID, err)
			}
			hash = string(b)
		}
		ds.Users = append(ds.Users, domain.User{
			ID: u.ID, Username: u.Username, PasswordHash: hash, Name: u.Name, Role: role, Email: u.Email,
		})
	}

	return ds, nil
}

var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05"}

// ParseTimestamp parses RFC 3339 or a zone-less ISO timestamp, the latter
// as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q", s)
}
