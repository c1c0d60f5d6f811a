package domain

import "strings"

// FilterAll is the category value that disables a category filter.
const FilterAll = "all"

// SensorFilter selects catalog sensors by free text over name and
// description and by type.
type SensorFilter struct {
	Search string
	Type   string
}

// DeployedSensorFilter selects deployed sensors by free text over id,
// location and client and by status.
type DeployedSensorFilter struct {
	Search string
	Status string
}

// ClientFilter selects clients by free text over name, contact and email.
type ClientFilter struct {
	Search string
}

// OrderFilter selects orders by free text over id and client id, by status
// and by client.
type OrderFilter struct {
	Search   string
	Status   string
	ClientID string
}

func (f SensorFilter) Match(s Sensor) bool {
	return matchCategory(f.Type, string(s.Type)) &&
		matchText(f.Search, s.Name, s.Description)
}

func (f DeployedSensorFilter) Match(d DeployedSensor) bool {
	return matchCategory(f.Status, string(d.Status)) &&
		matchText(f.Search, d.ID, d.Location, d.Client)
}

func (f ClientFilter) Match(c Client) bool {
	return matchText(f.Search, c.Name, c.Contact, c.Email)
}

func (f OrderFilter) Match(o Order) bool {
	return matchCategory(f.Status, string(o.Status)) &&
		matchCategory(f.ClientID, o.ClientID) &&
		matchText(f.Search, o.ID, o.ClientID)
}

// Filter keeps the items accepted by every predicate, preserving order.
// Predicates are ANDed, so their order does not affect the result.
func Filter[T any](items []T, preds ...func(T) bool) []T {
	out := make([]T, 0, len(items))
next:
	for _, it := range items {
		for _, p := range preds {
			if !p(it) {
				continue next
			}
		}
		out = append(out, it)
	}
	return out
}

// matchText reports whether query is a case-insensitive substring of any
// field. An empty query matches everything.
func matchText(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// matchCategory compares exactly unless want is empty or the all sentinel.
func matchCategory(want, got string) bool {
	if want == "" || want == FilterAll {
		return true
	}
	return want == got
}

// TextPredicate returns a sensor predicate matching only the free-text part
// of the filter.
func (f SensorFilter) TextPredicate() func(Sensor) bool {
	return func(s Sensor) bool { return matchText(f.Search, s.Name, s.Description) }
}

// TypePredicate returns a sensor predicate matching only the type part of
// the filter.
func (f SensorFilter) TypePredicate() func(Sensor) bool {
	return func(s Sensor) bool { return matchCategory(f.Type, string(s.Type)) }
}
