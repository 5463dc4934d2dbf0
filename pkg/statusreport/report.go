// Package statusreport defines the status document services expose to the
// monitoring and orchestration consumer. Services share this package rather
// than redefining the shape, so every report decodes with the same schema.
package statusreport

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SchemaVersion identifies the wire shape of Report. Fields may be added
// within a version; renaming or removing one requires a new version.
const SchemaVersion = "v1"

var (
	ErrInvalidName   = errors.New("invalid status name")
	ErrInvalidColor  = errors.New("invalid status color")
	ErrInvalidNotice = errors.New("invalid notice level")
)

// Name is the constraint for a service's own closed set of status names.
type Name interface {
	~string
	IsValid() bool
}

// Status pairs a service-specific name with its severity color.
type Status[N Name] struct {
	Name  N     `json:"name"`
	Color Color `json:"color"`
}

// Metric is a single labelled measurement shown next to a status.
type Metric struct {
	Value            float64 `json:"value"`
	Unit             string  `json:"unit"`
	ShortDescription string  `json:"short_description"`
	Color            *Color  `json:"color"`
}

// Notice is an advisory message rendered alongside the status.
type Notice struct {
	Level NoticeLevel `json:"level"`
	Text  string      `json:"text"`
}

// Report is the full status document.
type Report[N Name] struct {
	Status        Status[N]         `json:"status"`
	PrimaryMetric *Metric           `json:"primary_metric"`
	Metrics       map[string]Metric `json:"metrics"`
	Notices       []Notice          `json:"notices"`
}

// New returns a report carrying only a status pair.
func New[N Name](name N, color Color) Report[N] {
	return Report[N]{
		Status:  Status[N]{Name: name, Color: color},
		Notices: []Notice{},
	}
}

// Validate checks the report against the closed sets of the schema.
func (r Report[N]) Validate() error {
	if !r.Status.Name.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidName, string(r.Status.Name))
	}
	if !r.Status.Color.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidColor, r.Status.Color)
	}
	if r.PrimaryMetric != nil && r.PrimaryMetric.Color != nil && !r.PrimaryMetric.Color.IsValid() {
		return fmt.Errorf("primary metric: %w: %q", ErrInvalidColor, *r.PrimaryMetric.Color)
	}
	for key, m := range r.Metrics {
		if m.Color != nil && !m.Color.IsValid() {
			return fmt.Errorf("metric %s: %w: %q", key, ErrInvalidColor, *m.Color)
		}
	}
	for _, n := range r.Notices {
		if !n.Level.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidNotice, n.Level)
		}
	}
	return nil
}

// Clone returns a deep copy so callers can hand out reports without sharing
// slices or maps.
func (r Report[N]) Clone() Report[N] {
	out := r
	if r.PrimaryMetric != nil {
		pm := r.PrimaryMetric.clone()
		out.PrimaryMetric = &pm
	}
	if r.Metrics != nil {
		out.Metrics = make(map[string]Metric, len(r.Metrics))
		for k, m := range r.Metrics {
			out.Metrics[k] = m.clone()
		}
	}
	out.Notices = make([]Notice, len(r.Notices))
	copy(out.Notices, r.Notices)
	return out
}

func (m Metric) clone() Metric {
	if m.Color != nil {
		c := *m.Color
		m.Color = &c
	}
	return m
}

type reportJSON[N Name] Report[N]

// MarshalJSON always encodes notices as an array, never null.
func (r Report[N]) MarshalJSON() ([]byte, error) {
	if r.Notices == nil {
		r.Notices = []Notice{}
	}
	return json.Marshal(reportJSON[N](r))
}
