package nilu

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the zone-less layout NILU uses for timestamps.
const TimestampLayout = "2006-01-02T15:04:05"

// Timestamp wraps time.Time to handle NILU's zone-less timestamp format.
// The API returns values like "2021-05-01T13:00:00"; RFC3339 is accepted as a
// fallback.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("unmarshaling timestamp: %w", err)
	}

	if raw == "" {
		t.Time = time.Time{}

		return nil
	}

	parsed, err := time.Parse(TimestampLayout, raw)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return fmt.Errorf("parsing timestamp %q: %w", raw, err)
		}
	}

	t.Time = parsed

	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}

	data, err := json.Marshal(t.Format(TimestampLayout))
	if err != nil {
		return nil, fmt.Errorf("marshaling timestamp: %w", err)
	}

	return data, nil
}

// Area represents an entry from lookup/areas.
type Area struct {
	Zone         string `json:"zone"         yaml:"zone"`
	Municipality string `json:"municipality" yaml:"municipality"`
	Area         string `json:"area"         yaml:"area"`
}

// Station represents station metadata from lookup/stations.
//
// The firstMeasurment/lastMeasurment tags match the upstream API's spelling.
type Station struct {
	ID               int        `json:"id"                        yaml:"id"`
	Zone             string     `json:"zone"                      yaml:"zone"`
	Municipality     string     `json:"municipality"              yaml:"municipality"`
	Area             string     `json:"area"                      yaml:"area"`
	Station          string     `json:"station"                   yaml:"station"`
	EOI              string     `json:"eoi"                       yaml:"eoi"`
	Type             string     `json:"type,omitempty"            yaml:"type,omitempty"`
	Latitude         float64    `json:"latitude"                  yaml:"latitude"`
	Longitude        float64    `json:"longitude"                 yaml:"longitude"`
	Owner            string     `json:"owner,omitempty"           yaml:"owner,omitempty"`
	Status           string     `json:"status,omitempty"          yaml:"status,omitempty"`
	Description      string     `json:"description,omitempty"     yaml:"description,omitempty"`
	FirstMeasurement *Timestamp `json:"firstMeasurment,omitempty" yaml:"first_measurement,omitempty"`
	LastMeasurement  *Timestamp `json:"lastMeasurment,omitempty"  yaml:"last_measurement,omitempty"`
	Components       string     `json:"components,omitempty"      yaml:"components,omitempty"`
}

// Component represents a measured pollutant from lookup/components.
type Component struct {
	Component string `json:"component"       yaml:"component"`
	Unit      string `json:"unit,omitempty"  yaml:"unit,omitempty"`
}

// IndexBand represents one band of an air quality index scale.
type IndexBand struct {
	ID          int      `json:"id"                    yaml:"id"`
	Index       int      `json:"index"                 yaml:"index"`
	FromValue   float64  `json:"fromValue"             yaml:"from_value"`
	ToValue     *float64 `json:"toValue,omitempty"     yaml:"to_value,omitempty"`
	Color       string   `json:"color,omitempty"       yaml:"color,omitempty"`
	Text        string   `json:"text,omitempty"        yaml:"text,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// AirQualityIndex represents the index scale for one component from
// lookup/aqis.
type AirQualityIndex struct {
	Component string      `json:"component"      yaml:"component"`
	Unit      string      `json:"unit,omitempty" yaml:"unit,omitempty"`
	Bands     []IndexBand `json:"aqis"           yaml:"aqis"`
}

// Timeseries represents an entry from lookup/timeseries.
type Timeseries struct {
	ID               int        `json:"id"                        yaml:"id"`
	Zone             string     `json:"zone"                      yaml:"zone"`
	Municipality     string     `json:"municipality"              yaml:"municipality"`
	Area             string     `json:"area"                      yaml:"area"`
	Station          string     `json:"station"                   yaml:"station"`
	EOI              string     `json:"eoi"                       yaml:"eoi"`
	Component        string     `json:"component"                 yaml:"component"`
	Unit             string     `json:"unit,omitempty"            yaml:"unit,omitempty"`
	Timestep         int        `json:"timestep"                  yaml:"timestep"`
	Latitude         float64    `json:"latitude"                  yaml:"latitude"`
	Longitude        float64    `json:"longitude"                 yaml:"longitude"`
	FirstMeasurement *Timestamp `json:"firstMeasurment,omitempty" yaml:"first_measurement,omitempty"`
	LastMeasurement  *Timestamp `json:"lastMeasurment,omitempty"  yaml:"last_measurement,omitempty"`
}

// Measurement represents a single observed value within a time series.
// Value is a pointer because invalid observations are returned as null when
// showinvalid is requested.
type Measurement struct {
	FromTime          Timestamp `json:"fromTime"                    yaml:"from_time"`
	ToTime            Timestamp `json:"toTime"                      yaml:"to_time"`
	Value             *float64  `json:"value"                       yaml:"value"`
	Unit              string    `json:"unit,omitempty"              yaml:"unit,omitempty"`
	Index             int       `json:"index,omitempty"             yaml:"index,omitempty"`
	Color             string    `json:"color,omitempty"             yaml:"color,omitempty"`
	QualityControlled bool      `json:"qualityControlled,omitempty" yaml:"quality_controlled,omitempty"`
}

// StationObservations represents one station/component series from
// obs/historical, with its nested measurements.
type StationObservations struct {
	ID           int           `json:"id"              yaml:"id"`
	Zone         string        `json:"zone"            yaml:"zone"`
	Municipality string        `json:"municipality"    yaml:"municipality"`
	Area         string        `json:"area"            yaml:"area"`
	Station      string        `json:"station"         yaml:"station"`
	EOI          string        `json:"eoi"             yaml:"eoi"`
	Component    string        `json:"component"       yaml:"component"`
	Unit         string        `json:"unit,omitempty"  yaml:"unit,omitempty"`
	Timestep     int           `json:"timestep"        yaml:"timestep"`
	Latitude     float64       `json:"latitude"        yaml:"latitude"`
	Longitude    float64       `json:"longitude"       yaml:"longitude"`
	IsVisible    bool          `json:"isVisible"       yaml:"is_visible"`
	Values       []Measurement `json:"values"          yaml:"values"`
}

// LatestObservation represents an up-to-date measurement from aq/utd.
type LatestObservation struct {
	Zone         string    `json:"zone"            yaml:"zone"`
	Municipality string    `json:"municipality"    yaml:"municipality"`
	Area         string    `json:"area"            yaml:"area"`
	Station      string    `json:"station"         yaml:"station"`
	EOI          string    `json:"eoi"             yaml:"eoi"`
	Component    string    `json:"component"       yaml:"component"`
	FromTime     Timestamp `json:"fromTime"        yaml:"from_time"`
	ToTime       Timestamp `json:"toTime"          yaml:"to_time"`
	Value        float64   `json:"value"           yaml:"value"`
	Unit         string    `json:"unit,omitempty"  yaml:"unit,omitempty"`
	Timestep     int       `json:"timestep"        yaml:"timestep"`
	Index        int       `json:"index,omitempty" yaml:"index,omitempty"`
	Color        string    `json:"color,omitempty" yaml:"color,omitempty"`
	Latitude     float64   `json:"latitude"        yaml:"latitude"`
	Longitude    float64   `json:"longitude"       yaml:"longitude"`
	IsValid      bool      `json:"isValid"         yaml:"is_valid"`
	IsVisible    bool      `json:"isVisible"       yaml:"is_visible"`
}

// ComponentNames returns the station's component list split into names.
func (s *Station) ComponentNames() []string {
	if s.Components == "" {
		return nil
	}

	parts := strings.Split(s.Components, ",")
	names := make([]string, 0, len(parts))

	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			names = append(names, trimmed)
		}
	}

	return names
}
