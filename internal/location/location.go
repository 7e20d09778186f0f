// Package location resolves named cities to coordinates and computes the
// longitude-based local-time correction applied before calendrical lookups.
package location

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Place is a resolvable birth location.
type Place struct {
	Name      string  `yaml:"name"`
	Longitude float64 `yaml:"longitude"`
	Latitude  float64 `yaml:"latitude"`
	UTCOffset float64 `yaml:"utc_offset"` // standard-zone offset in hours
}

// CorrectionMinutes returns the clock-to-true-solar-time shift in minutes:
// four minutes per degree east of the zone's standard meridian.
func (p Place) CorrectionMinutes() int {
	meridian := p.UTCOffset * 15
	return int(math.Round((p.Longitude - meridian) * 4))
}

// builtinPlaces covers the cities the original service shipped with. Keys
// are normalized (lower case, no spaces).
var builtinPlaces = map[string]Place{
	"seoul":       {Name: "Seoul", Longitude: 126.9780, Latitude: 37.5665, UTCOffset: 9},
	"busan":       {Name: "Busan", Longitude: 129.0756, Latitude: 35.1796, UTCOffset: 9},
	"incheon":     {Name: "Incheon", Longitude: 126.7052, Latitude: 37.4563, UTCOffset: 9},
	"daegu":       {Name: "Daegu", Longitude: 128.6014, Latitude: 35.8714, UTCOffset: 9},
	"daejeon":     {Name: "Daejeon", Longitude: 127.3845, Latitude: 36.3504, UTCOffset: 9},
	"gwangju":     {Name: "Gwangju", Longitude: 126.8526, Latitude: 35.1595, UTCOffset: 9},
	"jeju":        {Name: "Jeju", Longitude: 126.5312, Latitude: 33.4996, UTCOffset: 9},
	"pyongyang":   {Name: "Pyongyang", Longitude: 125.7625, Latitude: 39.0392, UTCOffset: 9},
	"tokyo":       {Name: "Tokyo", Longitude: 139.6917, Latitude: 35.6895, UTCOffset: 9},
	"osaka":       {Name: "Osaka", Longitude: 135.5023, Latitude: 34.6937, UTCOffset: 9},
	"beijing":     {Name: "Beijing", Longitude: 116.4074, Latitude: 39.9042, UTCOffset: 8},
	"shanghai":    {Name: "Shanghai", Longitude: 121.4737, Latitude: 31.2304, UTCOffset: 8},
	"hongkong":    {Name: "Hong Kong", Longitude: 114.1694, Latitude: 22.3193, UTCOffset: 8},
	"taipei":      {Name: "Taipei", Longitude: 121.5654, Latitude: 25.0330, UTCOffset: 8},
	"singapore":   {Name: "Singapore", Longitude: 103.8198, Latitude: 1.3521, UTCOffset: 8},
	"newyork":     {Name: "New York", Longitude: -74.0060, Latitude: 40.7128, UTCOffset: -5},
	"losangeles":  {Name: "Los Angeles", Longitude: -118.2437, Latitude: 34.0522, UTCOffset: -8},
	"london":      {Name: "London", Longitude: -0.1278, Latitude: 51.5074, UTCOffset: 0},
	"paris":       {Name: "Paris", Longitude: 2.3522, Latitude: 48.8566, UTCOffset: 1},
	"berlin":      {Name: "Berlin", Longitude: 13.4050, Latitude: 52.5200, UTCOffset: 1},
	"sydney":      {Name: "Sydney", Longitude: 151.2093, Latitude: -33.8688, UTCOffset: 10},
	"vancouver":   {Name: "Vancouver", Longitude: -123.1207, Latitude: 49.2827, UTCOffset: -8},
	"ulaanbaatar": {Name: "Ulaanbaatar", Longitude: 106.9057, Latitude: 47.8864, UTCOffset: 8},
}

// Resolver maps city names to places. Extra places can be layered over the
// builtin table from a yaml file; builtins are never removed.
type Resolver struct {
	places map[string]Place
}

// NewResolver returns a resolver over the builtin city table.
func NewResolver() *Resolver {
	places := make(map[string]Place, len(builtinPlaces))
	for k, v := range builtinPlaces {
		places[k] = v
	}
	return &Resolver{places: places}
}

func normalize(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
}

// Resolve looks a city up by name. ok is false when the name is unknown;
// callers then skip local-time correction rather than failing.
func (r *Resolver) Resolve(name string) (Place, bool) {
	p, ok := r.places[normalize(name)]
	return p, ok
}

// Add registers or replaces a place under its normalized name.
func (r *Resolver) Add(p Place) error {
	if p.Name == "" {
		return fmt.Errorf("place name required")
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("place %q: longitude %.4f out of range", p.Name, p.Longitude)
	}
	r.places[normalize(p.Name)] = p
	return nil
}

// Names returns all known city keys. Order is unspecified.
func (r *Resolver) Names() []string {
	out := make([]string, 0, len(r.places))
	for k := range r.places {
		out = append(out, k)
	}
	return out
}

// LoadExtra layers additional places from a yaml file of Place entries.
func (r *Resolver) LoadExtra(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read places file: %w", err)
	}
	var extra []Place
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return fmt.Errorf("parse places file %s: %w", path, err)
	}
	for _, p := range extra {
		if err := r.Add(p); err != nil {
			return err
		}
	}
	return nil
}
