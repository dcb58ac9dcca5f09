package seeder

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/plantcare-backend/internal/service/schedule"
)

// Fixture is the YAML document consumed by the seeder.
//
// Dates accept any ISO-8601 form, or an offset in days from the seeding day
// such as "-3d" or "+10d".
type Fixture struct {
	Plants []PlantFixture `yaml:"plants"`
}

// PlantFixture describes one plant with its history and care profile.
type PlantFixture struct {
	Name        string          `yaml:"name"`
	Species     *string         `yaml:"species"`
	Location    *string         `yaml:"location"`
	AcquiredOn  string          `yaml:"acquired_on"`
	Note        *string         `yaml:"note"`
	NextRepotAt string          `yaml:"next_repot_at"`
	Profile     *ProfileFixture `yaml:"profile"`
	Logs        []LogFixture    `yaml:"logs"`
}

// ProfileFixture overrides the default care profile of a plant.
type ProfileFixture struct {
	WateringIntervalDays      int    `yaml:"watering_interval_days"`
	FertilizingIntervalDays   int    `yaml:"fertilizing_interval_days"`
	NextWateringOverrideAt    string `yaml:"next_watering_override_at"`
	NextFertilizingOverrideAt string `yaml:"next_fertilizing_override_at"`
}

// LogFixture is one past care action.
type LogFixture struct {
	Type           string  `yaml:"type"`
	OccurredAt     string  `yaml:"occurred_at"`
	FertilizerName *string `yaml:"fertilizer_name"`
	Note           *string `yaml:"note"`
}

// LoadFixture reads a fixture file.
func LoadFixture(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()
	return ParseFixture(f)
}

// ParseFixture decodes a fixture. Unknown keys are rejected.
func ParseFixture(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx Fixture
	if err := dec.Decode(&fx); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	for i, p := range fx.Plants {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("decode fixture: plants[%d]: name is required", i)
		}
	}
	return &fx, nil
}

// resolveDate turns a fixture date into an instant. Dates without an offset
// are read in today's location. Blank yields nil.
func resolveDate(s string, today time.Time) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if strings.HasSuffix(s, "d") && (s[0] == '-' || s[0] == '+') {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return nil, fmt.Errorf("invalid day offset %q", s)
		}
		t := today.AddDate(0, 0, days)
		return &t, nil
	}
	if t := schedule.ParseInstant(s, today.Location()); t != nil {
		return t, nil
	}
	return nil, fmt.Errorf("invalid date %q", s)
}
