package testkit

import (
	_ "embed"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// Fixture is one known calendar point with every derived quantity the
// engine can compute for it.
type Fixture struct {
	Name           string `yaml:"name"`
	Year           int32  `yaml:"year"`
	Month          uint8  `yaml:"month"`
	Day            uint8  `yaml:"day"`
	RataDie        int32  `yaml:"rd"`
	Weekday        uint8  `yaml:"weekday"`
	IsoYear        int32  `yaml:"iso_year"`
	IsoWeek        uint8  `yaml:"iso_week"`
	Leap           bool   `yaml:"leap"`
	DaysInMonth    uint8  `yaml:"days_in_month"`
	IsoWeeksInYear uint8  `yaml:"iso_weeks_in_year"`
}

type fixtureFile struct {
	Dates []Fixture `yaml:"dates"`
}

// Fixtures decodes the embedded fixture table. It fails the test on a
// malformed table rather than returning an error.
func Fixtures(tb testing.TB) []Fixture {
	tb.Helper()

	var f fixtureFile
	require.NoError(tb, yaml.Unmarshal(fixturesYAML, &f), "decode fixtures.yaml")
	require.NotEmpty(tb, f.Dates, "fixtures.yaml has no dates")

	return f.Dates
}
