package civil_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-resolver/calendar"
	"calendar-resolver/component"
	"calendar-resolver/engine/civil"
	"calendar-resolver/unit"
)

func gregorianUTC() calendar.Region {
	return calendar.NewRegion(calendar.Gregorian, time.UTC, "en-US")
}

func TestMaterializeInstant(t *testing.T) {
	t.Parallel()

	e := civil.New()

	got := e.MaterializeInstant(component.Bag{
		unit.Year:  2021,
		unit.Month: 6,
		unit.Day:   15,
	}, gregorianUTC())

	require.NotNil(t, got)
	assert.Equal(t, time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC), *got)
}

func TestMaterializeInstantDefaultsAbsentUnits(t *testing.T) {
	t.Parallel()

	e := civil.New()

	got := e.MaterializeInstant(component.Bag{unit.Year: 2021}, gregorianUTC())

	require.NotNil(t, got)
	assert.Equal(t, time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC), *got)
}

// The engine inherits time.Date's normalization on purpose; catching it
// is the resolver's job.
func TestMaterializeInstantNormalizesOverflow(t *testing.T) {
	t.Parallel()

	e := civil.New()

	got := e.MaterializeInstant(component.Bag{
		unit.Year:  2021,
		unit.Month: 2,
		unit.Day:   30,
	}, gregorianUTC())

	require.NotNil(t, got)
	assert.Equal(t, time.Date(2021, time.March, 2, 0, 0, 0, 0, time.UTC), *got)
}

func TestMaterializeInstantRejectsImplausibleFields(t *testing.T) {
	t.Parallel()

	e := civil.New()

	cases := map[string]component.Bag{
		"month 13":         {unit.Year: 2021, unit.Month: 13, unit.Day: 1},
		"day 0":            {unit.Year: 2021, unit.Month: 1, unit.Day: 0},
		"day 32":           {unit.Year: 2021, unit.Month: 1, unit.Day: 32},
		"hour 24":          {unit.Year: 2021, unit.Hour: 24},
		"minute 60":        {unit.Year: 2021, unit.Minute: 60},
		"second 60":        {unit.Year: 2021, unit.Second: 60},
		"negative nanos":   {unit.Year: 2021, unit.Nanosecond: -1},
		"era out of range": {unit.Era: 2, unit.Year: 2021},
		"year 0 with era":  {unit.Era: 1, unit.Year: 0},
	}

	for name, bag := range cases {
		assert.Nil(t, e.MaterializeInstant(bag, gregorianUTC()), name)
	}
}

func TestMaterializeInstantRefusesUnsupportedCalendars(t *testing.T) {
	t.Parallel()

	e := civil.New()
	bag := component.Bag{unit.Year: 2021, unit.Month: 6, unit.Day: 15}

	assert.Nil(t, e.MaterializeInstant(bag, calendar.NewRegion(calendar.Japanese, time.UTC, "")))
	assert.Nil(t, e.MaterializeInstant(bag, calendar.NewRegion(calendar.Hebrew, time.UTC, "")))
}

func TestEraConversion(t *testing.T) {
	t.Parallel()

	e := civil.New()

	// 1 BC is proleptic year 0.
	got := e.MaterializeInstant(component.Bag{
		unit.Era:   0,
		unit.Year:  1,
		unit.Month: 1,
		unit.Day:   1,
	}, gregorianUTC())

	require.NotNil(t, got)
	assert.Equal(t, time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC), *got)

	back := e.ReadComponents(unit.NewSet(unit.Era, unit.Year), *got, gregorianUTC())
	assert.Equal(t, component.Bag{unit.Era: 0, unit.Year: 1}, back)

	// AD years read back as era 1 with the same number.
	back = e.ReadComponents(unit.NewSet(unit.Era, unit.Year),
		time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC), gregorianUTC())
	assert.Equal(t, component.Bag{unit.Era: 1, unit.Year: 2021}, back)
}

func TestBuddhistYearOffset(t *testing.T) {
	t.Parallel()

	e := civil.New()
	region := calendar.NewRegion(calendar.Buddhist, time.UTC, "th-TH")

	got := e.MaterializeInstant(component.Bag{
		unit.Year:  2564,
		unit.Month: 6,
		unit.Day:   15,
	}, region)

	require.NotNil(t, got)
	assert.Equal(t, time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC), *got)

	back := e.ReadComponents(unit.NewSet(unit.Era, unit.Year), *got, region)
	assert.Equal(t, component.Bag{unit.Era: 1, unit.Year: 2564}, back)

	// The buddhist calendar has a single era.
	assert.Nil(t, e.MaterializeInstant(component.Bag{unit.Era: 0, unit.Year: 2564}, region))
}

func TestReadComponentsAllUnits(t *testing.T) {
	t.Parallel()

	e := civil.New()
	at := time.Date(2021, time.June, 15, 13, 45, 30, 123456789, time.UTC)

	all := unit.NewSet(unit.Ascending[:]...)
	got := e.ReadComponents(all, at, gregorianUTC())

	want := component.Bag{
		unit.Nanosecond: 123456789,
		unit.Second:     30,
		unit.Minute:     45,
		unit.Hour:       13,
		unit.Day:        15,
		unit.Month:      6,
		unit.Year:       2021,
		unit.Era:        1,
	}
	assert.Equal(t, want, got)
}

func TestReadComponentsPanicsForUnsupportedCalendar(t *testing.T) {
	t.Parallel()

	e := civil.New()

	assert.Panics(t, func() {
		e.ReadComponents(unit.NewSet(unit.Year), time.Now(),
			calendar.NewRegion(calendar.Hebrew, time.UTC, ""))
	})
}

func TestUnitInterval(t *testing.T) {
	t.Parallel()

	e := civil.New()
	region := gregorianUTC()
	at := time.Date(2021, time.June, 15, 13, 45, 30, 123456789, time.UTC)

	cases := []struct {
		u          unit.Unit
		start, end time.Time
	}{
		{unit.Nanosecond,
			at,
			at.Add(time.Nanosecond)},
		{unit.Second,
			time.Date(2021, time.June, 15, 13, 45, 30, 0, time.UTC),
			time.Date(2021, time.June, 15, 13, 45, 31, 0, time.UTC)},
		{unit.Minute,
			time.Date(2021, time.June, 15, 13, 45, 0, 0, time.UTC),
			time.Date(2021, time.June, 15, 13, 46, 0, 0, time.UTC)},
		{unit.Hour,
			time.Date(2021, time.June, 15, 13, 0, 0, 0, time.UTC),
			time.Date(2021, time.June, 15, 14, 0, 0, 0, time.UTC)},
		{unit.Day,
			time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2021, time.June, 16, 0, 0, 0, 0, time.UTC)},
		{unit.Month,
			time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2021, time.July, 1, 0, 0, 0, 0, time.UTC)},
		{unit.Year,
			time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, c := range cases {
		rng, ok := e.UnitInterval(at, c.u, region)
		require.True(t, ok, "unit %s", c.u)
		assert.True(t, rng.Start.Equal(c.start), "unit %s start: got %s", c.u, rng.Start)
		assert.True(t, rng.End.Equal(c.end), "unit %s end: got %s", c.u, rng.End)
		assert.True(t, rng.Contains(at), "unit %s must contain the instant", c.u)
	}
}

func TestUnitIntervalEra(t *testing.T) {
	t.Parallel()

	e := civil.New()
	region := gregorianUTC()

	ad := time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC)
	rng, ok := e.UnitInterval(ad, unit.Era, region)
	require.True(t, ok)
	assert.True(t, rng.Start.Equal(time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, rng.Contains(ad))

	bc := time.Date(-44, time.March, 15, 0, 0, 0, 0, time.UTC)
	rng, ok = e.UnitInterval(bc, unit.Era, region)
	require.True(t, ok)
	assert.True(t, rng.End.Equal(time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, rng.Contains(bc))
}

// A day interval must follow the wall clock across DST transitions, not
// a fixed 24 hours.
func TestUnitIntervalDayAcrossDST(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	e := civil.New()
	region := calendar.NewRegion(calendar.Gregorian, loc, "en-US")

	// US spring-forward day: 2025-03-09 has 23 hours.
	at := time.Date(2025, time.March, 9, 12, 0, 0, 0, loc)
	rng, ok := e.UnitInterval(at, unit.Day, region)
	require.True(t, ok)

	assert.True(t, rng.Contains(at))
	assert.Equal(t, 23*time.Hour, rng.Duration())

	// US fall-back day: 2025-11-02 has 25 hours.
	at = time.Date(2025, time.November, 2, 12, 0, 0, 0, loc)
	rng, ok = e.UnitInterval(at, unit.Day, region)
	require.True(t, ok)

	assert.True(t, rng.Contains(at))
	assert.Equal(t, 25*time.Hour, rng.Duration())
}

// During a DST fall-back the wall hour occurs twice; each occurrence is
// its own one-hour interval, never a merged two-hour span.
func TestUnitIntervalHourDuringDSTFallBack(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	e := civil.New()
	region := calendar.NewRegion(calendar.Gregorian, loc, "en-US")

	// 2025-11-02 in New York repeats the 1 o'clock hour: 01:30 EDT is
	// 05:30 UTC, 01:30 EST is 06:30 UTC. Build both via UTC because
	// time.Date makes no promise about which side of the fold it picks.
	firstPass := time.Date(2025, time.November, 2, 5, 30, 0, 0, time.UTC)
	secondPass := time.Date(2025, time.November, 2, 6, 30, 0, 0, time.UTC)

	rng, ok := e.UnitInterval(firstPass, unit.Hour, region)
	require.True(t, ok)
	assert.True(t, rng.Contains(firstPass))
	assert.Equal(t, time.Hour, rng.Duration())
	assert.True(t, rng.Start.Equal(time.Date(2025, time.November, 2, 5, 0, 0, 0, time.UTC)),
		"first pass starts at 01:00 EDT, got %s", rng.Start)

	rng, ok = e.UnitInterval(secondPass, unit.Hour, region)
	require.True(t, ok)
	assert.True(t, rng.Contains(secondPass))
	assert.Equal(t, time.Hour, rng.Duration())
	assert.True(t, rng.Start.Equal(time.Date(2025, time.November, 2, 6, 0, 0, 0, time.UTC)),
		"second pass starts at 01:00 EST, got %s", rng.Start)
}

// Zones with half-hour offsets do not align with epoch hour boundaries;
// the hour interval must still follow the wall clock.
func TestUnitIntervalHourInHalfHourOffsetZone(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	e := civil.New()
	region := calendar.NewRegion(calendar.Gregorian, loc, "en-IN")

	at := time.Date(2021, time.June, 15, 13, 45, 0, 0, loc)
	rng, ok := e.UnitInterval(at, unit.Hour, region)
	require.True(t, ok)

	assert.True(t, rng.Contains(at))
	assert.Equal(t, time.Hour, rng.Duration())
	assert.True(t, rng.Start.Equal(time.Date(2021, time.June, 15, 13, 0, 0, 0, loc)),
		"got %s", rng.Start)
}

func TestUnitIntervalUnsupportedCalendar(t *testing.T) {
	t.Parallel()

	e := civil.New()

	_, ok := e.UnitInterval(time.Now(), unit.Day, calendar.NewRegion(calendar.Japanese, time.UTC, ""))
	assert.False(t, ok)
}
