package fixtures

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/streaks/internal/streak"
)

func TestDefaultDataset(t *testing.T) {
	ds := Default()

	assert.Equal(t, []string{SingleDay, FourDay, PerfectWeek, NineDay}, ds.Order)

	wantTypes := map[string]streak.Type{
		SingleDay:   streak.TypeSingle,
		FourDay:     streak.TypeFour,
		PerfectWeek: streak.TypePerfect,
		NineDay:     streak.TypeNine,
	}
	for name, want := range wantTypes {
		s, err := ds.Get(name)
		require.NoError(t, err)
		assert.Equal(t, want, streak.Classify(s.Len()), name)

		_, err = s.Weekdays()
		assert.NoError(t, err, "embedded dates for %s should parse", name)
	}
}

func TestParseRejectsNonArrayStreak(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"string instead of array", `{"singleDay": "2024-04-04"}`},
		{"numbers in array", `{"fourDay": [1, 2, 3, 4]}`},
		{"object instead of array", `{"nineDay": {"0": "2024-04-04"}}`},
		{"empty date", `{"singleDay": [""]}`},
		{"top-level array", `["2024-04-04"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidShape), "got %v", err)
			assert.Contains(t, err.Error(), "streak must be an array")
		})
	}
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"singleDay": [`))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidShape))
}

func TestParseKeepsMalformedDates(t *testing.T) {
	// Date syntax is checked by the date parser at render time, not here.
	ds, err := Parse([]byte(`{"custom": ["not-a-date"], "singleDay": ["2024-04-04"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{SingleDay, "custom"}, ds.Order)

	s, err := ds.Get("custom")
	require.NoError(t, err)
	_, err = s.Weekdays()
	assert.Error(t, err)
}

func TestParseEmptyStreak(t *testing.T) {
	ds, err := Parse([]byte(`{"empty": []}`))
	require.NoError(t, err)
	s, err := ds.Get("empty")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestGetUnknownScenario(t *testing.T) {
	_, err := Default().Get("twoDay")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownScenario))
}

func TestAtWrapsAround(t *testing.T) {
	ds := Default()
	name, _ := ds.At(4)
	assert.Equal(t, SingleDay, name)
	name, _ = ds.At(-1)
	assert.Equal(t, NineDay, name)

	name, s := Dataset{}.At(0)
	assert.Empty(t, name)
	assert.Nil(t, s)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workouts.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"twoDay": ["2024-04-01", "2024-04-02"]}`), 0o644))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"twoDay"}, ds.Order)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	ds, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, ds.Len())
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Perfect Week", Title(PerfectWeek))
	assert.Equal(t, "custom", Title("custom"))
}
