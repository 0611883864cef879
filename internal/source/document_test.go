package source_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekgrid/internal/domain"
	"weekgrid/internal/source"
)

const workWeekDoc = `{
  "Monday": [["09:00 AM", "05:00 PM"]],
  "tuesday": [["10:00 AM", "04:00 PM"], ["06:00 PM", "08:00 PM"]],
  "Wednesday": [["9:00 AM", "5:00 PM"]],
  "Thursday": [],
  "Friday": null
}`

func TestDecode(t *testing.T) {
	week, err := source.Decode(strings.NewReader(workWeekDoc), domain.WorkWeek)
	require.NoError(t, err)

	assert.Equal(t, 1, week.Day("Monday").Len())
	assert.Equal(t, 2, week.Day("Tuesday").Len(), "keys are stored under their canonical label")
	assert.Equal(t, domain.MustInterval("06:00 PM", "08:00 PM"), week.Day("Tuesday").At(1))
	assert.Equal(t, domain.MustInterval("09:00 AM", "05:00 PM"), week.Day("Wednesday").At(0))
	assert.True(t, week.Day("Thursday").IsAbsent(), "empty array means absent")
	assert.True(t, week.Day("Friday").IsAbsent(), "null means absent")
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		day   string
		block int
		is    error
	}{
		{"unknown day", `{"Saturday": [["09:00 AM", "10:00 AM"]]}`, "Saturday", -1, source.ErrUnknownDay},
		{"duplicate day", `{"Monday": [], "monday": []}`, "monday", -1, source.ErrDuplicateDay},
		{"repeated key", `{"Monday": [["09:00 AM", "05:00 PM"]], "Tuesday": [], "Monday": [["01:00 PM", "02:00 PM"]]}`, "Monday", -1, source.ErrDuplicateDay},
		{"single time", `{"Monday": [["09:00 AM"]]}`, "Monday", 0, source.ErrNotPair},
		{"triple", `{"Monday": [["09:00 AM", "10:00 AM", "11:00 AM"]]}`, "Monday", 0, source.ErrNotPair},
		{"inverted", `{"Monday": [["09:00 AM", "10:00 AM"], ["05:00 PM", "09:00 AM"]]}`, "Monday", 1, source.ErrInvertedInterval},
		{"zero length", `{"Friday": [["09:00 AM", "09:00 AM"]]}`, "Friday", 0, source.ErrInvertedInterval},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := source.DecodeBytes([]byte(tt.doc), domain.WorkWeek)
			var ve *source.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.day, ve.Day)
			assert.Equal(t, tt.block, ve.Block)
			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestDecode_MalformedTimeIsParseError(t *testing.T) {
	for _, doc := range []string{
		`{"Monday": [["09:00", "05:00 PM"]]}`,
		`{"Monday": [["09:00 AM", "25:00 PM"]]}`,
		`{"Monday": [["", "05:00 PM"]]}`,
	} {
		_, err := source.DecodeBytes([]byte(doc), domain.WorkWeek)
		var pe *domain.ParseError
		assert.True(t, errors.As(err, &pe), "doc %s: got %v", doc, err)
	}
}

func TestDecode_NotJSON(t *testing.T) {
	for _, doc := range []string{
		`{"Monday": [("09:00 AM", "05:00 PM")]}`,
		`["Monday"]`,
		`{"Monday": [[9, 17]]}`,
		`{"Monday": []} trailing`,
	} {
		_, err := source.DecodeBytes([]byte(doc), domain.WorkWeek)
		assert.Error(t, err, "doc %s", doc)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	week := domain.WeekInput{
		"Monday":  domain.Present(domain.MustInterval("09:00 AM", "05:00 PM")),
		"Tuesday": domain.Present(domain.MustInterval("10:30 AM", "04:00 PM"), domain.MustInterval("06:00 PM", "08:00 PM")),
	}
	b, err := source.Encode(week, domain.WorkWeek)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"10:30 AM"`)
	assert.Contains(t, string(b), `"Friday": []`)

	back, err := source.DecodeBytes(b, domain.WorkWeek)
	require.NoError(t, err)
	for _, d := range domain.WorkWeek {
		assert.Equal(t, week.Day(d).Intervals(), back.Day(d).Intervals(), d)
	}
}
