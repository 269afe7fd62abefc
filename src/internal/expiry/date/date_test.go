// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package date_test

import (
	"testing"
	"time"

	"github.com/floriancrusius/checkssl/src/internal/expiry/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  date.Date
	}{
		{name: "day first", input: "02.01.2025", want: date.Date{Day: 2, Month: 1, Year: 2025}},
		{name: "month first", input: "02/01/2025", want: date.Date{Day: 1, Month: 2, Year: 2025}},
		{name: "single digit components", input: "1.2.2030", want: date.Date{Day: 1, Month: 2, Year: 2030}},
		{name: "surrounding whitespace", input: "  31.12.2026\n", want: date.Date{Day: 31, Month: 12, Year: 2026}},
		{name: "upper bounds", input: "12/31/9999", want: date.Date{Day: 31, Month: 12, Year: 9999}},
		{name: "minimum year", input: "01.01.1000", want: date.Date{Day: 1, Month: 1, Year: 1000}},
		{name: "not calendar aware", input: "31.02.2025", want: date.Date{Day: 31, Month: 2, Year: 2025}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := date.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "day above 31", input: "32.01.2025", want: date.ErrOutOfRange},
		{name: "month above 12", input: "01.13.2025", want: date.ErrOutOfRange},
		{name: "year below 1000", input: "01.01.999", want: date.ErrOutOfRange},
		{name: "day zero", input: "00.01.2025", want: date.ErrOutOfRange},
		{name: "month zero slash", input: "00/10/2025", want: date.ErrOutOfRange},
		{name: "overflowing year", input: "01.01.99999999999999999999999", want: date.ErrOutOfRange},
		{name: "two components", input: "01.2025", want: date.ErrMalformedFormat},
		{name: "four components", input: "01.01.20.25", want: date.ErrMalformedFormat},
		{name: "no separator", input: "20250101", want: date.ErrMalformedFormat},
		{name: "empty", input: "", want: date.ErrMalformedFormat},
		{name: "iso layout", input: "2025-01-01", want: date.ErrMalformedFormat},
		{name: "mixed separators", input: "01.02/2025", want: date.ErrMalformedFormat},
		{name: "letters", input: "aa.bb.cccc", want: date.ErrNonNumericComponent},
		{name: "signed component", input: "+1.01.2025", want: date.ErrNonNumericComponent},
		{name: "empty component", input: "01..2025", want: date.ErrNonNumericComponent},
		{name: "inner space", input: "01. 01.2025", want: date.ErrNonNumericComponent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := date.Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.input, "error should name the offending input")
		})
	}
}

func TestParse_SeparatorDecidesLayout(t *testing.T) {
	dot, err := date.Parse("05.06.2027")
	require.NoError(t, err)
	slash, err := date.Parse("05/06/2027")
	require.NoError(t, err)

	assert.Equal(t, 5, dot.Day)
	assert.Equal(t, 6, dot.Month)
	assert.Equal(t, 6, slash.Day)
	assert.Equal(t, 5, slash.Month)

	// 13/01/2025 would be a valid day-first date but slash means month first
	_, err = date.Parse("13/01/2025")
	assert.ErrorIs(t, err, date.ErrOutOfRange)
}

func TestDate_TimeAndCompare(t *testing.T) {
	d := date.Date{Day: 2, Month: 1, Year: 2025}
	assert.Equal(t, time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC), d.Time())

	// out-of-calendar days roll forward
	feb := date.Date{Day: 31, Month: 2, Year: 2025}
	assert.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), feb.Time())

	earlier := date.Date{Day: 1, Month: 1, Year: 2025}
	later := date.Date{Day: 1, Month: 1, Year: 2026}
	assert.Equal(t, -1, earlier.Compare(later))
	assert.Equal(t, 1, later.Compare(earlier))
	assert.Equal(t, 0, earlier.Compare(earlier))
	assert.Equal(t, "01.01.2025", earlier.String())
}

func TestFormat(t *testing.T) {
	ts := time.Date(2025, time.February, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "01.02.2025", date.Format(ts, date.LayoutDayFirst))
	assert.Equal(t, "02/01/2025", date.Format(ts, date.LayoutMonthFirst))

	// round trip through Parse yields the same calendar day in both layouts
	for _, layout := range []date.Layout{date.LayoutDayFirst, date.LayoutMonthFirst} {
		d, err := date.Parse(date.Format(ts, layout))
		require.NoError(t, err)
		assert.Equal(t, date.Date{Day: 1, Month: 2, Year: 2025}, d, layout.String())
	}
}

func TestParseLayout(t *testing.T) {
	tests := []struct {
		input   string
		want    date.Layout
		wantErr bool
	}{
		{input: "dmy", want: date.LayoutDayFirst},
		{input: "", want: date.LayoutDayFirst},
		{input: "MDY", want: date.LayoutMonthFirst},
		{input: "ymd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := date.ParseLayout(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, date.ErrUnknownLayout)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
