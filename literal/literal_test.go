package literal_test

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/KimNorgaard/go-sdl/errors"
	"github.com/KimNorgaard/go-sdl/literal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TestRoundTrip(t *testing.T) {
	long := bytes.Repeat([]byte("0123456789"), 10)
	tests := []literal.Literal{
		literal.String(""),
		literal.String("a\"b\\c\nd\te'f\u0001"),
		literal.String("ünïcode"),
		literal.RawString("multi\nline \"quoted\""),
		literal.Char('x'),
		literal.Char('\''),
		literal.Char('\t'),
		literal.Char('é'),
		literal.Int(0),
		literal.Int(math.MinInt32),
		literal.Int(math.MaxInt32),
		literal.Long(5),
		literal.Long(math.MaxInt64),
		literal.Float(1.5),
		literal.Float(0.1),
		literal.Float(-3),
		literal.Double(3),
		literal.Double(0.1),
		literal.Double(-2.5e-7),
		literal.NewDecimal(decimal.RequireFromString("-0.000001")),
		literal.NewDecimal(decimal.RequireFromString("123456789012345678901234567890.5")),
		literal.Bool(true),
		literal.Bool(false),
		literal.Null{},
		literal.Binary("Hello"),
		literal.Binary{},
		literal.NewBinary(long),
		must(literal.NewDate(time.Date(2024, 2, 29, 17, 0, 0, 0, time.UTC))),
		must(literal.DateFromDays(-1)),
		must(literal.NewDateTime(time.Date(2024, 1, 31, 12, 30, 5, 123_456_789, time.UTC))),
		must(literal.NewDateTime(time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC))),
		literal.TimeSpan(0),
		literal.NewTimeSpan(26*time.Hour + 3*time.Minute + 4*time.Second + 5*time.Millisecond),
		literal.NewTimeSpan(-90 * time.Second),
	}

	for _, l := range tests {
		t.Run(l.Kind().String()+" "+l.String(), func(t *testing.T) {
			got, err := literal.Default().ParseStrict(l.String())
			require.NoError(t, err)
			require.True(t, literal.Equal(l, got), "expected %s, got %s", l, got)
		})
	}
}

func TestEncoding(t *testing.T) {
	tests := []struct {
		lit      literal.Literal
		expected string
	}{
		{literal.String("UTF-8"), `"UTF-8"`},
		{literal.Long(10), "10L"},
		{literal.Float(2), "2f"},
		{literal.Double(2), "2.0"},
		{literal.NewDecimal(decimal.RequireFromString("1.50")), "1.5bd"},
		{literal.Bool(true), "yes"},
		{literal.Bool(false), "no"},
		{literal.Binary("Hello"), "[SGVsbG8=]"},
		{must(literal.DateFromDays(19753)), "2024/01/31"},
		{must(literal.NewDateTime(time.Date(2024, 1, 31, 8, 5, 0, 0, time.UTC))), "2024/01/31 08:05:00"},
		{must(literal.NewDateTime(time.Date(2024, 1, 31, 8, 5, 0, 500_000_000, time.UTC))), "2024/01/31 08:05:00.500"},
		{literal.NewTimeSpan(90 * time.Second), "00:01:30"},
		{literal.NewTimeSpan(49*time.Hour + 1500*time.Millisecond), "2d:01:00:01.500"},
		{literal.Char('\n'), `'\n'`},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.lit.String())
		})
	}
}

func TestBinary(t *testing.T) {
	b, err := literal.ParseBinary("[SGVs\n    bG8=]")
	require.NoError(t, err)
	require.Equal(t, []byte("Hello"), b.Value())

	again, err := literal.ParseBinary(b.String())
	require.NoError(t, err)
	require.Equal(t, b, again)

	wrapped := literal.NewBinary(bytes.Repeat([]byte{0xff}, 100)).String()
	require.True(t, strings.HasPrefix(wrapped, "[\n    "))
	require.True(t, strings.HasSuffix(wrapped, "\n]"))
	for _, line := range strings.Split(wrapped, "\n") {
		require.LessOrEqual(t, len(line), 79)
	}

	_, err = literal.ParseBinary("[not base64!]")
	require.ErrorIs(t, err, errors.ErrType)
}

func TestStrings(t *testing.T) {
	s, err := literal.ParseString("\"a\\\n    b\"")
	require.NoError(t, err)
	require.Equal(t, literal.String("ab"), s)

	s, err = literal.ParseString(`"é\t"`)
	require.NoError(t, err)
	require.Equal(t, literal.String("é\t"), s)

	_, err = literal.ParseString(`"\u00"`)
	require.ErrorIs(t, err, errors.ErrType)

	_, err = literal.ParseChar("'ab'")
	require.ErrorIs(t, err, errors.ErrType)

	_, err = literal.NewRawString("has ` tick")
	require.ErrorIs(t, err, errors.ErrType)

	_, err = literal.NewRawString("nul \x00 inside")
	require.ErrorIs(t, err, errors.ErrType)

	_, err = literal.NewRawString("bad \xbe byte")
	require.ErrorIs(t, err, errors.ErrType)
}

func TestTemporal(t *testing.T) {
	d, err := literal.ParseDate("1970/01/02")
	require.NoError(t, err)
	require.Equal(t, int64(1), d.Days())
	require.Equal(t, "2024/01/31", must(literal.DateFromDays(19753)).String())
	require.Equal(t, int64(-1), must(literal.DateFromDays(-1)).Days())

	_, err = literal.ParseDate("2023/02/29")
	require.ErrorIs(t, err, errors.ErrType)

	_, err = literal.ParseDateTime("2024/01/31 24:00")
	require.ErrorIs(t, err, errors.ErrType)

	ts, err := literal.ParseTimeSpan("-01:02")
	require.NoError(t, err)
	require.Equal(t, -(time.Minute + 2*time.Second), ts.Value())

	_, err = literal.ParseTimeSpan("00:61")
	require.ErrorIs(t, err, errors.ErrType)

	_, err = literal.NewDate(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, errors.ErrType)
	_, err = literal.NewDateTime(time.Date(-5, 6, 1, 12, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, errors.ErrType)
	_, err = literal.DateFromDays(2932897)
	require.ErrorIs(t, err, errors.ErrType)
	require.Equal(t, "9999/12/31", must(literal.DateFromDays(2932896)).String())
	require.Equal(t, "0000/01/01", must(literal.DateFromDays(-719528)).String())
}

func TestTimeSpanRange(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"106751d:23:47:16.854", true},
		{"106751d:23:47:16.855", false},
		{"200000d:00:00:00", false},
		{"3000000:00:00", false},
		{"-200000d:00:00:00", false},
		{"99999999999999999999d:00:00:00", false},
		{"2562047:47:16", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := literal.ParseTimeSpan(tt.input)
			if !tt.ok {
				require.ErrorIs(t, err, errors.ErrType)
				return
			}
			require.NoError(t, err)
			require.Positive(t, int64(ts))
			back, err := literal.ParseTimeSpan(ts.String())
			require.NoError(t, err)
			require.Equal(t, ts, back)
		})
	}
}

func TestTimeSpanAfterDate(t *testing.T) {
	date := must(literal.DateFromDays(19724))
	ts := literal.NewTimeSpan(90 * time.Minute)

	require.Equal(t, "01:30:00", ts.String())
	require.Equal(t, "0d:01:30:00", ts.StringAfter(date))
	require.Equal(t, "01:30:00", ts.StringAfter(literal.Int(1)))
	require.Equal(t, "2d:00:00:00", literal.NewTimeSpan(48*time.Hour).StringAfter(date))
	require.Equal(t, "-0d:00:00:01", literal.NewTimeSpan(-time.Second).StringAfter(date))

	back, err := literal.ParseTimeSpan("0d:01:30:00")
	require.NoError(t, err)
	require.Equal(t, ts, back)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		l    literal.Literal
		ok   bool
	}{
		{"string", literal.String("héllo"), true},
		{"invalid utf-8 string", literal.String("\xbe"), false},
		{"raw string with nul", literal.RawString("a\x00b"), false},
		{"raw string with backtick", literal.RawString("a`b"), false},
		{"surrogate char", literal.Char(0xD800), false},
		{"char", literal.Char('x'), true},
		{"infinite double", literal.Double(math.Inf(1)), false},
		{"nan float", literal.Float(float32(math.NaN())), false},
		{"double", literal.Double(1.5), true},
		{"minimum timespan", literal.TimeSpan(math.MinInt64), false},
		{"timespan", literal.TimeSpan(-time.Hour), true},
		{"date", must(literal.DateFromDays(0)), true},
		{"null", literal.Null{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := literal.Validate(tt.l)
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errors.ErrType)
		})
	}
}

func TestNumbers(t *testing.T) {
	_, err := literal.ParseInt("3000000000")
	require.ErrorIs(t, err, errors.ErrType)

	_, err = literal.ParseLong("99999999999999999999L")
	require.ErrorIs(t, err, errors.ErrType)

	l, err := literal.Default().Parse("99999999999999999999")
	require.NoError(t, err)
	require.Equal(t, literal.KindDecimal, l.Kind())

	f, err := literal.ParseFloat("1e5f")
	require.ErrorIs(t, err, errors.ErrType)
	require.Zero(t, f)
}

func TestEqual(t *testing.T) {
	require.True(t, literal.Equal(nil, nil))
	require.False(t, literal.Equal(literal.Int(1), nil))
	require.False(t, literal.Equal(literal.Int(1), literal.Long(1)))
	require.True(t, literal.Equal(literal.Binary("a"), literal.NewBinary([]byte("a"))))
	require.True(t, literal.Equal(
		literal.NewDecimal(decimal.RequireFromString("1.50")),
		literal.NewDecimal(decimal.RequireFromString("1.5")),
	))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "datetime", literal.KindDateTime.String())
	require.Equal(t, "raw string", literal.KindRawString.String())
	require.Equal(t, "custom(2)", (literal.KindCustom + 2).String())
	require.True(t, literal.KindDecimal.IsNumeric())
	require.True(t, literal.KindChar.IsTextual())
}
