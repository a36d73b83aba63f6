package literal

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/KimNorgaard/go-sdl/errors"
)

const day = 24 * time.Hour

var (
	reDate     = regexp.MustCompile(`^(\d{4})/(\d{2})/(\d{2})$`)
	reDateTime = regexp.MustCompile(`^(\d{4})/(\d{2})/(\d{2}) (\d{1,2}):(\d{2})(?::(\d{2})(?:\.(\d{1,3}))?)?(-.+)?$`)
	reTimeSpan = regexp.MustCompile(`^(-)?(?:(\d+)d:)?(?:(\d+):)?(\d{1,2}):(\d{1,2})(?:\.(\d{1,3}))?$`)
)

// Date is a calendar day, held as midnight UTC.
type Date struct {
	t time.Time
}

// NewDate returns the day t falls on in its own location. Years outside
// 0000 to 9999 fail with a Type error.
func NewDate(t time.Time) (Date, error) {
	y, m, d := t.Date()
	u := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if err := validYear(u); err != nil {
		return Date{}, err
	}
	return Date{t: u}, nil
}

// DateFromDays returns the date days after 1970/01/01.
func DateFromDays(days int64) (Date, error) {
	const maxDays = 2932896 // 9999/12/31
	const minDays = -719528 // 0000/01/01
	if days < minDays || days > maxDays {
		return Date{}, errors.NewType("", "%d days is outside 0000/01/01 to 9999/12/31", days)
	}
	return Date{t: time.Unix(days*int64(day/time.Second), 0).UTC()}, nil
}

func (d Date) Kind() Kind      { return KindDate }
func (d Date) Value() any      { return d.t }
func (d Date) Time() time.Time { return d.t }
func (d Date) String() string  { return d.t.Format("2006/01/02") }

// Days returns the number of whole days since 1970/01/01.
func (d Date) Days() int64 {
	return d.t.Unix() / int64(day/time.Second)
}

// ParseDate decodes a YYYY/MM/DD literal.
func ParseDate(text string) (Date, error) {
	m := reDate.FindStringSubmatch(text)
	if m == nil {
		return Date{}, errors.NewType(text, "%q is not a date literal", text)
	}
	t, err := civil(text, m[1], m[2], m[3], "0", "0", "0", "")
	if err != nil {
		return Date{}, err
	}
	return Date{t: t}, nil
}

// DateTime is an instant with millisecond precision, held in UTC.
type DateTime struct {
	t time.Time
}

// NewDateTime returns t in UTC, truncated to the millisecond. Years outside
// 0000 to 9999 fail with a Type error.
func NewDateTime(t time.Time) (DateTime, error) {
	u := t.UTC().Truncate(time.Millisecond)
	if err := validYear(u); err != nil {
		return DateTime{}, err
	}
	return DateTime{t: u}, nil
}

func (d DateTime) Kind() Kind      { return KindDateTime }
func (d DateTime) Value() any      { return d.t }
func (d DateTime) Time() time.Time { return d.t }

func (d DateTime) String() string {
	if d.t.Nanosecond() != 0 {
		return d.t.Format("2006/01/02 15:04:05.000")
	}
	return d.t.Format("2006/01/02 15:04:05")
}

// ParseDateTime decodes a YYYY/MM/DD HH:MM[:SS[.mmm]] literal. A trailing
// timezone fails with a NotImplemented error.
func ParseDateTime(text string) (DateTime, error) {
	return parseDateTime(text, false)
}

func parseDateTime(text string, ignoreTZ bool) (DateTime, error) {
	m := reDateTime.FindStringSubmatch(text)
	if m == nil {
		return DateTime{}, errors.NewType(text, "%q is not a datetime literal", text)
	}
	if m[8] != "" && !ignoreTZ {
		return DateTime{}, errors.NewNotImplemented(text, "timezones in datetime literals are not supported: %q", text)
	}
	sec := m[6]
	if sec == "" {
		sec = "0"
	}
	t, err := civil(text, m[1], m[2], m[3], m[4], m[5], sec, m[7])
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{t: t}, nil
}

// civil builds a UTC time from decimal fields, rejecting out of range
// values instead of normalizing them.
func civil(text string, year, month, dd, hour, minute, second, frac string) (time.Time, error) {
	var f [6]int
	for i, s := range []string{year, month, dd, hour, minute, second} {
		n, err := strconv.Atoi(s)
		if err != nil {
			return time.Time{}, errors.NewType(text, "%q: %v", text, err)
		}
		f[i] = n
	}
	if f[3] > 23 || f[4] > 59 || f[5] > 59 {
		return time.Time{}, errors.NewType(text, "%q: time of day out of range", text)
	}
	t := time.Date(f[0], time.Month(f[1]), f[2], f[3], f[4], f[5], millis(frac)*int(time.Millisecond), time.UTC)
	if t.Year() != f[0] || int(t.Month()) != f[1] || t.Day() != f[2] {
		return time.Time{}, errors.NewType(text, "%q: no such date", text)
	}
	return t, nil
}

// millis converts the digits after a decimal point to milliseconds, so
// "5" is 500 and "05" is 50.
func millis(frac string) int {
	if frac == "" {
		return 0
	}
	for len(frac) < 3 {
		frac += "0"
	}
	n, _ := strconv.Atoi(frac[:3])
	return n
}

// TimeSpan is a duration with millisecond precision.
type TimeSpan time.Duration

// NewTimeSpan returns d truncated to the millisecond.
func NewTimeSpan(d time.Duration) TimeSpan {
	return TimeSpan(d.Truncate(time.Millisecond))
}

func (s TimeSpan) Kind() Kind { return KindTimeSpan }
func (s TimeSpan) Value() any { return time.Duration(s) }

// String encodes the span as [-][Dd:]HH:MM:SS[.mmm]. The days field is
// left out when it is zero.
func (s TimeSpan) String() string {
	return s.format(false)
}

// StringAfter encodes s for the position right after prev in a list of
// values. After a Date the days field is always written, so that the pair
// does not read back as a single DateTime.
func (s TimeSpan) StringAfter(prev Literal) string {
	_, date := prev.(Date)
	return s.format(date)
}

func (s TimeSpan) format(days bool) string {
	d := time.Duration(s)
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	n := d / day
	d -= n * day
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	sec := d / time.Second
	ms := (d - sec*time.Second) / time.Millisecond

	out := sign
	if n > 0 || days {
		out += fmt.Sprintf("%dd:", n)
	}
	out += fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
	if ms > 0 {
		out += fmt.Sprintf(".%03d", ms)
	}
	return out
}

// ParseTimeSpan decodes a [-][Dd:][H:]MM:SS[.mmm] literal.
func ParseTimeSpan(text string) (TimeSpan, error) {
	m := reTimeSpan.FindStringSubmatch(text)
	if m == nil {
		return 0, errors.NewType(text, "%q is not a timespan literal", text)
	}
	var parts [4]int64
	for i, s := range m[2:6] {
		if s == "" {
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, errors.NewType(text, "%q: %v", text, err)
		}
		parts[i] = n
	}
	if parts[2] > 59 || parts[3] > 59 {
		return 0, errors.NewType(text, "%q: minutes and seconds must be below 60", text)
	}
	units := [4]time.Duration{day, time.Hour, time.Minute, time.Second}
	d := time.Duration(millis(m[6])) * time.Millisecond
	for i, n := range parts {
		if n > int64((math.MaxInt64-d)/units[i]) {
			return 0, errors.NewType(text, "timespan literal %q is out of range", text)
		}
		d += time.Duration(n) * units[i]
	}
	if m[1] == "-" {
		d = -d
	}
	return TimeSpan(d), nil
}
