package renderutils

import (
	"strconv"
	"strings"
	"time"

	"renderkit/pkg/tz"
)

// Layouts of the ISO 8601 formatters.
const (
	LayoutDateISO     = "2006-01-02"
	LayoutDateTimeISO = "2006-01-02T15:04:05Z07:00"
	LayoutTimeISO     = "15:04:05"
	LayoutYearISO     = "2006"
)

// CalendarNames holds the abbreviated weekday and month names of a locale.
// Weekdays start on Sunday, as time.Weekday does.
type CalendarNames struct {
	Weekdays [7]string
	Months   [12]string
}

// EnglishCalendarNames are the names used when no locale is available.
var EnglishCalendarNames = CalendarNames{
	Weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	Months:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

// Weekday returns the abbreviated name of d, falling back to English when
// the name is missing.
func (n CalendarNames) Weekday(d time.Weekday) string {
	if s := n.Weekdays[d]; s != "" {
		return s
	}
	return EnglishCalendarNames.Weekdays[d]
}

// Month returns the abbreviated name of m, falling back to English when the
// name is missing.
func (n CalendarNames) Month(m time.Month) string {
	if s := n.Months[m-1]; s != "" {
		return s
	}
	return EnglishCalendarNames.Months[m-1]
}

// DateISO formats t as yyyy-MM-dd.
func DateISO(t time.Time) string {
	return t.Format(LayoutDateISO)
}

// DateTimeISO formats t as yyyy-MM-ddTHH:mm:ss followed by the zone offset,
// or "Z" for UTC.
func DateTimeISO(t time.Time) string {
	return t.Format(LayoutDateTimeISO)
}

// TimeISO formats t as HH:mm:ss.
func TimeISO(t time.Time) string {
	return t.Format(LayoutTimeISO)
}

// YearISO formats t as yyyy.
func YearISO(t time.Time) string {
	return t.Format(LayoutYearISO)
}

// RFC2822 formats t as "EEE, d MMM yyyy HH:mm:ss zzz" using the given names
// for the weekday and the month.
func RFC2822(t time.Time, names CalendarNames) string {
	b := strings.Builder{}
	b.Grow(32)
	b.WriteString(names.Weekday(t.Weekday()))
	b.WriteString(", ")
	b.WriteString(strconv.Itoa(t.Day()))
	b.WriteByte(' ')
	b.WriteString(names.Month(t.Month()))
	b.WriteByte(' ')
	b.WriteString(t.Format("2006 15:04:05 MST"))
	return b.String()
}

// SwatchBeat returns the Swatch Internet Time of t as "@" followed by the
// beat number with three digits. Beats are counted from midnight in UTC+1.
func SwatchBeat(t time.Time) string {
	t = t.In(tz.BMT)
	seconds := t.Second() + t.Minute()*60 + t.Hour()*3600
	beats := seconds * 10 / 864
	s := strconv.Itoa(beats)
	return "@" + strings.Repeat("0", 3-len(s)) + s
}
