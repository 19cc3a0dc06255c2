package renderutils

import (
	"strconv"
	"strings"
)

const (
	minuteMillis = int64(60 * 1000)
	hourMillis   = 60 * minuteMillis
	dayMillis    = 24 * hourMillis
	weekMillis   = 7 * dayMillis
	monthMillis  = 30 * dayMillis
	yearMillis   = 365 * dayMillis
)

// Keys of the uptime unit labels in a properties block.
const (
	KeyYear    = "year"
	KeyYears   = "years"
	KeyMonth   = "month"
	KeyMonths  = "months"
	KeyWeek    = "week"
	KeyWeeks   = "weeks"
	KeyDay     = "day"
	KeyDays    = "days"
	KeyHour    = "hour"
	KeyHours   = "hours"
	KeyMinute  = "minute"
	KeyMinutes = "minutes"
)

// UptimeLabels holds the text appended after each value, in the singular and
// plural form of every unit. Labels carry their own spacing.
type UptimeLabels struct {
	Year, Years     string
	Month, Months   string
	Week, Weeks     string
	Day, Days       string
	Hour, Hours     string
	Minute, Minutes string
}

// DefaultUptimeLabels are the English labels.
var DefaultUptimeLabels = UptimeLabels{
	Year: " year ", Years: " years ",
	Month: " month ", Months: " months ",
	Week: " week ", Weeks: " weeks ",
	Day: " day ", Days: " days ",
	Hour: " hour ", Hours: " hours ",
	Minute: " minute ", Minutes: " minutes ",
}

// Override returns a copy of l with the labels present in props replacing
// the corresponding ones.
func (l UptimeLabels) Override(props Properties) UptimeLabels {
	for _, f := range []struct {
		key   string
		label *string
	}{
		{KeyYear, &l.Year}, {KeyYears, &l.Years},
		{KeyMonth, &l.Month}, {KeyMonths, &l.Months},
		{KeyWeek, &l.Week}, {KeyWeeks, &l.Weeks},
		{KeyDay, &l.Day}, {KeyDays, &l.Days},
		{KeyHour, &l.Hour}, {KeyHours, &l.Hours},
		{KeyMinute, &l.Minute}, {KeyMinutes, &l.Minutes},
	} {
		if v, ok := props.Get(f.key); ok {
			*f.label = v
		}
	}
	return l
}

// Uptime writes a duration in milliseconds as text, decomposing it greedily
// in years of 365 days, months of 30 days, weeks, days, hours and minutes.
// Units with a zero value are omitted, except minutes when no other unit is
// written. Negative durations are written as zero.
func Uptime(millis int64, labels UptimeLabels) string {
	if millis < 0 {
		millis = 0
	}
	b := strings.Builder{}
	units := []struct {
		size             int64
		singular, plural string
	}{
		{yearMillis, labels.Year, labels.Years},
		{monthMillis, labels.Month, labels.Months},
		{weekMillis, labels.Week, labels.Weeks},
		{dayMillis, labels.Day, labels.Days},
		{hourMillis, labels.Hour, labels.Hours},
	}
	for _, u := range units {
		n := millis / u.size
		millis -= n * u.size
		if n > 0 {
			writeUnit(&b, n, u.singular, u.plural)
		}
	}
	if n := millis / minuteMillis; n > 0 || b.Len() == 0 {
		writeUnit(&b, n, labels.Minute, labels.Minutes)
	}
	return strings.TrimSpace(b.String())
}

func writeUnit(b *strings.Builder, n int64, singular, plural string) {
	b.WriteString(strconv.FormatInt(n, 10))
	if n == 1 {
		b.WriteString(singular)
	} else {
		b.WriteString(plural)
	}
}
