package value

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ParseDateTime constructs a DateTime Value from an ISO-8601 string. A
// string with no UTC offset is interpreted as UTC.
func ParseDateTime(s string) (Value, *Error) {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateTimeFromUnix(t.Unix(), int32(t.Nanosecond())), nil
		}
	}
	// Retry the no-offset layouts forcing UTC explicitly.
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return DateTimeFromUnix(t.Unix(), int32(t.Nanosecond())), nil
		}
	}
	return Null, NewError(InvalidArguments, "invalid datetime string: "+s)
}

// timestampComponent matches one "<number><unit>" token of a $timestamp literal.
var timestampComponent = regexp.MustCompile(`^(-?\d+)([dhms])$`)

// ParseDuration constructs a Duration Value from a "<d>d:<h>h:<m>m:<s>s"
// literal. Any prefix subset of components is permitted ("2h:30m", "5s",
// "1d:3h:0m:10s" are all valid).
func ParseDuration(s string) (Value, *Error) {
	if s == "" {
		return Null, NewError(InvalidArguments, "empty duration literal")
	}
	var total int64
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ':' {
			token := s[start:i]
			start = i + 1
			if token == "" {
				return Null, NewError(InvalidArguments, "invalid duration literal: "+s)
			}
			m := timestampComponent.FindStringSubmatch(token)
			if m == nil {
				return Null, NewError(InvalidArguments, "invalid duration component: "+token)
			}
			n, _ := strconv.ParseInt(m[1], 10, 64)
			switch m[2] {
			case "d":
				total += n * 86400
			case "h":
				total += n * 3600
			case "m":
				total += n * 60
			case "s":
				total += n
			}
		}
	}
	return DurationFromSeconds(total), nil
}

// DateTimeProperty resolves a DateTime's virtual property.
func (v Value) DateTimeProperty(name string) (Value, bool) {
	if v.kind != KindDateTime {
		return Null, false
	}
	t := time.Unix(v.sec, int64(v.nsec)).UTC()
	switch name {
	case "year":
		return Int(int64(t.Year())), true
	case "month":
		return Int(int64(t.Month())), true
	case "day":
		return Int(int64(t.Day())), true
	case "hour":
		return Int(int64(t.Hour())), true
	case "minute":
		return Int(int64(t.Minute())), true
	case "second":
		return Int(int64(t.Second())), true
	case "timestamp":
		return Int(v.sec), true
	case "iso":
		return String(t.Format(time.RFC3339)), true
	default:
		return Null, false
	}
}

// DurationProperty resolves a Duration's virtual property.
func (v Value) DurationProperty(name string) (Value, bool) {
	if v.kind != KindDuration {
		return Null, false
	}
	total := v.durSeconds
	switch name {
	case "days":
		return Int(total / 86400), true
	case "hours":
		return Int((total % 86400) / 3600), true
	case "minutes":
		return Int((total % 3600) / 60), true
	case "seconds":
		return Int(total % 60), true
	case "total_seconds":
		return Int(total), true
	default:
		return Null, false
	}
}

// ScaleDuration multiplies a Duration by a numeric factor ("Duration ×
// number scales").
func ScaleDuration(d Value, factor float64) Value {
	return DurationFromSeconds(int64(float64(d.durSeconds) * factor))
}

// AddDurations adds two Durations component-wise, normalized to total seconds.
func AddDurations(a, b Value) Value {
	return DurationFromSeconds(a.durSeconds + b.durSeconds)
}

// SubDurations subtracts b from a, normalized to total seconds.
func SubDurations(a, b Value) Value {
	return DurationFromSeconds(a.durSeconds - b.durSeconds)
}

// ShiftDateTime adds (or, for a negated Duration, subtracts) a Duration to
// a DateTime instant.
func ShiftDateTime(dt, d Value) Value {
	return DateTimeFromUnix(dt.sec+d.durSeconds, dt.nsec)
}

// DiffDateTime computes the Duration between two DateTime instants (a − b).
func DiffDateTime(a, b Value) Value {
	return DurationFromSeconds(a.sec - b.sec)
}

// FormatISO renders a DateTime in RFC3339 form, used when a DateTime is
// stringified by `cat` or converted by ToJSON.
func (v Value) FormatISO() string {
	if v.kind != KindDateTime {
		return ""
	}
	return time.Unix(v.sec, int64(v.nsec)).UTC().Format(time.RFC3339)
}

// FormatDuration renders a Duration in the canonical "<d>d:<h>h:<m>m:<s>s" form.
func (v Value) FormatDuration() string {
	if v.kind != KindDuration {
		return ""
	}
	total := v.durSeconds
	neg := ""
	if total < 0 {
		neg = "-"
		total = -total
	}
	return fmt.Sprintf("%s%dd:%dh:%dm:%ds", neg, total/86400, (total%86400)/3600, (total%3600)/60, total%60)
}
