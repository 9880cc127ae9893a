package ttml

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	offsetTimeRegex = regexp.MustCompile(`^(\d+(?:\.\d*)?|\.\d+)(h|ms|m|s|f|t)$`)
	clockTimeRegex  = regexp.MustCompile(`^(\d{2,}):(\d{2,}):(\d{2}(?:\.\d+)?)$`)
	frameClockRegex = regexp.MustCompile(`^\d{2,}:\d{2,}:\d{2}:\d{2,}(?:\.\d+)?$`)
)

// ParseTime converts a time expression into a duration from document start.
//
// Offset times ("1.5s", "200ms", "3t") are added to base. Clock times
// ("00:01:02.5") are already absolute and ignore base. tickRate is the
// document tick rate, zero when the document does not declare one.
func ParseTime(
	expr string,
	base time.Duration,
	tickRate int,
) (time.Duration, error) {
	s := strings.TrimSpace(expr)

	if m := offsetTimeRegex.FindStringSubmatch(s); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, &TimeError{Expr: expr, Err: ErrMalformed}
		}

		var unit time.Duration
		switch m[2] {
		case "h":
			unit = time.Hour
		case "m":
			unit = time.Minute
		case "s":
			unit = time.Second
		case "ms":
			unit = time.Millisecond
		case "f":
			return 0, &TimeError{Expr: expr, Err: ErrUnsupported}
		case "t":
			if tickRate <= 0 {
				return 0, &TimeError{Expr: expr, Err: ErrConfiguration}
			}
			value /= float64(tickRate)
			unit = time.Second
		}
		d, ok := scale(value, unit)
		if !ok || d > math.MaxInt64-base {
			return 0, &TimeError{Expr: expr, Err: ErrMalformed}
		}
		return base + d, nil
	}

	if m := clockTimeRegex.FindStringSubmatch(s); m != nil {
		hours, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, &TimeError{Expr: expr, Err: ErrMalformed}
		}
		minutes, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, &TimeError{Expr: expr, Err: ErrMalformed}
		}
		seconds, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return 0, &TimeError{Expr: expr, Err: ErrMalformed}
		}
		d, ok := scale(
			float64(hours)*3600+float64(minutes)*60+seconds,
			time.Second,
		)
		if !ok {
			return 0, &TimeError{Expr: expr, Err: ErrMalformed}
		}
		return d, nil
	}

	if frameClockRegex.MatchString(s) {
		return 0, &TimeError{Expr: expr, Err: ErrUnsupported}
	}

	return 0, &TimeError{Expr: expr, Err: ErrMalformed}
}

// rounds to the nearest nanosecond so "0.1s" is exactly 100ms, false when
// the result does not fit in a Duration
func scale(value float64, unit time.Duration) (time.Duration, bool) {
	d := math.Round(value * float64(unit))
	if d >= math.MaxInt64 {
		return 0, false
	}
	return time.Duration(d), true
}
