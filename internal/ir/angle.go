package ir

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/roach88/arcs/internal/s1"
)

// Angle encodes a float64 as the shortest decimal string that parses back to
// the same bits. Non-finite values are encoded as "NaN", "+Inf" or "-Inf" so
// a bad input still has a stable record.
func Angle(x float64) IRString {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "+Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	}
	return IRString(strconv.FormatFloat(x, 'g', -1, 64))
}

// ParseAngle decodes an angle string. Besides plain decimals it accepts the
// symbolic forms "pi", "-pi", "pi/N" and "-pi/N" (N a positive integer), and
// "π" in place of "pi".
func ParseAngle(s string) (float64, error) {
	t := strings.TrimSpace(s)
	t = strings.ReplaceAll(t, "π", "pi")

	sign := 1.0
	body := t
	if strings.HasPrefix(body, "-") {
		sign = -1
		body = body[1:]
	}
	if rest, ok := strings.CutPrefix(body, "pi"); ok {
		if rest == "" {
			return sign * math.Pi, nil
		}
		den, ok := strings.CutPrefix(rest, "/")
		if !ok {
			return 0, fmt.Errorf("invalid angle %q", s)
		}
		n, err := strconv.ParseUint(den, 10, 32)
		if err != nil || n == 0 {
			return 0, fmt.Errorf("invalid angle %q: bad divisor", s)
		}
		return sign * math.Pi / float64(n), nil
	}

	x, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid angle %q", s)
	}
	return x, nil
}

// AngleOf extracts an angle from an IR value. IRString is parsed with
// ParseAngle; IRInt is accepted as a whole number of radians.
func AngleOf(v IRValue) (float64, error) {
	switch val := v.(type) {
	case IRString:
		return ParseAngle(string(val))
	case IRInt:
		return float64(val), nil
	default:
		return 0, fmt.Errorf("expected angle, got %T", v)
	}
}

// IntervalValue encodes an interval as {"hi": angle, "lo": angle}.
func IntervalValue(i s1.Interval) IRObject {
	return IRObject{"lo": Angle(i.Lo()), "hi": Angle(i.Hi())}
}

// ToInterval decodes {"lo","hi"} into a validated interval. Endpoints are
// range-checked and -π is canonicalized exactly as s1.NewInterval does.
func ToInterval(v IRValue) (s1.Interval, error) {
	obj, ok := v.(IRObject)
	if !ok {
		return s1.Interval{}, fmt.Errorf("expected interval object, got %T", v)
	}
	for k := range obj {
		if k != "lo" && k != "hi" {
			return s1.Interval{}, fmt.Errorf("interval: unknown field %q", k)
		}
	}
	loV, ok := obj["lo"]
	if !ok {
		return s1.Interval{}, fmt.Errorf("interval: missing lo")
	}
	hiV, ok := obj["hi"]
	if !ok {
		return s1.Interval{}, fmt.Errorf("interval: missing hi")
	}
	lo, err := AngleOf(loV)
	if err != nil {
		return s1.Interval{}, fmt.Errorf("interval lo: %w", err)
	}
	hi, err := AngleOf(hiV)
	if err != nil {
		return s1.Interval{}, fmt.Errorf("interval hi: %w", err)
	}
	return s1.NewInterval(lo, hi)
}
