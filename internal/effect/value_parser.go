package effect

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Keyframe represents a single keyframe in an animation curve.
// Used for animating particle properties over normalized lifetime (0-1).
type Keyframe struct {
	Time  float64 // Normalized time (0-1)
	Value float64 // Value at this keyframe
}

// ParseValue parses a value string from an effect pack definition.
// Supported formats:
//   - Fixed value: "1500" → min=1500, max=1500, keyframes=nil
//   - Range: "[0.7 0.9]" → min=0.7, max=0.9, keyframes=nil
//   - Single-value range: "[0.5]" → min=0.5, max=0.5
//   - Keyframes: "0,1 0.7,1 1,0" → keyframes=[{0,1},{0.7,1},{1,0}]
//   - Keyframes with interpolation: "EaseOut 0,1 1,0"
//
// Returns the range bounds (for scalar/range formats), the keyframe list
// (for keyframe formats), and the interpolation keyword if present.
// Malformed input falls back to zero values rather than an error; a
// missing field in a pack definition is not a failure.
func ParseValue(s string) (min, max float64, keyframes []Keyframe, interpolation string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, nil, ""
	}

	// Range format: "[min max]" or "[value]"
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		rangeStr := strings.TrimPrefix(s, "[")
		rangeStr = strings.TrimSuffix(rangeStr, "]")
		parts := strings.Fields(rangeStr)
		switch len(parts) {
		case 2:
			min, _ = strconv.ParseFloat(parts[0], 64)
			max, _ = strconv.ParseFloat(parts[1], 64)
			return min, max, nil, ""
		case 1:
			val, err := strconv.ParseFloat(parts[0], 64)
			if err == nil {
				return val, val, nil, ""
			}
		}
		// Fallback if parsing fails
		return 0, 0, nil, ""
	}

	// Interpolation keyword prefix
	interpolationKeywords := []string{"Linear", "EaseIn", "EaseOut", "FastInOutWeak"}
	for _, keyword := range interpolationKeywords {
		if strings.Contains(s, keyword) {
			interpolation = keyword
			s = strings.TrimSpace(strings.ReplaceAll(s, keyword, ""))
			break
		}
	}

	// Keyframes format: "time,value" pairs separated by whitespace
	if strings.Contains(s, ",") {
		parts := strings.Fields(s)
		keyframes = make([]Keyframe, 0, len(parts))
		for _, part := range parts {
			pair := strings.Split(part, ",")
			if len(pair) != 2 {
				continue
			}
			t, err1 := strconv.ParseFloat(pair[0], 64)
			v, err2 := strconv.ParseFloat(pair[1], 64)
			if err1 == nil && err2 == nil {
				keyframes = append(keyframes, Keyframe{Time: t, Value: v})
			}
		}
		if len(keyframes) > 0 {
			return 0, 0, keyframes, interpolation
		}
	}

	// Fixed value format
	value, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return value, value, nil, ""
	}

	// Fallback: return zero
	return 0, 0, nil, ""
}

// EvaluateKeyframes calculates the interpolated value at time t (0-1)
// using the provided keyframes and interpolation mode. Keyframes must be
// sorted by Time. Before the first keyframe the first value is returned;
// after the last keyframe the last value is returned.
func EvaluateKeyframes(keyframes []Keyframe, t float64, interpolation string) float64 {
	if len(keyframes) == 0 {
		return 0
	}
	if len(keyframes) == 1 {
		return keyframes[0].Value
	}

	t = math.Max(0, math.Min(1, t))

	if t < keyframes[0].Time {
		return keyframes[0].Value
	}

	for i := 0; i < len(keyframes)-1; i++ {
		k0 := keyframes[i]
		k1 := keyframes[i+1]

		if t >= k0.Time && t <= k1.Time {
			duration := k1.Time - k0.Time
			if duration <= 0 {
				return k0.Value
			}
			ratio := (t - k0.Time) / duration

			switch interpolation {
			case "EaseIn":
				ratio = ratio * ratio
			case "EaseOut":
				ratio = 1 - (1-ratio)*(1-ratio)
			case "FastInOutWeak":
				ratio = ratio * ratio * (3 - 2*ratio)
			}
			return k0.Value + ratio*(k1.Value-k0.Value)
		}
	}

	return keyframes[len(keyframes)-1].Value
}

// RandomInRange returns a random float64 in the range [min, max].
func RandomInRange(min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + rand.Float64()*(max-min)
}

// SampleValue parses a value string and collapses it to a single number:
// fixed values return themselves, ranges return a uniform sample, and
// keyframed values return the value at time 0. Convenience for fields
// that are sampled once at spawn time.
func SampleValue(s string, fallback float64) float64 {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	min, max, keyframes, interp := ParseValue(s)
	if len(keyframes) > 0 {
		return EvaluateKeyframes(keyframes, 0, interp)
	}
	return RandomInRange(min, max)
}
