package effect

import (
	"math"
	"testing"
)

// TestParseValue_FixedValue tests parsing of fixed value format
func TestParseValue_FixedValue(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin float64
		wantMax float64
	}{
		{"Integer", "1500", 1500, 1500},
		{"Float", "3.14", 3.14, 3.14},
		{"Negative", "-10.5", -10.5, -10.5},
		{"Zero", "0", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max, keyframes, interp := ParseValue(tt.input)
			if min != tt.wantMin {
				t.Errorf("ParseValue(%q) min = %v, want %v", tt.input, min, tt.wantMin)
			}
			if max != tt.wantMax {
				t.Errorf("ParseValue(%q) max = %v, want %v", tt.input, max, tt.wantMax)
			}
			if keyframes != nil {
				t.Errorf("ParseValue(%q) keyframes = %v, want nil", tt.input, keyframes)
			}
			if interp != "" {
				t.Errorf("ParseValue(%q) interpolation = %q, want empty", tt.input, interp)
			}
		})
	}
}

// TestParseValue_Range tests parsing of range format
func TestParseValue_Range(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin float64
		wantMax float64
	}{
		{"Float range", "[0.7 0.9]", 0.7, 0.9},
		{"Left band", "[0.1 0.3]", 0.1, 0.3},
		{"Integer range", "[10 20]", 10, 20},
		{"Negative range", "[-360 360]", -360, 360},
		{"Single value", "[0.5]", 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max, keyframes, _ := ParseValue(tt.input)
			if min != tt.wantMin {
				t.Errorf("ParseValue(%q) min = %v, want %v", tt.input, min, tt.wantMin)
			}
			if max != tt.wantMax {
				t.Errorf("ParseValue(%q) max = %v, want %v", tt.input, max, tt.wantMax)
			}
			if keyframes != nil {
				t.Errorf("ParseValue(%q) keyframes = %v, want nil", tt.input, keyframes)
			}
		})
	}
}

// TestParseValue_Keyframes tests parsing of keyframe format
func TestParseValue_Keyframes(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantCount  int
		wantFirst  Keyframe
		wantLast   Keyframe
		wantInterp string
	}{
		{"Fade out", "0,1 0.7,1 1,0", 3, Keyframe{0, 1}, Keyframe{1, 0}, ""},
		{"Two points", "0,2 1,0", 2, Keyframe{0, 2}, Keyframe{1, 0}, ""},
		{"EaseOut prefix", "EaseOut 0,1 1,0", 2, Keyframe{0, 1}, Keyframe{1, 0}, "EaseOut"},
		{"Linear prefix", "Linear 0,0.5 1,1.5", 2, Keyframe{0, 0.5}, Keyframe{1, 1.5}, "Linear"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, keyframes, interp := ParseValue(tt.input)
			if len(keyframes) != tt.wantCount {
				t.Fatalf("ParseValue(%q) keyframe count = %d, want %d", tt.input, len(keyframes), tt.wantCount)
			}
			if keyframes[0] != tt.wantFirst {
				t.Errorf("ParseValue(%q) first keyframe = %v, want %v", tt.input, keyframes[0], tt.wantFirst)
			}
			if keyframes[len(keyframes)-1] != tt.wantLast {
				t.Errorf("ParseValue(%q) last keyframe = %v, want %v", tt.input, keyframes[len(keyframes)-1], tt.wantLast)
			}
			if interp != tt.wantInterp {
				t.Errorf("ParseValue(%q) interpolation = %q, want %q", tt.input, interp, tt.wantInterp)
			}
		})
	}
}

// TestParseValue_Malformed tests that malformed input degrades to zeros
func TestParseValue_Malformed(t *testing.T) {
	inputs := []string{"", "  ", "abc", "[", "[a b]", "1,2,3"}

	for _, input := range inputs {
		min, max, keyframes, _ := ParseValue(input)
		if min != 0 || max != 0 || keyframes != nil {
			t.Errorf("ParseValue(%q) = (%v, %v, %v), want zeros", input, min, max, keyframes)
		}
	}
}

// TestEvaluateKeyframes tests keyframe interpolation
func TestEvaluateKeyframes(t *testing.T) {
	fade := []Keyframe{{0, 1}, {0.5, 1}, {1, 0}}

	tests := []struct {
		name   string
		t      float64
		interp string
		want   float64
	}{
		{"Start", 0, "", 1},
		{"Plateau", 0.25, "", 1},
		{"Midway down", 0.75, "", 0.5},
		{"End", 1, "", 0},
		{"Clamped below", -1, "", 1},
		{"Clamped above", 2, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateKeyframes(fade, tt.t, tt.interp)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EvaluateKeyframes(t=%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

// TestEvaluateKeyframes_EaseOut tests that EaseOut lands above linear midway
func TestEvaluateKeyframes_EaseOut(t *testing.T) {
	curve := []Keyframe{{0, 0}, {1, 1}}

	linear := EvaluateKeyframes(curve, 0.5, "")
	eased := EvaluateKeyframes(curve, 0.5, "EaseOut")

	if linear != 0.5 {
		t.Errorf("Linear midpoint = %v, want 0.5", linear)
	}
	if eased <= linear {
		t.Errorf("EaseOut midpoint = %v, want > %v", eased, linear)
	}
}

// TestEvaluateKeyframes_Degenerate tests empty and single-keyframe inputs
func TestEvaluateKeyframes_Degenerate(t *testing.T) {
	if got := EvaluateKeyframes(nil, 0.5, ""); got != 0 {
		t.Errorf("EvaluateKeyframes(nil) = %v, want 0", got)
	}
	if got := EvaluateKeyframes([]Keyframe{{0, 7}}, 0.9, ""); got != 7 {
		t.Errorf("EvaluateKeyframes(single) = %v, want 7", got)
	}
}

// TestRandomInRange tests range sampling bounds
func TestRandomInRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandomInRange(0.1, 0.3)
		if v < 0.1 || v > 0.3 {
			t.Fatalf("RandomInRange(0.1, 0.3) = %v, out of bounds", v)
		}
	}

	// Inverted or equal bounds return min
	if v := RandomInRange(5, 5); v != 5 {
		t.Errorf("RandomInRange(5, 5) = %v, want 5", v)
	}
	if v := RandomInRange(3, 1); v != 3 {
		t.Errorf("RandomInRange(3, 1) = %v, want 3", v)
	}
}

// TestSampleValue tests the one-shot sampling convenience
func TestSampleValue(t *testing.T) {
	if v := SampleValue("", 1.5); v != 1.5 {
		t.Errorf("SampleValue(empty) = %v, want fallback 1.5", v)
	}
	if v := SampleValue("2", 0); v != 2 {
		t.Errorf("SampleValue(\"2\") = %v, want 2", v)
	}
	for i := 0; i < 50; i++ {
		v := SampleValue("[0.7 0.9]", 0)
		if v < 0.7 || v > 0.9 {
			t.Fatalf("SampleValue range = %v, out of bounds", v)
		}
	}
	// Keyframed values sample at time 0
	if v := SampleValue("0,1 1,0", 0); v != 1 {
		t.Errorf("SampleValue(keyframes) = %v, want 1", v)
	}
}
