package mathutil

import (
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "Round down fraction of a cent",
			input:    943.334999,
			expected: 943.33,
		},
		{
			name:     "Round up fraction of a cent",
			input:    833.335,
			expected: 833.34,
		},
		{
			name:     "Already exact",
			input:    1200.50,
			expected: 1200.50,
		},
		{
			name:     "Negative amount",
			input:    -12.345,
			expected: -12.35,
		},
		{
			name:     "Zero",
			input:    0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if result != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{name: "Exact zero", input: 0, expected: true},
		{name: "Sub-cent positive", input: 0.005, expected: true},
		{name: "Sub-cent negative", input: -0.009, expected: true},
		{name: "One dollar", input: 1.0, expected: false},
		{name: "Two cents", input: 0.02, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsZero(tt.input); result != tt.expected {
				t.Errorf("IsZero(%v) = %t, expected %t", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(461.538461, 461.54, 0.01) {
		t.Errorf("WithinTolerance() should accept values a cent apart")
	}
	if WithinTolerance(943.33, 944.00, 0.01) {
		t.Errorf("WithinTolerance() should reject values well apart")
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 7) != 3 {
		t.Errorf("Min(3, 7) should be 3")
	}
	if Max(3, 7) != 7 {
		t.Errorf("Max(3, 7) should be 7")
	}
	if Min(-1, -2) != -2 {
		t.Errorf("Min(-1, -2) should be -2")
	}
	if Max(-1, -2) != -1 {
		t.Errorf("Max(-1, -2) should be -1")
	}
}

func TestFloorAtZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Positive passes through", input: 25000.50, expected: 25000.50},
		{name: "Zero passes through", input: 0, expected: 0},
		{name: "Negative clamps to zero", input: -5000, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := FloorAtZero(tt.input); result != tt.expected {
				t.Errorf("FloorAtZero(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}
