package geom

import (
	"errors"
	"testing"
)

func TestParseValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		input       string
		expected    float64
		expectedErr error
	}{
		{name: "decimal", input: "5.1", expected: 5.1},
		{name: "whitespace", input: " \t-0.5 ", expected: -0.5},
		{name: "exponent", input: "2e1", expected: 20},
		{name: "leading_dot", input: ".5", expected: 0.5},
		{name: "nan", input: "NaN", expectedErr: ErrNotReal},
		{name: "inf", input: "Inf", expectedErr: ErrNotReal},
		{name: "negative_infinity", input: "-infinity", expectedErr: ErrNotReal},
		{name: "hex_float", input: "0x1p2", expectedErr: ErrNotReal},
		{name: "hex_upper", input: "0X10", expectedErr: ErrNotReal},
		{name: "underscore", input: "1_000", expectedErr: ErrNotReal},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseValue(test.input)
			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("unexpected error got: %v, expected: %v", err, test.expectedErr)
			}
			if err == nil && got != test.expected {
				t.Errorf("the value got: %v, expected: %v", got, test.expected)
			}
		})
	}

	for _, input := range []string{"", "abc", "1.0x", "1e999"} {
		if _, err := ParseValue(input); err == nil {
			t.Errorf("ParseValue(%q) must fail", input)
		}
	}
}
