package rowutil

import (
	"encoding/json"
	"testing"
)

func TestCellString(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{
			name:  "string value",
			input: "Curso de Vendas",
			want:  "Curso de Vendas",
		},
		{
			name:  "string with surrounding whitespace",
			input: "  Consultoria  ",
			want:  "Consultoria",
		},
		{
			name:  "integral float renders without decimal point",
			input: float64(3),
			want:  "3",
		},
		{
			name:  "fractional float keeps precision",
			input: 2.75,
			want:  "2.75",
		},
		{
			name:  "int value",
			input: 5,
			want:  "5",
		},
		{
			name:  "bool value",
			input: true,
			want:  "true",
		},
		{
			name:  "nil cell",
			input: nil,
			want:  "",
		},
		{
			name:  "json number",
			input: json.Number("42"),
			want:  "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CellString(tt.input)
			if got != tt.want {
				t.Errorf("CellString(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCellInt(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   int
		wantOK bool
	}{
		{
			name:   "integral float",
			input:  float64(4),
			want:   4,
			wantOK: true,
		},
		{
			name:   "fractional float is not a code",
			input:  4.5,
			wantOK: false,
		},
		{
			name:   "numeric string",
			input:  " 2 ",
			want:   2,
			wantOK: true,
		},
		{
			name:   "non-numeric string",
			input:  "Nomear",
			wantOK: false,
		},
		{
			name:   "int value",
			input:  1,
			want:   1,
			wantOK: true,
		},
		{
			name:   "nil cell",
			input:  nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CellInt(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("CellInt(%v) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
