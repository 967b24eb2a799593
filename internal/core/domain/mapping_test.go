// internal/core/domain/mapping_test.go
package domain

import (
	"testing"

	"flatsource/internal/testutil"
)

func TestNewExtensionMapping(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []string
		outputs  []string
		expected []ExtensionPair
	}{
		{
			name:    "single output applies to every input",
			inputs:  []string{"a", "b", "c"},
			outputs: []string{"x"},
			expected: []ExtensionPair{
				{".a", ".x"}, {".b", ".x"}, {".c", ".x"},
			},
		},
		{
			name:    "positional pairing with fallback",
			inputs:  []string{"a", "b", "c"},
			outputs: []string{"x", "y"},
			expected: []ExtensionPair{
				{".a", ".x"}, {".b", ".y"}, {".c", ".txt"},
			},
		},
		{
			name:     "extra outputs are ignored",
			inputs:   []string{"js"},
			outputs:  []string{"txt", "md"},
			expected: []ExtensionPair{{".js", ".txt"}},
		},
		{
			name:    "inputs are normalized",
			inputs:  []string{".JS", "Css"},
			outputs: []string{"TXT"},
			expected: []ExtensionPair{
				{".js", ".txt"}, {".css", ".txt"},
			},
		},
		{
			name:    "repeated input keeps first position and last value",
			inputs:  []string{"js", "css", ".JS"},
			outputs: []string{"a", "b", "c"},
			expected: []ExtensionPair{
				{".js", ".c"}, {".css", ".b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewExtensionMapping(tt.inputs, tt.outputs)
			testutil.AssertDeepEqual(t, m.Pairs(), tt.expected, "pairs")
			testutil.AssertEqual(t, m.Len(), len(tt.expected), "len")
		})
	}
}

func TestExtensionMapping_Lookup(t *testing.T) {
	m := NewExtensionMapping([]string{"js", "py"}, []string{"txt", "py"})

	tests := []struct {
		ext    string
		target string
		ok     bool
	}{
		{".js", ".txt", true},
		{".JS", ".txt", true},
		{"py", ".py", true},
		{".css", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			target, ok := m.Lookup(tt.ext)
			testutil.AssertEqual(t, ok, tt.ok, "found")
			testutil.AssertEqual(t, target, tt.target, "target")
		})
	}
}

func TestExtensionMapping_InputsIsACopy(t *testing.T) {
	m := NewExtensionMapping([]string{"js", "css"}, []string{"txt"})

	inputs := m.Inputs()
	testutil.AssertDeepEqual(t, inputs, []string{".js", ".css"}, "inputs")

	inputs[0] = ".changed"
	testutil.AssertDeepEqual(t, m.Inputs(), []string{".js", ".css"}, "mapping unchanged")
}
