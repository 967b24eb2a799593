// internal/core/domain/mapping.go
package domain

// DefaultFallbackExt is the output extension for inputs without a positional output.
const DefaultFallbackExt = ".txt"

// ExtensionPair is one input -> output entry of an ExtensionMapping.
type ExtensionPair struct {
	Input  string
	Output string
}

// ExtensionMapping maps normalized input extensions to normalized output extensions.
// Keys are unique and keep the order in which they were first declared.
type ExtensionMapping struct {
	order   []string
	targets map[string]string
}

// NewExtensionMapping builds the mapping from parallel input/output lists.
//
// A single output maps every input to it. Otherwise inputs and outputs are
// paired by position and inputs past the end of outputs fall back to ".txt".
// A repeated input keeps its first position and takes the last output assigned to it.
func NewExtensionMapping(inputs, outputs []string) ExtensionMapping {
	m := ExtensionMapping{
		order:   make([]string, 0, len(inputs)),
		targets: make(map[string]string, len(inputs)),
	}

	normalizedOut := make([]string, len(outputs))
	for i, o := range outputs {
		normalizedOut[i] = NormalizeExt(o)
	}

	for i, raw := range inputs {
		in := NormalizeExt(raw)

		var target string
		switch {
		case len(normalizedOut) == 1:
			target = normalizedOut[0]
		case i < len(normalizedOut):
			target = normalizedOut[i]
		default:
			target = DefaultFallbackExt
		}

		if _, seen := m.targets[in]; !seen {
			m.order = append(m.order, in)
		}
		m.targets[in] = target
	}

	return m
}

// Lookup returns the output extension for ext. ext is compared case-insensitively.
func (m ExtensionMapping) Lookup(ext string) (string, bool) {
	if ext == "" {
		return "", false
	}
	target, ok := m.targets[NormalizeExt(ext)]
	return target, ok
}

// Len returns the number of distinct input extensions.
func (m ExtensionMapping) Len() int {
	return len(m.order)
}

// Inputs returns the input extensions in declaration order.
func (m ExtensionMapping) Inputs() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Pairs returns every entry in declaration order.
func (m ExtensionMapping) Pairs() []ExtensionPair {
	pairs := make([]ExtensionPair, 0, len(m.order))
	for _, in := range m.order {
		pairs = append(pairs, ExtensionPair{Input: in, Output: m.targets[in]})
	}
	return pairs
}
