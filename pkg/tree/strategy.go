package tree

// Strategy controls how new children combine with existing ones.
type Strategy uint8

const (
	Append  Strategy = iota // after the existing children
	Prepend                 // before the existing children
	Replace                 // instead of the existing children
)

// String returns the string representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case Append:
		return "append"
	case Prepend:
		return "prepend"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// ApplyStrategy combines existing and add according to s. The result never
// aliases existing.
func ApplyStrategy(existing, add []Node, s Strategy) []Node {
	switch s {
	case Replace:
		return append([]Node(nil), add...)
	case Prepend:
		out := make([]Node, 0, len(existing)+len(add))
		out = append(out, add...)
		return append(out, existing...)
	default:
		out := make([]Node, 0, len(existing)+len(add))
		out = append(out, existing...)
		return append(out, add...)
	}
}

// ResolveStrategy returns the first strategy given, or Append.
func ResolveStrategy(s []Strategy) Strategy {
	if len(s) == 0 {
		return Append
	}
	return s[0]
}
