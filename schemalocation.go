package cfdicleaner

import "strings"

// SchemaLocation is one (namespace URI, schema file URL) pair from an
// xsi:schemaLocation attribute value.
type SchemaLocation struct {
	Namespace string
	Location  string
}

// SchemaLocations is the parsed form of an xsi:schemaLocation value: an
// ordered list of namespace/location pairs. The value is a plain
// whitespace-delimited token stream, so a well-formed value always has
// an even token count.
type SchemaLocations struct {
	pairs    []SchemaLocation
	dangling bool
}

// ParseSchemaLocations tokenizes value on whitespace and groups the
// tokens pairwise in original order. An odd token count marks the
// result as dangling; the unpaired trailing token is not kept.
func ParseSchemaLocations(value string) SchemaLocations {
	tokens := strings.Fields(value)
	s := SchemaLocations{dangling: len(tokens)%2 == 1}
	for i := 0; i+1 < len(tokens); i += 2 {
		s.pairs = append(s.pairs, SchemaLocation{Namespace: tokens[i], Location: tokens[i+1]})
	}
	return s
}

// HasDanglingNamespace reports whether the source value had an odd
// token count, i.e. a namespace with no location (or the reverse).
func (s SchemaLocations) HasDanglingNamespace() bool {
	return s.dangling
}

// Len returns the number of pairs.
func (s SchemaLocations) Len() int {
	return len(s.pairs)
}

// Pairs returns the pairs in original order. The slice is a copy.
func (s SchemaLocations) Pairs() []SchemaLocation {
	out := make([]SchemaLocation, len(s.pairs))
	copy(out, s.pairs)
	return out
}

// Filter returns the pairs whose namespace satisfies keep, preserving
// relative order.
func (s SchemaLocations) Filter(keep func(namespace string) bool) SchemaLocations {
	out := SchemaLocations{dangling: s.dangling}
	for _, p := range s.pairs {
		if keep(p.Namespace) {
			out.pairs = append(out.pairs, p)
		}
	}
	return out
}

// Remove drops the pair keyed by namespace. A miss is a no-op.
func (s *SchemaLocations) Remove(namespace string) {
	for i, p := range s.pairs {
		if p.Namespace == namespace {
			s.pairs = append(s.pairs[:i], s.pairs[i+1:]...)
			return
		}
	}
}

// String rejoins the surviving pairs with single spaces, in original
// relative order. An empty list yields "".
func (s SchemaLocations) String() string {
	var sb strings.Builder
	for i, p := range s.pairs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Namespace)
		sb.WriteByte(' ')
		sb.WriteString(p.Location)
	}
	return sb.String()
}

// RemoveIncompleteSchemaLocation rewrites a schemaLocation value
// keeping only namespace tokens that are immediately followed by a
// token ending in ".xsd" (case-insensitive). A namespace whose next
// token is not an .xsd location is dropped and the scan resumes at
// that next token, so a location whose own namespace was dropped can
// re-pair with the token after it. A trailing token with nothing after
// it is dropped. Best-effort: never fails, tolerates any input.
func RemoveIncompleteSchemaLocation(value string) string {
	tokens := strings.Fields(value)
	kept := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		if i+1 < len(tokens) && isXsdLocation(tokens[i+1]) {
			kept = append(kept, tokens[i], tokens[i+1])
			i++
		}
	}
	return strings.Join(kept, " ")
}

func isXsdLocation(token string) bool {
	return strings.HasSuffix(strings.ToLower(token), ".xsd")
}
