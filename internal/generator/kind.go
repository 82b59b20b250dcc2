package generator

import "fmt"

// Kind labels the shape of data a generator produces.
type Kind string

// Supported kinds.
const (
	KindStrings    Kind = "strings"
	KindNestedDict Kind = "nested_dict"
	KindTuples     Kind = "tuples"
	KindSets       Kind = "sets"
	KindGrouped    Kind = "grouped"
)

var kindDescriptions = map[Kind]string{
	KindStrings:    "random alphanumeric strings of fixed length",
	KindNestedDict: "mapping of index to nested records with payload and sub-mapping",
	KindTuples:     "sequence of (index, float, text) records",
	KindSets:       "set of random letter strings, collisions kept",
	KindGrouped:    "integers grouped under single uppercase letter keys",
}

// Kinds returns every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindStrings, KindNestedDict, KindTuples, KindSets, KindGrouped}
}

// ParseKind converts a configuration tag into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kindDescriptions[k]; !ok {
		return "", fmt.Errorf("%w: unknown generator type %q", ErrConfig, s)
	}
	return k, nil
}

// Description returns a one-line summary of the shape.
func (k Kind) Description() string {
	return kindDescriptions[k]
}

func (k Kind) String() string {
	return string(k)
}
