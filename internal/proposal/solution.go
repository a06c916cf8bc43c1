package proposal

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Solution maps each field of a free-text challenge to its accepted variants.
// The first variant of a field is the one shown on review screens.
type Solution struct {
	keys     []string
	variants map[string][]string
}

// Fields returns the field names in declaration order.
func (s *Solution) Fields() []string {
	if s == nil {
		return []string{}
	}
	return append([]string{}, s.keys...)
}

// Variants returns the accepted variants for field, or nil.
func (s *Solution) Variants(field string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.variants[field]...)
}

// Display returns the first accepted variant for field, or "".
func (s *Solution) Display(field string) string {
	if s == nil || len(s.variants[field]) == 0 {
		return ""
	}
	return s.variants[field][0]
}

// DecodeSolution reads a stored solution block:
//
//	city:
//	  - Paris
//	  - paris
//	year: 1789
//
// Every variant is kept as the string it was written as. A field written as a
// single value has one variant. A missing or malformed block is an error.
func DecodeSolution(raw string) (*Solution, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, newDecodeError("solution", raw, errors.New("solution is empty"))
	}
	mapping, err := parseBlock(raw)
	if err != nil {
		return nil, newDecodeError("solution", raw, err)
	}
	if mapping == nil {
		return nil, newDecodeError("solution", raw, errors.New("solution is empty"))
	}

	sol := &Solution{variants: make(map[string][]string)}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		field := mapping.Content[i].Value
		variants, err := nodeVariants(mapping.Content[i+1])
		if err != nil {
			return nil, newDecodeError("solution", raw, fmt.Errorf("field %s: %w", field, err))
		}
		if _, ok := sol.variants[field]; !ok {
			sol.keys = append(sol.keys, field)
		}
		sol.variants[field] = variants
	}
	return sol, nil
}

func nodeVariants(n *yaml.Node) ([]string, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, errors.New("no accepted variant")
		}
		return []string{n.Value}, nil
	case yaml.SequenceNode:
		if len(n.Content) == 0 {
			return nil, errors.New("no accepted variant")
		}
		variants := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, errors.New("variants must be single values")
			}
			variants = append(variants, scalarString(item))
		}
		return variants, nil
	default:
		return nil, errors.New("expected a list of accepted variants")
	}
}
