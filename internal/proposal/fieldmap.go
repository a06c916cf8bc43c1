package proposal

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldMap holds the values typed into a multi-field challenge, keyed by field
// name. Keys keep the order in which they were first set.
type FieldMap struct {
	keys   []string
	values map[string]string
}

// NewFieldMap returns an empty FieldMap.
func NewFieldMap() *FieldMap {
	return &FieldMap{values: make(map[string]string)}
}

// Set assigns value to key, appending key if it is new.
func (m *FieldMap) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it is present.
func (m *FieldMap) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the field names in order.
func (m *FieldMap) Keys() []string {
	if m == nil {
		return []string{}
	}
	return append([]string{}, m.keys...)
}

func (m *FieldMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// MarshalJSON writes the map as a JSON object in key order.
func (m *FieldMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// AbandonedFields returns a FieldMap with every declared key set to "".
func AbandonedFields(declared []string) *FieldMap {
	m := NewFieldMap()
	for _, key := range declared {
		m.Set(key, "")
	}
	return m
}

// DecodeFields decodes a stored multi-field answer. The abandonment sentinel
// decodes to every declared key mapped to "". Any other input is read as a
// "key: value" block; declared keys missing from it are not added.
func DecodeFields(raw string, declared []string) (*FieldMap, error) {
	if raw == AbandonedSentinel {
		return AbandonedFields(declared), nil
	}

	m := NewFieldMap()
	mapping, err := parseBlock(raw)
	if err != nil {
		return nil, newDecodeError("answer", raw, err)
	}
	if mapping == nil {
		return m, nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, newDecodeError("answer", raw, errors.New("field "+key.Value+" is not a single value"))
		}
		m.Set(key.Value, scalarString(value))
	}
	return m, nil
}

// EncodeFields writes one "key: value" line per field, in key order. Values
// that would not read back as the same string are quoted.
func EncodeFields(m *FieldMap) string {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range m.Keys() {
		value, _ := m.Get(key)
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
		)
	}
	if len(mapping.Content) == 0 {
		return ""
	}
	out, err := yaml.Marshal(mapping)
	if err != nil {
		// A mapping of string scalars always marshals.
		return ""
	}
	return strings.TrimSuffix(string(out), "\n")
}

// parseBlock reads raw as a YAML mapping. Blank input returns a nil node.
func parseBlock(raw string) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("expected one \"key: value\" pair per line")
	}
	return root, nil
}

func scalarString(n *yaml.Node) string {
	if n.Tag == "!!null" {
		return ""
	}
	return n.Value
}
