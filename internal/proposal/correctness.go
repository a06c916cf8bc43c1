package proposal

import (
	"fmt"
	"strconv"
	"strings"
)

// CorrectnessMap holds the per-field grading result computed by the grader.
// An empty map means no field-level detail is available.
type CorrectnessMap map[string]bool

// DecodeCorrectness reads stored result details. Blank input, "null" and the
// abandonment sentinel decode to an empty map. JSON objects are accepted since
// they are valid blocks.
func DecodeCorrectness(raw string) (CorrectnessMap, error) {
	result := CorrectnessMap{}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "null" || trimmed == AbandonedSentinel {
		return result, nil
	}

	mapping, err := parseBlock(raw)
	if err != nil {
		return nil, newDecodeError("correctness", raw, err)
	}
	if mapping == nil {
		return result, nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		field, value := mapping.Content[i].Value, mapping.Content[i+1]
		ok, err := strconv.ParseBool(value.Value)
		if err != nil {
			return nil, newDecodeError("correctness", raw, fmt.Errorf("field %s: %q is not a boolean", field, value.Value))
		}
		result[field] = ok
	}
	return result, nil
}
