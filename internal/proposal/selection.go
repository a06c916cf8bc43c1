package proposal

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// MaxSelectionIndex bounds the indices accepted by DecodeSelection. Larger
// values are treated as malformed data.
const MaxSelectionIndex = 10000

var positiveIndex = regexp.MustCompile(`^[1-9][0-9]*$`)

// DecodeSelection turns a stored choice answer such as "2,4" into a selection
// vector: position i is true when proposal i+1 was selected. The vector ends at
// the highest selected index, so it may be shorter than the proposal list.
// Malformed input yields an empty vector.
func DecodeSelection(raw string) []bool {
	indices, ok := parseIndices(raw)
	if !ok || len(indices) == 0 {
		return []bool{}
	}

	vector := make([]bool, indices[len(indices)-1])
	for _, idx := range indices {
		vector[idx-1] = true
	}
	return vector
}

// parseIndices returns the sorted, de-duplicated 1-based indices of raw.
func parseIndices(raw string) ([]int, bool) {
	pieces := strings.Split(raw, ",")
	indices := make([]int, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		if !positiveIndex.MatchString(piece) {
			return nil, false
		}
		idx, err := strconv.Atoi(piece)
		if err != nil || idx > MaxSelectionIndex {
			return nil, false
		}
		indices = append(indices, idx)
	}
	slices.Sort(indices)
	return slices.Compact(indices), true
}

// EncodeSelection joins 1-based proposal indices into the stored form:
// ascending, de-duplicated, comma separated. Non-positive indices are ignored.
func EncodeSelection(indices []int) string {
	kept := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx > 0 {
			kept = append(kept, idx)
		}
	}
	slices.Sort(kept)
	kept = slices.Compact(kept)

	parts := make([]string, len(kept))
	for i, idx := range kept {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ",")
}

// SelectedIndices is the inverse of DecodeSelection: it lists the 1-based
// positions set in vector.
func SelectedIndices(vector []bool) []int {
	indices := []int{}
	for i, selected := range vector {
		if selected {
			indices = append(indices, i+1)
		}
	}
	return indices
}
