package proposal

// Labeled couples a proposal or field label with a value.
type Labeled[V any] struct {
	Label string `json:"label"`
	Value V      `json:"value"`
}

// PairLabels zips items with vector. A vector shorter than items is padded with
// the zero value of V; a longer one means the template and the stored data
// disagree, and the result is empty.
func PairLabels[V any](items []string, vector []V) []Labeled[V] {
	if len(vector) > len(items) {
		return []Labeled[V]{}
	}
	pairs := make([]Labeled[V], len(items))
	for i, item := range items {
		pairs[i].Label = item
		if i < len(vector) {
			pairs[i].Value = vector[i]
		}
	}
	return pairs
}
