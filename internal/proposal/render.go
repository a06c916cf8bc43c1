package proposal

import "fmt"

// Rendering is what a UI needs to display a challenge's proposals.
type Rendering struct {
	Kind      Kind     `json:"kind"`
	Proposals []string `json:"proposals,omitempty"`
	Blocks    []Block  `json:"blocks,omitempty"`
	Fields    []string `json:"fields,omitempty"`
}

// Render parses template with the syntax owned by kind.
func Render(kind Kind, template string) (Rendering, error) {
	r := Rendering{Kind: kind}
	switch kind {
	case SingleChoice, MultiChoice:
		r.Proposals = ParseList(template)
	case SingleText, MultiText:
		r.Blocks = ParsePlaceholders(template)
		r.Fields = InputNames(r.Blocks)
	case ConfirmationOnly:
	default:
		return Rendering{}, fmt.Errorf("cannot render challenge of kind %s", kind)
	}
	return r, nil
}

// Stored is the persisted material a review is assembled from.
type Stored struct {
	Template    string
	Answer      string
	Solution    string
	Correctness CorrectnessMap
}

// Assemble builds the review records of one answered challenge. Choice answers
// and solutions that fail to decode count as empty selections, so every
// proposal is reported unchecked and incorrect. Free-text solutions and answer
// blocks that fail to decode return a *DecodeError.
//
// A single free-text answer is the raw text; it is compared against the first
// declared field of the template.
func Assemble(kind Kind, s Stored) ([]Comparison, error) {
	switch kind {
	case SingleChoice, MultiChoice:
		proposals := ParseList(s.Template)
		answer := []bool{}
		if s.Answer != AbandonedSentinel {
			answer = DecodeSelection(s.Answer)
		}
		return CompareChoices(proposals, answer, DecodeSelection(s.Solution)), nil

	case SingleText:
		declared := DeclaredFields(s.Template)
		if len(declared) == 0 {
			return []Comparison{}, nil
		}
		solution, err := DecodeSolution(s.Solution)
		if err != nil {
			return nil, err
		}
		field := declared[0]
		given := NewFieldMap()
		if value, ok := ParseAnswerState(s.Answer).Value(); ok {
			given.Set(field, value)
		}
		return CompareFields(declared[:1], given, solution, s.Correctness), nil

	case MultiText:
		declared := DeclaredFields(s.Template)
		solution, err := DecodeSolution(s.Solution)
		if err != nil {
			return nil, err
		}
		given, err := DecodeFields(s.Answer, declared)
		if err != nil {
			return nil, err
		}
		return CompareFields(declared, given, solution, s.Correctness), nil

	case ConfirmationOnly:
		return []Comparison{}, nil

	default:
		return nil, fmt.Errorf("cannot assemble review for challenge of kind %s", kind)
	}
}
