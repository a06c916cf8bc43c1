package proposal

import "fmt"

// Outcome is the review status of one proposal or field.
type Outcome int

const (
	OutcomeEmpty Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

var outcomeNames = [...]string{
	OutcomeEmpty:     "empty",
	OutcomeCorrect:   "correct",
	OutcomeIncorrect: "incorrect",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Comparison is one line of a review screen. Choice challenges fill Checked;
// free-text challenges fill Given, SolutionDisplay and IsOpen.
type Comparison struct {
	Label           string  `json:"label"`
	Given           string  `json:"given,omitempty"`
	Checked         bool    `json:"checked,omitempty"`
	SolutionDisplay string  `json:"solution,omitempty"`
	Outcome         Outcome `json:"outcome"`
	// IsOpen marks fields whose accepted answer should be revealed.
	IsOpen bool `json:"is_open,omitempty"`
}

// CompareChoices lines up each proposal with whether the user checked it and
// whether the solution accepts it. Checked state is independent of the outcome
// so wrong selections stay visible. Vectors longer than the proposal list
// yield no records.
func CompareChoices(proposals []string, answer, solution []bool) []Comparison {
	checked := PairLabels(proposals, answer)
	accepted := PairLabels(proposals, solution)
	if len(checked) != len(proposals) || len(accepted) != len(proposals) {
		return []Comparison{}
	}

	records := make([]Comparison, len(proposals))
	for i, p := range checked {
		outcome := OutcomeIncorrect
		if accepted[i].Value {
			outcome = OutcomeCorrect
		}
		records[i] = Comparison{
			Label:   p.Label,
			Checked: p.Value,
			Outcome: outcome,
		}
	}
	return records
}

// CompareFields builds one record per declared field. An empty value is
// OutcomeEmpty; otherwise the outcome comes from correctness. Only the first
// accepted variant is displayed.
func CompareFields(declared []string, given *FieldMap, solution *Solution, correctness CorrectnessMap) []Comparison {
	records := make([]Comparison, 0, len(declared))
	for _, field := range declared {
		value, _ := given.Get(field)
		outcome := OutcomeEmpty
		if value != "" {
			outcome = OutcomeIncorrect
			if correctness[field] {
				outcome = OutcomeCorrect
			}
		}
		records = append(records, Comparison{
			Label:           field,
			Given:           value,
			SolutionDisplay: solution.Display(field),
			Outcome:         outcome,
			IsOpen:          outcome != OutcomeCorrect,
		})
	}
	return records
}
