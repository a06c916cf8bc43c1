package proposal

// AbandonedSentinel is the encoded answer stored for a skipped challenge,
// whatever its kind.
const AbandonedSentinel = "#ABAND#"

// NoAnswerDisplay replaces an abandoned answer on review screens.
const NoAnswerDisplay = "no answer given"

type answerStatus int

const (
	statusNotYetAnswered answerStatus = iota
	statusGiven
	statusAbandoned
)

// AnswerState is the state of a user's answer to one challenge. The zero value
// means the challenge has not been answered yet.
type AnswerState struct {
	status answerStatus
	value  string
}

// Given wraps an encoded answer value.
func Given(value string) AnswerState {
	return AnswerState{status: statusGiven, value: value}
}

// Abandoned is the state of a skipped challenge.
func Abandoned() AnswerState {
	return AnswerState{status: statusAbandoned}
}

// NotYetAnswered is the state of a challenge with no stored answer.
func NotYetAnswered() AnswerState {
	return AnswerState{}
}

// ParseAnswerState recognizes the abandonment sentinel in a stored answer.
func ParseAnswerState(raw string) AnswerState {
	if raw == AbandonedSentinel {
		return Abandoned()
	}
	return Given(raw)
}

func (s AnswerState) IsGiven() bool     { return s.status == statusGiven }
func (s AnswerState) IsAbandoned() bool { return s.status == statusAbandoned }
func (s AnswerState) IsAnswered() bool  { return s.status != statusNotYetAnswered }

// Value returns the encoded answer and whether one was given.
func (s AnswerState) Value() (string, bool) {
	return s.value, s.status == statusGiven
}

// Encode returns the string to persist. A challenge that was never answered
// encodes to the empty string.
func (s AnswerState) Encode() string {
	switch s.status {
	case statusGiven:
		return s.value
	case statusAbandoned:
		return AbandonedSentinel
	default:
		return ""
	}
}

// Display returns the text shown to the user for this answer.
func (s AnswerState) Display() string {
	if s.status == statusAbandoned {
		return NoAnswerDisplay
	}
	return s.value
}

// DisplayAnswer is the display form of a raw stored answer.
func DisplayAnswer(raw string) string {
	return ParseAnswerState(raw).Display()
}
