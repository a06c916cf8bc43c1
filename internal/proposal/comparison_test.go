package proposal

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareChoices(t *testing.T) {
	proposals := []string{"Paris", "Lyon", "Marseille"}
	got := CompareChoices(proposals, DecodeSelection("2"), DecodeSelection("1"))

	assert.Equal(t, []Comparison{
		{Label: "Paris", Checked: false, Outcome: OutcomeCorrect},
		{Label: "Lyon", Checked: true, Outcome: OutcomeIncorrect},
		{Label: "Marseille", Checked: false, Outcome: OutcomeIncorrect},
	}, got)
}

func TestCompareChoices_VectorBeyondProposals(t *testing.T) {
	proposals := []string{"a", "b"}
	assert.Empty(t, CompareChoices(proposals, DecodeSelection("3"), DecodeSelection("1")))
	assert.Empty(t, CompareChoices(proposals, DecodeSelection("1"), DecodeSelection("4")))
}

func TestCompareFields(t *testing.T) {
	given := NewFieldMap()
	given.Set("a", "word")
	given.Set("b", "")
	given.Set("c", "wrong")

	solution, err := DecodeSolution("a: [word, Word]\nb: [excel]\nc: [powerpoint]\nd: [access]")
	require.NoError(t, err)

	got := CompareFields([]string{"a", "b", "c", "d"}, given, solution, CorrectnessMap{"a": true, "c": false})
	assert.Equal(t, []Comparison{
		{Label: "a", Given: "word", SolutionDisplay: "word", Outcome: OutcomeCorrect, IsOpen: false},
		{Label: "b", Given: "", SolutionDisplay: "excel", Outcome: OutcomeEmpty, IsOpen: true},
		{Label: "c", Given: "wrong", SolutionDisplay: "powerpoint", Outcome: OutcomeIncorrect, IsOpen: true},
		{Label: "d", Given: "", SolutionDisplay: "access", Outcome: OutcomeEmpty, IsOpen: true},
	}, got)
}

func TestCompareFields_MissingCorrectnessIsIncorrect(t *testing.T) {
	given := NewFieldMap()
	given.Set("a", "word")
	solution, err := DecodeSolution("a: word")
	require.NoError(t, err)

	got := CompareFields([]string{"a"}, given, solution, nil)
	require.Len(t, got, 1)
	assert.Equal(t, OutcomeIncorrect, got[0].Outcome)
	assert.True(t, got[0].IsOpen)
}

func TestComparison_JSON(t *testing.T) {
	out, err := json.Marshal(Comparison{Label: "a", Given: "x", SolutionDisplay: "y", Outcome: OutcomeIncorrect, IsOpen: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"label":"a","given":"x","solution":"y","outcome":"incorrect","is_open":true}`, string(out))
}

func TestAssemble(t *testing.T) {
	t.Run("multi choice", func(t *testing.T) {
		got, err := Assemble(MultiChoice, Stored{
			Template: "- a\n- b\n- c",
			Answer:   "1,3",
			Solution: "1,2",
		})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.True(t, got[0].Checked)
		assert.Equal(t, OutcomeCorrect, got[0].Outcome)
		assert.False(t, got[1].Checked)
		assert.Equal(t, OutcomeCorrect, got[1].Outcome)
		assert.True(t, got[2].Checked)
		assert.Equal(t, OutcomeIncorrect, got[2].Outcome)
	})

	t.Run("abandoned choice has nothing checked", func(t *testing.T) {
		got, err := Assemble(SingleChoice, Stored{Template: "- a\n- b", Answer: AbandonedSentinel, Solution: "2"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.False(t, got[0].Checked)
		assert.False(t, got[1].Checked)
	})

	t.Run("malformed choice answer shows nothing checked", func(t *testing.T) {
		got, err := Assemble(SingleChoice, Stored{Template: "- a\n- b", Answer: "x", Solution: "2"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.False(t, got[0].Checked || got[1].Checked)
	})

	t.Run("undecodable choice material marks every proposal incorrect", func(t *testing.T) {
		got, err := Assemble(MultiChoice, Stored{Template: "- a\n- b", Answer: "garbage", Solution: "also bad"})
		require.NoError(t, err)
		assert.Equal(t, []Comparison{
			{Label: "a", Outcome: OutcomeIncorrect},
			{Label: "b", Outcome: OutcomeIncorrect},
		}, got)
	})

	t.Run("multi text", func(t *testing.T) {
		got, err := Assemble(MultiText, Stored{
			Template:    "Word: ${a}\nSheet: ${b}",
			Answer:      "a: word\nb: excel",
			Solution:    "a:\n  - word\nb:\n  - excel\n  - xls",
			Correctness: CorrectnessMap{"a": true, "b": true},
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, OutcomeCorrect, got[0].Outcome)
		assert.Equal(t, "excel", got[1].SolutionDisplay)
	})

	t.Run("abandoned multi text", func(t *testing.T) {
		got, err := Assemble(MultiText, Stored{
			Template: "${a} ${b}",
			Answer:   AbandonedSentinel,
			Solution: "a: x\nb: y",
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, c := range got {
			assert.Equal(t, OutcomeEmpty, c.Outcome)
			assert.True(t, c.IsOpen)
		}
	})

	t.Run("single text", func(t *testing.T) {
		got, err := Assemble(SingleText, Stored{
			Template:    "Capital: ${city#a city}",
			Answer:      "Paris",
			Solution:    "city: [Paris, paris]",
			Correctness: CorrectnessMap{"city": true},
		})
		require.NoError(t, err)
		assert.Equal(t, []Comparison{{Label: "city", Given: "Paris", SolutionDisplay: "Paris", Outcome: OutcomeCorrect}}, got)
	})

	t.Run("missing solution surfaces", func(t *testing.T) {
		_, err := Assemble(MultiText, Stored{Template: "${a}", Answer: "a: x"})
		var decodeErr *DecodeError
		assert.True(t, errors.As(err, &decodeErr))
	})

	t.Run("confirmation", func(t *testing.T) {
		got, err := Assemble(ConfirmationOnly, Stored{Answer: "ok"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := Assemble(KindUnknown, Stored{})
		assert.Error(t, err)
	})
}
