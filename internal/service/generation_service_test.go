package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imilab/chartme/internal/dto"
)

func TestExtractJSONArray(t *testing.T) {
	t.Run("plain array", func(t *testing.T) {
		out, err := extractJSONArray(`[{"a":1}]`)
		require.NoError(t, err)
		assert.Equal(t, `[{"a":1}]`, out)
	})

	t.Run("markdown fences and prose", func(t *testing.T) {
		raw := "Voici les questions :\n```json\n[{\"prompt\":\"q\"}]\n```\nBonne chance !"
		out, err := extractJSONArray(raw)
		require.NoError(t, err)
		assert.Equal(t, `[{"prompt":"q"}]`, out)
	})

	t.Run("nested arrays stay balanced", func(t *testing.T) {
		raw := `[{"options":["a","b"]},{"options":["c","d"]}]`
		out, err := extractJSONArray(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, out)
	})

	t.Run("brackets inside strings are ignored", func(t *testing.T) {
		raw := `[{"prompt":"que vaut a[0] ?"}] trailing`
		out, err := extractJSONArray(raw)
		require.NoError(t, err)
		assert.Equal(t, `[{"prompt":"que vaut a[0] ?"}]`, out)
	})

	t.Run("no array", func(t *testing.T) {
		_, err := extractJSONArray("désolé, je ne peux pas")
		assert.ErrorIs(t, err, ErrBadGeneration)
	})

	t.Run("unterminated array", func(t *testing.T) {
		_, err := extractJSONArray(`[{"prompt":"q"}`)
		assert.ErrorIs(t, err, ErrBadGeneration)
	})
}

func TestParseGeneratedQuestions(t *testing.T) {
	valid := `[{"prompt":"2+2 ?","options":["3","4","5","6"],"correct_answer":1}]`

	t.Run("valid payload", func(t *testing.T) {
		questions, err := parseGeneratedQuestions(valid)
		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, "2+2 ?", questions[0].Prompt)
		assert.Equal(t, 1, questions[0].CorrectAnswer)
	})

	t.Run("rejects wrong option count", func(t *testing.T) {
		_, err := parseGeneratedQuestions(`[{"prompt":"q","options":["a","b"],"correct_answer":0}]`)
		assert.ErrorIs(t, err, ErrBadGeneration)
	})

	t.Run("rejects out of range correct answer", func(t *testing.T) {
		_, err := parseGeneratedQuestions(`[{"prompt":"q","options":["a","b","c","d"],"correct_answer":4}]`)
		assert.ErrorIs(t, err, ErrBadGeneration)
	})

	t.Run("rejects empty prompt", func(t *testing.T) {
		_, err := parseGeneratedQuestions(`[{"prompt":"  ","options":["a","b","c","d"],"correct_answer":0}]`)
		assert.ErrorIs(t, err, ErrBadGeneration)
	})

	t.Run("rejects empty option", func(t *testing.T) {
		_, err := parseGeneratedQuestions(`[{"prompt":"q","options":["a","","c","d"],"correct_answer":0}]`)
		assert.ErrorIs(t, err, ErrBadGeneration)
	})

	t.Run("rejects empty list", func(t *testing.T) {
		_, err := parseGeneratedQuestions(`[]`)
		assert.ErrorIs(t, err, ErrBadGeneration)
	})
}

func TestShuffleOptionsKeepsCorrectOption(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		q := dto.GeneratedQuestionDTO{
			Prompt:        "q",
			Options:       []string{"bonne", "b", "c", "d"},
			CorrectAnswer: 0,
		}
		shuffleOptions(&q, rng)
		assert.Equal(t, "bonne", q.Options[q.CorrectAnswer])
		assert.ElementsMatch(t, []string{"bonne", "b", "c", "d"}, q.Options)
	}
}

func TestShuffleOptionsMovesCorrectAnswerAround(t *testing.T) {
	// With 200 shuffles the correct answer landing on a single index every
	// time would be astronomically unlikely; the old sort-based shuffle kept
	// a heavy bias toward the original position.
	rng := rand.New(rand.NewSource(7))
	seen := map[int]int{}
	for i := 0; i < 200; i++ {
		q := dto.GeneratedQuestionDTO{
			Prompt:        "q",
			Options:       []string{"bonne", "b", "c", "d"},
			CorrectAnswer: 0,
		}
		shuffleOptions(&q, rng)
		seen[q.CorrectAnswer]++
	}
	for idx := 0; idx < 4; idx++ {
		assert.Greater(t, seen[idx], 0, "correct answer never landed on index %d", idx)
	}
}

func TestValidateGeneratedQuestion(t *testing.T) {
	ok := dto.GeneratedQuestionDTO{
		Prompt:        "q",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: 3,
	}
	assert.NoError(t, validateGeneratedQuestion(ok))

	negative := ok
	negative.CorrectAnswer = -1
	assert.Error(t, validateGeneratedQuestion(negative))
}
