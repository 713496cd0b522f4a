package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"github.com/imilab/chartme/config"
	"github.com/imilab/chartme/internal/dto"
	"github.com/imilab/chartme/internal/model"
)

const (
	defaultQuestionCount = 10
	maxQuestionCount     = 50
)

var (
	// ErrGenerationUnavailable signals a missing API key, not a model failure.
	ErrGenerationUnavailable = errors.New("question generation is not configured")
	// ErrBadGeneration signals that the model answered but its output could
	// not be turned into valid questions.
	ErrBadGeneration = errors.New("generator returned unusable questions")
)

// GenerationService produces draft multiple-choice questions from a topic.
// Drafts are returned to the admin for review; nothing is persisted here.
type GenerationService interface {
	GenerateQuestions(ctx context.Context, topic string, count int, difficulty string) ([]dto.GeneratedQuestionDTO, error)
}

type generationService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
	rng    *rand.Rand
}

func NewGenerationService(cfg *config.Config) (GenerationService, error) {
	svc := &generationService{
		cfg: cfg,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Question generation will be unavailable.")
		return svc, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	svc.client = client.GenerativeModel(cfg.Gemini.Model)
	return svc, nil
}

func (s *generationService) GenerateQuestions(ctx context.Context, topic string, count int, difficulty string) ([]dto.GeneratedQuestionDTO, error) {
	if s.client == nil {
		return nil, ErrGenerationUnavailable
	}
	if count <= 0 {
		count = defaultQuestionCount
	}
	if count > maxQuestionCount {
		count = maxQuestionCount
	}
	if difficulty == "" {
		difficulty = model.DifficultyMoyen
	}

	prompt := buildGenerationPrompt(topic, count, difficulty)
	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Gemini generation request failed")
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	raw := collectText(resp)
	questions, err := parseGeneratedQuestions(raw)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Could not parse generated questions")
		return nil, err
	}

	for i := range questions {
		shuffleOptions(&questions[i], s.rng)
	}
	log.Info().Str("topic", topic).Int("count", len(questions)).Msg("Questions generated")
	return questions, nil
}

func buildGenerationPrompt(topic string, count int, difficulty string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Génère %d questions à choix multiples sur le sujet suivant : %s.\n", count, topic)
	fmt.Fprintf(&sb, "Niveau de difficulté : %s.\n\n", difficulty)
	sb.WriteString("Réponds UNIQUEMENT avec un tableau JSON, sans texte autour, au format exact :\n")
	sb.WriteString(`[{"prompt": "...", "options": ["...", "...", "...", "..."], "correct_answer": 0}]` + "\n\n")
	fmt.Fprintf(&sb, "Contraintes : exactement %d options par question, correct_answer est l'index (base 0) de la bonne option, toutes les questions en français.", model.OptionsPerQuestion)
	return sb.String()
}

func collectText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				sb.WriteString(string(txt))
			}
		}
	}
	return sb.String()
}

// extractJSONArray pulls the first top-level JSON array out of the raw model
// output, tolerating markdown fences and prose around it.
func extractJSONArray(raw string) (string, error) {
	start := strings.Index(raw, "[")
	if start == -1 {
		return "", fmt.Errorf("%w: no JSON array in output", ErrBadGeneration)
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return raw[start : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("%w: unterminated JSON array in output", ErrBadGeneration)
}

func parseGeneratedQuestions(raw string) ([]dto.GeneratedQuestionDTO, error) {
	payload, err := extractJSONArray(raw)
	if err != nil {
		return nil, err
	}

	var questions []dto.GeneratedQuestionDTO
	if err := json.Unmarshal([]byte(payload), &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadGeneration, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: empty question list", ErrBadGeneration)
	}
	for i, q := range questions {
		if err := validateGeneratedQuestion(q); err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrBadGeneration, i, err)
		}
	}
	return questions, nil
}

func validateGeneratedQuestion(q dto.GeneratedQuestionDTO) error {
	if strings.TrimSpace(q.Prompt) == "" {
		return errors.New("empty prompt")
	}
	if len(q.Options) != model.OptionsPerQuestion {
		return fmt.Errorf("expected %d options, got %d", model.OptionsPerQuestion, len(q.Options))
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("option %d is empty", i)
		}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("correct_answer %d out of range", q.CorrectAnswer)
	}
	return nil
}

// shuffleOptions permutes the options uniformly (Fisher-Yates) so the model's
// tendency to put the right answer first never shows in published tests, and
// keeps correct_answer pointing at the same option text.
func shuffleOptions(q *dto.GeneratedQuestionDTO, rng *rand.Rand) {
	for i := len(q.Options) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		q.Options[i], q.Options[j] = q.Options[j], q.Options[i]
		switch q.CorrectAnswer {
		case i:
			q.CorrectAnswer = j
		case j:
			q.CorrectAnswer = i
		}
	}
}
