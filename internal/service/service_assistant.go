package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/MKhiriev/nutri-track/internal/adapter"
	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/internal/validators"
	"github.com/MKhiriev/nutri-track/models"
)

const (
	// DemoCalories is the placeholder estimate returned in demo mode.
	DemoCalories = 150

	demoChatResponse = "This is a demo response. To enable the AI assistant, configure a Gemini API key on the server."

	msgAssistantNotConfigured = "The AI assistant is not configured on the server."
	msgAssistantUnavailable   = "The AI assistant is temporarily unavailable."
	msgUnparsableEstimate     = "Could not parse nutritional information from the response."

	calorieEstimatePrompt = `Estimate the calories in %s%s. Return ONLY a JSON object of the form {"calories": <number>} with no other text.`
)

// jsonObjectPattern finds the outermost JSON object in model output, which
// is often wrapped in prose or code fences.
var jsonObjectPattern = regexp.MustCompile(`\{[\s\S]*\}`)

type assistantService struct {
	generator adapter.GenerativeAdapter
	validator validators.Validator
	logger    *logger.Logger
}

// NewAssistantService constructs an AssistantService over generator.
func NewAssistantService(generator adapter.GenerativeAdapter, validator validators.Validator, logger *logger.Logger) AssistantService {
	return &assistantService{
		generator: generator,
		validator: validator,
		logger:    logger,
	}
}

// Chat forwards the prompt. Generator failures produce a demo answer with a
// generic reason in Error; the cause is only logged. Only invalid input is
// returned as an error.
func (s *assistantService) Chat(ctx context.Context, request models.ChatRequest) (models.ChatResponse, error) {
	if err := validate(ctx, s.validator, request); err != nil {
		return models.ChatResponse{}, err
	}

	text, err := s.generator.GenerateContent(ctx, request.Prompt)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*assistantService.Chat").Msg("falling back to demo response")
		return models.ChatResponse{Response: demoChatResponse, IsDemo: true, Error: fallbackReason(err)}, nil
	}

	return models.ChatResponse{Response: text}, nil
}

// EstimateCalories asks the model for a number. Any failure, including an
// unparsable answer, yields the demo estimate so a bogus value is never
// presented as real.
func (s *assistantService) EstimateCalories(ctx context.Context, request models.CalorieEstimateRequest) (models.CalorieEstimate, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, s.validator, request); err != nil {
		return models.CalorieEstimate{}, err
	}

	portion := ""
	if p := strings.TrimSpace(request.Portion); p != "" {
		portion = " (" + p + ")"
	}

	text, err := s.generator.GenerateContent(ctx, fmt.Sprintf(calorieEstimatePrompt, strings.TrimSpace(request.Food), portion))
	if err != nil {
		log.Warn().Err(err).Str("func", "*assistantService.EstimateCalories").Msg("falling back to demo estimate")
		return demoEstimate(fallbackReason(err)), nil
	}

	calories, err := parseCalories(text)
	if err != nil {
		log.Warn().Err(err).Str("answer", text).Msg("could not parse calorie estimate")
		return demoEstimate(msgUnparsableEstimate), nil
	}

	return models.CalorieEstimate{Calories: calories}, nil
}

// fallbackReason hides transport details such as upstream addresses and
// status text from the client.
func fallbackReason(err error) string {
	if errors.Is(err, adapter.ErrNotConfigured) {
		return msgAssistantNotConfigured
	}
	return msgAssistantUnavailable
}

func demoEstimate(reason string) models.CalorieEstimate {
	return models.CalorieEstimate{Calories: DemoCalories, IsDemo: true, Error: reason}
}

func parseCalories(text string) (int, error) {
	match := jsonObjectPattern.FindString(text)
	if match == "" {
		return 0, fmt.Errorf("no JSON object in %q", text)
	}

	var payload struct {
		Calories *float64 `json:"calories"`
	}
	if err := json.Unmarshal([]byte(match), &payload); err != nil {
		return 0, err
	}
	if payload.Calories == nil || *payload.Calories < 0 || math.IsNaN(*payload.Calories) {
		return 0, fmt.Errorf("missing or negative calories in %q", match)
	}

	return int(math.Round(*payload.Calories)), nil
}
