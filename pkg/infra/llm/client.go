package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/sirupsen/logrus"

	domain "github.com/carebridge/ai-service/pkg/domain/errors"
	"github.com/carebridge/ai-service/pkg/domain/highlight"
	"github.com/carebridge/ai-service/pkg/infra/httpx"
	"github.com/carebridge/ai-service/pkg/infra/metrics"
)

const (
	breakerTimeout     = 30 * time.Second
	breakerMaxFailures = 5
	maxRetries         = 3
)

// Entry is a care note entry with PHI already redacted. The redaction layer
// owns the guarantee; this package never sees raw text.
type Entry struct {
	Content   string `json:"content"`
	EntryType string `json:"entry_type"`
	CreatedAt string `json:"created_at"`
	EntryID   string `json:"entry_id,omitempty"`
}

type CarePlanItem struct {
	Item     string `json:"item"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
}

type Summary struct {
	Highlights            []string       `json:"highlights"`
	ChangesSinceLastVisit []string       `json:"changes_since_last_visit"`
	CarePlanScore         int            `json:"care_plan_score"`
	CarePlanItems         []CarePlanItem `json:"care_plan_items"`
	PatientSummary        string         `json:"patient_summary"`
}

type PatientMessage struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
}

type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=llm_client_mock.go --case=underscore --with-expecter

// Client generates structured clinical output from redacted entries.
// Transport failures surface as upstream-unavailable errors (retryable by
// the caller); unparsable model output surfaces as malformed-response.
type Client interface {
	GenerateSummary(ctx context.Context, entries []Entry, patientContext string) (*Summary, error)
	GenerateHighlights(ctx context.Context, entries []Entry) ([]*highlight.Highlight, error)
	GeneratePatientMessage(ctx context.Context, entries []Entry, messageType string) (*PatientMessage, error)
}

type client struct {
	api       openai.Client
	model     string
	maxTokens int
	breaker   httpx.CircuitBreaker
	logger    *logrus.Logger
}

func NewClient(cfg Config, logger *logrus.Logger) Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(maxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	return &client{
		api:       openai.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: maxTokens,
		breaker:   httpx.NewCircuitBreaker("llm", breakerTimeout, breakerMaxFailures),
		logger:    logger,
	}
}

func (c *client) GenerateSummary(ctx context.Context, entries []Entry, patientContext string) (*Summary, error) {
	userPrompt := "Summarize the following care notes:\n\n" + formatEntries(entries)
	if patientContext != "" {
		userPrompt = "Patient context: " + patientContext + "\n\n" + userPrompt
	}

	content, err := c.ask(ctx, "summary", summarySystemPrompt, userPrompt, 0.2)
	if err != nil {
		return nil, err
	}

	summary := &Summary{CarePlanScore: 50}
	if err := decodeResponse(content, summary); err != nil {
		return nil, err
	}
	if summary.Highlights == nil {
		summary.Highlights = []string{}
	}
	if summary.ChangesSinceLastVisit == nil {
		summary.ChangesSinceLastVisit = []string{}
	}
	if summary.CarePlanItems == nil {
		summary.CarePlanItems = []CarePlanItem{}
	}
	return summary, nil
}

func (c *client) GenerateHighlights(ctx context.Context, entries []Entry) ([]*highlight.Highlight, error) {
	userPrompt := "Extract clinical highlights from these care notes:\n\n" + formatIndexedEntries(entries)

	content, err := c.ask(ctx, "highlights", highlightsSystemPrompt, userPrompt, 0.2)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Highlights []*highlight.Highlight `json:"highlights"`
	}
	if err := decodeResponse(content, &parsed); err != nil {
		return nil, err
	}

	// Normalize what the model sends back; downstream scoring expects a
	// valid risk level on every highlight.
	validated := make([]*highlight.Highlight, 0, len(parsed.Highlights))
	for _, h := range parsed.Highlights {
		if h == nil {
			continue
		}
		if h.RiskLevel == "" {
			h.RiskLevel = highlight.RiskMedium
		}
		if h.ImportanceScore == 0 {
			h.ImportanceScore = 0.5
		}
		validated = append(validated, h)
	}
	return validated, nil
}

func (c *client) GeneratePatientMessage(ctx context.Context, entries []Entry, messageType string) (*PatientMessage, error) {
	instruction, ok := messageTypeInstructions[messageType]
	if !ok {
		instruction = messageTypeInstructions[MessageTypeShiftHandover]
	}
	systemPrompt := "You are a clinical summarization assistant. " + instruction +
		"\n\nRespond with valid JSON:\n{\n" +
		"  \"summary\": \"string - the summary paragraph(s)\",\n" +
		"  \"key_points\": [\"string - key point\"]\n}"

	userPrompt := "Generate summary from these notes:\n\n" + formatEntries(entries)

	content, err := c.ask(ctx, "patient_message", systemPrompt, userPrompt, 0.3)
	if err != nil {
		return nil, err
	}

	message := &PatientMessage{}
	if err := decodeResponse(content, message); err != nil {
		return nil, err
	}
	if message.KeyPoints == nil {
		message.KeyPoints = []string{}
	}
	return message, nil
}

// ask sends one chat completion through the circuit breaker and returns the
// raw message content.
func (c *client) ask(ctx context.Context, operation, systemPrompt, userPrompt string, temperature float64) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		MaxTokens:   openai.Int(int64(c.maxTokens)),
		Temperature: openai.Float(temperature),
	}

	var content string
	err := c.breaker.Execute(func() error {
		resp, err := c.api.Chat.Completions.New(ctx, params)
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return errors.New("no completions returned")
		}
		content = resp.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		metrics.LLMRequests.WithLabelValues(operation, "error").Inc()
		c.logger.WithError(err).WithField("operation", operation).Error("llm request failed")
		return "", domain.NewUpstreamUnavailableError("llm", err)
	}

	if strings.TrimSpace(content) == "" {
		metrics.LLMRequests.WithLabelValues(operation, "malformed").Inc()
		return "", domain.NewMalformedResponseError("llm", errors.New("empty completion content"))
	}

	metrics.LLMRequests.WithLabelValues(operation, "ok").Inc()
	return content, nil
}

// decodeResponse parses the model's JSON output, tolerating a markdown code
// fence around the payload.
func decodeResponse(content string, out interface{}) error {
	trimmed := stripCodeFence(content)
	if err := json.Unmarshal([]byte(trimmed), out); err != nil {
		return domain.NewMalformedResponseError("llm", err)
	}
	return nil
}

func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
