package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/time/rate"

	"github.com/ludo-technologies/solidscan/domain"
	"github.com/ludo-technologies/solidscan/internal/config"
)

// Evidence snippets are truncated before prompting; whole-class snippets
// can be arbitrarily large
const maxSnippetChars = 2000

// AnthropicExplainer implements domain.Explainer against the Anthropic
// Messages API. Requests are paced by a rate limiter and bounded by a
// per-request timeout; both kinds of failure surface as ordinary errors
// that the caller folds into the violation instead of aborting the run.
type AnthropicExplainer struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	limiter   *rate.Limiter
}

// NewAnthropicExplainer creates an explainer from configuration. The API
// key is read from the ANTHROPIC_API_KEY environment variable.
func NewAnthropicExplainer(cfg *config.ExplainConfig) (*AnthropicExplainer, error) {
	if cfg == nil {
		defaults := config.DefaultConfig().Explain
		cfg = &defaults
	}

	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, domain.NewExplainError("ANTHROPIC_API_KEY not set", nil)
	}

	model := cfg.Model
	if model == "" {
		model = config.DefaultExplainModel
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = config.DefaultExplainTimeoutSeconds * time.Second
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = config.DefaultExplainRequestsPerSec
	}

	maxTokens := int64(cfg.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = config.DefaultExplainMaxTokens
	}

	return &AnthropicExplainer{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		maxTokens: maxTokens,
		timeout:   timeout,
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
	}, nil
}

// Explain requests a natural-language explanation for one aggregated
// violation
func (e *AnthropicExplainer) Explain(ctx context.Context, principle domain.Principle, evidences []domain.Evidence) (string, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return "", domain.NewExplainError("rate limiter interrupted", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	prompt := buildExplainPrompt(principle, evidences)

	response, err := e.client.Messages.New(reqCtx, anthropic.MessageNewParams{
		Model:     anthropic.Model(e.model),
		MaxTokens: e.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", domain.NewExplainError(fmt.Sprintf("explanation request for %s failed", principle), err)
	}

	var text strings.Builder
	for _, block := range response.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	explanation := strings.TrimSpace(text.String())
	if explanation == "" {
		return "", domain.NewExplainError(fmt.Sprintf("empty explanation response for %s", principle), nil)
	}
	return explanation, nil
}

// buildExplainPrompt builds the prompt for one violation
func buildExplainPrompt(principle domain.Principle, evidences []domain.Evidence) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `You are reviewing C# code flagged by a static analyzer. The following declarations were flagged as likely violations of the %s (%s).

For each snippet, explain in two or three sentences why the structure conflicts with the principle and suggest one concrete refactoring. Keep the whole answer under 200 words, plain prose, no markdown.

`, principle.Title(), principle)

	for i, ev := range evidences {
		snippet := ev.Snippet
		if len(snippet) > maxSnippetChars {
			snippet = snippet[:maxSnippetChars] + "\n// ... (truncated)"
		}
		fmt.Fprintf(&sb, "Snippet %d (%s:%d):\n%s\n\n", i+1, ev.File, ev.Line, snippet)
	}

	return sb.String()
}

// ExplainViolations folds explanations into the violation list, one
// sequential request per violation. A failed request never aborts the
// run: the failure payload itself becomes the stored explanation text and
// processing continues with the next violation. The input slice is left
// untouched; new violation values are returned.
func ExplainViolations(ctx context.Context, explainer domain.Explainer, violations []domain.Violation) []domain.Violation {
	out := make([]domain.Violation, 0, len(violations))
	for _, violation := range violations {
		text, err := explainer.Explain(ctx, violation.Principle, violation.Evidences)
		if err != nil {
			text = err.Error()
		}
		out = append(out, violation.WithExplanation(text))
	}
	return out
}
