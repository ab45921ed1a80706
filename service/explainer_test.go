package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/ludo-technologies/solidscan/domain"
)

// stubExplainer answers from a canned table and fails for principles it
// does not know
type stubExplainer struct {
	answers map[domain.Principle]string
	calls   []domain.Principle
}

func (s *stubExplainer) Explain(_ context.Context, principle domain.Principle, _ []domain.Evidence) (string, error) {
	s.calls = append(s.calls, principle)
	if answer, ok := s.answers[principle]; ok {
		return answer, nil
	}
	return "", fmt.Errorf("request timed out")
}

func TestExplainViolationsFoldsResults(t *testing.T) {
	explainer := &stubExplainer{answers: map[domain.Principle]string{
		domain.PrincipleSRP: "class does too much",
		domain.PrincipleDIP: "depends on concretions",
	}}

	violations := []domain.Violation{
		{Principle: domain.PrincipleSRP, Evidences: []domain.Evidence{domain.NewEvidence("a.cs", 1, "")}},
		{Principle: domain.PrincipleDIP, Evidences: []domain.Evidence{domain.NewEvidence("b.cs", 2, "")}},
	}

	out := ExplainViolations(context.Background(), explainer, violations)

	if len(out) != 2 {
		t.Fatalf("expected 2 violations, got %d", len(out))
	}
	if out[0].Explanation != "class does too much" {
		t.Errorf("SRP explanation wrong: %q", out[0].Explanation)
	}
	if out[1].Explanation != "depends on concretions" {
		t.Errorf("DIP explanation wrong: %q", out[1].Explanation)
	}

	// Inputs are never mutated
	if violations[0].Explanation != "" {
		t.Error("input violations must not be mutated")
	}
}

func TestExplainViolationsFailurePayloadBecomesExplanation(t *testing.T) {
	explainer := &stubExplainer{answers: map[domain.Principle]string{
		domain.PrincipleOCP: "not extensible",
	}}

	violations := []domain.Violation{
		{Principle: domain.PrincipleSRP},
		{Principle: domain.PrincipleOCP},
		{Principle: domain.PrincipleISP},
	}

	out := ExplainViolations(context.Background(), explainer, violations)

	// Failures keep their slot, carrying the error text; the run continues
	// past them
	if out[0].Explanation != "request timed out" {
		t.Errorf("expected failure payload as explanation, got %q", out[0].Explanation)
	}
	if out[1].Explanation != "not extensible" {
		t.Errorf("expected success after failure, got %q", out[1].Explanation)
	}
	if out[2].Explanation != "request timed out" {
		t.Errorf("expected failure payload as explanation, got %q", out[2].Explanation)
	}

	if len(explainer.calls) != 3 {
		t.Errorf("every violation should be attempted, got %d calls", len(explainer.calls))
	}
}

func TestExplainViolationsEmptyInput(t *testing.T) {
	explainer := &stubExplainer{}
	out := ExplainViolations(context.Background(), explainer, nil)
	if len(out) != 0 {
		t.Errorf("expected empty output, got %d", len(out))
	}
	if len(explainer.calls) != 0 {
		t.Errorf("no calls expected, got %d", len(explainer.calls))
	}
}
