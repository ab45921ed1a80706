package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainErrorFormat(t *testing.T) {
	cause := fmt.Errorf("underlying failure")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with cause",
			err:  NewAnalysisError("analysis failed", cause),
			want: "[ANALYSIS_ERROR] analysis failed: underlying failure",
		},
		{
			name: "without cause",
			err:  NewInvalidInputError("no paths", nil),
			want: "[INVALID_INPUT] no paths",
		},
		{
			name: "file not found includes path",
			err:  NewFileNotFoundError("missing.cs", nil),
			want: "[FILE_NOT_FOUND] file not found: missing.cs",
		},
		{
			name: "unsupported format",
			err:  NewUnsupportedFormatError("xml"),
			want: "[UNSUPPORTED_FORMAT] unsupported output format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := NewParseError("bad.cs", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause through Unwrap")
	}

	var domainErr DomainError
	if !errors.As(err, &domainErr) {
		t.Fatal("errors.As should match DomainError")
	}
	if domainErr.Code != ErrCodeParseFailure {
		t.Errorf("expected %s, got %s", ErrCodeParseFailure, domainErr.Code)
	}
}

func TestViolationWithExplanationIsACopy(t *testing.T) {
	original := Violation{
		Principle: PrincipleSRP,
		Evidences: []Evidence{NewEvidence("a.cs", 3, "class A {}")},
	}

	explained := original.WithExplanation("too many responsibilities")

	if explained.Explanation != "too many responsibilities" {
		t.Errorf("explanation not set: %q", explained.Explanation)
	}
	if original.Explanation != "" {
		t.Error("original must not be mutated")
	}
	if len(explained.Evidences) != 1 || explained.Evidences[0].File != "a.cs" {
		t.Errorf("evidence not carried over: %v", explained.Evidences)
	}
}

func TestPrincipleTitles(t *testing.T) {
	for _, principle := range Principles {
		if principle.Title() == string(principle) {
			t.Errorf("%s should have a long title", principle)
		}
	}
}

func TestPrinciplesReportingOrder(t *testing.T) {
	want := []Principle{PrincipleSRP, PrincipleOCP, PrincipleLSP, PrincipleISP, PrincipleDIP}
	if len(Principles) != len(want) {
		t.Fatalf("expected %d principles, got %d", len(want), len(Principles))
	}
	for i, p := range want {
		if Principles[i] != p {
			t.Errorf("position %d: expected %s, got %s", i, p, Principles[i])
		}
	}
}
