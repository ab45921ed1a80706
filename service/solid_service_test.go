package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ludo-technologies/solidscan/domain"
	"github.com/ludo-technologies/solidscan/internal/config"
)

func writeSource(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAnalyzeAggregatesEvidencePerPrinciple(t *testing.T) {
	dir := t.TempDir()

	// Two classes in one file, both mixing calculation with persistence
	path := writeSource(t, dir, "billing.cs", `
public class InvoiceManager
{
    public decimal CalculateTotal() { return 0; }
    public void SaveInvoice() { }
}

public class ReportManager
{
    public decimal ComputeSummary() { return 0; }
    public void LoadHistory() { }
}
`)

	svc := NewSolidService(config.DefaultConfig())
	resp, err := svc.Analyze(context.Background(), domain.SolidRequest{Paths: []string{path}})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	var srp *domain.Violation
	for i := range resp.Violations {
		if resp.Violations[i].Principle == domain.PrincipleSRP {
			srp = &resp.Violations[i]
		}
	}
	if srp == nil {
		t.Fatal("expected an SRP violation")
	}
	if len(srp.Evidences) != 2 {
		t.Fatalf("expected 2 evidences aggregated into one violation, got %d", len(srp.Evidences))
	}
	// Evidence follows declaration order within the file
	if srp.Evidences[0].Line >= srp.Evidences[1].Line {
		t.Errorf("evidence out of source order: %d then %d", srp.Evidences[0].Line, srp.Evidences[1].Line)
	}

	if resp.Summary.ClassesChecked != 2 {
		t.Errorf("expected 2 classes checked, got %d", resp.Summary.ClassesChecked)
	}
	if resp.Summary.FilesAnalyzed != 1 {
		t.Errorf("expected 1 file analyzed, got %d", resp.Summary.FilesAnalyzed)
	}
}

func TestAnalyzeVisitsFilesInPathOrder(t *testing.T) {
	dir := t.TempDir()

	// Deliberately hand the files over in reverse lexicographic order
	b := writeSource(t, dir, "b.cs", `
public class Beta
{
    public decimal CalculateTotal() { return 0; }
    public void SaveState() { }
}
`)
	a := writeSource(t, dir, "a.cs", `
public class Alpha
{
    public decimal CalculateTotal() { return 0; }
    public void SaveState() { }
}
`)

	svc := NewSolidService(config.DefaultConfig())
	resp, err := svc.Analyze(context.Background(), domain.SolidRequest{Paths: []string{b, a}})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(resp.Violations) == 0 {
		t.Fatal("expected violations")
	}
	srp := resp.Violations[0]
	if srp.Principle != domain.PrincipleSRP {
		t.Fatalf("expected SRP first, got %s", srp.Principle)
	}
	if len(srp.Evidences) != 2 {
		t.Fatalf("expected 2 evidences, got %d", len(srp.Evidences))
	}
	if filepath.Base(srp.Evidences[0].File) != "a.cs" {
		t.Errorf("a.cs should come first regardless of request order, got %s", srp.Evidences[0].File)
	}
}

func TestAnalyzeSkipsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()

	good := writeSource(t, dir, "good.cs", `
public class Tidy
{
    public decimal CalculateTotal() { return 0; }
}
`)
	missing := filepath.Join(dir, "missing.cs")

	svc := NewSolidService(config.DefaultConfig())
	resp, err := svc.Analyze(context.Background(), domain.SolidRequest{Paths: []string{good, missing}})
	if err != nil {
		t.Fatalf("unreadable file must not abort the run: %v", err)
	}

	if resp.Summary.FilesAnalyzed != 1 {
		t.Errorf("expected 1 file analyzed, got %d", resp.Summary.FilesAnalyzed)
	}
	if resp.Summary.FilesSkipped != 1 {
		t.Errorf("expected 1 file skipped, got %d", resp.Summary.FilesSkipped)
	}
	if len(resp.Warnings) != 1 {
		t.Errorf("expected a skip warning, got %v", resp.Warnings)
	}
}

func TestAnalyzeRunsExplainStep(t *testing.T) {
	dir := t.TempDir()

	path := writeSource(t, dir, "mixed.cs", `
public class Mixed
{
    public decimal CalculateTotal() { return 0; }
    public void SaveState() { }
}
`)

	explainer := &stubExplainer{answers: map[domain.Principle]string{
		domain.PrincipleSRP: "mixes calculation with persistence",
	}}

	svc := NewSolidService(config.DefaultConfig()).WithExplainer(explainer)
	resp, err := svc.Analyze(context.Background(), domain.SolidRequest{
		Paths:   []string{path},
		Explain: true,
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	var srp *domain.Violation
	for i := range resp.Violations {
		if resp.Violations[i].Principle == domain.PrincipleSRP {
			srp = &resp.Violations[i]
		}
	}
	if srp == nil {
		t.Fatal("expected an SRP violation")
	}
	if srp.Explanation != "mixes calculation with persistence" {
		t.Errorf("explanation not folded in: %q", srp.Explanation)
	}
}

func TestAnalyzeDisabledCheckers(t *testing.T) {
	dir := t.TempDir()

	path := writeSource(t, dir, "mixed.cs", `
public class Mixed
{
    public decimal CalculateTotal() { return 0; }
    public void SaveState() { }
}
`)

	cfg := config.DefaultConfig()
	cfg.Solid.SRP = false

	svc := NewSolidService(cfg)
	resp, err := svc.Analyze(context.Background(), domain.SolidRequest{Paths: []string{path}})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	for _, v := range resp.Violations {
		if v.Principle == domain.PrincipleSRP {
			t.Error("disabled SRP checker must not file evidence")
		}
	}
}

func TestAnalyzeEmptyRequest(t *testing.T) {
	svc := NewSolidService(config.DefaultConfig())
	if _, err := svc.Analyze(context.Background(), domain.SolidRequest{}); err == nil {
		t.Error("expected error for empty request")
	}
}
