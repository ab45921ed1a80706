package analyzer

import (
	"testing"

	"github.com/ludo-technologies/solidscan/domain"
)

func TestViolationStoreAggregatesPerPrinciple(t *testing.T) {
	store := NewViolationStore()

	store.Append(domain.PrincipleSRP, domain.NewEvidence("a.cs", 1, "class A {}"))
	store.Append(domain.PrincipleSRP, domain.NewEvidence("b.cs", 5, "class B {}"))
	store.Append(domain.PrincipleDIP, domain.NewEvidence("a.cs", 1, "class A {}"))

	violations := store.Violations()
	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %d", len(violations))
	}

	srp := violations[0]
	if srp.Principle != domain.PrincipleSRP {
		t.Errorf("expected first violation to be SRP, got %s", srp.Principle)
	}
	if len(srp.Evidences) != 2 {
		t.Errorf("expected 2 SRP evidences, got %d", len(srp.Evidences))
	}
	if srp.Evidences[0].File != "a.cs" || srp.Evidences[1].File != "b.cs" {
		t.Errorf("evidence order not preserved: %v", srp.Evidences)
	}
}

func TestViolationStoreReportingOrder(t *testing.T) {
	store := NewViolationStore()

	// Append in reverse of the reporting order
	store.Append(domain.PrincipleDIP, domain.NewEvidence("a.cs", 1, ""))
	store.Append(domain.PrincipleISP, domain.NewEvidence("a.cs", 1, ""))
	store.Append(domain.PrincipleSRP, domain.NewEvidence("a.cs", 1, ""))

	violations := store.Violations()
	want := []domain.Principle{domain.PrincipleSRP, domain.PrincipleISP, domain.PrincipleDIP}
	if len(violations) != len(want) {
		t.Fatalf("expected %d violations, got %d", len(want), len(violations))
	}
	for i, principle := range want {
		if violations[i].Principle != principle {
			t.Errorf("position %d: expected %s, got %s", i, principle, violations[i].Principle)
		}
	}
}

func TestViolationStoreEmptyPrinciplesOmitted(t *testing.T) {
	store := NewViolationStore()

	if store.Has(domain.PrincipleOCP) {
		t.Error("empty store should not report OCP")
	}

	// GetOrCreate without Append must not surface an empty violation
	store.GetOrCreate(domain.PrincipleOCP)
	if store.Has(domain.PrincipleOCP) {
		t.Error("violation without evidence should not count")
	}
	if got := store.Violations(); len(got) != 0 {
		t.Errorf("expected no violations, got %d", len(got))
	}
}

func TestViolationStoreTotalEvidences(t *testing.T) {
	store := NewViolationStore()
	if store.TotalEvidences() != 0 {
		t.Errorf("expected 0 evidences in empty store, got %d", store.TotalEvidences())
	}

	store.Append(domain.PrincipleSRP, domain.NewEvidence("a.cs", 1, ""))
	store.Append(domain.PrincipleOCP, domain.NewEvidence("a.cs", 1, ""))
	store.Append(domain.PrincipleOCP, domain.NewEvidence("b.cs", 2, ""))

	if got := store.TotalEvidences(); got != 3 {
		t.Errorf("expected 3 evidences, got %d", got)
	}
}
