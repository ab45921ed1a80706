package analyzer

import (
	"github.com/ludo-technologies/solidscan/domain"
)

// ViolationStore aggregates evidence into at most one violation per
// principle per run. Violations are created lazily on first detection and
// only ever appended to afterwards. The store is owned by a single writer;
// parallel parsing merges into source order before any evidence reaches it.
type ViolationStore struct {
	violations map[domain.Principle]*domain.Violation
}

// NewViolationStore creates an empty store
func NewViolationStore() *ViolationStore {
	return &ViolationStore{
		violations: make(map[domain.Principle]*domain.Violation),
	}
}

// GetOrCreate returns the violation for a principle, creating it on first
// use
func (s *ViolationStore) GetOrCreate(principle domain.Principle) *domain.Violation {
	if v, ok := s.violations[principle]; ok {
		return v
	}
	v := &domain.Violation{Principle: principle}
	s.violations[principle] = v
	return v
}

// Append files one evidence record against a principle. Evidence order
// equals the order checkers visit declarations.
func (s *ViolationStore) Append(principle domain.Principle, evidence domain.Evidence) {
	v := s.GetOrCreate(principle)
	v.Evidences = append(v.Evidences, evidence)
}

// Has reports whether any evidence was filed against a principle
func (s *ViolationStore) Has(principle domain.Principle) bool {
	v, ok := s.violations[principle]
	return ok && len(v.Evidences) > 0
}

// Violations returns the aggregated violations in fixed reporting order
// (SRP, OCP, LSP, ISP, DIP). Principles without evidence are omitted.
func (s *ViolationStore) Violations() []domain.Violation {
	var out []domain.Violation
	for _, principle := range domain.Principles {
		if v, ok := s.violations[principle]; ok && len(v.Evidences) > 0 {
			out = append(out, *v)
		}
	}
	return out
}

// TotalEvidences returns the number of evidence records across all
// principles
func (s *ViolationStore) TotalEvidences() int {
	total := 0
	for _, v := range s.violations {
		total += len(v.Evidences)
	}
	return total
}
