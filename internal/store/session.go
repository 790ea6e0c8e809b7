package store

import (
	"sync"

	"github.com/clubops/membership-backend/internal/models"
	"github.com/clubops/membership-backend/internal/reconcile"
)

// SessionStore holds the in-memory session state: the last imported
// payment records, the snapshots derived from them, and the plan
// registry. Records and snapshots are replaced wholesale on each import;
// the registry is the one piece of state that accumulates across imports
// for the lifetime of the process.
//
// There is one logical writer (an import) at a time, but the HTTP surface
// reads concurrently, hence the RWMutex.
type SessionStore struct {
	mu        sync.RWMutex
	records   []*models.PaymentRecord
	snapshots []*models.MemberSnapshot
	plans     *reconcile.PlanRegistry
}

func NewSessionStore(defaultPlanDays int) *SessionStore {
	return &SessionStore{
		plans: reconcile.NewPlanRegistry(defaultPlanDays),
	}
}

// ReplaceImport swaps in a new import's records and snapshots.
// Last writer wins; there is no merging with prior state.
func (s *SessionStore) ReplaceImport(records []*models.PaymentRecord, snapshots []*models.MemberSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.snapshots = snapshots
}

// Records returns the current record set. The slice is a copy; the
// records themselves are shared and read-only by convention.
func (s *SessionStore) Records() []*models.PaymentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.PaymentRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Snapshots returns the current member snapshots.
func (s *SessionStore) Snapshots() []*models.MemberSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.MemberSnapshot, len(s.snapshots))
	copy(out, s.snapshots)
	return out
}

// AutoDetectPlans registers plans referenced by complete records and
// returns the newly added ones.
func (s *SessionStore) AutoDetectPlans(records []*models.PaymentRecord) []models.MembershipPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plans.AutoDetect(records)
}

// Lookup implements reconcile.PlanLookup.
func (s *SessionStore) Lookup(name string) (*models.MembershipPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plans.Lookup(name)
}

// Plans returns the registered plans in registration order.
func (s *SessionStore) Plans() []models.MembershipPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plans.Plans()
}
