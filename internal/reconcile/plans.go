package reconcile

import (
	"github.com/clubops/membership-backend/internal/models"
)

// DefaultPlanDurationDays is the validity window assumed for plans seen
// only in the data. No name-based inference is applied: a plan called
// "Annual" still defaults to 30 days until someone says otherwise.
const DefaultPlanDurationDays = 30

// PlanLookup is the read side of the registry, consumed by the
// reconciliation engine.
type PlanLookup interface {
	Lookup(name string) (*models.MembershipPlan, bool)
}

// PlanRegistry is the set of known membership plans. It only grows:
// entries are never removed or edited, and registration is idempotent.
// The registry itself is not goroutine safe; the session store guards it.
type PlanRegistry struct {
	plans       map[string]*models.MembershipPlan
	names       []string // insertion order
	defaultDays int
}

func NewPlanRegistry(defaultDays int) *PlanRegistry {
	if defaultDays <= 0 {
		defaultDays = DefaultPlanDurationDays
	}
	return &PlanRegistry{
		plans:       make(map[string]*models.MembershipPlan),
		defaultDays: defaultDays,
	}
}

// Register inserts an auto-detected plan under name if absent and
// returns the registered plan either way.
func (r *PlanRegistry) Register(name string) *models.MembershipPlan {
	if plan, ok := r.plans[name]; ok {
		return plan
	}
	plan := &models.MembershipPlan{
		Name:         name,
		DurationDays: r.defaultDays,
		AutoDetected: true,
	}
	r.plans[name] = plan
	r.names = append(r.names, name)
	return plan
}

func (r *PlanRegistry) Lookup(name string) (*models.MembershipPlan, bool) {
	plan, ok := r.plans[name]
	return plan, ok
}

// Plans returns the registered plans in insertion order.
func (r *PlanRegistry) Plans() []models.MembershipPlan {
	out := make([]models.MembershipPlan, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, *r.plans[name])
	}
	return out
}

// AutoDetect registers every plan name referenced by a complete record
// and returns the plans that are new to this registry.
func (r *PlanRegistry) AutoDetect(records []*models.PaymentRecord) []models.MembershipPlan {
	var added []models.MembershipPlan
	for _, record := range records {
		if !record.IsComplete || record.PlanName == "" {
			continue
		}
		if _, ok := r.plans[record.PlanName]; ok {
			continue
		}
		added = append(added, *r.Register(record.PlanName))
	}
	return added
}
