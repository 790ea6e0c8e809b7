package reconcile

import (
	"time"

	"github.com/clubops/membership-backend/internal/models"
	"github.com/clubops/membership-backend/pkg/helpers"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// payment builds a complete recurring record; tests override fields as
// needed.
func payment(payer, player string, amount float64, paid time.Time, plan string) *models.PaymentRecord {
	return &models.PaymentRecord{
		PayerName:       payer,
		PlayerName:      player,
		PaymentAmount:   amount,
		PaymentDate:     helpers.Ptr(paid),
		PlanName:        plan,
		RecurringStatus: "yes",
		IsComplete:      true,
	}
}

func annualPayment(payer, player string, amount float64, paid time.Time, plan string) *models.PaymentRecord {
	r := payment(payer, player, amount, paid, plan)
	r.RecurringStatus = ""
	return r
}

func registryWith(names ...string) *PlanRegistry {
	reg := NewPlanRegistry(0)
	for _, name := range names {
		reg.Register(name)
	}
	return reg
}
