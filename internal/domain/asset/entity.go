package asset

import (
	"time"

	"github.com/shopspring/decimal"
)

type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
	ConditionBroken    Condition = "broken"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor, ConditionBroken:
		return true
	}
	return false
}

// Degraded reports whether the condition warrants a follow-up inspection.
func (c Condition) Degraded() bool {
	return c == ConditionPoor || c == ConditionBroken
}

type Status string

const (
	StatusAvailable        Status = "available"
	StatusUnderMaintenance Status = "under_maintenance"
	StatusNeedsInspection  Status = "needs_inspection"
	StatusRetired          Status = "retired"
)

type Asset struct {
	ID           string
	Name         string
	Category     string
	Condition    Condition
	Status       Status
	PurchaseCost decimal.Decimal
	CreatedAt    *time.Time
	RetiredAt    *time.Time
}
