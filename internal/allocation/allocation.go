// Package allocation evaluates a spending plan against the 50/30/20
// income-allocation guideline.
//
// Essentials and commitments have spending ceilings of 50% and 30% of
// income, savings have a floor of 20%. All functions are pure.
package allocation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Target percentages of the 50/30/20 guideline. These are fixed policy
// constants, they are not configurable per family.
const (
	EssentialsTargetPercent  = 50
	CommitmentsTargetPercent = 30
	SavingsTargetPercent     = 20
)

// Bucket names one of the three allocation buckets.
type Bucket string

const (
	BucketEssentials  Bucket = "essentials"
	BucketCommitments Bucket = "commitments"
	BucketSavings     Bucket = "savings"
)

var (
	hundred = decimal.NewFromInt(100)

	essentialsTarget  = decimal.NewFromInt(EssentialsTargetPercent)
	commitmentsTarget = decimal.NewFromInt(CommitmentsTargetPercent)
	savingsTarget     = decimal.NewFromInt(SavingsTargetPercent)
)

// BucketAllocation is the evaluation result for a single bucket.
type BucketAllocation struct {
	Used        decimal.Decimal `json:"used" example:"20000"`
	Limit       decimal.Decimal `json:"limit" example:"25000"`       // The bucket's share of the income
	Remaining   decimal.Decimal `json:"remaining" example:"5000"`    // Never negative, overspend shows in usedPercent
	UsedPercent decimal.Decimal `json:"usedPercent" example:"40"`    // Share of income consumed by this bucket
}

// Allocation is the full evaluation of a plan against the guideline.
type Allocation struct {
	TotalIncome        decimal.Decimal  `json:"totalIncome" example:"50000"`
	Essentials         BucketAllocation `json:"essentials"`
	Commitments        BucketAllocation `json:"commitments"`
	Savings            BucketAllocation `json:"savings"`
	OverallUsedPercent decimal.Decimal  `json:"overallUsedPercent" example:"90"`
	WithinLimits       bool             `json:"withinLimits" example:"true"`
}

// Evaluate computes the 50/30/20 evaluation for the given totals.
//
// All inputs must be non-negative. With a total income of zero every
// percentage is defined as zero and the plan is within limits only when
// nothing has been spent at all.
//
// Being exactly at a target is compliant: essentials and commitments may
// use at most their target share, savings must reach at least theirs.
func Evaluate(totalIncome, essentialsUsed, commitmentsUsed, savingsUsed decimal.Decimal) Allocation {
	allocation := Allocation{
		TotalIncome: totalIncome,
		Essentials:  evaluateBucket(totalIncome, essentialsTarget, essentialsUsed),
		Commitments: evaluateBucket(totalIncome, commitmentsTarget, commitmentsUsed),
		Savings:     evaluateBucket(totalIncome, savingsTarget, savingsUsed),
	}

	used := essentialsUsed.Add(commitmentsUsed).Add(savingsUsed)

	if totalIncome.IsZero() {
		allocation.OverallUsedPercent = decimal.Zero
		allocation.WithinLimits = used.IsZero()
		return allocation
	}

	allocation.OverallUsedPercent = percentOf(used, totalIncome)
	allocation.WithinLimits = allocation.Essentials.UsedPercent.LessThanOrEqual(essentialsTarget) &&
		allocation.Commitments.UsedPercent.LessThanOrEqual(commitmentsTarget) &&
		allocation.Savings.UsedPercent.GreaterThanOrEqual(savingsTarget)

	return allocation
}

// Decision is the result of an entry-time bucket check.
type Decision struct {
	Allowed         bool            `json:"allowed" example:"false"`
	AvailableAmount decimal.Decimal `json:"availableAmount" example:"0"`
	Reason          string          `json:"reason,omitempty" example:"Cannot exceed available balance. Available: ₹0"`
}

// CanAddExpense checks whether a proposed line item still fits into the
// bucket's ceiling, given the income and the amount already used in the
// bucket. The remaining headroom is derived from the passed totals at
// call time, never from a previous Evaluate result.
//
// Savings have no ceiling, only a floor which is checked by Evaluate, so
// proposals for the savings bucket are always allowed.
func CanAddExpense(totalIncome decimal.Decimal, bucket Bucket, used, proposed decimal.Decimal) Decision {
	if bucket == BucketSavings {
		return Decision{Allowed: true}
	}

	target := essentialsTarget
	if bucket == BucketCommitments {
		target = commitmentsTarget
	}

	limit := totalIncome.Mul(target).Div(hundred)
	remaining := limit.Sub(used)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	if proposed.GreaterThan(remaining) {
		return Decision{
			AvailableAmount: remaining,
			Reason:          fmt.Sprintf("Cannot exceed the %s budget. Available: ₹%s", bucket, remaining.Round(2).String()),
		}
	}

	return Decision{Allowed: true, AvailableAmount: remaining}
}

// evaluateBucket computes limit, remaining and used percentage for one
// bucket. The remaining amount is floored at zero.
func evaluateBucket(totalIncome, target, used decimal.Decimal) BucketAllocation {
	bucket := BucketAllocation{
		Used:        used,
		Limit:       decimal.Zero,
		Remaining:   decimal.Zero,
		UsedPercent: decimal.Zero,
	}

	if totalIncome.IsZero() {
		return bucket
	}

	bucket.Limit = totalIncome.Mul(target).Div(hundred)
	bucket.UsedPercent = percentOf(used, totalIncome)

	remaining := bucket.Limit.Sub(used)
	if remaining.IsPositive() {
		bucket.Remaining = remaining
	}

	return bucket
}

func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	return part.Div(whole).Mul(hundred)
}
