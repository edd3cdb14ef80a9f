// Package entities contains core business entities.
package entities

import (
	"math"
	"sort"
)

// BalanceThreshold is the utilization spread, in percentage points, at or
// above which a team counts as unbalanced.
const BalanceThreshold = 20.0

// Round2 rounds to two decimal places, matching how all percentages in the
// system are reported.
func Round2(v float64) float64 {
	return math.Round(v*100.0) / 100.0
}

// ApplyWorkloadDelta returns the workload after applying delta, clamped at
// zero. The second result reports whether clamping occurred, which signals
// an accounting defect upstream and must be surfaced, not swallowed.
func ApplyWorkloadDelta(current, delta int) (int, bool) {
	next := current + delta
	if next < 0 {
		return 0, true
	}
	return next, false
}

// Utilization is workload over capacity as a percentage, rounded to two
// decimals. Zero capacity yields zero rather than dividing.
func Utilization(workloadPoints, capacityPoints int) float64 {
	if capacityPoints <= 0 {
		return 0.0
	}
	return Round2(float64(workloadPoints) * 100.0 / float64(capacityPoints))
}

// AverageUtilization is the arithmetic mean, 0.0 for no members.
func AverageUtilization(utilizations []float64) float64 {
	if len(utilizations) == 0 {
		return 0.0
	}
	var sum float64
	for _, u := range utilizations {
		sum += u
	}
	return Round2(sum / float64(len(utilizations)))
}

// UtilizationSpread is max minus min, with both defaulting to zero for an
// empty slice.
func UtilizationSpread(utilizations []float64) float64 {
	if len(utilizations) == 0 {
		return 0.0
	}
	min, max := utilizations[0], utilizations[0]
	for _, u := range utilizations[1:] {
		if u < min {
			min = u
		}
		if u > max {
			max = u
		}
	}
	return max - min
}

// IsBalanced reports whether no member's utilization deviates from
// another's by the threshold or more. Teams of zero or one member are
// trivially balanced.
func IsBalanced(utilizations []float64) bool {
	return UtilizationSpread(utilizations) < BalanceThreshold
}

// MemberWorkload is the per-member slice of a team workload view.
type MemberWorkload struct {
	User                  User
	CurrentWorkload       int
	MaxCapacity           int
	UtilizationPercentage float64
	ActiveTasks           []TaskSummary
}

// TeamWorkload is the balancer's team-wide view.
type TeamWorkload struct {
	Members            []MemberWorkload
	IsBalanced         bool
	AverageUtilization float64
}

// BuildTeamWorkload assembles the team view: members sorted by utilization
// descending, balance flag and mean over the member utilizations.
func BuildTeamWorkload(members []MemberWorkload) TeamWorkload {
	sorted := append([]MemberWorkload(nil), members...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UtilizationPercentage > sorted[j].UtilizationPercentage
	})

	utilizations := make([]float64, 0, len(sorted))
	for _, m := range sorted {
		utilizations = append(utilizations, m.UtilizationPercentage)
	}

	return TeamWorkload{
		Members:            sorted,
		IsBalanced:         IsBalanced(utilizations),
		AverageUtilization: AverageUtilization(utilizations),
	}
}
