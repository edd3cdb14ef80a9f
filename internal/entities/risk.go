// Package entities contains core business entities.
package entities

import "fmt"

// RiskLevel classifies a task or project. The empty value means the level
// has not been predicted or rolled up yet.
type RiskLevel string

const (
	// RiskLow marks low delivery risk.
	RiskLow RiskLevel = "LOW"
	// RiskMedium marks moderate delivery risk.
	RiskMedium RiskLevel = "MEDIUM"
	// RiskHigh marks high delivery risk.
	RiskHigh RiskLevel = "HIGH"
)

// ParseRiskLevel validates a risk level string.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch RiskLevel(s) {
	case RiskLow, RiskMedium, RiskHigh:
		return RiskLevel(s), nil
	default:
		return "", fmt.Errorf("%w: unknown risk level %q", ErrInvalidArgument, s)
	}
}

// RiskPrediction is the advisor's verdict for a single task.
type RiskPrediction struct {
	Level         RiskLevel
	Score         int
	Probabilities map[string]float64
	Confidence    string
}

// NeutralRiskPrediction is substituted whenever the advisor is unreachable.
// Task mutations must never block on the advisor.
func NeutralRiskPrediction() RiskPrediction {
	return RiskPrediction{
		Level:         RiskMedium,
		Score:         50,
		Probabilities: map[string]float64{"LOW": 0.3, "MEDIUM": 0.4, "HIGH": 0.3},
		Confidence:    "MEDIUM",
	}
}

// RollupRisk derives a project risk level from its task levels. Evaluated
// in order: empty list is LOW, more than 30% HIGH tasks is HIGH, more than
// 50% HIGH+MEDIUM is MEDIUM, otherwise LOW. Unpredicted tasks count toward
// the total only.
func RollupRisk(levels []RiskLevel) RiskLevel {
	if len(levels) == 0 {
		return RiskLow
	}

	var high, medium int
	for _, l := range levels {
		switch l {
		case RiskHigh:
			high++
		case RiskMedium:
			medium++
		}
	}

	total := float64(len(levels))
	switch {
	case float64(high) > total*0.3:
		return RiskHigh
	case float64(high+medium) > total*0.5:
		return RiskMedium
	default:
		return RiskLow
	}
}
