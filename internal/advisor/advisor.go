// Package advisor calls the external ML risk predictor. Transport failures
// degrade to a fixed neutral prediction so task mutations never block on
// the advisor.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Vedant634/flowdesk-project/internal/entities"
	"github.com/Vedant634/flowdesk-project/internal/metrics"

	"go.uber.org/zap"
)

// Features is the predictor input for a single task.
type Features struct {
	EstimatedHours    float64 `json:"estimatedHours"`
	StoryPoints       int     `json:"storyPoints"`
	DeveloperWorkload float64 `json:"developerWorkload"`
	Priority          int     `json:"priority"`
	NumSubtasks       int     `json:"numSubtasks"`
	TaskAgeDays       int     `json:"taskAgeDays"`
}

// PriorityRank converts a priority to the predictor's numeric encoding.
func PriorityRank(p entities.TaskPriority) int {
	switch p {
	case entities.PriorityHigh:
		return 1
	case entities.PriorityLow:
		return 3
	default:
		return 2
	}
}

// Advisor predicts delivery risk for a task.
type Advisor interface {
	PredictRisk(ctx context.Context, f Features) entities.RiskPrediction
}

// Static always returns the neutral prediction. Used when no advisor is
// configured.
type Static struct{}

// PredictRisk implements Advisor.
func (Static) PredictRisk(_ context.Context, _ Features) entities.RiskPrediction {
	return entities.NeutralRiskPrediction()
}

// Client is the HTTP advisor client.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.SugaredLogger
	metrics *metrics.Metrics
}

// NewClient builds an advisor client with a bounded per-call timeout.
func NewClient(baseURL string, timeout time.Duration, log *zap.SugaredLogger, m *metrics.Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log.Named("advisor"),
		metrics: m,
	}
}

type predictionResponse struct {
	RiskLevel     string             `json:"riskLevel"`
	RiskScore     float64            `json:"riskScore"`
	Probabilities map[string]float64 `json:"probabilities"`
	Confidence    string             `json:"confidence"`
}

// PredictRisk calls the predictor and falls back to the neutral default on
// any failure.
func (c *Client) PredictRisk(ctx context.Context, f Features) entities.RiskPrediction {
	pred, err := c.call(ctx, f)
	if err != nil {
		c.metrics.AdvisorFallbacks.Inc()
		c.log.Warnw("risk prediction failed, using neutral default", "error", err)
		return entities.NeutralRiskPrediction()
	}
	return pred
}

func (c *Client) call(ctx context.Context, f Features) (entities.RiskPrediction, error) {
	body, err := json.Marshal(f)
	if err != nil {
		return entities.RiskPrediction{}, fmt.Errorf("marshal features: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/ml/predict-risk", bytes.NewReader(body))
	if err != nil {
		return entities.RiskPrediction{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return entities.RiskPrediction{}, fmt.Errorf("call predictor: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return entities.RiskPrediction{}, fmt.Errorf("predictor status %d", resp.StatusCode)
	}

	var decoded predictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return entities.RiskPrediction{}, fmt.Errorf("decode prediction: %w", err)
	}

	level, err := entities.ParseRiskLevel(decoded.RiskLevel)
	if err != nil {
		return entities.RiskPrediction{}, fmt.Errorf("predictor level: %w", err)
	}

	// The predictor reports the score either as 0..1 confidence or 0..100.
	score := decoded.RiskScore
	if score <= 1.0 {
		score *= 100
	}

	return entities.RiskPrediction{
		Level:         level,
		Score:         int(score),
		Probabilities: decoded.Probabilities,
		Confidence:    decoded.Confidence,
	}, nil
}
