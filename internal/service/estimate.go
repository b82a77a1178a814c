package service

import (
	"context"
	"errors"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/domain"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/estimator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrEstimateNoInput = errors.New("estimate request has no metrics or text")

// EstimateRequest carries one or both estimator inputs. When SubjectID
// is set the resulting measurement is persisted as an assessment for
// that subject.
type EstimateRequest struct {
	Metrics *estimator.OrgMetrics `json:"metrics,omitempty"`
	Text    string                `json:"text,omitempty"`

	SubjectID *uuid.UUID `json:"subject_id,omitempty"`
	Event     string     `json:"event,omitempty"`
}

// EstimateResult reports the individual measurements alongside the
// consensus. Estimates are heuristic; the confidence field is the only
// honest signal of how much to trust them.
type EstimateResult struct {
	Measurements []estimator.Measurement `json:"measurements"`
	Consensus    estimator.Measurement   `json:"consensus"`

	Assessment *domain.Assessment `json:"assessment,omitempty"`
}

type EstimateService struct {
	assessments *AssessmentService
	weights     estimator.ProxyWeights
	logger      *zap.Logger
}

func NewEstimateService(assessments *AssessmentService, logger *zap.Logger) *EstimateService {
	return &EstimateService{
		assessments: assessments,
		weights:     estimator.DefaultProxyWeights,
		logger:      logger,
	}
}

func (s *EstimateService) Estimate(ctx context.Context, req EstimateRequest) (*EstimateResult, error) {
	var measurements []estimator.Measurement

	if req.Metrics != nil {
		measurements = append(measurements, estimator.EstimateFromMetrics(*req.Metrics, s.weights))
	}
	if req.Text != "" {
		measurements = append(measurements, estimator.EstimateFromText(req.Text))
	}
	if len(measurements) == 0 {
		return nil, ErrEstimateNoInput
	}

	res := &EstimateResult{
		Measurements: measurements,
		Consensus:    estimator.Consensus(measurements),
	}

	if req.SubjectID != nil {
		a := &domain.Assessment{
			SubjectID:  *req.SubjectID,
			Score:      res.Consensus.Score,
			Event:      req.Event,
			Source:     domain.Source(res.Consensus.Method),
			Confidence: res.Consensus.Confidence,
		}
		if err := s.assessments.Create(ctx, a); err != nil {
			return nil, err
		}
		res.Assessment = a
	}

	s.logger.Debug("estimate produced",
		zap.Int("inputs", len(measurements)),
		zap.String("method", string(res.Consensus.Method)),
		zap.Float64("confidence", res.Consensus.Confidence))
	return res, nil
}
