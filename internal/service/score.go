package service

import (
	"context"
	"errors"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/domain"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrPresetWithCustom = errors.New("preset and explicit thresholds are mutually exclusive")
)

// ScoreRequest is one stateless scoring computation. Scores are
// accepted unbounded: out-of-range values pass through untouched.
// Configuration resolves profile first, then inline overrides, then
// defaults.
type ScoreRequest struct {
	Score      ljpw.Vector
	ProfileID  *uuid.UUID
	Preset     string
	Thresholds *ljpw.Thresholds
	Weights    *ljpw.Weights
	Anchor     *ljpw.Vector
}

// ScoreReport is the full derivation for one vector.
type ScoreReport struct {
	Score   ljpw.Vector `json:"score"`
	Harmony float64     `json:"harmony"`
	Phase   ljpw.Phase  `json:"phase"`

	AnchorDeviation      ljpw.Deviation `json:"anchor_deviation"`
	EquilibriumDeviation ljpw.Deviation `json:"equilibrium_deviation"`
	CollapseProbability  float64        `json:"collapse_probability"`
	Coupling             ljpw.Coupling  `json:"coupling"`

	NearestCalibration         string  `json:"nearest_calibration"`
	NearestCalibrationDistance float64 `json:"nearest_calibration_distance"`
}

type ScoreService struct {
	profiles domain.ProfileStore
	logger   *zap.Logger
}

func NewScoreService(profiles domain.ProfileStore, logger *zap.Logger) *ScoreService {
	return &ScoreService{profiles: profiles, logger: logger}
}

// Evaluate derives everything the model has to say about one vector.
func (s *ScoreService) Evaluate(ctx context.Context, req ScoreRequest) (*ScoreReport, error) {
	anchor := ljpw.Anchor
	weights := ljpw.UniformWeights
	thresholds := ljpw.DefaultThresholds

	if req.ProfileID != nil {
		profile, err := s.profiles.GetByID(ctx, *req.ProfileID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrProfileNotFound
			}
			return nil, err
		}
		anchor = profile.Anchor
		weights = profile.Weights
		thresholds = profile.Thresholds
	}

	if req.Preset != "" {
		if req.Thresholds != nil {
			return nil, ErrPresetWithCustom
		}
		th, err := ljpw.PresetThresholds(req.Preset)
		if err != nil {
			return nil, err
		}
		thresholds = th
	}
	if req.Thresholds != nil {
		thresholds = *req.Thresholds
	}
	if req.Weights != nil {
		weights = *req.Weights
	}
	if req.Anchor != nil {
		anchor = *req.Anchor
	}

	harmony := ljpw.HarmonyAgainst(req.Score, anchor, weights)
	nearest, dist := ljpw.NearestCalibration(req.Score)

	return &ScoreReport{
		Score:                      req.Score,
		Harmony:                    harmony,
		Phase:                      ljpw.Classify(harmony, req.Score.Love, thresholds),
		AnchorDeviation:            ljpw.DeviationFrom(req.Score, anchor),
		EquilibriumDeviation:       ljpw.EquilibriumDeviation(req.Score),
		CollapseProbability:        ljpw.CollapseProbability(req.Score),
		Coupling:                   ljpw.CouplingAt(harmony),
		NearestCalibration:         nearest.Key,
		NearestCalibrationDistance: dist,
	}, nil
}
