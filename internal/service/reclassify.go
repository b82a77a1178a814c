package service

import (
	"context"
	"sync"
	"time"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/domain"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
	"go.uber.org/zap"
)

const (
	defaultReclassifyInterval = 5 * time.Minute
	reclassifyBatchSize       = 500
)

type ReclassifyResult struct {
	Examined     int `json:"examined"`
	Reclassified int `json:"reclassified"`
}

// ReclassifyService sweeps assessments whose profile changed after they
// were classified and recomputes harmony and phase under the profile's
// current anchor, weights and thresholds. Stored scores never change.
type ReclassifyService struct {
	assessments domain.AssessmentStore
	logger      *zap.Logger

	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func NewReclassifyService(as domain.AssessmentStore, logger *zap.Logger) *ReclassifyService {
	return &ReclassifyService{
		assessments: as,
		logger:      logger,
		interval:    defaultReclassifyInterval,
		stopCh:      make(chan struct{}),
	}
}

func (s *ReclassifyService) SetInterval(d time.Duration) {
	s.interval = d
}

func (s *ReclassifyService) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info("reclassify worker started", zap.Duration("interval", s.interval))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
				s.RunSweep(ctx)
				cancel()
			case <-s.stopCh:
				s.logger.Info("reclassify worker stopped")
				return
			}
		}
	}()
}

func (s *ReclassifyService) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

// RunSweep drains stale assessments in batches until none remain.
func (s *ReclassifyService) RunSweep(ctx context.Context) *ReclassifyResult {
	result := &ReclassifyResult{}

	for {
		stale, err := s.assessments.ListStale(ctx, reclassifyBatchSize)
		if err != nil {
			s.logger.Error("failed to list stale assessments", zap.Error(err))
			return result
		}
		if len(stale) == 0 {
			break
		}

		for _, sa := range stale {
			result.Examined++

			harmony := ljpw.HarmonyAgainst(sa.Score, sa.Anchor, sa.Weights)
			phase := ljpw.Classify(harmony, sa.Score.Love, sa.Thresholds)

			if err := s.assessments.UpdateClassification(ctx, sa.ID, harmony, phase); err != nil {
				s.logger.Warn("failed to reclassify assessment",
					zap.String("assessment_id", sa.ID.String()),
					zap.Error(err))
				continue
			}
			result.Reclassified++
		}

		if len(stale) < reclassifyBatchSize {
			break
		}
	}

	if result.Reclassified > 0 {
		s.logger.Info("reclassify sweep complete",
			zap.Int("examined", result.Examined),
			zap.Int("reclassified", result.Reclassified))
	}
	return result
}
