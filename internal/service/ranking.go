package service

import (
	"context"
	"sync"
	"time"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/cache"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultRankingInterval = 30 * time.Second
	rankingWindowSize      = 1000
)

// RankingService maintains a harmony leaderboard across subjects. The
// Redis cache is a read accelerator; Postgres stays authoritative and
// every read falls back to it when the cache is absent or empty.
type RankingService struct {
	assessments domain.AssessmentStore
	cache       *cache.RankingCache
	logger      *zap.Logger

	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func NewRankingService(as domain.AssessmentStore, rc *cache.RankingCache, logger *zap.Logger) *RankingService {
	return &RankingService{
		assessments: as,
		cache:       rc,
		logger:      logger,
		interval:    defaultRankingInterval,
		stopCh:      make(chan struct{}),
	}
}

func (s *RankingService) SetInterval(d time.Duration) {
	s.interval = d
}

func (s *RankingService) Start() {
	if s.cache == nil {
		s.logger.Info("ranking cache disabled, standings served from database")
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info("ranking worker started", zap.Duration("interval", s.interval))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		s.Refresh(ctx)
		cancel()

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				s.Refresh(ctx)
				cancel()
			case <-s.stopCh:
				s.logger.Info("ranking worker stopped")
				return
			}
		}
	}()
}

func (s *RankingService) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

// Refresh rebuilds the cached leaderboard from the latest assessment of
// every subject.
func (s *RankingService) Refresh(ctx context.Context) {
	if s.cache == nil {
		return
	}

	standings, err := s.assessments.Standings(ctx, rankingWindowSize)
	if err != nil {
		s.logger.Error("failed to load standings", zap.Error(err))
		return
	}
	if err := s.cache.Replace(ctx, standings); err != nil {
		s.logger.Error("failed to refresh ranking cache", zap.Error(err))
		return
	}
	s.logger.Debug("ranking cache refreshed", zap.Int("subjects", len(standings)))
}

// Top returns the highest-harmony subjects, preferring the cache.
func (s *RankingService) Top(ctx context.Context, limit int) ([]domain.SubjectStanding, error) {
	if limit <= 0 || limit > rankingWindowSize {
		limit = 10
	}

	if s.cache != nil {
		standings, err := s.cache.Top(ctx, limit)
		if err != nil {
			s.logger.Warn("ranking cache read failed, falling back to database", zap.Error(err))
		} else if len(standings) > 0 {
			return standings, nil
		}
	}

	return s.assessments.Standings(ctx, limit)
}

// RankOf returns a subject's 1-indexed leaderboard position, or -1
// when the subject has no assessments in the ranked window.
func (s *RankingService) RankOf(ctx context.Context, subjectID uuid.UUID) (int64, error) {
	if s.cache != nil {
		rank, err := s.cache.Rank(ctx, subjectID)
		if err == nil && rank > 0 {
			return rank, nil
		}
		if err != nil {
			s.logger.Warn("ranking cache rank lookup failed", zap.Error(err))
		}
	}

	standings, err := s.assessments.Standings(ctx, rankingWindowSize)
	if err != nil {
		return -1, err
	}
	for _, st := range standings {
		if st.SubjectID == subjectID {
			return int64(st.Rank), nil
		}
	}
	return -1, nil
}
