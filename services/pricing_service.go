package services

import (
	"agrodirect/models"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const advisorTimeout = 20 * time.Second

type PriceAdvisor interface {
	Recommend(ctx context.Context, q models.PriceQuery) (*models.PriceRecommendation, error)
}

// PricingService wraps the AI advisor. It never fails: any advisor error or
// unusable answer becomes a nil recommendation.
type PricingService struct {
	advisor PriceAdvisor
	cache   *redis.Client
	ttl     time.Duration
	group   singleflight.Group
	logger  *zap.Logger
}

// NewPricingService accepts a nil advisor (no API key) and a nil cache.
func NewPricingService(advisor PriceAdvisor, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *PricingService {
	return &PricingService{
		advisor: advisor,
		cache:   cache,
		ttl:     ttl,
		logger:  logger.Named("pricing"),
	}
}

func priceCacheKey(q models.PriceQuery) string {
	return fmt.Sprintf("price_rec:%s:%s:%s",
		strings.ToLower(strings.TrimSpace(q.ProductName)),
		strings.ToLower(string(q.Category)),
		strings.ToLower(strings.TrimSpace(q.Location)),
	)
}

func (s *PricingService) Recommend(ctx context.Context, q models.PriceQuery) *models.PriceRecommendation {
	if s.advisor == nil {
		s.logger.Debug("no price advisor configured")
		return nil
	}
	if strings.TrimSpace(q.ProductName) == "" {
		return nil
	}

	key := priceCacheKey(q)
	if rec := s.cached(ctx, key); rec != nil {
		return rec
	}

	ch := s.group.DoChan(key, func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(context.Background(), advisorTimeout)
		defer cancel()
		return s.advisor.Recommend(callCtx, q)
	})

	select {
	case <-ctx.Done():
		s.logger.Info("price recommendation abandoned", zap.String("product", q.ProductName), zap.Error(ctx.Err()))
		return nil
	case res := <-ch:
		if res.Err != nil {
			s.logger.Warn("price recommendation failed", zap.String("product", q.ProductName), zap.Error(res.Err))
			return nil
		}
		rec, _ := res.Val.(*models.PriceRecommendation)
		if err := validateRecommendation(rec); err != nil {
			s.logger.Warn("unusable price recommendation", zap.String("product", q.ProductName), zap.Error(err))
			return nil
		}
		s.store(ctx, key, rec)
		out := *rec
		return &out
	}
}

func validateRecommendation(rec *models.PriceRecommendation) error {
	switch {
	case rec == nil:
		return ErrEmptyRecommendation
	case rec.MinPrice < 0 || rec.MaxPrice < 0:
		return fmt.Errorf("negative price range %.0f-%.0f", rec.MinPrice, rec.MaxPrice)
	case rec.MinPrice > rec.MaxPrice:
		return fmt.Errorf("min price %.0f above max price %.0f", rec.MinPrice, rec.MaxPrice)
	case rec.RecommendedPrice <= 0:
		return fmt.Errorf("recommended price %.0f is not positive", rec.RecommendedPrice)
	}
	return nil
}

func (s *PricingService) cached(ctx context.Context, key string) *models.PriceRecommendation {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("price cache read failed", zap.Error(err))
		}
		return nil
	}

	var rec models.PriceRecommendation
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		s.cache.Del(ctx, key)
		return nil
	}
	return &rec
}

func (s *PricingService) store(ctx context.Context, key string, rec *models.PriceRecommendation) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.logger.Warn("price cache write failed", zap.Error(err))
	}
}
