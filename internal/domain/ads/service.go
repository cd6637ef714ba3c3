package ads

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"adledger/internal/domain/ledger"
)

// Store is the slice of the ledger the crediting engine needs.
type Store interface {
	ListActiveAds(ctx context.Context) ([]ledger.Ad, error)
	RecordAdView(ctx context.Context, userID, adID int64) error
	AdjustBalance(ctx context.Context, id int64, delta float64) error
	CreateAd(ctx context.Context, ad *ledger.Ad) error
	ToggleAdActive(ctx context.Context, adID int64) error
}

// Reward is what the transport renders after a successful credit.
type Reward struct {
	AdID        int64   `json:"ad_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Reward      float64 `json:"reward"`
}

type Service struct {
	store Store
	log   *zap.Logger
}

func NewService(store Store, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

// Credit validates the ad is currently active, records the view, and pays the
// viewer the ad's reward. Repeat views pay repeatedly; the view log is the
// audit trail, not a dedup table. Recording and paying are separate store
// calls, so a crash between them leaves a view row with no payout.
func (s *Service) Credit(ctx context.Context, userID, adID int64) (*Reward, error) {
	active, err := s.store.ListActiveAds(ctx)
	if err != nil {
		return nil, err
	}

	var ad *ledger.Ad
	for i := range active {
		if active[i].ID == adID {
			ad = &active[i]
			break
		}
	}
	if ad == nil {
		return nil, ErrAdUnavailable
	}

	if err := s.store.RecordAdView(ctx, userID, adID); err != nil {
		return nil, err
	}
	if err := s.store.AdjustBalance(ctx, userID, ad.Reward); err != nil {
		return nil, fmt.Errorf("pay ad reward: %w", err)
	}

	s.log.Info("ad view credited",
		zap.Int64("user_id", userID),
		zap.Int64("ad_id", adID),
		zap.Float64("reward", ad.Reward),
	)

	return &Reward{
		AdID:        ad.ID,
		Title:       ad.Title,
		Description: ad.Description,
		URL:         ad.URL,
		Reward:      ad.Reward,
	}, nil
}

func (s *Service) ListActive(ctx context.Context) ([]ledger.Ad, error) {
	return s.store.ListActiveAds(ctx)
}

// CreateAd is the administrator operation behind "add_ad". New ads start
// active, matching how the bot has always published them.
func (s *Service) CreateAd(ctx context.Context, req CreateAdRequest) (*ledger.Ad, error) {
	if req.Reward < 0 {
		return nil, ErrValidation
	}

	ad := &ledger.Ad{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Reward:      req.Reward,
		IsActive:    true,
	}
	if err := s.store.CreateAd(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

func (s *Service) ToggleAd(ctx context.Context, adID int64) error {
	return s.store.ToggleAdActive(ctx, adID)
}
