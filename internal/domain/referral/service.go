package referral

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"adledger/internal/domain/ledger"
)

var ErrSelfReferral = errors.New("user cannot refer themselves")

// Store is the slice of the ledger the referral engine needs.
type Store interface {
	RecordReferral(ctx context.Context, inviterID, invitedID int64) error
	AdjustBalance(ctx context.Context, id int64, delta float64) error
}

// Service attributes a newly registering user to an inviter at most once and
// pays the inviter a fixed bonus.
type Service struct {
	store Store
	bonus float64
	log   *zap.Logger
}

func NewService(store Store, bonus float64, log *zap.Logger) *Service {
	return &Service{store: store, bonus: bonus, log: log}
}

// Attribute records the referral and pays the bonus. An invited user that is
// already attributed is not an error: the bonus is simply not paid again.
// Recording and paying are two separate store calls; a crash between them
// leaves the referral recorded with no bonus paid (at-most-once).
func (s *Service) Attribute(ctx context.Context, inviterID, invitedID int64) error {
	if inviterID == invitedID {
		return ErrSelfReferral
	}

	err := s.store.RecordReferral(ctx, inviterID, invitedID)
	if errors.Is(err, ledger.ErrReferralExists) {
		s.log.Info("referral already attributed",
			zap.Int64("inviter_id", inviterID),
			zap.Int64("invited_id", invitedID),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("attribute referral: %w", err)
	}

	if err := s.store.AdjustBalance(ctx, inviterID, s.bonus); err != nil {
		return fmt.Errorf("pay referral bonus: %w", err)
	}

	s.log.Info("referral bonus paid",
		zap.Int64("inviter_id", inviterID),
		zap.Int64("invited_id", invitedID),
		zap.Float64("bonus", s.bonus),
	)
	return nil
}
