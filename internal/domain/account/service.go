package account

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"adledger/internal/domain/ledger"
	"adledger/internal/domain/referral"
)

const referralPrefix = "ref_"

// Store is the slice of the ledger the account façade needs.
type Store interface {
	CreateUser(ctx context.Context, u *ledger.User) (bool, error)
	GetUser(ctx context.Context, id int64) (*ledger.User, error)
	GetBalance(ctx context.Context, id int64) (float64, error)
	CountReferrals(ctx context.Context, userID int64) (int64, error)
}

// ReferralAttributor is implemented by the referral engine.
type ReferralAttributor interface {
	Attribute(ctx context.Context, inviterID, invitedID int64) error
}

// Service is the façade the transport layer calls for registration, balance
// queries and referral summaries.
type Service struct {
	store       Store
	referrals   ReferralAttributor
	botUsername string
	log         *zap.Logger
}

func NewService(store Store, referrals ReferralAttributor, botUsername string, log *zap.Logger) *Service {
	return &Service{
		store:       store,
		referrals:   referrals,
		botUsername: botUsername,
		log:         log,
	}
}

// ParseReferralToken extracts the inviter id from a "ref_<id>" deep-link
// parameter. Anything else is reported as malformed.
func ParseReferralToken(token string) (int64, bool) {
	if !strings.HasPrefix(token, referralPrefix) {
		return 0, false
	}
	id, err := strconv.ParseInt(token[len(referralPrefix):], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Register creates the user row, attributing the referral first when a valid
// token is present. Malformed and self-referential tokens are dropped at this
// boundary; registration itself always proceeds. Registering an existing id
// is an idempotent no-op.
func (s *Service) Register(ctx context.Context, req RegisterRequest) error {
	var invitedBy *int64

	if req.ReferralToken != "" {
		inviterID, ok := ParseReferralToken(req.ReferralToken)
		if !ok {
			s.log.Warn("malformed referral token",
				zap.Int64("user_id", req.ID),
				zap.String("token", req.ReferralToken),
			)
		} else {
			err := s.referrals.Attribute(ctx, inviterID, req.ID)
			switch {
			case errors.Is(err, referral.ErrSelfReferral):
				s.log.Warn("self-referral token dropped", zap.Int64("user_id", req.ID))
			case err != nil:
				return fmt.Errorf("register user %d: %w", req.ID, err)
			default:
				invitedBy = &inviterID
			}
		}
	}

	inserted, err := s.store.CreateUser(ctx, &ledger.User{
		ID:        req.ID,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		InvitedBy: invitedBy,
	})
	if err != nil {
		return fmt.Errorf("register user %d: %w", req.ID, err)
	}
	if inserted {
		s.log.Info("user registered", zap.Int64("user_id", req.ID))
	}
	return nil
}

func (s *Service) Balance(ctx context.Context, id int64) (float64, error) {
	return s.store.GetBalance(ctx, id)
}

// ReferralSummary composes the user's deep link and invite count.
func (s *Service) ReferralSummary(ctx context.Context, id int64) (*ReferralSummary, error) {
	count, err := s.store.CountReferrals(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ReferralSummary{
		Link:  fmt.Sprintf("https://t.me/%s?start=%s%d", s.botUsername, referralPrefix, id),
		Count: count,
	}, nil
}

// UserInfo backs the administrator's user lookup.
func (s *Service) UserInfo(ctx context.Context, id int64) (*UserInfo, error) {
	u, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.store.CountReferrals(ctx, id)
	if err != nil {
		return nil, err
	}
	return &UserInfo{User: *u, Referrals: count}, nil
}
