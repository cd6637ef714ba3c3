package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the only component that touches the ledger tables. Each method is
// a single statement (or a single implicit transaction); callers composing
// several of them must tolerate partial failure between calls.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CreateUser inserts the user only if the id is absent and reports whether an
// insert happened. Repeat registrations are a no-op and never touch
// InvitedBy.
func (s *Store) CreateUser(ctx context.Context, u *User) (bool, error) {
	tx := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(u)
	if tx.Error != nil {
		return false, fmt.Errorf("create user %d: %w", u.ID, tx.Error)
	}
	return tx.RowsAffected > 0, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*User, error) {
	var u User
	tx := s.db.WithContext(ctx).First(&u, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if tx.Error != nil {
		return nil, fmt.Errorf("get user %d: %w", id, tx.Error)
	}
	return &u, nil
}

// GetBalance treats an unknown user as a zero balance rather than erroring.
func (s *Store) GetBalance(ctx context.Context, id int64) (float64, error) {
	var u User
	tx := s.db.WithContext(ctx).Select("balance").First(&u, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if tx.Error != nil {
		return 0, fmt.Errorf("get balance for user %d: %w", id, tx.Error)
	}
	return u.Balance, nil
}

// AdjustBalance adds delta in a single in-database increment, so concurrent
// credits to the same user cannot lose updates. Unknown users are a silent
// no-op.
func (s *Store) AdjustBalance(ctx context.Context, id int64, delta float64) error {
	tx := s.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		UpdateColumn("balance", gorm.Expr("balance + ?", delta))
	if tx.Error != nil {
		return fmt.Errorf("adjust balance for user %d: %w", id, tx.Error)
	}
	return nil
}

func (s *Store) CreateAd(ctx context.Context, ad *Ad) error {
	if tx := s.db.WithContext(ctx).Create(ad); tx.Error != nil {
		return fmt.Errorf("create ad: %w", tx.Error)
	}
	return nil
}

// ToggleAdActive flips the active flag; absent ids are a no-op.
func (s *Store) ToggleAdActive(ctx context.Context, adID int64) error {
	tx := s.db.WithContext(ctx).
		Model(&Ad{}).
		Where("id = ?", adID).
		UpdateColumn("is_active", gorm.Expr("NOT is_active"))
	if tx.Error != nil {
		return fmt.Errorf("toggle ad %d: %w", adID, tx.Error)
	}
	return nil
}

func (s *Store) GetAd(ctx context.Context, adID int64) (*Ad, error) {
	var ad Ad
	tx := s.db.WithContext(ctx).First(&ad, adID)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrAdNotFound
	}
	if tx.Error != nil {
		return nil, fmt.Errorf("get ad %d: %w", adID, tx.Error)
	}
	return &ad, nil
}

func (s *Store) ListActiveAds(ctx context.Context) ([]Ad, error) {
	var ads []Ad
	tx := s.db.WithContext(ctx).Where("is_active = ?", true).Find(&ads)
	if tx.Error != nil {
		return nil, fmt.Errorf("list active ads: %w", tx.Error)
	}
	return ads, nil
}

// RecordAdView appends a fact row. Repeat views of the same ad by the same
// user are allowed; nothing here checks the ad is still active.
func (s *Store) RecordAdView(ctx context.Context, userID, adID int64) error {
	view := AdView{UserID: userID, AdID: adID}
	if tx := s.db.WithContext(ctx).Create(&view); tx.Error != nil {
		return fmt.Errorf("record ad view user=%d ad=%d: %w", userID, adID, tx.Error)
	}
	return nil
}

// RecordReferral appends a referral row. When the invited user is already
// attributed the unique index rejects the insert and ErrReferralExists is
// returned; under a race of two simultaneous registrations exactly one
// insert wins.
func (s *Store) RecordReferral(ctx context.Context, inviterID, invitedID int64) error {
	ref := Referral{InviterID: inviterID, InvitedID: invitedID}
	if tx := s.db.WithContext(ctx).Create(&ref); tx.Error != nil {
		if isUniqueConstraintError(tx.Error) {
			return ErrReferralExists
		}
		return fmt.Errorf("record referral inviter=%d invited=%d: %w", inviterID, invitedID, tx.Error)
	}
	return nil
}

func (s *Store) CountReferrals(ctx context.Context, userID int64) (int64, error) {
	var n int64
	tx := s.db.WithContext(ctx).Model(&Referral{}).Where("inviter_id = ?", userID).Count(&n)
	if tx.Error != nil {
		return 0, fmt.Errorf("count referrals for user %d: %w", userID, tx.Error)
	}
	return n, nil
}

func isUniqueConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique failed")
}
