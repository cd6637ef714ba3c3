package ledger

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrAdNotFound     = errors.New("ad not found")
	ErrReferralExists = errors.New("user already has a referral attribution")
)
