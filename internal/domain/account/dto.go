package account

import "adledger/internal/domain/ledger"

// RegisterRequest carries the registration event from the transport layer.
// ID is filled from the gateway identity token, not from the body.
type RegisterRequest struct {
	ID            int64  `json:"-"`
	Username      string `json:"username"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	ReferralToken string `json:"referral_token"`
}

// ReferralSummary is the invite-friends view: a shareable deep link plus the
// number of successful invitations.
type ReferralSummary struct {
	Link  string `json:"link"`
	Count int64  `json:"count"`
}

// UserInfo is the administrator's view of a user.
type UserInfo struct {
	User      ledger.User `json:"user"`
	Referrals int64       `json:"referrals"`
}
