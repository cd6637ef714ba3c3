package ledger

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an externally identified account. The id comes from the chat
// platform and is never generated here. InvitedBy is set once, at creation.
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Balance   float64   `json:"balance" gorm:"not null;default:0"`
	InvitedBy *int64    `json:"invited_by,omitempty"`
	JoinedAt  time.Time `json:"joined_at" gorm:"autoCreateTime"`
}

func (User) TableName() string { return "users" }

// Ad is a creditable advertisement managed by the administrator.
type Ad struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Reward      float64   `json:"reward" gorm:"not null;default:0"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Ad) TableName() string { return "ads" }

// AdView is an append-only fact row, one per credited view.
type AdView struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID   int64     `json:"user_id" gorm:"not null;index"`
	AdID     int64     `json:"ad_id" gorm:"not null;index"`
	ViewedAt time.Time `json:"viewed_at" gorm:"autoCreateTime"`
}

func (AdView) TableName() string { return "ad_views" }

func (v *AdView) BeforeCreate(_ *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// Referral links an invited user to their inviter. The unique index on
// InvitedID is the safeguard against double attribution; it must be enforced
// by the database, not here.
type Referral struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	InviterID int64     `json:"inviter_id" gorm:"not null;index"`
	InvitedID int64     `json:"invited_id" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Referral) TableName() string { return "referrals" }

func (r *Referral) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Models lists every table the ledger owns, in migration order.
func Models() []any {
	return []any{&User{}, &Ad{}, &AdView{}, &Referral{}}
}
