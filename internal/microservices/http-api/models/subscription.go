package models

import "time"

const (
	SubscriptionActive   = "ACTIVE"
	SubscriptionInactive = "INACTIVE"
)

type Subscription struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID  int64     `gorm:"not null;uniqueIndex:idx_subscription_member_webtoon" json:"member_id"`
	WebtoonID int64     `gorm:"not null;uniqueIndex:idx_subscription_member_webtoon" json:"webtoon_id"`
	Status    string    `gorm:"not null;default:'ACTIVE'" json:"status"`
	AlarmOn   bool      `gorm:"not null;default:false" json:"alarm_on"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	Member  *Member  `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE;" json:"-"`
	Webtoon *Webtoon `gorm:"foreignKey:WebtoonID;constraint:OnDelete:CASCADE;" json:"webtoon,omitempty"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

func (s *Subscription) IsActive() bool {
	return s.Status == SubscriptionActive
}
