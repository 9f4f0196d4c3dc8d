package models

import "time"

// Reward statuses.
const (
	RewardPending = "pending"
	RewardPaid    = "paid"
)

// Reward is created outside the pipeline when a referral converts.
// This service only reads them.
type Reward struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"column:user_id;index" json:"user_id"`
	ReferralID uint      `gorm:"column:referral_id" json:"referral_id"`
	Amount     int       `gorm:"column:amount" json:"amount"`
	Status     string    `gorm:"column:status;default:pending" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
