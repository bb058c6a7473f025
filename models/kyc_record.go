package models

import (
	"time"

	"github.com/learnex/ledger/types"
)

type KycRecord struct {
	ID         int64          `json:"id" gorm:"primaryKey"`
	MemberID   int64          `json:"member_id" gorm:"uniqueIndex"`
	State      types.KycState `json:"state" gorm:"default:pending"`
	ReviewedBy int64          `json:"reviewed_by"`
	ReviewedAt *time.Time     `json:"reviewed_at"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
