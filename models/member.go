package models

import (
	"database/sql"
	"time"

	"github.com/learnex/ledger/config"
	"github.com/learnex/ledger/types"
)

type Member struct {
	ID          int64          `json:"id" gorm:"primaryKey"`
	UID         string         `json:"uid" gorm:"uniqueIndex"`
	Email       string         `json:"email"`
	Role        string         `json:"role"`
	State       string         `json:"state"`
	ReferralUID sql.NullString `json:"referral_uid"`
	Username    sql.NullString `json:"username"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (m *Member) GetBalance() *Balance {
	var balance *Balance

	config.DataBase.FirstOrCreate(&balance, Balance{MemberID: m.ID})

	return balance
}

func (m *Member) HavingReferrer() bool {
	return m.ReferralUID.Valid
}

// GetRefMember resolves the member's own referrer, the second hop of the
// commission chain.
func (m *Member) GetRefMember() *Member {
	if !m.ReferralUID.Valid {
		return nil
	}

	var member *Member

	if result := config.DataBase.First(&member, "uid = ?", m.ReferralUID.String); result.Error != nil {
		return nil
	}

	return member
}

func (m *Member) KycApproved() bool {
	var record *KycRecord

	if result := config.DataBase.First(&record, "member_id = ?", m.ID); result.Error != nil {
		return false
	}

	return record.State == types.KycStateApproved
}

func FindMemberByUID(uid string) *Member {
	var member *Member

	if result := config.DataBase.First(&member, "uid = ?", uid); result.Error != nil {
		return nil
	}

	return member
}
