package models

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/learnex/ledger/config"
	"github.com/learnex/ledger/mq_client"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Balance partitions a member's lifetime earnings into four buckets.
// TotalEarnings == Available + Pending + Processing + Withdrawn at all
// times; every mutator preserves that equality or returns an error.
type Balance struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	MemberID      int64           `json:"member_id" gorm:"uniqueIndex"`
	Available     decimal.Decimal `json:"available" validate:"ValidateAvailable"`
	Pending       decimal.Decimal `json:"pending" validate:"ValidatePending"`
	Processing    decimal.Decimal `json:"processing" validate:"ValidateProcessing"`
	Withdrawn     decimal.Decimal `json:"withdrawn" validate:"ValidateWithdrawn"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
	LastSyncedAt  time.Time       `json:"last_synced_at"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (b Balance) ValidateAvailable(Available decimal.Decimal) bool {
	return Available.GreaterThanOrEqual(decimal.Zero)
}

func (b Balance) ValidatePending(Pending decimal.Decimal) bool {
	return Pending.GreaterThanOrEqual(decimal.Zero)
}

func (b Balance) ValidateProcessing(Processing decimal.Decimal) bool {
	return Processing.GreaterThanOrEqual(decimal.Zero)
}

func (b Balance) ValidateWithdrawn(Withdrawn decimal.Decimal) bool {
	return Withdrawn.GreaterThanOrEqual(decimal.Zero)
}

func (b *Balance) Member() Member {
	var member Member

	config.DataBase.First(&member, "id = ?", b.MemberID)

	return member
}

// Consistent reports whether the buckets still partition lifetime earnings.
func (b *Balance) Consistent() bool {
	sum := b.Available.Add(b.Pending).Add(b.Processing).Add(b.Withdrawn)

	return sum.Equal(b.TotalEarnings)
}

func (b *Balance) BeforeSave(tx *gorm.DB) (err error) {
	b.TriggerEvent()

	return
}

func (b *Balance) TriggerEvent() {
	member := b.Member()
	payload_message, _ := json.Marshal(b.ToJSON())

	mq_client.EnqueueEvent("private", member.UID, "balance", payload_message)
}

// PlusPending credits a freshly earned commission: pending and lifetime
// total grow together.
func (b *Balance) PlusPending(tx *gorm.DB, amount decimal.Decimal) error {
	if err := b.creditPending(amount); err != nil {
		return err
	}
	return tx.Save(b).Error
}

func (b *Balance) creditPending(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.New("cannot credit pending (member id: " + formatID(b.MemberID) + ", amount: " + amount.String() + ", pending: " + b.Pending.String() + ")")
	}

	b.Pending = b.Pending.Add(amount)
	b.TotalEarnings = b.TotalEarnings.Add(amount)
	return nil
}

// ReleasePending matures earnings: pending shrinks, available grows,
// lifetime total untouched.
func (b *Balance) ReleasePending(tx *gorm.DB, amount decimal.Decimal) error {
	if err := b.releasePending(amount); err != nil {
		return err
	}
	return tx.Save(b).Error
}

func (b *Balance) releasePending(amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(b.Pending) {
		return errors.New("cannot release pending (member id: " + formatID(b.MemberID) + ", amount: " + amount.String() + ", pending: " + b.Pending.String() + ")")
	}

	b.Pending = b.Pending.Sub(amount)
	b.Available = b.Available.Add(amount)
	return nil
}

// LockForWithdrawal reserves funds against an in-flight withdrawal.
func (b *Balance) LockForWithdrawal(tx *gorm.DB, amount decimal.Decimal) error {
	if err := b.lockAvailable(amount); err != nil {
		return err
	}
	return tx.Save(b).Error
}

func (b *Balance) lockAvailable(amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(b.Available) {
		return errors.New("cannot lock funds (member id: " + formatID(b.MemberID) + ", amount: " + amount.String() + ", available: " + b.Available.String() + ")")
	}

	b.Available = b.Available.Sub(amount)
	b.Processing = b.Processing.Add(amount)
	return nil
}

// ConfirmWithdrawal moves locked funds into the paid-out bucket.
func (b *Balance) ConfirmWithdrawal(tx *gorm.DB, amount decimal.Decimal) error {
	if err := b.confirmLocked(amount); err != nil {
		return err
	}
	return tx.Save(b).Error
}

func (b *Balance) confirmLocked(amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(b.Processing) {
		return errors.New("cannot confirm withdrawal (member id: " + formatID(b.MemberID) + ", amount: " + amount.String() + ", processing: " + b.Processing.String() + ")")
	}

	b.Processing = b.Processing.Sub(amount)
	b.Withdrawn = b.Withdrawn.Add(amount)
	return nil
}

// ReleaseLocked returns locked funds to available after a rejection.
func (b *Balance) ReleaseLocked(tx *gorm.DB, amount decimal.Decimal) error {
	if err := b.releaseLocked(amount); err != nil {
		return err
	}
	return tx.Save(b).Error
}

func (b *Balance) releaseLocked(amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(b.Processing) {
		return errors.New("cannot release locked funds (member id: " + formatID(b.MemberID) + ", amount: " + amount.String() + ", processing: " + b.Processing.String() + ")")
	}

	b.Processing = b.Processing.Sub(amount)
	b.Available = b.Available.Add(amount)
	return nil
}

// Compensation inverses for the non-transactional execution path. Each
// runs only after its forward mutation succeeded, so they apply without
// guards.

func (b *Balance) RevertCredit(tx *gorm.DB, amount decimal.Decimal) error {
	b.revertCredit(amount)
	return tx.Save(b).Error
}

func (b *Balance) revertCredit(amount decimal.Decimal) {
	b.Pending = b.Pending.Sub(amount)
	b.TotalEarnings = b.TotalEarnings.Sub(amount)
}

func (b *Balance) RevertRelease(tx *gorm.DB, amount decimal.Decimal) error {
	b.revertRelease(amount)
	return tx.Save(b).Error
}

func (b *Balance) revertRelease(amount decimal.Decimal) {
	b.Available = b.Available.Sub(amount)
	b.Pending = b.Pending.Add(amount)
}

func (b *Balance) RevertLock(tx *gorm.DB, amount decimal.Decimal) error {
	b.revertLock(amount)
	return tx.Save(b).Error
}

func (b *Balance) revertLock(amount decimal.Decimal) {
	b.Processing = b.Processing.Sub(amount)
	b.Available = b.Available.Add(amount)
}

func (b *Balance) RevertConfirm(tx *gorm.DB, amount decimal.Decimal) error {
	b.revertConfirm(amount)
	return tx.Save(b).Error
}

func (b *Balance) revertConfirm(amount decimal.Decimal) {
	b.Withdrawn = b.Withdrawn.Sub(amount)
	b.Processing = b.Processing.Add(amount)
}

func (b *Balance) RevertUnlock(tx *gorm.DB, amount decimal.Decimal) error {
	b.revertUnlock(amount)
	return tx.Save(b).Error
}

func (b *Balance) revertUnlock(amount decimal.Decimal) {
	b.Available = b.Available.Sub(amount)
	b.Processing = b.Processing.Add(amount)
}

type BalanceJSON struct {
	Available     decimal.Decimal `json:"available"`
	Pending       decimal.Decimal `json:"pending"`
	Processing    decimal.Decimal `json:"processing"`
	Withdrawn     decimal.Decimal `json:"withdrawn"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
}

func (b *Balance) ToJSON() BalanceJSON {
	return BalanceJSON{
		Available:     b.Available,
		Pending:       b.Pending,
		Processing:    b.Processing,
		Withdrawn:     b.Withdrawn,
		TotalEarnings: b.TotalEarnings,
	}
}
