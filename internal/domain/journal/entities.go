package journal

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("journal not found")

// Journal is an accounting channel (cash, bank, cheque, card) a payment
// is recorded through.
type Journal struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`

	Code        string `gorm:"size:20;uniqueIndex:ux_journals_code" json:"code"`
	Name        string `gorm:"size:100;uniqueIndex:ux_journals_name" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Journal) TableName() string { return "journals" }
