package client

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("client not found")

type State string

const (
	StateActive     State = "active"
	StateInactive   State = "inactive"
	StateDelinquent State = "delinquent"
)

type Client struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	ClientID string `gorm:"size:32;uniqueIndex:ux_clients_client_id" json:"client_id"`

	FirstName  string     `gorm:"size:100" json:"first_name"`
	LastName   string     `gorm:"size:100" json:"last_name"`
	NationalID string     `gorm:"size:20;uniqueIndex:ux_clients_national_id" json:"national_id"`
	Phone      string     `gorm:"size:15" json:"phone"`
	Email      string     `gorm:"size:254" json:"email"`
	Address    string     `gorm:"type:text" json:"address"`
	BirthDate  *time.Time `gorm:"type:date" json:"birth_date,omitempty"`

	State       State `gorm:"type:enum('active','inactive','delinquent');default:'active'" json:"state"`
	CreditScore int   `gorm:"default:500" json:"credit_score"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Client) TableName() string { return "clients" }

func (c *Client) FullName() string { return c.FirstName + " " + c.LastName }
