package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	PlanFree = "free"
	PlanPro  = "pro"

	// FreePlanMaxTests caps test creation on the free tier.
	FreePlanMaxTests = 3
)

type Organization struct {
	ID                   uint           `gorm:"primarykey" json:"id"`
	Name                 string         `json:"name" gorm:"not null"`
	Plan                 string         `json:"plan" gorm:"not null;default:'free'"`
	TestCount            int            `json:"test_count" gorm:"not null;default:0"`
	StripeCustomerID     *string        `json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID *string        `json:"stripe_subscription_id,omitempty"`
	CreatedBy            string         `json:"created_by"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

// CanCreateTest reports whether the organization is below its plan's test limit.
func (o *Organization) CanCreateTest() bool {
	if o.Plan == PlanPro {
		return true
	}
	return o.TestCount < FreePlanMaxTests
}
