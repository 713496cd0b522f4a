package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
	"gorm.io/gorm"

	"github.com/imilab/chartme/config"
	"github.com/imilab/chartme/internal/model"
)

// fakeOrgRepo keeps organizations in memory for plan-transition tests.
type fakeOrgRepo struct {
	orgs map[uint]*model.Organization
}

func newFakeOrgRepo(orgs ...*model.Organization) *fakeOrgRepo {
	r := &fakeOrgRepo{orgs: map[uint]*model.Organization{}}
	for _, org := range orgs {
		r.orgs[org.ID] = org
	}
	return r
}

func (r *fakeOrgRepo) Create(org *model.Organization) error {
	r.orgs[org.ID] = org
	return nil
}

func (r *fakeOrgRepo) FindByID(id uint) (*model.Organization, error) {
	org, ok := r.orgs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *org
	return &clone, nil
}

func (r *fakeOrgRepo) IncrementTestCount(tx *gorm.DB, id uint) error {
	r.orgs[id].TestCount++
	return nil
}

func (r *fakeOrgRepo) Update(org *model.Organization) error {
	r.orgs[org.ID] = org
	return nil
}

func newBillingForTest(repo *fakeOrgRepo) *billingService {
	cfg := &config.Config{}
	cfg.App.BaseURL = "http://localhost:8080"
	return &billingService{cfg: cfg, orgs: repo}
}

func TestApplyCheckoutCompletedUpgradesOrganization(t *testing.T) {
	repo := newFakeOrgRepo(&model.Organization{ID: 7, Name: "acme", Plan: model.PlanFree})
	svc := newBillingForTest(repo)

	sess := &stripe.CheckoutSession{
		ClientReferenceID: "7",
		Customer:          &stripe.Customer{ID: "cus_123"},
		Subscription:      &stripe.Subscription{ID: "sub_456"},
	}
	require.NoError(t, svc.applyCheckoutCompleted(sess))

	org := repo.orgs[7]
	assert.Equal(t, model.PlanPro, org.Plan)
	require.NotNil(t, org.StripeCustomerID)
	assert.Equal(t, "cus_123", *org.StripeCustomerID)
	require.NotNil(t, org.StripeSubscriptionID)
	assert.Equal(t, "sub_456", *org.StripeSubscriptionID)
}

func TestApplyPlanDowngradeClearsSubscription(t *testing.T) {
	subID := "sub_456"
	repo := newFakeOrgRepo(&model.Organization{
		ID:                   7,
		Plan:                 model.PlanPro,
		StripeSubscriptionID: &subID,
	})
	svc := newBillingForTest(repo)

	require.NoError(t, svc.applyPlan("7", model.PlanFree))
	org := repo.orgs[7]
	assert.Equal(t, model.PlanFree, org.Plan)
	assert.Nil(t, org.StripeSubscriptionID)
}

func TestApplyPlanIsIdempotent(t *testing.T) {
	repo := newFakeOrgRepo(&model.Organization{ID: 7, Plan: model.PlanPro})
	svc := newBillingForTest(repo)

	require.NoError(t, svc.applyPlan("7", model.PlanPro))
	assert.Equal(t, model.PlanPro, repo.orgs[7].Plan)
}

func TestOrgFromRefRejectsBadReferences(t *testing.T) {
	svc := newBillingForTest(newFakeOrgRepo())

	_, err := svc.orgFromRef("")
	assert.Error(t, err)

	_, err = svc.orgFromRef("not-a-number")
	assert.Error(t, err)

	_, err = svc.orgFromRef("99")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCheckoutUnavailableWithoutSecretKey(t *testing.T) {
	repo := newFakeOrgRepo(&model.Organization{ID: 1})
	svc := newBillingForTest(repo)

	_, err := svc.CreateCheckoutSession(1, "admin@acme.io")
	assert.ErrorIs(t, err, ErrBillingUnavailable)

	_, err = svc.CreatePortalSession(1)
	assert.ErrorIs(t, err, ErrBillingUnavailable)
}
