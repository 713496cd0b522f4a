package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v79"
	portalsession "github.com/stripe/stripe-go/v79/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/imilab/chartme/config"
	"github.com/imilab/chartme/internal/dto"
	"github.com/imilab/chartme/internal/model"
	"github.com/imilab/chartme/internal/repository"
)

var (
	// ErrBillingUnavailable signals a missing Stripe configuration.
	ErrBillingUnavailable = errors.New("billing is not configured")
	// ErrNoStripeCustomer rejects a portal request before the organization
	// ever checked out.
	ErrNoStripeCustomer = errors.New("organization has no billing account yet")
)

// BillingService upgrades and downgrades organizations through Stripe
// subscriptions. The webhook is the single source of truth for plan changes;
// checkout and portal only hand the admin over to Stripe-hosted pages.
type BillingService interface {
	CreateCheckoutSession(orgID uint, userEmail string) (*dto.CheckoutResponseDTO, error)
	CreatePortalSession(orgID uint) (*dto.PortalResponseDTO, error)
	HandleWebhook(payload []byte, signature string) error
}

type billingService struct {
	cfg  *config.Config
	orgs repository.OrganizationRepository
}

func NewBillingService(cfg *config.Config, orgs repository.OrganizationRepository) BillingService {
	if cfg.Stripe.SecretKey == "" {
		log.Warn().Msg("STRIPE_SECRET_KEY is not set. Billing will be unavailable.")
	} else {
		stripe.Key = cfg.Stripe.SecretKey
	}
	return &billingService{cfg: cfg, orgs: orgs}
}

func (s *billingService) CreateCheckoutSession(orgID uint, userEmail string) (*dto.CheckoutResponseDTO, error) {
	if s.cfg.Stripe.SecretKey == "" {
		return nil, ErrBillingUnavailable
	}
	org, err := s.orgs.FindByID(orgID)
	if err != nil {
		return nil, err
	}

	orgRef := strconv.FormatUint(uint64(org.ID), 10)
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.cfg.Stripe.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(s.cfg.App.BaseURL + "/billing/success"),
		CancelURL:         stripe.String(s.cfg.App.BaseURL + "/billing/cancelled"),
		CustomerEmail:     stripe.String(userEmail),
		ClientReferenceID: stripe.String(orgRef),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			// Subscription lifecycle events carry no client reference, so
			// the organization rides along as metadata.
			Metadata: map[string]string{"organization_id": orgRef},
		},
	}
	if org.StripeCustomerID != nil {
		params.Customer = stripe.String(*org.StripeCustomerID)
		params.CustomerEmail = nil
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		log.Error().Err(err).Uint("org_id", orgID).Msg("Stripe checkout session creation failed")
		return nil, fmt.Errorf("stripe checkout failed: %w", err)
	}
	log.Info().Uint("org_id", orgID).Str("checkout_session", sess.ID).Msg("Checkout session created")
	return &dto.CheckoutResponseDTO{SessionID: sess.ID, URL: sess.URL}, nil
}

func (s *billingService) CreatePortalSession(orgID uint) (*dto.PortalResponseDTO, error) {
	if s.cfg.Stripe.SecretKey == "" {
		return nil, ErrBillingUnavailable
	}
	org, err := s.orgs.FindByID(orgID)
	if err != nil {
		return nil, err
	}
	if org.StripeCustomerID == nil {
		return nil, ErrNoStripeCustomer
	}

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(*org.StripeCustomerID),
		ReturnURL: stripe.String(s.cfg.App.BaseURL + "/billing"),
	}
	sess, err := portalsession.New(params)
	if err != nil {
		log.Error().Err(err).Uint("org_id", orgID).Msg("Stripe portal session creation failed")
		return nil, fmt.Errorf("stripe portal failed: %w", err)
	}
	return &dto.PortalResponseDTO{URL: sess.URL}, nil
}

// HandleWebhook verifies the event signature and applies plan transitions.
// Unknown event types are acknowledged and ignored so Stripe stops retrying.
func (s *billingService) HandleWebhook(payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.cfg.Stripe.WebhookSecret)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return fmt.Errorf("malformed checkout.session.completed payload: %w", err)
		}
		return s.applyCheckoutCompleted(&sess)

	case stripe.EventTypeCustomerSubscriptionUpdated:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("malformed subscription payload: %w", err)
		}
		plan := model.PlanFree
		if sub.Status == stripe.SubscriptionStatusActive {
			plan = model.PlanPro
		}
		return s.applyPlan(sub.Metadata["organization_id"], plan)

	case stripe.EventTypeCustomerSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("malformed subscription payload: %w", err)
		}
		return s.applyPlan(sub.Metadata["organization_id"], model.PlanFree)

	default:
		log.Debug().Str("event", string(event.Type)).Msg("Ignoring Stripe event")
		return nil
	}
}

func (s *billingService) applyCheckoutCompleted(sess *stripe.CheckoutSession) error {
	org, err := s.orgFromRef(sess.ClientReferenceID)
	if err != nil {
		return err
	}

	org.Plan = model.PlanPro
	if sess.Customer != nil {
		id := sess.Customer.ID
		org.StripeCustomerID = &id
	}
	if sess.Subscription != nil {
		id := sess.Subscription.ID
		org.StripeSubscriptionID = &id
	}
	if err := s.orgs.Update(org); err != nil {
		return err
	}
	log.Info().Uint("org_id", org.ID).Msg("Organization upgraded to pro")
	return nil
}

func (s *billingService) applyPlan(orgRef, plan string) error {
	org, err := s.orgFromRef(orgRef)
	if err != nil {
		return err
	}
	if org.Plan == plan {
		return nil
	}
	org.Plan = plan
	if plan == model.PlanFree {
		org.StripeSubscriptionID = nil
	}
	if err := s.orgs.Update(org); err != nil {
		return err
	}
	log.Info().Uint("org_id", org.ID).Str("plan", plan).Msg("Organization plan changed")
	return nil
}

func (s *billingService) orgFromRef(ref string) (*model.Organization, error) {
	if ref == "" {
		return nil, errors.New("event carries no organization reference")
	}
	id, err := strconv.ParseUint(ref, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad organization reference %q: %w", ref, err)
	}
	return s.orgs.FindByID(uint(id))
}
