package gateway

import (
	"context"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
)

// StripeGateway implements CheckoutGateway over Stripe Checkout Sessions.
type StripeGateway struct {
	apiKey   string
	currency string
}

func NewStripeGateway(apiKey string) *StripeGateway {
	stripe.Key = apiKey
	return &StripeGateway{apiKey: apiKey, currency: string(stripe.CurrencyUSD)}
}

func (g *StripeGateway) CreateSession(ctx context.Context, params CreateSessionParams) (*Session, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(params.LineItems))
	for _, item := range params.LineItems {
		priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:   stripe.String(g.currency),
			UnitAmount: stripe.Int64(item.UnitAmount),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name:        stripe.String(item.Name),
				Description: stripe.String(item.Description),
			},
		}
		if item.ImageURL != "" {
			priceData.ProductData.Images = []*string{stripe.String(item.ImageURL)}
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: priceData,
			Quantity:  stripe.Int64(item.Quantity),
		})
	}

	sessionParams := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
	}
	sessionParams.Context = ctx
	for key, value := range params.Metadata {
		sessionParams.AddMetadata(key, value)
	}

	s, err := session.New(sessionParams)
	if err != nil {
		return nil, err
	}
	return &Session{ID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) GetSessionStatus(ctx context.Context, sessionID string) (*SessionStatus, error) {
	getParams := &stripe.CheckoutSessionParams{}
	getParams.Context = ctx

	s, err := session.Get(sessionID, getParams)
	if err != nil {
		return nil, err
	}
	return &SessionStatus{
		ID:            s.ID,
		Status:        string(s.Status),
		PaymentStatus: string(s.PaymentStatus),
	}, nil
}
