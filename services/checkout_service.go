package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/haresh-sai06/Art-Webpage/gateway"
	"github.com/haresh-sai06/Art-Webpage/models"
	"github.com/haresh-sai06/Art-Webpage/repository"
	"go.uber.org/zap"
)

// CreateSessionResult is returned to the client so it can redirect to the
// provider's hosted checkout page.
type CreateSessionResult struct {
	SessionID  string `json:"session_id"`
	SessionURL string `json:"session_url"`
	OrderID    string `json:"order_id"`
}

// CheckoutService orchestrates checkout sessions and order lifecycle.
type CheckoutService interface {
	CreateSession(ctx context.Context, req *models.CheckoutRequest) (*CreateSessionResult, *ServiceError)
	GetSessionStatus(ctx context.Context, sessionID string) (*gateway.SessionStatus, *ServiceError)
	CompleteOrder(ctx context.Context, orderID string) (*models.Order, *ServiceError)
	ListOrders(ctx context.Context) ([]models.Order, *ServiceError)
}

type checkoutServiceImpl struct {
	artworks   repository.ArtworkRepository
	orders     repository.OrderRepository
	gateway    gateway.CheckoutGateway
	successURL string
	cancelURL  string
	logger     *zap.Logger
}

func NewCheckoutService(
	artworks repository.ArtworkRepository,
	orders repository.OrderRepository,
	gw gateway.CheckoutGateway,
	successURL, cancelURL string,
	logger *zap.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		artworks:   artworks,
		orders:     orders,
		gateway:    gw,
		successURL: successURL,
		cancelURL:  cancelURL,
		logger:     logger,
	}
}

// CreateSession resolves every cart item against the catalog, opens a
// provider session and persists a pending order. The total and unit amounts
// are computed from catalog prices; client-supplied amounts are never read.
func (s *checkoutServiceImpl) CreateSession(ctx context.Context, req *models.CheckoutRequest) (*CreateSessionResult, *ServiceError) {
	lineItems := make([]gateway.LineItem, 0, len(req.Items))
	artworkIDs := make([]string, 0, len(req.Items))
	var totalAmount float64

	for _, item := range req.Items {
		artwork, err := s.artworks.FindByID(ctx, item.ArtworkID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				// Abort the whole request; no session, no order.
				return nil, &ServiceError{
					StatusCode: http.StatusNotFound,
					Message:    fmt.Sprintf("Artwork %s not found", item.ArtworkID),
				}
			}
			s.logger.Error("Failed to resolve cart item", zap.String("artwork_id", item.ArtworkID), zap.Error(err))
			return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create checkout session"}
		}

		lineItems = append(lineItems, gateway.LineItem{
			Name:        artwork.Title,
			Description: fmt.Sprintf("%s - %s", artwork.Medium, artwork.Size),
			ImageURL:    artwork.ImageURL,
			UnitAmount:  int64(artwork.Price * 100),
			Quantity:    int64(item.Quantity),
		})
		artworkIDs = append(artworkIDs, item.ArtworkID)
		totalAmount += artwork.Price * float64(item.Quantity)
	}

	customerEmail := req.CustomerEmail
	if customerEmail == "" {
		customerEmail = models.GuestEmail
	}

	session, err := s.gateway.CreateSession(ctx, gateway.CreateSessionParams{
		LineItems:  lineItems,
		SuccessURL: s.successURL,
		CancelURL:  s.cancelURL,
		Metadata: map[string]string{
			"customer_email": customerEmail,
			"artwork_ids":    strings.Join(artworkIDs, ","),
		},
	})
	if err != nil {
		s.logger.Error("Checkout gateway failed to create session", zap.Error(err))
		return nil, &ServiceError{
			StatusCode: http.StatusInternalServerError,
			Message:    fmt.Sprintf("Failed to create checkout session: %v", err),
		}
	}

	order := &models.Order{
		ID:               uuid.NewString(),
		Items:            req.Items,
		TotalAmount:      totalAmount,
		CustomerEmail:    customerEmail,
		Status:           models.OrderStatusPending,
		PaymentSessionID: session.ID,
	}
	if err := s.orders.Insert(ctx, order); err != nil {
		// The remote session already exists with no local record; log its
		// id so the orphan can be reconciled by hand.
		s.logger.Error("Failed to persist order after session creation",
			zap.String("session_id", session.ID),
			zap.Error(err),
		)
		return nil, &ServiceError{
			StatusCode: http.StatusInternalServerError,
			Message:    fmt.Sprintf("Failed to create checkout session: %v", err),
		}
	}

	s.logger.Info("Checkout session created",
		zap.String("session_id", session.ID),
		zap.String("order_id", order.ID),
		zap.Float64("total_amount", totalAmount),
	)

	return &CreateSessionResult{
		SessionID:  session.ID,
		SessionURL: session.URL,
		OrderID:    order.ID,
	}, nil
}

func (s *checkoutServiceImpl) GetSessionStatus(ctx context.Context, sessionID string) (*gateway.SessionStatus, *ServiceError) {
	status, err := s.gateway.GetSessionStatus(ctx, sessionID)
	if err != nil {
		s.logger.Error("Checkout gateway failed to report session status",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return nil, &ServiceError{
			StatusCode: http.StatusInternalServerError,
			Message:    fmt.Sprintf("Failed to get session status: %v", err),
		}
	}
	return status, nil
}

// CompleteOrder transitions an order to paid once the gateway confirms
// payment. This is the only place order status is mutated; a repeated call
// re-applies the same update, which is harmless.
func (s *checkoutServiceImpl) CompleteOrder(ctx context.Context, orderID string) (*models.Order, *ServiceError) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"}
		}
		s.logger.Error("Failed to fetch order", zap.String("order_id", orderID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to complete order"}
	}

	if order.PaymentSessionID != "" {
		status, err := s.gateway.GetSessionStatus(ctx, order.PaymentSessionID)
		if err != nil {
			s.logger.Error("Checkout gateway failed during order completion",
				zap.String("order_id", orderID),
				zap.String("session_id", order.PaymentSessionID),
				zap.Error(err),
			)
			return nil, &ServiceError{
				StatusCode: http.StatusInternalServerError,
				Message:    fmt.Sprintf("Failed to complete order: %v", err),
			}
		}
		if status.PaymentStatus == gateway.PaymentStatusPaid {
			if err := s.orders.UpdateStatus(ctx, orderID, models.OrderStatusPaid); err != nil {
				s.logger.Error("Failed to mark order paid", zap.String("order_id", orderID), zap.Error(err))
				return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to complete order"}
			}
			order.Status = models.OrderStatusPaid
			s.logger.Info("Order completed", zap.String("order_id", orderID))
			return order, nil
		}
	}

	return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Payment not completed"}
}

func (s *checkoutServiceImpl) ListOrders(ctx context.Context) ([]models.Order, *ServiceError) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch orders"}
	}
	return orders, nil
}
