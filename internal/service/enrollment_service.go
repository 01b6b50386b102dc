package service

import (
	"context"
	"crypto/sha512"
	"errors"
	"fmt"
	"os"
	"time"

	"skillras-be/internal/catalog"
	"skillras-be/internal/dto"
	"skillras-be/internal/entity"
	"skillras-be/internal/pkg/logger"
	"skillras-be/internal/repository/specification"
	"skillras-be/internal/repository/unitofwork"
	"skillras-be/pkg/events"
	pkgNats "skillras-be/pkg/nats"
	"skillras-be/pkg/pricing"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type IEnrollmentService interface {
	Create(ctx context.Context, req *dto.CreateEnrollmentRequest) (*dto.CreateEnrollmentResponse, error)
	HandleWebhook(ctx context.Context, req *dto.PaymentWebhookRequest) error
	ListByEmail(ctx context.Context, email string) ([]dto.EnrollmentDTO, error)
}

type enrollmentService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pkgNats.Publisher
	queuePublisher IQueuePublisher
	sysLogger      logger.ILogger
}

func NewEnrollmentService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pkgNats.Publisher,
	queuePublisher IQueuePublisher,
	sysLogger logger.ILogger,
) IEnrollmentService {
	return &enrollmentService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		queuePublisher: queuePublisher,
		sysLogger:      sysLogger,
	}
}

func (s *enrollmentService) Create(ctx context.Context, req *dto.CreateEnrollmentRequest) (*dto.CreateEnrollmentResponse, error) {
	pkg, ok := catalog.FindPackage(catalog.PackageID(req.Package))
	if !ok {
		return nil, errors.New("unknown package")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// The referral is only verified here. Usage is consumed when the payment
	// actually settles, inside the webhook transaction.
	var referral *entity.ReferralCode
	if req.ReferralCode != "" {
		var err error
		referral, err = resolveCode(ctx, uow, req.ReferralCode)
		if err != nil {
			if errors.Is(err, entity.ErrCodeNotFound) ||
				errors.Is(err, entity.ErrCodeInactive) ||
				errors.Is(err, entity.ErrCodeExpired) ||
				errors.Is(err, entity.ErrCodeExhausted) {
				return nil, fmt.Errorf("referral code rejected: %w", err)
			}
			return nil, err
		}
	}

	quote := pricing.Calculate(pkg, referral)
	paymentLink := pricing.PaymentLink(pkg, referral)

	enrollmentId := uuid.New()
	orderId := enrollmentId.String()

	// Without a pre-provisioned checkout link, fall back to a gateway-hosted
	// Snap page for this exact order.
	if paymentLink == "" {
		snapLink, err := createSnapLink(orderId, quote.FinalPrice, req)
		if err != nil {
			return nil, err
		}
		paymentLink = snapLink
	}

	var referralCode *string
	if referral != nil {
		referralCode = &referral.Code
	}

	// Attach the buyer's account when one already exists for this email.
	var userId *uuid.UUID
	if user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email}); err == nil && user != nil {
		userId = &user.Id
	}

	enrollment := &entity.Enrollment{
		Id:                 enrollmentId,
		UserId:             userId,
		Email:              req.Email,
		FullName:           req.FullName,
		Phone:              req.Phone,
		PackageSelected:    pkg.Id,
		PaymentStatus:      entity.PaymentStatusPending,
		ReferralCode:       referralCode,
		DiscountPercentage: quote.DiscountPercentage,
		DiscountAmount:     quote.DiscountAmount,
		FinalPrice:         quote.FinalPrice,
		PaymentLink:        paymentLink,
		GatewayOrderId:     &orderId,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	if err := uow.EnrollmentRepository().Create(ctx, enrollment); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeEnrollmentCreated,
			Data: map[string]interface{}{
				"enrollment_id": enrollment.Id,
				"package":       string(pkg.Id),
				"final_price":   quote.FinalPrice,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.sysLogger.Warn("ENROLLMENT", "Failed to publish enrollment.created event", map[string]interface{}{
				"enrollment_id": enrollment.Id,
				"error":         err,
			})
		}
	}

	return &dto.CreateEnrollmentResponse{
		Id:                 enrollment.Id,
		Package:            string(pkg.Id),
		OriginalPrice:      quote.Price,
		DiscountPercentage: quote.DiscountPercentage,
		DiscountAmount:     quote.DiscountAmount,
		FinalPrice:         quote.FinalPrice,
		PaymentLink:        paymentLink,
		PaymentStatus:      string(enrollment.PaymentStatus),
	}, nil
}

func createSnapLink(orderId string, amount int64, req *dto.CreateEnrollmentRequest) (string, error) {
	var sClient snap.Client
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_ENV") == "production" {
		env = midtrans.Production
	}
	sClient.New(serverKey, env)

	frontendURL := os.Getenv("FRONTEND_URL")
	finishRedirectURL := fmt.Sprintf("%s/dashboard?payment=success", frontendURL)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: amount,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: finishRedirectURL,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.FullName,
			Email: req.Email,
			Phone: req.Phone,
		},
	}

	resp, snapErr := sClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return "", fmt.Errorf("failed to create payment transaction: %v", snapErr)
	}
	return resp.RedirectURL, nil
}

// gatewaySignature computes the Midtrans notification signature:
// SHA512(order_id + status_code + gross_amount + server_key).
func gatewaySignature(orderId, statusCode, grossAmount, serverKey string) string {
	return fmt.Sprintf("%x", sha512.Sum512([]byte(orderId+statusCode+grossAmount+serverKey)))
}

// mapTransactionStatus translates a gateway transaction status into the local
// payment status. Statuses that require no state change (pending, challenged
// captures, anything unknown) report actionable=false.
func mapTransactionStatus(transactionStatus, fraudStatus string) (toStatus entity.PaymentStatus, actionable bool) {
	switch transactionStatus {
	case "capture", "settlement":
		if transactionStatus == "capture" && fraudStatus == "challenge" {
			return "", false
		}
		return entity.PaymentStatusCompleted, true
	case "deny", "cancel", "expire":
		return entity.PaymentStatusFailed, true
	default:
		return "", false
	}
}

func (s *enrollmentService) HandleWebhook(ctx context.Context, req *dto.PaymentWebhookRequest) error {
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		s.sysLogger.Error("WEBHOOK", "MIDTRANS_SERVER_KEY not configured", nil)
		return fmt.Errorf("server configuration error")
	}

	if req.SignatureKey != gatewaySignature(req.OrderID, req.StatusCode, req.GrossAmount, serverKey) {
		s.sysLogger.Error("WEBHOOK", "Signature mismatch", map[string]interface{}{
			"order_id": req.OrderID,
		})
		return fmt.Errorf("invalid signature")
	}

	enrollmentId, err := uuid.Parse(req.OrderID)
	if err != nil {
		s.sysLogger.Error("WEBHOOK", "Invalid order_id format", map[string]interface{}{
			"order_id": req.OrderID,
		})
		return fmt.Errorf("invalid order id format")
	}

	toStatus, actionable := mapTransactionStatus(req.TransactionStatus, req.FraudStatus)
	if !actionable {
		s.sysLogger.Info("WEBHOOK", "Notification requires no state change", map[string]interface{}{
			"order_id":           req.OrderID,
			"transaction_status": req.TransactionStatus,
			"fraud_status":       req.FraudStatus,
		})
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	enrollment, err := uow.EnrollmentRepository().FindOne(ctx, specification.ByID{ID: enrollmentId})
	if err != nil {
		return err
	}
	if enrollment == nil {
		return fmt.Errorf("enrollment not found")
	}

	// Guarded transition from pending: a replayed or late notification for a
	// settled row changes nothing.
	updated, err := uow.EnrollmentRepository().UpdatePaymentStatus(ctx, enrollmentId,
		string(entity.PaymentStatusPending), string(toStatus))
	if err != nil {
		return err
	}
	if !updated {
		s.sysLogger.Info("WEBHOOK", "Enrollment already settled, skipping", map[string]interface{}{
			"enrollment_id": enrollmentId,
		})
		return nil
	}

	// Consume the referral slot in the same transaction that completes the
	// payment. The conditional update makes redemption at-most-once even
	// under concurrent webhooks.
	if toStatus == entity.PaymentStatusCompleted && enrollment.ReferralCode != nil {
		consumed, err := uow.ReferralRepository().ConsumeUsage(ctx, *enrollment.ReferralCode)
		if err != nil {
			return err
		}
		if !consumed {
			s.sysLogger.Warn("WEBHOOK", "Referral code exhausted before settlement", map[string]interface{}{
				"code":          *enrollment.ReferralCode,
				"enrollment_id": enrollmentId,
			})
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	if toStatus == entity.PaymentStatusCompleted {
		if s.queuePublisher != nil {
			msg := dto.EnrollmentCompletedMessage{EnrollmentId: enrollmentId}
			if err := s.queuePublisher.Publish(TopicEnrollmentCompleted, msg); err != nil {
				s.sysLogger.Warn("WEBHOOK", "Failed to queue receipt email", map[string]interface{}{
					"enrollment_id": enrollmentId,
					"error":         err,
				})
			}
		}

		if s.eventPublisher != nil {
			event := events.BaseEvent{
				Type: events.TypeEnrollmentCompleted,
				Data: map[string]interface{}{
					"enrollment_id": enrollmentId,
					"package":       string(enrollment.PackageSelected),
					"final_price":   enrollment.FinalPrice,
				},
				OccurredAt: time.Now(),
			}
			if err := s.eventPublisher.Publish(ctx, event); err != nil {
				s.sysLogger.Warn("WEBHOOK", "Failed to publish enrollment.completed event", map[string]interface{}{
					"enrollment_id": enrollmentId,
					"error":         err,
				})
			}
		}
	}

	return nil
}

func (s *enrollmentService) ListByEmail(ctx context.Context, email string) ([]dto.EnrollmentDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	enrollments, err := uow.EnrollmentRepository().FindAll(ctx,
		specification.ByEmail{Email: email},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.EnrollmentDTO, 0, len(enrollments))
	for _, e := range enrollments {
		out = append(out, dto.EnrollmentDTO{
			Id:                 e.Id,
			Email:              e.Email,
			FullName:           e.FullName,
			Package:            string(e.PackageSelected),
			PaymentStatus:      string(e.PaymentStatus),
			ReferralCode:       e.ReferralCode,
			DiscountPercentage: e.DiscountPercentage,
			DiscountAmount:     e.DiscountAmount,
			FinalPrice:         e.FinalPrice,
			CreatedAt:          e.CreatedAt,
		})
	}
	return out, nil
}
