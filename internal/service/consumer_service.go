package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"skillras-be/internal/catalog"
	"skillras-be/internal/dto"
	"skillras-be/internal/pkg/logger"
	"skillras-be/internal/pkg/mailer"
	"skillras-be/internal/repository/specification"
	"skillras-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	sysLogger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		uowFactory:   uowFactory,
		emailService: emailService,
		sysLogger:    sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	receipts, err := cs.pubSub.Subscribe(ctx, TopicEnrollmentCompleted)
	if err != nil {
		return err
	}
	leads, err := cs.pubSub.Subscribe(ctx, TopicLeadCaptured)
	if err != nil {
		return err
	}

	go func() {
		for msg := range receipts {
			cs.processEnrollmentCompleted(ctx, msg)
		}
	}()
	go func() {
		for msg := range leads {
			cs.processLeadCaptured(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processEnrollmentCompleted(ctx context.Context, msg *message.Message) {
	var payload dto.EnrollmentCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.sysLogger.Error("CONSUMER", "Failed to unmarshal receipt message", map[string]interface{}{
			"error": err,
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.sysLogger.Info("CONSUMER", "Sending enrollment receipt", map[string]interface{}{
		"enrollment_id": payload.EnrollmentId,
	})

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	enrollment, err := uow.EnrollmentRepository().FindOne(ctx, specification.ByID{ID: payload.EnrollmentId})
	if err != nil {
		cs.sysLogger.Error("CONSUMER", "Failed to load enrollment", map[string]interface{}{
			"enrollment_id": payload.EnrollmentId,
			"error":         err,
		})
		msg.Nack() // Nack for retriable errors
		return
	}
	if enrollment == nil {
		cs.sysLogger.Error("CONSUMER", "Enrollment not found", map[string]interface{}{
			"enrollment_id": payload.EnrollmentId,
		})
		msg.Ack()
		return
	}

	packageName := string(enrollment.PackageSelected)
	if pkg, ok := catalog.FindPackage(enrollment.PackageSelected); ok {
		packageName = pkg.Name
	}

	courseURL := fmt.Sprintf("%s/dashboard", os.Getenv("FRONTEND_URL"))
	if err := cs.emailService.SendEnrollmentReceipt(enrollment.Email, enrollment.FullName, packageName, enrollment.FinalPrice, courseURL); err != nil {
		cs.sysLogger.Error("CONSUMER", "Failed to send receipt email", map[string]interface{}{
			"enrollment_id": payload.EnrollmentId,
			"error":         err,
		})
		msg.Nack()
		return
	}

	msg.Ack()
}

func (cs *consumerService) processLeadCaptured(msg *message.Message) {
	var payload dto.LeadCapturedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.sysLogger.Error("CONSUMER", "Failed to unmarshal lead message", map[string]interface{}{
			"error": err,
		})
		msg.Ack()
		return
	}

	if payload.FileURL == "" {
		msg.Ack()
		return
	}

	if err := cs.emailService.SendLeadResource(payload.Email, payload.FullName, payload.ProductName, payload.FileURL); err != nil {
		cs.sysLogger.Error("CONSUMER", "Failed to send lead resource email", map[string]interface{}{
			"email": payload.Email,
			"error": err,
		})
		msg.Nack()
		return
	}

	msg.Ack()
}
