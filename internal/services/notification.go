package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"print3d-backend/internal/dto"
	"print3d-backend/pkg/mailer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationResult — то, что уходит клиенту в любом случае: номер заказа
// формируется всегда, а провал доставки превращается в мягкое примечание.
type NotificationResult struct {
	OrderNumber string
	Message     string
}

type NotificationServiceInterface interface {
	SendOrderNotification(ctx context.Context, submission dto.OrderSubmissionDTO) NotificationResult
}

type NotificationService struct {
	mailer         mailer.MailerInterface
	orderRecipient string
	logger         *zap.Logger
}

func NewNotificationService(m mailer.MailerInterface, orderRecipient string, logger *zap.Logger) NotificationServiceInterface {
	return &NotificationService{
		mailer:         m,
		orderRecipient: orderRecipient,
		logger:         logger,
	}
}

// orderNumber строит человекочитаемый номер вида 3DP-20250131-A1B2C3D4.
// Это метка для переписки, а не ключ в базе.
func orderNumber() string {
	requestID := uuid.NewString()
	return fmt.Sprintf("3DP-%s-%s", time.Now().Format("20060102"), strings.ToUpper(requestID[:8]))
}

func (s *NotificationService) SendOrderNotification(ctx context.Context, submission dto.OrderSubmissionDTO) NotificationResult {
	number := orderNumber()

	if !s.mailer.Configured() {
		s.logger.Info("Уведомление о заказе не отправлено: SMTP не настроен", zap.String("order_number", number))
		return NotificationResult{OrderNumber: number, Message: "Demo mode: SMTP not configured"}
	}

	messages := []mailer.Message{s.operatorMessage(number, submission)}
	if submission.Email != "" {
		messages = append(messages, s.customerMessage(number, submission))
	}

	if err := s.mailer.Send(ctx, messages...); err != nil {
		s.logger.Warn("Доставка уведомления о заказе не удалась",
			zap.String("order_number", number),
			zap.Error(err),
		)
		return NotificationResult{OrderNumber: number, Message: fmt.Sprintf("Demo mode: %v", err)}
	}

	return NotificationResult{OrderNumber: number}
}

func (s *NotificationService) operatorMessage(number string, submission dto.OrderSubmissionDTO) mailer.Message {
	msg := mailer.Message{
		To:      s.orderRecipient,
		Subject: fmt.Sprintf("Новый заказ на 3D печать №%s", number),
		HTML:    renderOperatorEmail(number, submission),
	}

	if submission.FileName != "" && submission.FileBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(submission.FileBase64)
		if err != nil {
			// Битое вложение не повод терять заявку: письмо уходит без файла.
			s.logger.Warn("Не удалось декодировать вложение заявки",
				zap.String("order_number", number),
				zap.String("file_name", submission.FileName),
				zap.Error(err),
			)
		} else {
			msg.Attachment = &mailer.Attachment{Name: submission.FileName, Data: data}
		}
	}

	return msg
}

func (s *NotificationService) customerMessage(number string, submission dto.OrderSubmissionDTO) mailer.Message {
	return mailer.Message{
		To:      submission.Email,
		Subject: fmt.Sprintf("Ваш заказ №%s принят", number),
		HTML:    renderCustomerEmail(number),
	}
}
