package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/pkg/logger"
	"gmbtravels/pkg/whatsapp"
)

// WhatsAppService sends outbound messages, records every message on
// its conversation thread, and handles inbound webhook traffic with
// optional auto-replies.
type WhatsAppService interface {
	// SendMessage dispatches an outbound message. A non-nil clientID
	// also logs the send on the client's communication history.
	SendMessage(ctx context.Context, phone, body, sentBy string, clientID primitive.ObjectID) (*models.WhatsAppMessage, error)
	SendTemplate(ctx context.Context, phone string, templateID primitive.ObjectID, sentBy string, clientID primitive.ObjectID) (*models.WhatsAppMessage, error)
	ReceiveMessage(ctx context.Context, phone, body string) error
	ListThreads(ctx context.Context) ([]*models.WhatsAppMessage, error)
	ListConversation(ctx context.Context, phone string) ([]*models.WhatsAppMessage, error)
}

type whatsAppService struct {
	repo       interfaces.WhatsAppRepository
	clientRepo interfaces.ClientRepository
	sender     whatsapp.Sender
	logger     *logger.Logger
}

func NewWhatsAppService(repo interfaces.WhatsAppRepository, clientRepo interfaces.ClientRepository, sender whatsapp.Sender, log *logger.Logger) WhatsAppService {
	return &whatsAppService{
		repo:       repo,
		clientRepo: clientRepo,
		sender:     sender,
		logger:     log,
	}
}

func (s *whatsAppService) SendMessage(ctx context.Context, phone, body, sentBy string, clientID primitive.ObjectID) (*models.WhatsAppMessage, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.Enabled {
		return nil, fmt.Errorf("whatsapp channel is disabled")
	}

	message := &models.WhatsAppMessage{
		Phone:     phone,
		Body:      body,
		Direction: models.DirectionOutbound,
		Status:    models.MessageStatusQueued,
		SentBy:    sentBy,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.SaveMessage(ctx, message); err != nil {
		return nil, err
	}

	resp, sendErr := s.sender.Send(ctx, &whatsapp.SendRequest{To: phone, Body: body})
	if sendErr != nil {
		message.Status = models.MessageStatusFailed
		message.Error = sendErr.Error()
		if err := s.repo.UpdateMessageStatus(ctx, message.ID, models.MessageStatusFailed, "", sendErr.Error()); err != nil {
			s.logger.WithError(err).Error("failed to record message failure")
		}
		return message, fmt.Errorf("failed to send whatsapp message: %w", sendErr)
	}

	message.Status = models.MessageStatusSent
	message.ExternalID = resp.MessageID
	if err := s.repo.UpdateMessageStatus(ctx, message.ID, models.MessageStatusSent, resp.MessageID, ""); err != nil {
		s.logger.WithError(err).Error("failed to record message status")
	}

	if !clientID.IsZero() {
		comm := &models.Communication{
			Type:      "whatsapp",
			Direction: "outbound",
			Summary:   body,
			LoggedBy:  sentBy,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.clientRepo.AddCommunication(ctx, clientID, comm); err != nil {
			s.logger.WithError(err).WithField("client_id", clientID.Hex()).Warn("failed to log client communication")
		}
	}

	return message, nil
}

func (s *whatsAppService) SendTemplate(ctx context.Context, phone string, templateID primitive.ObjectID, sentBy string, clientID primitive.ObjectID) (*models.WhatsAppMessage, error) {
	template, err := s.repo.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	return s.SendMessage(ctx, phone, template.Body, sentBy, clientID)
}

// ReceiveMessage records an inbound webhook message and fires the
// configured auto-reply. Outside business hours the away reply wins.
func (s *whatsAppService) ReceiveMessage(ctx context.Context, phone, body string) error {
	message := &models.WhatsAppMessage{
		Phone:     phone,
		Body:      body,
		Direction: models.DirectionInbound,
		Status:    models.MessageStatusDelivered,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.SaveMessage(ctx, message); err != nil {
		return err
	}

	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return err
	}
	if !settings.Enabled || !settings.AutoReply {
		return nil
	}

	reply := settings.GreetingReply
	if settings.BusinessHours.Enabled && !withinBusinessHours(settings.BusinessHours, time.Now()) {
		reply = settings.BusinessHours.AwayReply
	}
	if reply == "" {
		return nil
	}

	if _, err := s.SendMessage(ctx, phone, reply, "auto-reply", primitive.NilObjectID); err != nil {
		s.logger.WithError(err).WithField("phone", phone).Warn("auto-reply failed")
	}
	return nil
}

func (s *whatsAppService) ListThreads(ctx context.Context) ([]*models.WhatsAppMessage, error) {
	return s.repo.ListThreads(ctx)
}

func (s *whatsAppService) ListConversation(ctx context.Context, phone string) ([]*models.WhatsAppMessage, error) {
	return s.repo.ListConversation(ctx, phone)
}

func withinBusinessHours(hours models.BusinessHours, now time.Time) bool {
	loc, err := time.LoadLocation(hours.Timezone)
	if err != nil {
		loc = time.UTC
	}
	local := now.In(loc)

	open, err1 := time.Parse("15:04", hours.OpenTime)
	close, err2 := time.Parse("15:04", hours.CloseTime)
	if err1 != nil || err2 != nil {
		return true
	}

	minutes := local.Hour()*60 + local.Minute()
	openMin := open.Hour()*60 + open.Minute()
	closeMin := close.Hour()*60 + close.Minute()
	return minutes >= openMin && minutes < closeMin
}
