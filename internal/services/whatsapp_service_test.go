package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/pkg/whatsapp"
)

type fakeWhatsAppRepo struct {
	settings  *models.WhatsAppSettings
	messages  []*models.WhatsAppMessage
	templates map[primitive.ObjectID]*models.WhatsAppTemplate

	lastStatus     models.MessageStatus
	lastExternalID string
	lastSendError  string
}

func (f *fakeWhatsAppRepo) SaveMessage(ctx context.Context, message *models.WhatsAppMessage) error {
	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
	}
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeWhatsAppRepo) UpdateMessageStatus(ctx context.Context, id primitive.ObjectID, status models.MessageStatus, externalID, sendError string) error {
	f.lastStatus = status
	f.lastExternalID = externalID
	f.lastSendError = sendError
	return nil
}

func (f *fakeWhatsAppRepo) ListConversation(ctx context.Context, phone string) ([]*models.WhatsAppMessage, error) {
	var out []*models.WhatsAppMessage
	for _, m := range f.messages {
		if m.Phone == phone {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeWhatsAppRepo) ListThreads(ctx context.Context) ([]*models.WhatsAppMessage, error) {
	return f.messages, nil
}

func (f *fakeWhatsAppRepo) CreateTemplate(ctx context.Context, template *models.WhatsAppTemplate) error {
	if f.templates == nil {
		f.templates = make(map[primitive.ObjectID]*models.WhatsAppTemplate)
	}
	if template.ID.IsZero() {
		template.ID = primitive.NewObjectID()
	}
	f.templates[template.ID] = template
	return nil
}

func (f *fakeWhatsAppRepo) UpdateTemplate(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}

func (f *fakeWhatsAppRepo) DeleteTemplate(ctx context.Context, id primitive.ObjectID) error {
	delete(f.templates, id)
	return nil
}

func (f *fakeWhatsAppRepo) ListTemplates(ctx context.Context) ([]*models.WhatsAppTemplate, error) {
	out := make([]*models.WhatsAppTemplate, 0, len(f.templates))
	for _, t := range f.templates {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeWhatsAppRepo) GetTemplate(ctx context.Context, id primitive.ObjectID) (*models.WhatsAppTemplate, error) {
	t, ok := f.templates[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return t, nil
}

func (f *fakeWhatsAppRepo) GetSettings(ctx context.Context) (*models.WhatsAppSettings, error) {
	if f.settings == nil {
		return models.DefaultWhatsAppSettings(), nil
	}
	return f.settings, nil
}

func (f *fakeWhatsAppRepo) UpdateSettings(ctx context.Context, settings *models.WhatsAppSettings) error {
	f.settings = settings
	return nil
}

type fakeClientRepo struct {
	interfaces.ClientRepository

	commClientID primitive.ObjectID
	comms        []*models.Communication
}

func (f *fakeClientRepo) AddCommunication(ctx context.Context, id primitive.ObjectID, comm *models.Communication) error {
	f.commClientID = id
	f.comms = append(f.comms, comm)
	return nil
}

type fakeSender struct {
	err   error
	sent  []*whatsapp.SendRequest
	msgID string
}

func (f *fakeSender) Send(ctx context.Context, request *whatsapp.SendRequest) (*whatsapp.SendResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, request)
	return &whatsapp.SendResponse{MessageID: f.msgID}, nil
}

func enabledSettings() *models.WhatsAppSettings {
	settings := models.DefaultWhatsAppSettings()
	settings.Enabled = true
	return settings
}

func TestSendMessageDisabledChannel(t *testing.T) {
	repo := &fakeWhatsAppRepo{settings: models.DefaultWhatsAppSettings()}
	sender := &fakeSender{}
	svc := NewWhatsAppService(repo, &fakeClientRepo{}, sender, testLogger(t))

	if _, err := svc.SendMessage(context.Background(), "+911111111111", "hello", "admin", primitive.NilObjectID); err == nil {
		t.Fatal("expected error while the channel is disabled")
	}
	if len(sender.sent) != 0 {
		t.Error("nothing should be handed to the sender while disabled")
	}
}

func TestSendMessageLifecycle(t *testing.T) {
	repo := &fakeWhatsAppRepo{settings: enabledSettings()}
	sender := &fakeSender{msgID: "SM123"}
	clients := &fakeClientRepo{}
	svc := NewWhatsAppService(repo, clients, sender, testLogger(t))

	message, err := svc.SendMessage(context.Background(), "+911111111111", "hello", "agent1", primitive.NilObjectID)
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	if message.Status != models.MessageStatusSent {
		t.Errorf("status = %q", message.Status)
	}
	if message.ExternalID != "SM123" {
		t.Errorf("externalId = %q", message.ExternalID)
	}
	if message.Direction != models.DirectionOutbound {
		t.Errorf("direction = %q", message.Direction)
	}
	if repo.lastStatus != models.MessageStatusSent || repo.lastExternalID != "SM123" {
		t.Error("sent status was not persisted")
	}
	if len(clients.comms) != 0 {
		t.Error("no communication should be logged without a client id")
	}
}

func TestSendMessageLogsClientCommunication(t *testing.T) {
	repo := &fakeWhatsAppRepo{settings: enabledSettings()}
	clients := &fakeClientRepo{}
	svc := NewWhatsAppService(repo, clients, &fakeSender{msgID: "SM9"}, testLogger(t))

	clientID := primitive.NewObjectID()
	if _, err := svc.SendMessage(context.Background(), "+911111111111", "your itinerary is ready", "agent1", clientID); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	if len(clients.comms) != 1 {
		t.Fatalf("communications logged = %d, want 1", len(clients.comms))
	}
	comm := clients.comms[0]
	if clients.commClientID != clientID {
		t.Error("communication logged on the wrong client")
	}
	if comm.Type != "whatsapp" || comm.Direction != "outbound" {
		t.Errorf("comm type/direction = %q/%q", comm.Type, comm.Direction)
	}
	if comm.Summary != "your itinerary is ready" {
		t.Errorf("summary = %q", comm.Summary)
	}
	if comm.LoggedBy != "agent1" {
		t.Errorf("loggedBy = %q", comm.LoggedBy)
	}
}

func TestSendMessageFailure(t *testing.T) {
	repo := &fakeWhatsAppRepo{settings: enabledSettings()}
	svc := NewWhatsAppService(repo, &fakeClientRepo{}, &fakeSender{err: errors.New("twilio 401")}, testLogger(t))

	message, err := svc.SendMessage(context.Background(), "+911111111111", "hello", "admin", primitive.NilObjectID)
	if err == nil {
		t.Fatal("expected send error")
	}
	if message == nil || message.Status != models.MessageStatusFailed {
		t.Fatalf("failed message should still be returned with failed status, got %+v", message)
	}
	if repo.lastStatus != models.MessageStatusFailed || repo.lastSendError == "" {
		t.Error("failure was not persisted on the message record")
	}
}

func TestSendTemplate(t *testing.T) {
	repo := &fakeWhatsAppRepo{settings: enabledSettings()}
	sender := &fakeSender{msgID: "SM7"}
	svc := NewWhatsAppService(repo, &fakeClientRepo{}, sender, testLogger(t))

	template := &models.WhatsAppTemplate{Name: "greeting", Body: "Welcome to GMB Travels!"}
	if err := repo.CreateTemplate(context.Background(), template); err != nil {
		t.Fatalf("CreateTemplate: %v", err)
	}

	message, err := svc.SendTemplate(context.Background(), "+911111111111", template.ID, "admin", primitive.NilObjectID)
	if err != nil {
		t.Fatalf("SendTemplate: %v", err)
	}
	if message.Body != "Welcome to GMB Travels!" {
		t.Errorf("body = %q", message.Body)
	}

	if _, err := svc.SendTemplate(context.Background(), "+911111111111", primitive.NewObjectID(), "admin", primitive.NilObjectID); !errors.Is(err, interfaces.ErrNotFound) {
		t.Errorf("missing template err = %v, want ErrNotFound", err)
	}
}

func TestReceiveMessageAutoReply(t *testing.T) {
	settings := enabledSettings()
	settings.AutoReply = true
	repo := &fakeWhatsAppRepo{settings: settings}
	sender := &fakeSender{msgID: "SM1"}
	svc := NewWhatsAppService(repo, &fakeClientRepo{}, sender, testLogger(t))

	if err := svc.ReceiveMessage(context.Background(), "+922222222222", "do you have houseboat packages?"); err != nil {
		t.Fatalf("ReceiveMessage: %v", err)
	}

	if len(repo.messages) != 2 {
		t.Fatalf("messages = %d, want inbound plus auto-reply", len(repo.messages))
	}
	inbound, reply := repo.messages[0], repo.messages[1]
	if inbound.Direction != models.DirectionInbound || inbound.Status != models.MessageStatusDelivered {
		t.Errorf("inbound direction/status = %q/%q", inbound.Direction, inbound.Status)
	}
	if reply.Body != settings.GreetingReply {
		t.Errorf("reply body = %q", reply.Body)
	}
	if reply.SentBy != "auto-reply" {
		t.Errorf("reply sentBy = %q", reply.SentBy)
	}
}

func TestReceiveMessageNoAutoReply(t *testing.T) {
	repo := &fakeWhatsAppRepo{settings: enabledSettings()}
	sender := &fakeSender{}
	svc := NewWhatsAppService(repo, &fakeClientRepo{}, sender, testLogger(t))

	if err := svc.ReceiveMessage(context.Background(), "+922222222222", "hello"); err != nil {
		t.Fatalf("ReceiveMessage: %v", err)
	}
	if len(repo.messages) != 1 {
		t.Errorf("messages = %d, want only the inbound record", len(repo.messages))
	}
	if len(sender.sent) != 0 {
		t.Error("no reply should be sent when auto-reply is off")
	}
}

func TestWithinBusinessHours(t *testing.T) {
	hours := models.BusinessHours{
		Enabled:   true,
		OpenTime:  "09:00",
		CloseTime: "19:00",
		Timezone:  "UTC",
	}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before opening", time.Date(2026, 8, 29, 8, 59, 0, 0, time.UTC), false},
		{"at opening", time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC), true},
		{"midday", time.Date(2026, 8, 29, 13, 30, 0, 0, time.UTC), true},
		{"last open minute", time.Date(2026, 8, 29, 18, 59, 0, 0, time.UTC), true},
		{"at closing", time.Date(2026, 8, 29, 19, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := withinBusinessHours(hours, tt.at); got != tt.want {
				t.Errorf("withinBusinessHours(%s) = %v, want %v", tt.at.Format("15:04"), got, tt.want)
			}
		})
	}

	t.Run("unparseable times fail open", func(t *testing.T) {
		broken := hours
		broken.OpenTime = "nine"
		if !withinBusinessHours(broken, time.Date(2026, 8, 29, 3, 0, 0, 0, time.UTC)) {
			t.Error("bad time format should treat the channel as open")
		}
	})
}
