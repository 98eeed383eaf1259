package whatsapp

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

// Sender delivers WhatsApp messages. The Twilio implementation is the
// production one; tests swap in a fake.
type Sender interface {
	Send(ctx context.Context, request *SendRequest) (*SendResponse, error)
}

type SendRequest struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

type SendResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

type TwilioSender struct {
	client     *twilio.RestClient
	fromNumber string
}

func NewTwilioSender(accountSID, authToken, fromNumber string) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioSender{
		client:     client,
		fromNumber: fromNumber,
	}
}

func (t *TwilioSender) Send(ctx context.Context, request *SendRequest) (*SendResponse, error) {
	params := &api.CreateMessageParams{}
	params.SetTo(whatsAppAddress(request.To))
	params.SetFrom(whatsAppAddress(t.fromNumber))
	params.SetBody(request.Body)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return &SendResponse{
			Status: "failed",
			Error:  err.Error(),
		}, fmt.Errorf("failed to send WhatsApp message: %w", err)
	}

	out := &SendResponse{}
	if resp.Sid != nil {
		out.MessageID = *resp.Sid
	}
	if resp.Status != nil {
		out.Status = string(*resp.Status)
	}
	return out, nil
}

// whatsAppAddress ensures the Twilio channel prefix is present exactly
// once.
func whatsAppAddress(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}
