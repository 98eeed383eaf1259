package models

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MessageDirection string

const (
	DirectionInbound  MessageDirection = "inbound"
	DirectionOutbound MessageDirection = "outbound"
)

type MessageStatus string

const (
	MessageStatusQueued    MessageStatus = "queued"
	MessageStatusSent      MessageStatus = "sent"
	MessageStatusDelivered MessageStatus = "delivered"
	MessageStatusFailed    MessageStatus = "failed"
)

// WhatsAppMessage is one message on a conversation thread, keyed by the
// counterparty phone number.
type WhatsAppMessage struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Phone      string             `json:"phone" bson:"phone"`
	Body       string             `json:"body" bson:"body"`
	Direction  MessageDirection   `json:"direction" bson:"direction"`
	Status     MessageStatus      `json:"status" bson:"status"`
	ExternalID string             `json:"externalId,omitempty" bson:"externalId,omitempty"`
	SentBy     string             `json:"sentBy,omitempty" bson:"sentBy,omitempty"`
	Error      string             `json:"error,omitempty" bson:"error,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

type WhatsAppSendRequest struct {
	Phone string `json:"phone" binding:"required"`
	Body  string `json:"body" binding:"required"`

	// ClientID links the message to a CRM client so the send is also
	// logged on the client's communication history.
	ClientID string `json:"clientId"`
}

// WhatsAppTemplate is a canned reply the back office can send by name.
type WhatsAppTemplate struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Body      string             `json:"body" bson:"body"`
	Category  string             `json:"category" bson:"category"`
	Variables []string           `json:"variables" bson:"variables"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type WhatsAppTemplateRequest struct {
	Name      string   `json:"name" binding:"required"`
	Body      string   `json:"body" binding:"required"`
	Category  string   `json:"category"`
	Variables []string `json:"variables"`
	IsActive  *bool    `json:"isActive"`
}

// TemplateVariables lists the {{placeholder}} names found in a template
// body, in order of first appearance.
func TemplateVariables(body string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, match := range templateVarRe.FindAllStringSubmatch(body, -1) {
		name := match[1]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

var templateVarRe = regexp.MustCompile(`\{\{\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*\}\}`)

type BusinessHours struct {
	Enabled   bool   `json:"enabled" bson:"enabled"`
	OpenTime  string `json:"openTime" bson:"openTime"`
	CloseTime string `json:"closeTime" bson:"closeTime"`
	Timezone  string `json:"timezone" bson:"timezone"`
	AwayReply string `json:"awayReply" bson:"awayReply"`
}

// WhatsAppSettings is a singleton document for the messaging channel.
type WhatsAppSettings struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Enabled       bool               `json:"enabled" bson:"enabled"`
	AutoReply     bool               `json:"autoReply" bson:"autoReply"`
	GreetingReply string             `json:"greetingReply" bson:"greetingReply"`
	BusinessHours BusinessHours      `json:"businessHours" bson:"businessHours"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func DefaultWhatsAppSettings() *WhatsAppSettings {
	return &WhatsAppSettings{
		Enabled:       false,
		AutoReply:     false,
		GreetingReply: "Thanks for reaching out to GMB Travels Kashmir. We will get back to you shortly.",
		BusinessHours: BusinessHours{
			Enabled:   false,
			OpenTime:  "09:00",
			CloseTime: "19:00",
			Timezone:  "Asia/Kolkata",
			AwayReply: "We are currently closed. We will reply during business hours.",
		},
		UpdatedAt: time.Now().UTC(),
	}
}
