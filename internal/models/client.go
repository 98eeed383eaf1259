package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClientStatus string

const (
	ClientStatusLead       ClientStatus = "lead"
	ClientStatusInterested ClientStatus = "interested"
	ClientStatusConfirmed  ClientStatus = "confirmed"
	ClientStatusCompleted  ClientStatus = "completed"
	ClientStatusCancelled  ClientStatus = "cancelled"
)

func (s ClientStatus) IsValid() bool {
	switch s {
	case ClientStatusLead, ClientStatusInterested, ClientStatusConfirmed,
		ClientStatusCompleted, ClientStatusCancelled:
		return true
	}
	return false
}

type FollowUpStatus string

const (
	FollowUpStatusPending   FollowUpStatus = "pending"
	FollowUpStatusCompleted FollowUpStatus = "completed"
)

// Communication is one logged touchpoint with a client, embedded in the
// client document.
type Communication struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Type      string             `json:"type" bson:"type"`
	Direction string             `json:"direction" bson:"direction"`
	Summary   string             `json:"summary" bson:"summary"`
	Notes     string             `json:"notes" bson:"notes"`
	LoggedBy  string             `json:"loggedBy" bson:"loggedBy"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type FollowUp struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DueDate     time.Time          `json:"dueDate" bson:"dueDate"`
	Description string             `json:"description" bson:"description"`
	Status      FollowUpStatus     `json:"status" bson:"status"`
	AssignedTo  string             `json:"assignedTo" bson:"assignedTo"`
	CreatedBy   string             `json:"createdBy" bson:"createdBy"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	CompletedAt *time.Time         `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

type ClientReview struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Rating    int                `json:"rating" bson:"rating"`
	Text      string             `json:"text" bson:"text"`
	Trip      string             `json:"trip" bson:"trip"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type Client struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Email            string             `json:"email" bson:"email"`
	Phone            string             `json:"phone" bson:"phone"`
	WhatsApp         string             `json:"whatsapp" bson:"whatsapp"`
	Source           string             `json:"source" bson:"source"`
	Status           ClientStatus       `json:"status" bson:"status"`
	PreferredContact string             `json:"preferredContact" bson:"preferredContact"`
	AssignedTo       string             `json:"assignedTo" bson:"assignedTo"`
	Notes            string             `json:"notes" bson:"notes"`
	Tags             []string           `json:"tags" bson:"tags"`
	Communications   []Communication    `json:"communications" bson:"communications"`
	FollowUps        []FollowUp         `json:"followUps" bson:"followUps"`
	Reviews          []ClientReview     `json:"reviews" bson:"reviews"`
	TotalSpent       float64            `json:"totalSpent" bson:"totalSpent"`
	Bookings         int                `json:"bookings" bson:"bookings"`
	LastContact      *time.Time         `json:"lastContact,omitempty" bson:"lastContact,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type ClientCreateRequest struct {
	Name             string   `json:"name" binding:"required"`
	Email            string   `json:"email" binding:"omitempty,email"`
	Phone            string   `json:"phone"`
	WhatsApp         string   `json:"whatsapp"`
	Source           string   `json:"source"`
	Status           string   `json:"status"`
	PreferredContact string   `json:"preferredContact"`
	AssignedTo       string   `json:"assignedTo"`
	Notes            string   `json:"notes"`
	Tags             []string `json:"tags"`
}

type ClientUpdateRequest struct {
	Name             *string   `json:"name"`
	Email            *string   `json:"email"`
	Phone            *string   `json:"phone"`
	WhatsApp         *string   `json:"whatsapp"`
	Source           *string   `json:"source"`
	Status           *string   `json:"status"`
	PreferredContact *string   `json:"preferredContact"`
	AssignedTo       *string   `json:"assignedTo"`
	Notes            *string   `json:"notes"`
	Tags             *[]string `json:"tags"`
	TotalSpent       *float64  `json:"totalSpent"`
	Bookings         *int      `json:"bookings"`
}

func (r *ClientUpdateRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Email != nil {
		updates["email"] = *r.Email
	}
	if r.Phone != nil {
		updates["phone"] = *r.Phone
	}
	if r.WhatsApp != nil {
		updates["whatsapp"] = *r.WhatsApp
	}
	if r.Source != nil {
		updates["source"] = *r.Source
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.PreferredContact != nil {
		updates["preferredContact"] = *r.PreferredContact
	}
	if r.AssignedTo != nil {
		updates["assignedTo"] = *r.AssignedTo
	}
	if r.Notes != nil {
		updates["notes"] = *r.Notes
	}
	if r.Tags != nil {
		updates["tags"] = *r.Tags
	}
	if r.TotalSpent != nil {
		updates["totalSpent"] = *r.TotalSpent
	}
	if r.Bookings != nil {
		updates["bookings"] = *r.Bookings
	}
	if len(updates) > 0 {
		updates["updatedAt"] = time.Now().UTC()
	}
	return updates
}

type CommunicationCreateRequest struct {
	Type      string `json:"type" binding:"required"`
	Direction string `json:"direction"`
	Summary   string `json:"summary" binding:"required"`
	Notes     string `json:"notes"`
}

type FollowUpCreateRequest struct {
	DueDate     time.Time `json:"dueDate" binding:"required"`
	Description string    `json:"description" binding:"required"`
	AssignedTo  string    `json:"assignedTo"`
}

type ClientReviewCreateRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Text   string `json:"text" binding:"required"`
	Trip   string `json:"trip"`
}

func NewClient(req *ClientCreateRequest) *Client {
	status := ClientStatus(req.Status)
	if !status.IsValid() {
		status = ClientStatusLead
	}
	source := req.Source
	if source == "" {
		source = "manual"
	}
	preferredContact := req.PreferredContact
	if preferredContact == "" {
		preferredContact = "phone"
	}
	now := time.Now().UTC()
	return &Client{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		WhatsApp:         req.WhatsApp,
		Source:           source,
		Status:           status,
		PreferredContact: preferredContact,
		AssignedTo:       req.AssignedTo,
		Notes:            req.Notes,
		Tags:             req.Tags,
		Communications:   []Communication{},
		FollowUps:        []FollowUp{},
		Reviews:          []ClientReview{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
