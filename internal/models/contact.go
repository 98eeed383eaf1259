package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InquiryStatus string

const (
	InquiryStatusNew     InquiryStatus = "new"
	InquiryStatusReplied InquiryStatus = "replied"
	InquiryStatusClosed  InquiryStatus = "closed"
)

func (s InquiryStatus) IsValid() bool {
	return s == InquiryStatusNew || s == InquiryStatusReplied || s == InquiryStatusClosed
}

type ContactInquiry struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Email            string             `json:"email" bson:"email"`
	Phone            string             `json:"phone" bson:"phone"`
	Subject          string             `json:"subject" bson:"subject"`
	InquiryType      string             `json:"inquiryType" bson:"inquiryType"`
	Message          string             `json:"message" bson:"message"`
	PreferredContact string             `json:"preferredContact" bson:"preferredContact"`
	Status           InquiryStatus      `json:"status" bson:"status"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
}

type ContactCreateRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required"`
	Subject          string `json:"subject" binding:"required"`
	InquiryType      string `json:"inquiryType"`
	Message          string `json:"message" binding:"required"`
	PreferredContact string `json:"preferredContact"`
}

func NewContactInquiry(req *ContactCreateRequest) *ContactInquiry {
	inquiryType := req.InquiryType
	if inquiryType == "" {
		inquiryType = "general"
	}
	preferred := req.PreferredContact
	if preferred == "" {
		preferred = "email"
	}
	return &ContactInquiry{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Subject:          req.Subject,
		InquiryType:      inquiryType,
		Message:          req.Message,
		PreferredContact: preferred,
		Status:           InquiryStatusNew,
		CreatedAt:        time.Now().UTC(),
	}
}
