package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PopupType string

const (
	PopupTypeAnnouncement PopupType = "announcement"
	PopupTypeOffer        PopupType = "offer"
	PopupTypeSeasonal     PopupType = "seasonal"
)

func (t PopupType) IsValid() bool {
	return t == PopupTypeAnnouncement || t == PopupTypeOffer || t == PopupTypeSeasonal
}

type Popup struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title      string             `json:"title" bson:"title"`
	Message    string             `json:"message" bson:"message"`
	Type       PopupType          `json:"type" bson:"type"`
	Image      string             `json:"image" bson:"image"`
	ButtonText string             `json:"buttonText" bson:"buttonText"`
	ButtonLink string             `json:"buttonLink" bson:"buttonLink"`
	Active     bool               `json:"active" bson:"active"`

	// ShowOnPages lists the site pages the popup appears on.
	ShowOnPages []string `json:"showOnPages" bson:"showOnPages"`

	// DisplayDuration is how long the popup stays open, in milliseconds.
	// CookieExpiry is the number of hours before a dismissed popup is
	// shown to the same visitor again.
	DisplayDuration int `json:"displayDuration" bson:"displayDuration"`
	CookieExpiry    int `json:"cookieExpiry" bson:"cookieExpiry"`

	StartDate *time.Time `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty" bson:"endDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
}

type PopupCreateRequest struct {
	Title           string     `json:"title" binding:"required"`
	Message         string     `json:"message" binding:"required"`
	Type            PopupType  `json:"type"`
	Image           string     `json:"image"`
	ButtonText      string     `json:"buttonText"`
	ButtonLink      string     `json:"buttonLink"`
	Active          bool       `json:"active"`
	ShowOnPages     []string   `json:"showOnPages"`
	DisplayDuration int        `json:"displayDuration"`
	CookieExpiry    int        `json:"cookieExpiry"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
}

type PopupUpdateRequest struct {
	Title           *string    `json:"title"`
	Message         *string    `json:"message"`
	Type            *PopupType `json:"type"`
	Image           *string    `json:"image"`
	ButtonText      *string    `json:"buttonText"`
	ButtonLink      *string    `json:"buttonLink"`
	Active          *bool      `json:"active"`
	ShowOnPages     []string   `json:"showOnPages"`
	DisplayDuration *int       `json:"displayDuration"`
	CookieExpiry    *int       `json:"cookieExpiry"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
}

func (r *PopupUpdateRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Message != nil {
		updates["message"] = *r.Message
	}
	if r.Type != nil {
		updates["type"] = *r.Type
	}
	if r.Image != nil {
		updates["image"] = *r.Image
	}
	if r.ButtonText != nil {
		updates["buttonText"] = *r.ButtonText
	}
	if r.ButtonLink != nil {
		updates["buttonLink"] = *r.ButtonLink
	}
	if r.Active != nil {
		updates["active"] = *r.Active
	}
	if r.ShowOnPages != nil {
		updates["showOnPages"] = r.ShowOnPages
	}
	if r.DisplayDuration != nil {
		updates["displayDuration"] = *r.DisplayDuration
	}
	if r.CookieExpiry != nil {
		updates["cookieExpiry"] = *r.CookieExpiry
	}
	if r.StartDate != nil {
		updates["startDate"] = *r.StartDate
	}
	if r.EndDate != nil {
		updates["endDate"] = *r.EndDate
	}
	if len(updates) > 0 {
		updates["updatedAt"] = time.Now().UTC()
	}
	return updates
}

func NewPopup(req *PopupCreateRequest) *Popup {
	popupType := req.Type
	if !popupType.IsValid() {
		popupType = PopupTypeAnnouncement
	}
	pages := req.ShowOnPages
	if len(pages) == 0 {
		pages = []string{"home"}
	}
	displayDuration := req.DisplayDuration
	if displayDuration <= 0 {
		displayDuration = 5000
	}
	cookieExpiry := req.CookieExpiry
	if cookieExpiry <= 0 {
		cookieExpiry = 24
	}
	now := time.Now().UTC()
	return &Popup{
		Title:           req.Title,
		Message:         req.Message,
		Type:            popupType,
		Image:           req.Image,
		ButtonText:      req.ButtonText,
		ButtonLink:      req.ButtonLink,
		Active:          req.Active,
		ShowOnPages:     pages,
		DisplayDuration: displayDuration,
		CookieExpiry:    cookieExpiry,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// VisibleAt reports whether the popup should be shown at t. Date windows
// are optional on either side.
func (p *Popup) VisibleAt(t time.Time) bool {
	if !p.Active {
		return false
	}
	if p.StartDate != nil && t.Before(*p.StartDate) {
		return false
	}
	if p.EndDate != nil && t.After(*p.EndDate) {
		return false
	}
	return true
}
