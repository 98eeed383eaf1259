package models

import (
	"reflect"
	"testing"
	"time"
)

func TestNewPopupDefaults(t *testing.T) {
	popup := NewPopup(&PopupCreateRequest{
		Title:   "Winter Offer",
		Message: "Flat 20% off on Gulmarg packages",
		Active:  true,
	})

	if popup.Type != PopupTypeAnnouncement {
		t.Errorf("Type = %q, want %q", popup.Type, PopupTypeAnnouncement)
	}
	if !reflect.DeepEqual(popup.ShowOnPages, []string{"home"}) {
		t.Errorf("ShowOnPages = %v, want [home]", popup.ShowOnPages)
	}
	if popup.DisplayDuration != 5000 {
		t.Errorf("DisplayDuration = %d, want 5000", popup.DisplayDuration)
	}
	if popup.CookieExpiry != 24 {
		t.Errorf("CookieExpiry = %d, want 24", popup.CookieExpiry)
	}
}

func TestNewPopupTargeting(t *testing.T) {
	popup := NewPopup(&PopupCreateRequest{
		Title:           "Houseboat Deal",
		Message:         "Book a Dal Lake houseboat stay",
		Type:            PopupTypeOffer,
		ShowOnPages:     []string{"home", "packages"},
		DisplayDuration: 8000,
		CookieExpiry:    48,
	})

	if !reflect.DeepEqual(popup.ShowOnPages, []string{"home", "packages"}) {
		t.Errorf("ShowOnPages = %v, want [home packages]", popup.ShowOnPages)
	}
	if popup.DisplayDuration != 8000 {
		t.Errorf("DisplayDuration = %d, want 8000", popup.DisplayDuration)
	}
	if popup.CookieExpiry != 48 {
		t.Errorf("CookieExpiry = %d, want 48", popup.CookieExpiry)
	}
}

func TestPopupUpdateRequestTargeting(t *testing.T) {
	duration := 3000
	expiry := 12
	request := &PopupUpdateRequest{
		ShowOnPages:     []string{"blog"},
		DisplayDuration: &duration,
		CookieExpiry:    &expiry,
	}

	updates := request.Updates()
	if !reflect.DeepEqual(updates["showOnPages"], []string{"blog"}) {
		t.Errorf("showOnPages = %v, want [blog]", updates["showOnPages"])
	}
	if updates["displayDuration"] != 3000 {
		t.Errorf("displayDuration = %v, want 3000", updates["displayDuration"])
	}
	if updates["cookieExpiry"] != 12 {
		t.Errorf("cookieExpiry = %v, want 12", updates["cookieExpiry"])
	}
}

func TestPopupVisibleAt(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name  string
		popup Popup
		want  bool
	}{
		{"inactive", Popup{Active: false}, false},
		{"no window", Popup{Active: true}, true},
		{"inside window", Popup{Active: true, StartDate: &past, EndDate: &future}, true},
		{"not started", Popup{Active: true, StartDate: &future}, false},
		{"expired", Popup{Active: true, EndDate: &past}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.popup.VisibleAt(now); got != tt.want {
				t.Errorf("VisibleAt = %v, want %v", got, tt.want)
			}
		})
	}
}
