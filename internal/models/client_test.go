package models

import (
	"testing"
)

func TestClientStatusIsValid(t *testing.T) {
	tests := []struct {
		status ClientStatus
		want   bool
	}{
		{ClientStatusLead, true},
		{ClientStatusInterested, true},
		{ClientStatusConfirmed, true},
		{ClientStatusCompleted, true},
		{ClientStatusCancelled, true},
		{ClientStatus("active"), false},
		{ClientStatus("inactive"), false},
		{ClientStatus("prospect"), false},
		{ClientStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(&ClientCreateRequest{
		Name:     "Sanjay Verma",
		Phone:    "+919876500011",
		WhatsApp: "+919876500011",
	})

	if client.Status != ClientStatusLead {
		t.Errorf("Status = %q, want %q", client.Status, ClientStatusLead)
	}
	if client.Source != "manual" {
		t.Errorf("Source = %q, want manual", client.Source)
	}
	if client.PreferredContact != "phone" {
		t.Errorf("PreferredContact = %q, want phone", client.PreferredContact)
	}
	if client.WhatsApp != "+919876500011" {
		t.Errorf("WhatsApp = %q, want the request value", client.WhatsApp)
	}
	if client.TotalSpent != 0 || client.Bookings != 0 {
		t.Errorf("TotalSpent = %v, Bookings = %d, want zero for a new client", client.TotalSpent, client.Bookings)
	}
	if client.Communications == nil || client.FollowUps == nil || client.Reviews == nil {
		t.Error("embedded slices must be initialized, not nil")
	}
}

func TestClientUpdateRequestCounters(t *testing.T) {
	spent := 45000.0
	bookings := 3
	contact := "whatsapp"
	request := &ClientUpdateRequest{
		TotalSpent:       &spent,
		Bookings:         &bookings,
		PreferredContact: &contact,
	}

	updates := request.Updates()
	if updates["totalSpent"] != 45000.0 {
		t.Errorf("totalSpent = %v, want 45000", updates["totalSpent"])
	}
	if updates["bookings"] != 3 {
		t.Errorf("bookings = %v, want 3", updates["bookings"])
	}
	if updates["preferredContact"] != "whatsapp" {
		t.Errorf("preferredContact = %v, want whatsapp", updates["preferredContact"])
	}
	if _, ok := updates["updatedAt"]; !ok {
		t.Error("updatedAt missing from the update document")
	}
}
