package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactInfo struct {
	Phone    string `json:"phone" bson:"phone"`
	Email    string `json:"email" bson:"email"`
	Address  string `json:"address" bson:"address"`
	WhatsApp string `json:"whatsapp" bson:"whatsapp"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook" bson:"facebook"`
	Instagram string `json:"instagram" bson:"instagram"`
	Twitter   string `json:"twitter" bson:"twitter"`
	YouTube   string `json:"youtube" bson:"youtube"`
}

type CompanyInfo struct {
	Name        string `json:"name" bson:"name"`
	Tagline     string `json:"tagline" bson:"tagline"`
	Description string `json:"description" bson:"description"`
	Logo        string `json:"logo" bson:"logo"`
}

type HeroSection struct {
	Title           string   `json:"title" bson:"title"`
	Subtitle        string   `json:"subtitle" bson:"subtitle"`
	BackgroundImage string   `json:"backgroundImage" bson:"backgroundImage"`
	CTAText         string   `json:"ctaText" bson:"ctaText"`
	Slides          []string `json:"slides" bson:"slides"`
}

type MapSettings struct {
	EmbedURL  string  `json:"embedUrl" bson:"embedUrl"`
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

type SeoSettings struct {
	MetaTitle       string   `json:"metaTitle" bson:"metaTitle"`
	MetaDescription string   `json:"metaDescription" bson:"metaDescription"`
	Keywords        []string `json:"keywords" bson:"keywords"`
}

type BusinessStats struct {
	YearsExperience int `json:"yearsExperience" bson:"yearsExperience"`
	HappyClients    int `json:"happyClients" bson:"happyClients"`
	ToursCompleted  int `json:"toursCompleted" bson:"toursCompleted"`
	Destinations    int `json:"destinations" bson:"destinations"`
}

// SiteSettings is a singleton document holding everything the public
// site renders outside of collection content.
type SiteSettings struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Company     CompanyInfo        `json:"company" bson:"company"`
	Contact     ContactInfo        `json:"contact" bson:"contact"`
	SocialMedia SocialMedia        `json:"socialMedia" bson:"socialMedia"`
	Hero        HeroSection        `json:"hero" bson:"hero"`
	Map         MapSettings        `json:"map" bson:"map"`
	Seo         SeoSettings        `json:"seo" bson:"seo"`
	Stats       BusinessStats      `json:"stats" bson:"stats"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type SiteSettingsUpdateRequest struct {
	Company     *CompanyInfo   `json:"company"`
	Contact     *ContactInfo   `json:"contact"`
	SocialMedia *SocialMedia   `json:"socialMedia"`
	Hero        *HeroSection   `json:"hero"`
	Map         *MapSettings   `json:"map"`
	Seo         *SeoSettings   `json:"seo"`
	Stats       *BusinessStats `json:"stats"`
}

func (r *SiteSettingsUpdateRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Company != nil {
		updates["company"] = *r.Company
	}
	if r.Contact != nil {
		updates["contact"] = *r.Contact
	}
	if r.SocialMedia != nil {
		updates["socialMedia"] = *r.SocialMedia
	}
	if r.Hero != nil {
		updates["hero"] = *r.Hero
	}
	if r.Map != nil {
		updates["map"] = *r.Map
	}
	if r.Seo != nil {
		updates["seo"] = *r.Seo
	}
	if r.Stats != nil {
		updates["stats"] = *r.Stats
	}
	if len(updates) > 0 {
		updates["updatedAt"] = time.Now().UTC()
	}
	return updates
}

func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		Company: CompanyInfo{
			Name:        "GMB Travels Kashmir",
			Tagline:     "Your Gateway to Paradise",
			Description: "Trusted travel partner for Kashmir tours, houseboat stays and cab services.",
		},
		Contact: ContactInfo{
			Phone:   "+91-9999999999",
			Email:   "info@gmbtravels.com",
			Address: "Dal Gate, Srinagar, Jammu & Kashmir",
		},
		Hero: HeroSection{
			Title:    "Discover the Beauty of Kashmir",
			Subtitle: "Handcrafted tours, houseboats and adventures",
			CTAText:  "Explore Packages",
		},
		Seo: SeoSettings{
			MetaTitle:       "GMB Travels Kashmir",
			MetaDescription: "Kashmir tour packages, cab bookings and travel services.",
			Keywords:        []string{"kashmir", "travel", "tour packages"},
		},
		Stats: BusinessStats{
			YearsExperience: 10,
			HappyClients:    5000,
			ToursCompleted:  1200,
			Destinations:    25,
		},
		UpdatedAt: time.Now().UTC(),
	}
}
