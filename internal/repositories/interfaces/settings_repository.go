package interfaces

import (
	"context"

	"gmbtravels/internal/models"
)

// SiteSettingsRepository manages the singleton site settings document.
type SiteSettingsRepository interface {
	Get(ctx context.Context) (*models.SiteSettings, error)
	Update(ctx context.Context, updates map[string]interface{}) (*models.SiteSettings, error)
	Reset(ctx context.Context) (*models.SiteSettings, error)
}

// BlogGenerationSettingsRepository manages the singleton generation
// pipeline settings document.
type BlogGenerationSettingsRepository interface {
	Get(ctx context.Context) (*models.BlogGenerationSettings, error)
	Update(ctx context.Context, settings *models.BlogGenerationSettings) error
}
