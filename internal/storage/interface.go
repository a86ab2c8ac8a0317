package storage

import "github.com/audora0212/inhashapp/internal/models"

// Provider persists the item set and settings between runs. The
// in-memory schedule repository is loaded from it at startup; all query
// logic lives in the repository, not here.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Schedule items
	AddItem(models.ScheduleItem) error
	GetAllItems() ([]models.ScheduleItem, error)
	DeleteItem(id string) error
	// ReplaceItems swaps the stored set for an externally supplied one
	// (an LMS collection result); used by the linking flow.
	ReplaceItems([]models.ScheduleItem) error

	// Utils
	GetConfigPath() string
}
