package cli

import (
	"fmt"
	"time"

	"github.com/audora0212/inhashapp/internal/lms"
	"github.com/audora0212/inhashapp/internal/models"
	"github.com/audora0212/inhashapp/internal/schedule"
	"github.com/audora0212/inhashapp/internal/storage"
	"github.com/audora0212/inhashapp/internal/utils"
)

type Context struct {
	Store storage.Provider
	LMS   lms.Client
}

// LoadRepository reads the persisted item set into a fresh in-memory
// repository. All month/week/day filtering runs against the repository,
// never against storage directly.
func (c *Context) LoadRepository() (*schedule.Repository, error) {
	items, err := c.Store.GetAllItems()
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	repo := schedule.New()
	if err := repo.InsertAll(items); err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	return repo, nil
}

// Now returns the current time in the configured timezone.
func (c *Context) Now(settings models.Settings) (time.Time, error) {
	return utils.NowInTimezone(settings.Timezone)
}
