package settings

import (
	"fmt"

	"github.com/audora0212/inhashapp/internal/cli"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	NotifyAssignments *bool   `help:"Enable or disable assignment notifications."`
	NotifyLectures    *bool   `help:"Enable or disable lecture notifications."`
	DdayReminder      *int    `help:"Days before a due date to remind." name:"dday-reminder"`
	Timezone          *string `help:"IANA timezone for due dates."`
}

func (c *SettingsCmd) Validate() error {
	if c.DdayReminder != nil && *c.DdayReminder < 0 {
		return fmt.Errorf("dday-reminder must be zero or a positive number of days")
	}
	return nil
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Notify Assignments: %v\n", settings.NotifyAssignments)
		fmt.Printf("  Notify Lectures:    %v\n", settings.NotifyLectures)
		fmt.Printf("  D-day Reminder:     %d day(s)\n", settings.DDayReminder)
		fmt.Printf("  Timezone:           %s\n", settings.Timezone)
		fmt.Printf("  LMS Linked:         %v\n", settings.LmsLinked)
		return nil
	}

	updated := false
	if c.NotifyAssignments != nil {
		settings.NotifyAssignments = *c.NotifyAssignments
		updated = true
	}
	if c.NotifyLectures != nil {
		settings.NotifyLectures = *c.NotifyLectures
		updated = true
	}
	if c.DdayReminder != nil {
		settings.DDayReminder = *c.DdayReminder
		updated = true
	}
	if c.Timezone != nil {
		settings.Timezone = *c.Timezone
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
