package postgres

import (
	"fmt"

	"github.com/audora0212/inhashapp/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "notify_assignments":
			settings.NotifyAssignments = value == "true"
		case "notify_lectures":
			settings.NotifyLectures = value == "true"
		case "dday_reminder":
			if _, err := fmt.Sscanf(value, "%d", &settings.DDayReminder); err != nil {
				return models.Settings{}, fmt.Errorf("parsing dday_reminder: %w", err)
			}
		case "timezone":
			settings.Timezone = value
		case "lms_linked":
			settings.LmsLinked = value == "true"
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("notify_assignments", fmt.Sprintf("%v", settings.NotifyAssignments)); err != nil {
		return err
	}
	if _, err := stmt.Exec("notify_lectures", fmt.Sprintf("%v", settings.NotifyLectures)); err != nil {
		return err
	}
	if _, err := stmt.Exec("dday_reminder", fmt.Sprintf("%d", settings.DDayReminder)); err != nil {
		return err
	}
	if _, err := stmt.Exec("timezone", settings.Timezone); err != nil {
		return err
	}
	if _, err := stmt.Exec("lms_linked", fmt.Sprintf("%v", settings.LmsLinked)); err != nil {
		return err
	}

	return tx.Commit()
}
