package postgres

import (
	"fmt"

	"github.com/audora0212/inhashapp/internal/models"
)

func (s *Store) AddItem(item models.ScheduleItem) error {
	_, err := s.db.Exec(`
		INSERT INTO schedule_items (id, type, course, title, due, position)
		VALUES ($1, $2, $3, $4, $5, COALESCE((SELECT MAX(position) FROM schedule_items), 0) + 1)`,
		item.ID, string(item.Type), item.Course, item.Title, item.Due,
	)
	if err != nil {
		return fmt.Errorf("failed to add item: %w", err)
	}
	return nil
}

func (s *Store) GetAllItems() ([]models.ScheduleItem, error) {
	rows, err := s.db.Query(`
		SELECT id, type, course, title, due
		FROM schedule_items ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.ScheduleItem
	for rows.Next() {
		var it models.ScheduleItem
		var typ string
		if err := rows.Scan(&it.ID, &typ, &it.Course, &it.Title, &it.Due); err != nil {
			return nil, err
		}
		it.Type = models.ScheduleType(typ)
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *Store) DeleteItem(id string) error {
	res, err := s.db.Exec("DELETE FROM schedule_items WHERE id = $1", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("item not found: %s", id)
	}
	return nil
}

func (s *Store) ReplaceItems(items []models.ScheduleItem) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM schedule_items"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO schedule_items (id, type, course, title, due, position)
		VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, item := range items {
		if _, err := stmt.Exec(item.ID, string(item.Type), item.Course, item.Title, item.Due, i+1); err != nil {
			return fmt.Errorf("failed to insert item %s: %w", item.ID, err)
		}
	}

	return tx.Commit()
}
