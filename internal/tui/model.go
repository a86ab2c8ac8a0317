package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/audora0212/inhashapp/internal/models"
	"github.com/audora0212/inhashapp/internal/schedule"
	"github.com/audora0212/inhashapp/internal/storage"
	"github.com/audora0212/inhashapp/internal/utils"
)

type KeyMap struct {
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevWeek  key.Binding
	NextWeek  key.Binding
	Today     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevMonth: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next month"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "next day"),
		),
		PrevWeek: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "prev week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "next week"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type Model struct {
	store    storage.Provider
	repo     *schedule.Repository
	settings models.Settings
	keys     KeyMap
	help     help.Model

	now      time.Time
	month    time.Time // first of the displayed month
	selected time.Time

	width    int
	height   int
	quitting bool
	err      error
}

func NewModel(store storage.Provider) Model {
	repo := schedule.New()
	settings := models.Settings{}

	var loadErr error
	if items, err := store.GetAllItems(); err != nil {
		loadErr = err
	} else if err := repo.InsertAll(items); err != nil {
		loadErr = err
	}
	if s, err := store.GetSettings(); err == nil {
		settings = s
	} else if loadErr == nil {
		loadErr = err
	}

	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		now = time.Now()
	}

	return Model{
		store:    store,
		repo:     repo,
		settings: settings,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		now:      now,
		month:    utils.StartOfMonth(now),
		selected: utils.StartOfDay(now),
		err:      loadErr,
	}
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.PrevMonth, m.keys.NextMonth, m.keys.Today, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.PrevMonth, m.keys.NextMonth, m.keys.Today},
		{m.keys.PrevDay, m.keys.NextDay, m.keys.PrevWeek, m.keys.NextWeek},
		{m.keys.Help, m.keys.Quit},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
