package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/audora0212/inhashapp/internal/linker"
	"github.com/audora0212/inhashapp/internal/logger"
	"github.com/audora0212/inhashapp/internal/models"
	"github.com/audora0212/inhashapp/internal/storage"
)

type LinkCmd struct {
	Username string `short:"u" help:"LMS username. Prompted for when omitted."`
	Test     bool   `help:"Only verify the LMS credentials, without linking."`
}

var (
	stageDoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	stagePendingStyle = lipgloss.NewStyle().Faint(true)
	linkTitleStyle    = lipgloss.NewStyle().Bold(true)
)

func (c *LinkCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	creds := linker.Credentials{Username: c.Username}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("LMS 아이디").
				Value(&creds.Username).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("아이디를 입력하세요")
					}
					return nil
				}),
			huh.NewInput().
				Title("LMS 비밀번호").
				EchoMode(huh.EchoModePassword).
				Value(&creds.Password).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("비밀번호를 입력하세요")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
	if err := form.Run(); err != nil {
		return err
	}

	if c.Test {
		fmt.Println("LMS 연결 확인 중...")
		if err := ctx.LMS.TestConnection(context.Background(), creds); err != nil {
			return fmt.Errorf("connection test failed: %w", err)
		}
		fmt.Println("연결 확인 완료")
		return nil
	}

	// The collection result is captured here and persisted only after
	// the run reports success.
	var collected []models.ScheduleItem
	run, err := linker.Start(context.Background(), creds, linker.Options{
		Link: func(linkCtx context.Context, linkCreds linker.Credentials) error {
			items, err := ctx.LMS.Link(linkCtx, linkCreds)
			if err != nil {
				return err
			}
			collected = items
			return nil
		},
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(newLinkModel(run))
	if _, err := p.Run(); err != nil {
		run.Cancel()
		return err
	}

	if err := run.Wait(); err != nil {
		if errors.Is(err, linker.ErrCancelled) {
			fmt.Println("연동이 취소되었습니다")
			return nil
		}
		return err
	}

	if err := persistLinkResult(ctx.Store, collected); err != nil {
		return err
	}

	logger.Info("lms account linked", "username", creds.Username, "items", len(collected))
	fmt.Printf("연동이 완료되었습니다 (%d개 일정 수집)\n", len(collected))
	return nil
}

// persistLinkResult swaps the stored item set for the collection result
// and marks the account linked. Called only after a successful run.
func persistLinkResult(store storage.Provider, collected []models.ScheduleItem) error {
	if err := store.ReplaceItems(collected); err != nil {
		return fmt.Errorf("failed to store collected items: %w", err)
	}

	settings, err := store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	settings.LmsLinked = true
	if err := store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

type linkUpdateMsg linker.Update

type linkClosedMsg struct{}

type linkModel struct {
	run     *linker.Run
	bar     progress.Model
	pct     int
	done    [3]bool
	current linker.Stage
	closed  bool
}

func newLinkModel(run *linker.Run) linkModel {
	return linkModel{
		run: run,
		bar: progress.New(progress.WithDefaultGradient()),
	}
}

func waitForLinkUpdate(run *linker.Run) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-run.Updates()
		if !ok {
			return linkClosedMsg{}
		}
		return linkUpdateMsg(u)
	}
}

func (m linkModel) Init() tea.Cmd {
	return waitForLinkUpdate(m.run)
}

func (m linkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.run.Cancel()
			// keep draining so the pipeline goroutine can exit
			return m, nil
		}
	case linkUpdateMsg:
		m.pct = msg.Progress
		m.current = msg.Stage
		if msg.StageDone {
			m.done[msg.Stage] = true
		}
		return m, waitForLinkUpdate(m.run)
	case linkClosedMsg:
		m.closed = true
		return m, tea.Quit
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m linkModel) View() string {
	if m.closed {
		return ""
	}
	var b strings.Builder
	b.WriteString(linkTitleStyle.Render("LMS 연동 중") + "\n\n")
	for s := linker.StageAccount; s <= linker.StageSchedule; s++ {
		if m.done[s] {
			b.WriteString(stageDoneStyle.Render("  ✓ "+s.DoneLabel()) + "\n")
		} else if s == m.current {
			b.WriteString("  … " + s.PendingLabel() + "\n")
		} else {
			b.WriteString(stagePendingStyle.Render("  · "+s.PendingLabel()) + "\n")
		}
	}
	b.WriteString("\n" + m.bar.ViewAs(float64(m.pct)/100) + fmt.Sprintf("  %d%%\n", m.pct))
	b.WriteString(stagePendingStyle.Render("\n(q to cancel)\n"))
	return b.String()
}
