package lms

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/audora0212/inhashapp/internal/linker"
	"github.com/audora0212/inhashapp/internal/models"
)

// Client is the LMS collaborator behind the login and account-linking
// flows. The engine only depends on this interface; the real scraper is
// out of scope and the shipped implementation simulates it.
type Client interface {
	// Login authenticates and returns a session token.
	Login(ctx context.Context, email, password string) (string, error)
	// Signup registers a new account and returns a session token.
	Signup(ctx context.Context, email, password string) (string, error)
	// TestConnection verifies the LMS credentials without linking.
	TestConnection(ctx context.Context, creds linker.Credentials) error
	// Link registers the LMS account, runs the initial collection, and
	// returns the collected item set.
	Link(ctx context.Context, creds linker.Credentials) ([]models.ScheduleItem, error)
}

// simulated network delays for the stand-in LMS backend.
const (
	loginDelay  = 600 * time.Millisecond
	signupDelay = 800 * time.Millisecond
	testDelay   = 900 * time.Millisecond
	linkDelay   = 150 * time.Millisecond
)

// MockClient simulates the LMS backend with fixed delays and always
// succeeds. Delay scaling is overridable so tests run instantly.
type MockClient struct {
	// Scale divides every delay; zero means full delays.
	Scale int
}

var _ Client = (*MockClient)(nil)

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (c *MockClient) sleep(ctx context.Context, d time.Duration) error {
	if c.Scale > 0 {
		d /= time.Duration(c.Scale)
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *MockClient) Login(ctx context.Context, email, password string) (string, error) {
	if err := c.sleep(ctx, loginDelay); err != nil {
		return "", err
	}
	return uuid.New().String(), nil
}

func (c *MockClient) Signup(ctx context.Context, email, password string) (string, error) {
	if err := c.sleep(ctx, signupDelay); err != nil {
		return "", err
	}
	return uuid.New().String(), nil
}

func (c *MockClient) TestConnection(ctx context.Context, creds linker.Credentials) error {
	return c.sleep(ctx, testDelay)
}

func (c *MockClient) Link(ctx context.Context, creds linker.Credentials) ([]models.ScheduleItem, error) {
	if err := c.sleep(ctx, linkDelay); err != nil {
		return nil, err
	}

	// The simulated collection result: one week's worth of upcoming
	// assignments and lecture recordings relative to the linking moment.
	now := time.Now()
	return []models.ScheduleItem{
		{ID: uuid.New().String(), Type: models.TypeAssignment, Course: "객체지향프로그래밍", Title: "1주차 실습과제", Due: now.Add(10 * time.Hour)},
		{ID: uuid.New().String(), Type: models.TypeLecture, Course: "생명과학", Title: "1주차 1교시 동영상", Due: now.AddDate(0, 0, 1)},
		{ID: uuid.New().String(), Type: models.TypeAssignment, Course: "객체지향프로그래밍", Title: "2주차 실습과제", Due: now.AddDate(0, 0, 3)},
		{ID: uuid.New().String(), Type: models.TypeLecture, Course: "컴퓨터네트워크", Title: "Chap1-1 동영상", Due: now.AddDate(0, 0, 4)},
	}, nil
}
