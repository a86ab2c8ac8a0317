package deadline

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		due           time.Time
		wantRemaining string
		wantTier      Tier
		wantDDay      string
	}{
		{
			name:          "due equals now is overdue",
			due:           now,
			wantRemaining: "마감",
			wantTier:      TierOverdue,
			wantDDay:      "D-0",
		},
		{
			name:          "past due is overdue",
			due:           now.Add(-48 * time.Hour),
			wantRemaining: "마감",
			wantTier:      TierOverdue,
			wantDDay:      "D-0",
		},
		{
			name:          "ten hours out rounds up to one day",
			due:           now.Add(10 * time.Hour),
			wantRemaining: "내일 마감",
			wantTier:      TierUrgent,
			wantDDay:      "D-1",
		},
		{
			name:          "25 hours out rounds up to two days",
			due:           now.Add(25 * time.Hour),
			wantRemaining: "2일 남음",
			wantTier:      TierUrgent,
			wantDDay:      "D-2",
		},
		{
			name:          "exactly 48 hours is still urgent",
			due:           now.Add(48 * time.Hour),
			wantRemaining: "2일 남음",
			wantTier:      TierUrgent,
			wantDDay:      "D-2",
		},
		{
			name:          "three days out is normal",
			due:           now.Add(72 * time.Hour),
			wantRemaining: "3일 남음",
			wantTier:      TierNormal,
			wantDDay:      "D-3",
		},
		{
			name:          "a week out is normal",
			due:           now.Add(7 * 24 * time.Hour),
			wantRemaining: "7일 남음",
			wantTier:      TierNormal,
			wantDDay:      "D-7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.due, now)
			if got.RemainingLabel != tt.wantRemaining {
				t.Errorf("RemainingLabel = %q, want %q", got.RemainingLabel, tt.wantRemaining)
			}
			if got.Tier != tt.wantTier {
				t.Errorf("Tier = %v, want %v", got.Tier, tt.wantTier)
			}
			if got.DDayLabel != tt.wantDDay {
				t.Errorf("DDayLabel = %q, want %q", got.DDayLabel, tt.wantDDay)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	due := now.Add(30 * time.Hour)

	first := Classify(due, now)
	second := Classify(due, now)
	if first != second {
		t.Errorf("Classify is not deterministic: %+v vs %+v", first, second)
	}
}
