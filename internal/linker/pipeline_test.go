package linker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func fastOptions(link LinkFunc) Options {
	return Options{
		TickInterval: time.Millisecond,
		StepSize:     7,
		Link:         link,
	}
}

func TestRunToCompletion(t *testing.T) {
	linkCalls := 0
	run, err := Start(context.Background(), Credentials{Username: "stu", Password: "pw"}, fastOptions(
		func(ctx context.Context, creds Credentials) error {
			linkCalls++
			return nil
		},
	))
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	var updates []Update
	for u := range run.Updates() {
		updates = append(updates, u)
	}

	if err := run.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if linkCalls != 1 {
		t.Errorf("link call count = %d, want exactly 1", linkCalls)
	}
	if len(updates) == 0 {
		t.Fatal("no updates emitted")
	}

	// Progress is monotonically non-decreasing and bounded at 100.
	prev := 0
	for _, u := range updates {
		if u.Progress < prev {
			t.Errorf("progress regressed: %d after %d", u.Progress, prev)
		}
		if u.Progress > 100 {
			t.Errorf("progress exceeded 100: %d", u.Progress)
		}
		prev = u.Progress
	}
	if updates[len(updates)-1].Progress != 100 {
		t.Errorf("final progress = %d, want 100", updates[len(updates)-1].Progress)
	}

	// Stage-done transitions fire in strict order at their bounds.
	var doneStages []Stage
	var doneAt []int
	for _, u := range updates {
		if u.StageDone {
			doneStages = append(doneStages, u.Stage)
			doneAt = append(doneAt, u.Progress)
		}
	}
	wantStages := []Stage{StageAccount, StageAssignments, StageSchedule}
	wantAt := []int{33, 66, 100}
	if len(doneStages) != len(wantStages) {
		t.Fatalf("stage-done count = %d, want %d", len(doneStages), len(wantStages))
	}
	for i := range wantStages {
		if doneStages[i] != wantStages[i] {
			t.Errorf("stage-done[%d] = %v, want %v", i, doneStages[i], wantStages[i])
		}
		if doneAt[i] != wantAt[i] {
			t.Errorf("stage %v completed at progress %d, want %d", doneStages[i], doneAt[i], wantAt[i])
		}
	}
}

func TestImmediateCancel(t *testing.T) {
	linkCalled := false
	run, err := Start(context.Background(), Credentials{}, fastOptions(
		func(ctx context.Context, creds Credentials) error {
			linkCalled = true
			return nil
		},
	))
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	run.Cancel()

	for u := range run.Updates() {
		if u.StageDone {
			t.Errorf("stage-done emitted after immediate cancel: %+v", u)
		}
	}

	if err := run.Wait(); !errors.Is(err, ErrCancelled) {
		t.Errorf("Wait() error = %v, want ErrCancelled", err)
	}
	if linkCalled {
		t.Error("completion effect fired after cancellation")
	}
}

func TestCancelMidRun(t *testing.T) {
	run, err := Start(context.Background(), Credentials{}, fastOptions(
		func(ctx context.Context, creds Credentials) error { return nil },
	))
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// Consume a few updates, then cancel while the run is mid-stage.
	seen := 0
	for u := range run.Updates() {
		seen++
		if seen == 3 {
			run.Cancel()
		}
		if u.Progress > 100 {
			t.Errorf("progress exceeded 100 after cancel: %d", u.Progress)
		}
	}

	if err := run.Wait(); !errors.Is(err, ErrCancelled) {
		t.Errorf("Wait() error = %v, want ErrCancelled", err)
	}
	if seen < 3 {
		t.Errorf("saw %d updates before channel close, want at least 3", seen)
	}
}

func TestLinkFailure(t *testing.T) {
	boom := fmt.Errorf("lms rejected credentials")
	run, err := Start(context.Background(), Credentials{}, fastOptions(
		func(ctx context.Context, creds Credentials) error { return boom },
	))
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	last := Update{}
	for u := range run.Updates() {
		last = u
	}

	waitErr := run.Wait()
	if !errors.Is(waitErr, ErrLinkFailed) {
		t.Errorf("Wait() error = %v, want ErrLinkFailed", waitErr)
	}
	// The simulated stages all succeeded; only the real call failed.
	if last.Progress != 100 {
		t.Errorf("final progress before failure = %d, want 100", last.Progress)
	}
}

func TestStartRequiresLink(t *testing.T) {
	if _, err := Start(context.Background(), Credentials{}, Options{}); err == nil {
		t.Error("Start() without Link succeeded, want error")
	}
}

func TestCancelAfterCompletionIsSafe(t *testing.T) {
	run, err := Start(context.Background(), Credentials{}, fastOptions(
		func(ctx context.Context, creds Credentials) error { return nil },
	))
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	for range run.Updates() {
	}
	if err := run.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	run.Cancel() // must not panic or change the outcome
	if err := run.Wait(); err != nil {
		t.Errorf("Wait() after late Cancel = %v, want nil", err)
	}
}
