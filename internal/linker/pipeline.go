package linker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/audora0212/inhashapp/internal/constants"
	"github.com/audora0212/inhashapp/internal/logger"
)

var (
	// ErrCancelled is the terminal outcome of a cancelled run. It is a
	// normal outcome for the caller, not a failure.
	ErrCancelled = errors.New("link cancelled")
	// ErrLinkFailed wraps a failure of the injected real linking call.
	ErrLinkFailed = errors.New("link failed")
)

// Stage is one of the three collection stages shown while an LMS link is
// in flight. Stages advance strictly forward and never run concurrently.
type Stage int

const (
	StageAccount Stage = iota
	StageAssignments
	StageSchedule
)

// stage progress upper bounds; a stage's Done update fires exactly when
// its bound is reached.
var stageBounds = [...]int{33, 66, 100}

// PendingLabel returns the in-progress label for the stage.
func (s Stage) PendingLabel() string {
	switch s {
	case StageAccount:
		return "계정 생성 및 등록중..."
	case StageAssignments:
		return "과제 정보 수집중..."
	case StageSchedule:
		return "수업 일정 수집중..."
	default:
		return ""
	}
}

// DoneLabel returns the completed label for the stage.
func (s Stage) DoneLabel() string {
	switch s {
	case StageAccount:
		return "계정 생성 및 등록 완료"
	case StageAssignments:
		return "과제 정보 수집 완료"
	case StageSchedule:
		return "수업 정보 수집 완료"
	default:
		return ""
	}
}

// Update is one progress emission. Progress is monotonically
// non-decreasing across a run and never exceeds 100. StageDone is true
// exactly when the stage's upper bound was reached.
type Update struct {
	Progress  int
	Stage     Stage
	StageDone bool
}

// Credentials are the LMS credentials the injected link call consumes.
type Credentials struct {
	Username string
	Password string
}

// LinkFunc is the one genuine side-effecting call of a run, invoked
// after the final stage completes. The pipeline only needs its outcome.
type LinkFunc func(ctx context.Context, creds Credentials) error

// Options configures a run. Link is required; the cadence fields default
// to the application constants when zero.
type Options struct {
	TickInterval time.Duration
	StepSize     int
	Link         LinkFunc
}

// Run is a single in-flight onboarding pipeline. Updates are delivered
// in order on one channel; the channel is closed when the run ends for
// any reason.
type Run struct {
	updates chan Update
	done    chan struct{}
	cancel  context.CancelFunc
	err     error
}

// Start launches the pipeline. The run advances through the account,
// assignments and schedule stages on a fixed cadence, then invokes
// opts.Link exactly once. Cancelling the returned run (or ctx) at any
// point stops further updates; no stage transition or completion effect
// fires after cancellation is observed.
func Start(ctx context.Context, creds Credentials, opts Options) (*Run, error) {
	if opts.Link == nil {
		return nil, errors.New("linker: Options.Link is required")
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = constants.LinkTickInterval
	}
	if opts.StepSize <= 0 {
		opts.StepSize = constants.LinkStepSize
	}

	ctx, cancel := context.WithCancel(ctx)
	r := &Run{
		updates: make(chan Update),
		done:    make(chan struct{}),
		cancel:  cancel,
	}
	go r.run(ctx, creds, opts)
	return r, nil
}

// Updates returns the ordered progress stream. It is closed when the
// run terminates.
func (r *Run) Updates() <-chan Update { return r.updates }

// Cancel requests cancellation. Safe to call at any point in the run's
// lifetime, including after completion.
func (r *Run) Cancel() { r.cancel() }

// Wait blocks until the run terminates and returns its outcome: nil on
// success, ErrCancelled on cancellation, or an ErrLinkFailed-wrapped
// error when the real linking call failed.
func (r *Run) Wait() error {
	<-r.done
	return r.err
}

func (r *Run) run(ctx context.Context, creds Credentials, opts Options) {
	defer close(r.done)
	defer close(r.updates)
	defer r.cancel()

	ticker := time.NewTicker(opts.TickInterval)
	defer ticker.Stop()

	progress := 0
	for i, bound := range stageBounds {
		stage := Stage(i)
		for progress < bound {
			// Checked ahead of the select: once cancellation is observed
			// no further advance may win a racy select pick.
			if ctx.Err() != nil {
				r.err = ErrCancelled
				return
			}
			select {
			case <-ctx.Done():
				r.err = ErrCancelled
				return
			case <-ticker.C:
			}

			progress += opts.StepSize
			if progress > bound {
				progress = bound
			}
			if !r.emit(ctx, Update{Progress: progress, Stage: stage, StageDone: progress == bound}) {
				r.err = ErrCancelled
				return
			}
		}
	}

	// All three stages complete; trigger the real linking call. A cancel
	// that raced the call still wins: the run never claims success once
	// cancellation is observed.
	if err := opts.Link(ctx, creds); err != nil {
		if ctx.Err() != nil {
			r.err = ErrCancelled
			return
		}
		logger.Error("LMS link call failed", "error", err)
		r.err = fmt.Errorf("%w: %v", ErrLinkFailed, err)
		return
	}
	if ctx.Err() != nil {
		r.err = ErrCancelled
	}
}

// emit delivers u unless the run is cancelled first.
func (r *Run) emit(ctx context.Context, u Update) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case r.updates <- u:
		return true
	case <-ctx.Done():
		return false
	}
}
