package jobs

import (
	"context"
	"fmt"
	"testing"
	"time"

	"unistay/services/logger"

	"github.com/robfig/cron/v3"
)

type fakeExpirer struct {
	calls int
	ttl   time.Duration
	err   error
}

func (f *fakeExpirer) ExpirePending(ctx context.Context, olderThan time.Duration) (int, error) {
	f.calls++
	f.ttl = olderThan
	return 1, f.err
}

func TestExpirePendingJob(t *testing.T) {
	f := &fakeExpirer{}
	ExpirePendingJob(f, 30*time.Minute, logger.NewNopLogger())()
	if f.calls != 1 || f.ttl != 30*time.Minute {
		t.Fatalf("unexpected calls %+v", f)
	}

	f.err = fmt.Errorf("db down")
	ExpirePendingJob(f, time.Minute, logger.NewNopLogger())()
	if f.calls != 2 {
		t.Fatalf("job must run even after failures")
	}
}

func TestInitCronJobs(t *testing.T) {
	c := cron.New()
	if err := InitCronJobs(c, &fakeExpirer{}, time.Minute, logger.NewNopLogger()); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer c.Stop()
	if n := len(c.Entries()); n != 1 {
		t.Fatalf("expected one job, got %d", n)
	}
}
