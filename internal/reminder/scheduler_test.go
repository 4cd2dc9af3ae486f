package reminder

import (
	"context"
	"sync"
	"testing"
	"time"

	"smart-task-api/internal/model"
	"smart-task-api/internal/task/repository"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                 {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

type fakeLister struct {
	tasks   []model.Task
	lastOpt repository.ListTasksOptions
}

func (f *fakeLister) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	f.lastOpt = opt
	return f.tasks, len(f.tasks), nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string // subjects
	err  error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, subject)
	return nil
}

func (f *fakeMailer) subjects() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.sent))
	copy(out, f.sent)
	return out
}

func timePtr(t time.Time) *time.Time { return &t }

func newTestScheduler(store TaskLister, mail *fakeMailer, now time.Time) *Scheduler {
	s := New(nopLogger{}, store, mail, Config{
		ScanInterval:   time.Hour,
		Lead:           30 * time.Minute,
		Window:         24 * time.Hour,
		Recipient:      "team@example.com",
		SendsPerMinute: 100,
	})
	s.now = func() time.Time { return now }
	return s
}

func TestScanSendsOverdueReminderImmediately(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	// Due in 10 minutes: already inside the 30 minute lead.
	store := &fakeLister{tasks: []model.Task{
		{ID: "t1", Description: "file taxes", Status: model.StatusPending, DueDate: timePtr(now.Add(10 * time.Minute))},
	}}
	mail := &fakeMailer{}
	s := newTestScheduler(store, mail, now)

	s.scan(context.Background())

	subjects := mail.subjects()
	if len(subjects) != 1 {
		t.Fatalf("sent = %v, want 1 reminder", subjects)
	}
	if subjects[0] != "Reminder: file taxes" {
		t.Errorf("subject = %q", subjects[0])
	}
	if store.lastOpt.Status != string(model.StatusPending) {
		t.Errorf("scan status filter = %q", store.lastOpt.Status)
	}
	if store.lastOpt.DueFrom == nil || store.lastOpt.DueTo == nil {
		t.Fatal("scan missing due window")
	}
	if got := store.lastOpt.DueTo.Sub(*store.lastOpt.DueFrom); got != 24*time.Hour {
		t.Errorf("scan window = %v, want 24h", got)
	}
}

func TestScanSchedulesFutureReminder(t *testing.T) {
	now := time.Now()
	// Due just past the lead so AfterFunc fires within the test.
	store := &fakeLister{tasks: []model.Task{
		{ID: "t1", Description: "standup", Status: model.StatusPending, DueDate: timePtr(now.Add(30*time.Minute + 50*time.Millisecond))},
	}}
	mail := &fakeMailer{}
	s := New(nopLogger{}, store, mail, Config{
		ScanInterval:   time.Hour,
		Lead:           30 * time.Minute,
		Window:         24 * time.Hour,
		Recipient:      "team@example.com",
		SendsPerMinute: 100,
	})

	s.scan(context.Background())

	if len(mail.subjects()) != 0 {
		t.Fatal("reminder sent before its fire time")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(mail.subjects()) == 1 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("scheduled reminder never fired, sent = %v", mail.subjects())
}

func TestScanDeduplicatesAcrossRuns(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := &fakeLister{tasks: []model.Task{
		{ID: "t1", Description: "file taxes", Status: model.StatusPending, DueDate: timePtr(now.Add(10 * time.Minute))},
	}}
	mail := &fakeMailer{}
	s := newTestScheduler(store, mail, now)

	s.scan(context.Background())
	s.scan(context.Background())

	if got := mail.subjects(); len(got) != 1 {
		t.Errorf("sent = %v, want exactly 1 reminder", got)
	}
}

func TestScanEvictsEntriesPastDue(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	due := now.Add(10 * time.Minute)
	store := &fakeLister{tasks: []model.Task{
		{ID: "t1", Description: "file taxes", Status: model.StatusPending, DueDate: timePtr(due)},
	}}
	mail := &fakeMailer{}
	s := newTestScheduler(store, mail, now)

	s.scan(context.Background())

	s.mu.Lock()
	_, tracked := s.notified["t1"]
	s.mu.Unlock()
	if !tracked {
		t.Fatal("expected t1 to be tracked after the first scan")
	}

	// Next scan runs after the due date has passed; the task no longer
	// shows up in listings and its entry must not linger.
	s.now = func() time.Time { return due.Add(time.Minute) }
	store.tasks = nil
	s.scan(context.Background())

	s.mu.Lock()
	remaining := len(s.notified)
	s.mu.Unlock()
	if remaining != 0 {
		t.Errorf("tracked entries = %d, want 0 once the due date passed", remaining)
	}
}

func TestScanRetriesFailedSend(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := &fakeLister{tasks: []model.Task{
		{ID: "t1", Description: "file taxes", Status: model.StatusPending, DueDate: timePtr(now.Add(10 * time.Minute))},
	}}
	mail := &fakeMailer{err: context.DeadlineExceeded}
	s := newTestScheduler(store, mail, now)

	s.scan(context.Background())
	mail.mu.Lock()
	mail.err = nil
	mail.mu.Unlock()
	s.scan(context.Background())

	if got := mail.subjects(); len(got) != 1 {
		t.Errorf("sent = %v, want 1 reminder after retry", got)
	}
}

func TestScanSkipsTasksWithoutDueDate(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := &fakeLister{tasks: []model.Task{
		{ID: "t1", Description: "someday", Status: model.StatusPending},
	}}
	mail := &fakeMailer{}
	s := newTestScheduler(store, mail, now)

	s.scan(context.Background())

	if got := mail.subjects(); len(got) != 0 {
		t.Errorf("sent = %v, want none", got)
	}
}
