package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"smart-task-api/internal/model"
	"smart-task-api/internal/task/repository"
	"smart-task-api/pkg/log"
	"smart-task-api/pkg/mailer"
)

// TaskLister is the subset of the task repository the scheduler reads from.
type TaskLister interface {
	ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error)
}

type Config struct {
	// ScanInterval is how often upcoming tasks are re-read from the store.
	ScanInterval time.Duration
	// Lead is how long before the due date the reminder fires.
	Lead time.Duration
	// Window bounds how far ahead a scan looks for due tasks.
	Window time.Duration
	// Recipient receives all reminder mail.
	Recipient string
	// SendsPerMinute caps outgoing mail.
	SendsPerMinute int
}

func (c Config) withDefaults() Config {
	if c.ScanInterval <= 0 {
		c.ScanInterval = 30 * time.Minute
	}
	if c.Lead <= 0 {
		c.Lead = 30 * time.Minute
	}
	if c.Window <= 0 {
		c.Window = 24 * time.Hour
	}
	if c.SendsPerMinute <= 0 {
		c.SendsPerMinute = 10
	}
	return c
}

// Scheduler periodically scans for pending tasks coming due and sends one
// reminder email per task, Lead before the due date.
type Scheduler struct {
	l       log.Logger
	store   TaskLister
	mail    mailer.Mailer
	cfg     Config
	limiter *rate.Limiter

	mu       sync.Mutex
	notified map[string]time.Time // task ID -> due date, pruned once the due date passes

	now func() time.Time
}

func New(l log.Logger, store TaskLister, mail mailer.Mailer, cfg Config) *Scheduler {
	cfg = cfg.withDefaults()
	return &Scheduler{
		l:        l,
		store:    store,
		mail:     mail,
		cfg:      cfg,
		limiter:  rate.NewLimiter(rate.Limit(float64(cfg.SendsPerMinute)/60.0), cfg.SendsPerMinute),
		notified: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Start runs the scan loop until ctx is cancelled. An initial scan happens
// immediately.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.cfg.ScanInterval)
		defer ticker.Stop()

		s.scan(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.scan(ctx)
			}
		}
	}()
}

// scan reads pending tasks due within the window and schedules a reminder
// for each one not already handled.
func (s *Scheduler) scan(ctx context.Context) {
	now := s.now()
	from := now
	to := now.Add(s.cfg.Window)

	s.evictExpired(now)

	tasks, _, err := s.store.ListTasks(ctx, repository.ListTasksOptions{
		Status:  string(model.StatusPending),
		DueFrom: &from,
		DueTo:   &to,
		Limit:   500,
		SortBy:  "due_date",
	})
	if err != nil {
		s.l.Errorf(ctx, "reminder: scan failed: %v", err)
		return
	}

	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		if !s.markNotified(t.ID, *t.DueDate) {
			continue
		}

		fireAt := t.DueDate.Add(-s.cfg.Lead)
		delay := fireAt.Sub(now)
		if delay <= 0 {
			s.send(ctx, t)
			continue
		}

		t := t
		time.AfterFunc(delay, func() {
			if ctx.Err() != nil {
				return
			}
			s.send(ctx, t)
		})
	}
}

func (s *Scheduler) send(ctx context.Context, t model.Task) {
	if !s.limiter.Allow() {
		s.l.Warnf(ctx, "reminder: rate limit reached, skipping task %s", t.ID)
		s.unmarkNotified(t.ID)
		return
	}

	subject := fmt.Sprintf("Reminder: %s", t.Description)
	body := fmt.Sprintf("Task %q is due at %s.", t.Description, t.DueDate.Format(time.RFC1123))
	if err := s.mail.Send(s.cfg.Recipient, subject, body); err != nil {
		s.l.Errorf(ctx, "reminder: send for task %s failed: %v", t.ID, err)
		s.unmarkNotified(t.ID)
		return
	}
	s.l.Infof(ctx, "reminder: sent for task %s", t.ID)
}

// markNotified records the task as handled. Returns false when a reminder
// was already scheduled or sent for it.
func (s *Scheduler) markNotified(id string, due time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notified[id]; ok {
		return false
	}
	s.notified[id] = due
	return true
}

// evictExpired drops entries whose due date has passed. Scans only look at
// tasks due from now onward, so an expired entry can no longer suppress a
// reminder, it just holds memory.
func (s *Scheduler) evictExpired(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, due := range s.notified {
		if due.Before(now) {
			delete(s.notified, id)
		}
	}
}

// unmarkNotified lets a failed send be retried on a later scan.
func (s *Scheduler) unmarkNotified(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.notified, id)
}
