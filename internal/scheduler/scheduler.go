// Package scheduler fires a job once per day at a fixed wall-clock time in a
// pinned timezone. Missed triggers are not backfilled.
package scheduler

import (
	"context"
	"log"
	"time"
)

type Job func(ctx context.Context) error

type Daily struct {
	hour   int
	minute int
	loc    *time.Location
	job    Job

	// now is injectable so tests can exercise the trigger math directly.
	now func() time.Time
}

func NewDaily(hour, minute int, loc *time.Location, job Job) *Daily {
	if loc == nil {
		loc = time.UTC
	}
	return &Daily{
		hour:   hour,
		minute: minute,
		loc:    loc,
		job:    job,
		now:    time.Now,
	}
}

// nextRun returns the next trigger strictly after t.
func (d *Daily) nextRun(t time.Time) time.Time {
	t = t.In(d.loc)
	next := time.Date(t.Year(), t.Month(), t.Day(), d.hour, d.minute, 0, 0, d.loc)
	if !next.After(t) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Start launches the trigger loop. It returns immediately; cancel ctx to stop.
func (d *Daily) Start(ctx context.Context) {
	go d.loop(ctx)
	log.Printf("scheduler: daily job armed for %02d:%02d %s", d.hour, d.minute, d.loc)
}

func (d *Daily) loop(ctx context.Context) {
	for {
		next := d.nextRun(d.now())
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Println("scheduler: stopped")
			return
		case <-timer.C:
			d.runOnce(ctx)
		}
	}
}

// runOnce executes the job fire-and-forget: any error or panic is logged
// and swallowed so the host process and tomorrow's trigger survive.
func (d *Daily) runOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("scheduler: job panicked: %v", r)
		}
	}()
	if err := d.job(ctx); err != nil {
		log.Printf("scheduler: job failed: %v", err)
	}
}
