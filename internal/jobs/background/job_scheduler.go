package background

import (
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/hibiken/asynq"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/jobs"
)

// JobScheduler runs the recurring background work: draining the Redis indent
// buffer and enqueueing the previous month's report export after month end.
type JobScheduler struct {
	scheduler   gocron.Scheduler
	flusher     *jobs.BufferFlusher
	asynqClient *asynq.Client
	jobsByName  map[string]gocron.Job
	mu          sync.RWMutex
}

func NewJobScheduler(flusher *jobs.BufferFlusher, asynqClient *asynq.Client) *JobScheduler {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	js := &JobScheduler{
		scheduler:   scheduler,
		flusher:     flusher,
		asynqClient: asynqClient,
		jobsByName:  make(map[string]gocron.Job),
	}

	js.registerJobs()

	return js
}

// Start starts the job scheduler
func (js *JobScheduler) Start() error {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
	return nil
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	// Buffer flush - every minute so outage backlogs clear quickly
	flushJob, err := js.scheduler.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(js.flusher.FlushJob),
		gocron.WithName("indent-buffer-flush"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create buffer flush job: %v", err)
	} else {
		js.jobsByName["buffer-flush"] = flushJob
	}

	// Previous-month report export - 02:00 on the 1st of every month
	reportJob, err := js.scheduler.NewJob(
		gocron.CronJob("0 2 1 * *", false),
		gocron.NewTask(js.enqueueMonthlyReport),
		gocron.WithName("monthly-report-export"),
	)
	if err != nil {
		log.Printf("Failed to create monthly report job: %v", err)
	} else {
		js.jobsByName["monthly-report"] = reportJob
	}

	log.Printf("Registered %d background jobs", len(js.jobsByName))
}

// enqueueMonthlyReport queues the export of the month that just ended.
func (js *JobScheduler) enqueueMonthlyReport() {
	prev := time.Now().AddDate(0, -1, 0)
	month, year := int(prev.Month()), prev.Year()

	task, err := jobs.NewMonthlyReportTask(month, year)
	if err != nil {
		log.Printf("Failed to build monthly report task: %v", err)
		return
	}

	info, err := js.asynqClient.Enqueue(task, asynq.MaxRetry(5), asynq.Timeout(5*time.Minute))
	if err != nil {
		log.Printf("Failed to enqueue monthly report for %04d-%02d: %v", year, month, err)
		return
	}
	log.Printf("Enqueued monthly report export for %04d-%02d (task %s)", year, month, info.ID)
}

// GetJobStatus returns information about scheduled jobs
func (js *JobScheduler) GetJobStatus() map[string]interface{} {
	js.mu.RLock()
	defer js.mu.RUnlock()

	names := make([]string, 0, len(js.jobsByName))
	for name := range js.jobsByName {
		names = append(names, name)
	}

	return map[string]interface{}{
		"total_jobs": len(js.jobsByName),
		"jobs":       names,
	}
}
