package jobs

import (
	"context"
	"log"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/caching"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/repositories"
)

const flushBatchSize = 100

// BufferFlusher drains indents parked in the Redis buffer back into
// Postgres. The tiered indent store writes to the buffer whenever the
// database is unreachable; this job runs on a schedule until the backlog
// is gone.
type BufferFlusher struct {
	cache      caching.CacheService
	indentRepo repositories.IndentRepository
}

func NewBufferFlusher(cache caching.CacheService, indentRepo repositories.IndentRepository) *BufferFlusher {
	return &BufferFlusher{
		cache:      cache,
		indentRepo: indentRepo,
	}
}

// Flush moves buffered indents into the database in batches. It stops at the
// first database failure and pushes the unwritten remainder back so nothing
// is lost; the next run retries.
func (f *BufferFlusher) Flush(ctx context.Context) (int, error) {
	flushed := 0

	for {
		indents, err := f.cache.PopIndents(ctx, flushBatchSize)
		if err != nil {
			return flushed, err
		}
		if len(indents) == 0 {
			return flushed, nil
		}

		for i, indent := range indents {
			if err := f.indentRepo.Create(ctx, indent); err != nil {
				for _, remaining := range indents[i:] {
					if pushErr := f.cache.PushIndent(ctx, remaining); pushErr != nil {
						log.Printf("ERROR: failed to re-buffer indent %s: %v", remaining.ID, pushErr)
					}
				}
				return flushed, err
			}
			flushed++
		}
	}
}

// FlushJob is the gocron entrypoint. Errors are logged, not returned, so a
// transient database outage does not unschedule the job.
func (f *BufferFlusher) FlushJob() {
	ctx := context.Background()

	length, err := f.cache.IndentBufferLen(ctx)
	if err != nil || length == 0 {
		return
	}

	flushed, err := f.Flush(ctx)
	if err != nil {
		log.Printf("WARN: indent buffer flush stopped after %d rows: %v", flushed, err)
		return
	}
	log.Printf("flushed %d buffered indents to database", flushed)
}
