package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/caching"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/repositories"
)

// Tier labels surfaced to callers so they know which store served them.
const (
	TierRemote = "remote"
	TierLocal  = "local"
)

// IndentStore is the read/write contract both tiers implement: the remote
// store is Postgres, the local store is a Redis buffer that survives a
// database outage until the flush job drains it.
type IndentStore interface {
	Save(ctx context.Context, indent *models.IndentRecord) error
	ListByDate(ctx context.Context, date time.Time) ([]*models.IndentRecord, error)
}

type remoteIndentStore struct {
	repo repositories.IndentRepository
}

func NewRemoteIndentStore(repo repositories.IndentRepository) IndentStore {
	return &remoteIndentStore{repo: repo}
}

func (s *remoteIndentStore) Save(ctx context.Context, indent *models.IndentRecord) error {
	return s.repo.Create(ctx, indent)
}

func (s *remoteIndentStore) ListByDate(ctx context.Context, date time.Time) ([]*models.IndentRecord, error) {
	return s.repo.ListByDate(ctx, date)
}

type localIndentStore struct {
	cache caching.CacheService
}

func NewLocalIndentStore(cache caching.CacheService) IndentStore {
	return &localIndentStore{cache: cache}
}

func (s *localIndentStore) Save(ctx context.Context, indent *models.IndentRecord) error {
	return s.cache.PushIndent(ctx, indent)
}

func (s *localIndentStore) ListByDate(ctx context.Context, date time.Time) ([]*models.IndentRecord, error) {
	buffered, err := s.cache.PeekIndents(ctx)
	if err != nil {
		return nil, err
	}
	var matching []*models.IndentRecord
	for _, indent := range buffered {
		if indent.IndentDate.Equal(date) {
			matching = append(matching, indent)
		}
	}
	return matching, nil
}

// TieredIndentStore tries the remote tier first and falls back to local on
// storage failure, reporting which tier served. Caller errors (invalid
// records) are never buffered; only infrastructure failures trigger the
// fallback.
type TieredIndentStore struct {
	remote IndentStore
	local  IndentStore
}

func NewTieredIndentStore(remote, local IndentStore) *TieredIndentStore {
	return &TieredIndentStore{remote: remote, local: local}
}

func (t *TieredIndentStore) Save(ctx context.Context, indent *models.IndentRecord) (string, error) {
	err := t.remote.Save(ctx, indent)
	if err == nil {
		return TierRemote, nil
	}
	if errors.Is(err, common.ErrInvalidArgument) || errors.Is(err, common.ErrConflict) {
		return "", err
	}

	log.Printf("WARN: remote indent save failed, buffering locally: %v", err)
	if localErr := t.local.Save(ctx, indent); localErr != nil {
		// Both tiers down; surface the remote failure.
		return "", err
	}
	return TierLocal, nil
}

func (t *TieredIndentStore) ListByDate(ctx context.Context, date time.Time) ([]*models.IndentRecord, string, error) {
	indents, err := t.remote.ListByDate(ctx, date)
	if err == nil {
		return indents, TierRemote, nil
	}

	log.Printf("WARN: remote indent read failed, serving local buffer: %v", err)
	buffered, localErr := t.local.ListByDate(ctx, date)
	if localErr != nil {
		return nil, "", err
	}
	return buffered, TierLocal, nil
}
