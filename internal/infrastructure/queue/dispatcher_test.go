package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/jeonseguard/community-api/internal/core/domain"
	"github.com/jeonseguard/community-api/internal/core/ports"
)

type recordingNewsService struct {
	mu       sync.Mutex
	keywords []string
	done     chan struct{}
}

func (s *recordingNewsService) Search(context.Context, string) (*ports.SearchResult, error) {
	return nil, nil
}

func (s *recordingNewsService) Trend(context.Context, string) ([]domain.KeywordTrend, error) {
	return nil, nil
}

func (s *recordingNewsService) Regional(context.Context) ([]domain.News, error) {
	return nil, nil
}

func (s *recordingNewsService) Refresh(_ context.Context, keyword string) error {
	s.mu.Lock()
	s.keywords = append(s.keywords, keyword)
	s.mu.Unlock()
	select {
	case s.done <- struct{}{}:
	default:
	}
	return nil
}

func TestDispatcher_EnqueueRunsRefresh(t *testing.T) {
	svc := &recordingNewsService{done: make(chan struct{}, 1)}
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue("jeonse")

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("refresh not executed")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.keywords) != 1 || svc.keywords[0] != "jeonse" {
		t.Fatalf("unexpected refreshes: %v", svc.keywords)
	}
}

func TestDispatcher_SameKeywordSameShard(t *testing.T) {
	d := NewDispatcher(4, &recordingNewsService{done: make(chan struct{}, 1)}, zerolog.Nop())

	first := d.shardIndex("jeonse")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("jeonse"); got != first {
			t.Fatalf("shard index not stable: %d vs %d", got, first)
		}
	}
}

func TestDispatcher_FullQueueDropsJob(t *testing.T) {
	svc := &recordingNewsService{done: make(chan struct{}, 1)}
	d := NewDispatcher(1, svc, zerolog.Nop())
	// Workers never started: the buffer fills and further jobs are dropped
	// without blocking the caller.
	for i := 0; i < channelBuffer+10; i++ {
		d.Enqueue("jeonse")
	}
}
