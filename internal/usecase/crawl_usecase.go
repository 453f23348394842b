package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/user/company-crawler/internal/crawler"
	"github.com/user/company-crawler/internal/entity"
	"github.com/user/company-crawler/internal/repository"
	"github.com/user/company-crawler/pkg/metrics"
	"github.com/user/company-crawler/pkg/utils"
)

// Failure descriptions surfaced through the progress string are bounded.
const maxProgressErrLen = 200

// Extractor is the extraction-pipeline seam; the concrete implementation
// lives in the crawler package, tests inject stubs.
type Extractor interface {
	Extract(ctx context.Context, fetcher repository.PageFetcher, url string) *entity.CompanyRecord
}

// CrawlUseCase drives crawl runs: keyword iteration, multi-source URL
// discovery, extraction dispatch, deduplication, and cooperative stop and
// count-ceiling handling. One fire-and-forget worker goroutine per run.
type CrawlUseCase struct {
	registry   *SessionRegistry
	newFetcher repository.FetcherFactory
	sources    []crawler.SourceAdapter
	extractor  Extractor

	// Optional collaborators; nil disables them.
	archive repository.RecordArchive
	visited repository.VisitedRepository

	defaultPages  int
	visitedExpiry time.Duration
}

func NewCrawlUseCase(
	registry *SessionRegistry,
	newFetcher repository.FetcherFactory,
	sources []crawler.SourceAdapter,
	extractor Extractor,
	archive repository.RecordArchive,
	visited repository.VisitedRepository,
	defaultPages int,
	visitedExpiry time.Duration,
) *CrawlUseCase {
	return &CrawlUseCase{
		registry:      registry,
		newFetcher:    newFetcher,
		sources:       sources,
		extractor:     extractor,
		archive:       archive,
		visited:       visited,
		defaultPages:  defaultPages,
		visitedExpiry: visitedExpiry,
	}
}

// Start validates the request, installs fresh run state for the session and
// spawns the worker. It returns immediately; progress is observed via
// Snapshot.
func (uc *CrawlUseCase) Start(sessionID string, keywords []string, maxCount, searchPages int) error {
	cleaned := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if k := strings.TrimSpace(keyword); k != "" {
			cleaned = append(cleaned, k)
		}
	}
	if len(cleaned) == 0 {
		return ErrNoKeywords
	}
	if searchPages <= 0 {
		searchPages = uc.defaultPages
	}

	state, err := uc.registry.Begin(sessionID, maxCount)
	if err != nil {
		return err
	}

	go uc.run(state, cleaned, searchPages)
	return nil
}

// Stop requests cooperative cancellation; the worker observes it at the next
// checkpoint.
func (uc *CrawlUseCase) Stop(sessionID string) error {
	return uc.registry.Stop(sessionID)
}

func (uc *CrawlUseCase) Snapshot(sessionID string) entity.RunSnapshot {
	return uc.registry.Snapshot(sessionID)
}

func (uc *CrawlUseCase) Results(sessionID string) []entity.CompanyRecord {
	return uc.registry.Results(sessionID)
}

func (uc *CrawlUseCase) run(state *RunState, keywords []string, searchPages int) {
	defer close(state.done)

	metrics.RunsActive.Inc()
	defer metrics.RunsActive.Dec()

	ctx := context.Background()
	state.setProgress("크롤링 시작...")

	fetcher, err := uc.newFetcher()
	if err != nil {
		slog.Error("page fetcher initialization failed", "session", state.sessionID, "error", err)
		state.fail("크롤링 실패: " + truncateErr(err))
		return
	}
	defer fetcher.Close()

	pool := uc.discover(ctx, state, fetcher, keywords, searchPages)
	state.setProgress(fmt.Sprintf("총 %d개 사이트 발견. 정보 수집 중...", len(pool)))

	dedup := crawler.NewDeduper()
	for i, candidate := range pool {
		if state.stopObserved() {
			break
		}
		if state.ceilingReached() {
			break
		}
		state.setProgress(fmt.Sprintf("정보 수집 중... (%d/%d)", i+1, len(pool)))

		if uc.recentlyVisited(ctx, candidate) {
			slog.Debug("skipping recently visited candidate", "url", candidate)
			continue
		}

		start := time.Now()
		record := uc.extractor.Extract(ctx, fetcher, candidate)
		metrics.ExtractDuration.WithLabelValues(utils.Hostname(candidate)).Observe(time.Since(start).Seconds())

		if dedup.Accept(record) {
			metrics.CandidatesProcessed.WithLabelValues("accepted").Inc()
			state.appendResult(*record)
			uc.archiveRecord(ctx, state.sessionID, record)
		} else {
			metrics.CandidatesProcessed.WithLabelValues("duplicate").Inc()
			slog.Debug("duplicate record rejected", "url", record.URL)
		}

		uc.markVisited(ctx, candidate)
	}

	if state.stopObserved() {
		slog.Info("crawl run stopped", "session", state.sessionID, "accepted", state.count())
		state.complete(fmt.Sprintf("중지됨. %d개 회사 정보 수집", state.count()))
		return
	}
	slog.Info("crawl run completed", "session", state.sessionID, "accepted", state.count())
	state.complete(fmt.Sprintf("완료! %d개 회사 정보 수집", state.count()))
}

// discover unions every enabled source's findings per keyword into one pool,
// deduplicated by normalized URL, preserving first-discovery order.
func (uc *CrawlUseCase) discover(ctx context.Context, state *RunState, fetcher repository.PageFetcher, keywords []string, searchPages int) []string {
	seen := make(map[string]struct{})
	var pool []string

	for i, keyword := range keywords {
		if state.stopObserved() {
			break
		}
		state.setProgress(fmt.Sprintf("'%s' 검색 중... (%d/%d)", keyword, i+1, len(keywords)))

		query := crawler.SourceQuery{
			Keyword:   keyword,
			PageStart: 1,
			PageEnd:   searchPages,
		}
		for _, source := range uc.sources {
			urls := source.Discover(ctx, fetcher, query)
			slog.Debug("source finished", "source", source.Name(), "keyword", keyword, "urls", len(urls))
			for _, u := range urls {
				key := utils.NormalizeURL(u)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				pool = append(pool, u)
			}
		}
	}

	metrics.CandidatesDiscovered.Add(float64(len(pool)))
	return pool
}

func (uc *CrawlUseCase) recentlyVisited(ctx context.Context, url string) bool {
	if uc.visited == nil {
		return false
	}
	visited, err := uc.visited.IsVisited(ctx, url)
	if err != nil {
		slog.Warn("visited-cache lookup failed", "url", url, "error", err)
		return false
	}
	return visited
}

func (uc *CrawlUseCase) markVisited(ctx context.Context, url string) {
	if uc.visited == nil {
		return
	}
	if err := uc.visited.MarkVisited(ctx, url, uc.visitedExpiry); err != nil {
		slog.Warn("failed to mark candidate as visited", "url", url, "error", err)
	}
}

func (uc *CrawlUseCase) archiveRecord(ctx context.Context, sessionID string, record *entity.CompanyRecord) {
	if uc.archive == nil {
		return
	}
	if err := uc.archive.Save(ctx, sessionID, record); err != nil {
		// Archiving is best-effort; the in-memory result list is the source
		// of truth for the client.
		slog.Warn("failed to archive record", "url", record.URL, "error", err)
	}
}

func truncateErr(err error) string {
	runes := []rune(err.Error())
	if len(runes) > maxProgressErrLen {
		runes = runes[:maxProgressErrLen]
	}
	return string(runes)
}
