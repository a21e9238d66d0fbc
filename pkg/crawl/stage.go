package crawl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/autodiag/refinery/ent"
	"github.com/autodiag/refinery/ent/crawlrequest"
	"github.com/autodiag/refinery/ent/document"
	"github.com/autodiag/refinery/pkg/blobstore"
	"github.com/autodiag/refinery/pkg/config"
	"github.com/autodiag/refinery/pkg/database"
	"github.com/autodiag/refinery/pkg/jobqueue"
	"github.com/autodiag/refinery/pkg/pipeline"
)

// minTextLength is the smallest extracted text worth pipelining. Pages
// below it are junk (error pages, redirects, placeholder bodies).
const minTextLength = 50

// Stage turns crawl requests into pipeline documents: fetch the page,
// extract its text, store the raw text in the blob store, register the
// document, and follow same-domain links one level deeper.
type Stage struct {
	db       *database.Client
	queue    *jobqueue.Client
	blobs    *blobstore.Store
	fetcher  *Fetcher
	recorder *pipeline.Recorder
	maxDepth int
}

// NewStage builds the crawl stage.
func NewStage(db *database.Client, queue *jobqueue.Client, blobs *blobstore.Store,
	cfg *config.PipelineConfig) *Stage {
	return &Stage{
		db:       db,
		queue:    queue,
		blobs:    blobs,
		fetcher:  NewFetcher(30*time.Second, cfg.FetchRetries, cfg.FetchRetryDelay),
		recorder: pipeline.NewRecorder(db),
		maxDepth: cfg.MaxCrawlDepth,
	}
}

// Name implements pipeline.Stage.
func (s *Stage) Name() string { return "crawl" }

// Queue implements pipeline.Stage.
func (s *Stage) Queue() string { return jobqueue.QueueCrawl }

// Process handles one crawl request. The job ID is a crawl request ID,
// not a document ID; the document is born here.
func (s *Stage) Process(ctx context.Context, jobID string) error {
	req, err := s.db.CrawlRequest.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return pipeline.Fatalf("crawl request %s not found", jobID)
		}
		return fmt.Errorf("failed to load crawl request %s: %w", jobID, err)
	}

	// Replayed job for a settled request: nothing to do.
	if req.Status == crawlrequest.StatusCompleted || req.Status == crawlrequest.StatusFailed {
		return nil
	}

	if err := req.Update().SetStatus(crawlrequest.StatusActive).Exec(ctx); err != nil {
		return fmt.Errorf("failed to activate crawl request %s: %w", jobID, err)
	}

	body, contentType, err := s.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		s.failRequest(ctx, req, err)
		return pipeline.Fatal(fmt.Errorf("fetch failed for %s: %w", req.URL, err))
	}

	if !supportedContentType(contentType, body) {
		s.failRequest(ctx, req, fmt.Errorf("unsupported content type %q for %s", contentType, req.URL))
		return pipeline.Fatalf("unsupported content type %q for %s", contentType, req.URL)
	}

	title, text, links := s.extractContent(body, contentType, req.URL)
	if len(strings.TrimSpace(text)) < minTextLength {
		s.failRequest(ctx, req, fmt.Errorf("page %s: extracted text too short", req.URL))
		return pipeline.Fatalf("page %s: extracted text too short", req.URL)
	}

	docID, created, err := s.registerDocument(ctx, req, title, text, contentType)
	if err != nil {
		return err
	}
	if created {
		s.recorder.Completed(ctx, docID, s.Name(),
			fmt.Sprintf("crawled %s (%d bytes)", req.URL, len(text)), 0)
		if err := s.queue.Push(ctx, jobqueue.QueueChunk, docID); err != nil {
			// Stage column already committed as pending; the reaper
			// re-enqueues if this push is lost.
			slog.Warn("Failed to enqueue chunk job", "document_id", docID, "error", err)
		}
	}

	s.followLinks(ctx, req, links)

	now := time.Now()
	if err := req.Update().
		SetStatus(crawlrequest.StatusCompleted).
		SetCompletedAt(now).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to complete crawl request %s: %w", jobID, err)
	}
	return nil
}

// extractContent parses HTML bodies; anything else is treated as plain
// text with no links.
func (s *Stage) extractContent(body []byte, contentType, pageURL string) (title, text string, links []string) {
	if strings.Contains(contentType, "text/html") || looksLikeHTML(body) {
		page, err := ParsePage(body, pageURL)
		if err == nil {
			return page.Title, page.Text, page.Links
		}
		slog.Warn("HTML parse failed, falling back to raw text", "url", pageURL, "error", err)
	}
	return "", string(body), nil
}

// registerDocument stores the raw text and creates the document row.
// Returns created=false when a document with identical content already
// exists.
func (s *Stage) registerDocument(ctx context.Context, req *ent.CrawlRequest,
	title, text, contentType string) (string, bool, error) {

	hash := sha256.Sum256([]byte(text))
	contentHash := hex.EncodeToString(hash[:])

	exists, err := s.db.Document.Query().
		Where(document.ContentHashEQ(contentHash)).
		Exist(ctx)
	if err != nil {
		return "", false, fmt.Errorf("failed to check content hash: %w", err)
	}
	if exists {
		slog.Info("Duplicate content, skipping document", "url", req.URL)
		return "", false, nil
	}

	docID := uuid.NewString()
	blobKey := fmt.Sprintf("raw/%s.txt", docID)
	if err := s.blobs.Put(ctx, blobKey, []byte(text), "text/plain; charset=utf-8"); err != nil {
		return "", false, fmt.Errorf("failed to store raw text: %w", err)
	}

	mimeType := "text/plain"
	if strings.Contains(contentType, "text/html") {
		mimeType = "text/html"
	}

	create := s.db.Document.Create().
		SetID(docID).
		SetTitle(deriveTitle(title, text, req.URL)).
		SetSourceURL(req.URL).
		SetContentHash(contentHash).
		SetMimeType(mimeType).
		SetBlobBucket(s.blobs.Bucket()).
		SetBlobKey(blobKey).
		SetProcessingStage(document.ProcessingStageChunking)
	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Lost the race to an identical page fetched concurrently.
			_ = s.blobs.Delete(ctx, blobKey)
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to create document: %w", err)
	}
	return docID, true, nil
}

// followLinks registers child crawl requests while depth allows. URLs
// already requested are skipped via the unique constraint.
func (s *Stage) followLinks(ctx context.Context, req *ent.CrawlRequest, links []string) {
	if req.Depth >= min(req.MaxDepth, s.maxDepth) {
		return
	}
	for _, link := range links {
		childID := uuid.NewString()
		err := s.db.CrawlRequest.Create().
			SetID(childID).
			SetURL(link).
			SetDepth(req.Depth + 1).
			SetMaxDepth(req.MaxDepth).
			SetParentURL(req.URL).
			Exec(ctx)
		if err != nil {
			if !ent.IsConstraintError(err) {
				slog.Warn("Failed to create child crawl request", "url", link, "error", err)
			}
			continue
		}
		if err := s.queue.Push(ctx, jobqueue.QueueCrawl, childID); err != nil {
			slog.Warn("Failed to enqueue child crawl request", "url", link, "error", err)
		}
	}
}

func (s *Stage) failRequest(ctx context.Context, req *ent.CrawlRequest, cause error) {
	now := time.Now()
	if err := req.Update().
		SetStatus(crawlrequest.StatusFailed).
		SetErrorMessage(cause.Error()).
		SetCompletedAt(now).
		Exec(ctx); err != nil {
		slog.Error("Failed to mark crawl request failed", "crawl_request_id", req.ID, "error", err)
	}
}

// deriveTitle falls back from the page title to the first non-empty text
// line, then to the URL.
func deriveTitle(pageTitle, text, pageURL string) string {
	if t := strings.TrimSpace(pageTitle); t != "" {
		return t
	}
	for _, line := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			return t
		}
	}
	return pageURL
}

// supportedContentType accepts HTML and plain text; everything else
// (PDFs, images, archives) fails the request permanently.
func supportedContentType(contentType string, body []byte) bool {
	if strings.Contains(contentType, "text/html") || strings.Contains(contentType, "text/plain") {
		return true
	}
	return contentType == "" && looksLikeHTML(body)
}

func looksLikeHTML(body []byte) bool {
	head := strings.ToLower(string(body[:min(len(body), 512)]))
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html")
}
