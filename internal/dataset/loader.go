package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"agendas-mcp/internal/stats"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ErrNoSources is returned when a loader has nothing to read.
var ErrNoSources = errors.New("no dataset source configured")

// LoaderConfig tunes retries and decoding.
type LoaderConfig struct {
	MaxAttempts    int
	RetryDelay     time.Duration
	AttemptTimeout time.Duration
	Strict         bool
	Vocabulary     Vocabulary
}

// Result is the outcome of a successful load.
type Result struct {
	Records []stats.Record
	Sources []string
	Meta    []Meta
}

// Loader reads every configured source and concatenates their records in configured order.
type Loader struct {
	cfg     LoaderConfig
	sources []Source
}

// NewLoader creates a loader. Zero values fall back to one attempt and the default vocabulary.
func NewLoader(sources []Source, cfg LoaderConfig) *Loader {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.Vocabulary.SlotStates == nil && cfg.Vocabulary.Outcomes == nil {
		cfg.Vocabulary = DefaultVocabulary()
	}
	return &Loader{cfg: cfg, sources: sources}
}

// Load fetches all sources concurrently. Any failing source fails the whole load.
func (l *Loader) Load(ctx context.Context) (*Result, error) {
	if len(l.sources) == 0 {
		return nil, ErrNoSources
	}

	docs := make([]*Document, len(l.sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range l.sources {
		g.Go(func() error {
			doc, err := l.loadWithRetry(gctx, src)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{}
	for i, doc := range docs {
		res.Records = append(res.Records, doc.Records(l.cfg.Vocabulary)...)
		res.Sources = append(res.Sources, l.sources[i].Name())
		if doc.Meta != nil {
			res.Meta = append(res.Meta, *doc.Meta)
		}
	}
	return res, nil
}

func (l *Loader) loadWithRetry(ctx context.Context, src Source) (*Document, error) {
	var lastErr error
	for attempt := 1; attempt <= l.cfg.MaxAttempts; attempt++ {
		doc, err := l.loadOnce(ctx, src)
		if err == nil {
			log.Info().Str("source", src.Name()).Int("records", len(doc.Dados)).Int("attempt", attempt).Msg("Loaded dataset document")
			return doc, nil
		}
		lastErr = err
		log.Warn().Err(err).Str("source", src.Name()).Int("attempt", attempt).Int("maxAttempts", l.cfg.MaxAttempts).Msg("Dataset load attempt failed")

		if attempt == l.cfg.MaxAttempts || ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("load %s: %w", src.Name(), ctx.Err())
		case <-time.After(l.cfg.RetryDelay):
		}
	}
	return nil, fmt.Errorf("load %s after %d attempt(s): %w", src.Name(), l.cfg.MaxAttempts, lastErr)
}

func (l *Loader) loadOnce(ctx context.Context, src Source) (*Document, error) {
	if l.cfg.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.cfg.AttemptTimeout)
		defer cancel()
	}

	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Decode(data, l.cfg.Strict)
}

// Decode parses a document. With strict set the document is validated against Schema first.
func Decode(data []byte, strict bool) (*Document, error) {
	if strict {
		if err := Validate(data); err != nil {
			return nil, err
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if doc.Dados == nil {
		return nil, errors.New("decode dataset: missing \"dados\" array")
	}
	return &doc, nil
}
