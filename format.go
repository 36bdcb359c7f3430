package eduformat

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/studycraft/go-eduformat/heuristic"
	"github.com/studycraft/go-eduformat/internal"
)

// Format turns raw educational text into styled HTML markup. It never fails:
// formatting degrades through four tiers, each simpler and safer than the
// last, until the minimal tier, which cannot fail on any input.
//
// Tier 1 renders validated structured content blocks when Options carries
// them. Tier 2 is the full heuristic pipeline: analysis, line-break
// restoration, semantic classification, assembly and enrichment. Tier 3 is
// the same pipeline without enrichment or age styling. Tier 4 escapes the
// text and wraps paragraphs.
//
// A nil logger discards all log output.
func Format(rawText string, opts Options, logger *slog.Logger) string {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With(
		slog.String("package", "eduformat"),
		slog.String("function", "Format"),
	)

	content := cleanContent(rawText)

	if len(opts.ContentBlocks) > 0 {
		out, err := runTier(func() (string, error) {
			return formatStructured(opts)
		})
		if err == nil {
			return out
		}
		logger.Warn("Structured rendering failed, falling back to heuristic formatting",
			slog.String("err", err.Error()))
	}

	out, err := runTier(func() (string, error) {
		return formatFull(content, opts)
	})
	if err == nil {
		return out
	}
	logger.Warn("Full formatting failed, falling back to basic formatting",
		slog.String("err", err.Error()))

	out, err = runTier(func() (string, error) {
		return formatBasic(content, opts)
	})
	if err == nil {
		return out
	}
	logger.Error("Basic formatting failed, falling back to minimal safe output",
		slog.String("err", err.Error()))

	return minimalSafe(content)
}

// FormatBatch formats documents concurrently, bounded by opts.Concurrency
// workers, and returns results in input order. Cancellation of ctx aborts
// unstarted work; results for completed documents are still returned.
func FormatBatch(ctx context.Context, docs []Document, opts Options, logger *slog.Logger) []string {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	results := make([]string, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, concurrency)

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
			defer func() { <-sem }()

			docLogger := logger
			if docLogger != nil {
				docLogger = docLogger.With(slog.String("documentID", doc.ID))
			}
			results[i] = Format(doc.Content, opts, docLogger)
			return nil
		})
	}
	// Format never fails, so the only error here is context cancellation,
	// which the caller observes through ctx itself.
	_ = g.Wait()

	return results
}

// runTier executes one formatting tier, converting panics into errors so the
// cascade in Format can degrade instead of crashing.
func runTier(tier func() (string, error)) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("formatting tier panicked: %v", r)
		}
	}()
	return tier()
}

// formatStructured renders the caller-supplied content blocks.
func formatStructured(opts Options) (string, error) {
	if err := ValidateBlocks(opts.ContentBlocks); err != nil {
		return "", fmt.Errorf("failed to validate content blocks: %w", err)
	}
	return defaultRenderer.RenderBlocks(opts.ContentBlocks, opts), nil
}

// formatFull runs the complete heuristic pipeline with enrichment.
func formatFull(content string, opts Options) (string, error) {
	markup, err := heuristicMarkup(content, opts)
	if err != nil {
		return "", err
	}

	if len(opts.Chapters) > 0 {
		markup = structureChapters(markup, opts.Chapters)
	}
	if len(opts.Vocabulary) > 0 {
		markup = highlightVocabulary(markup, opts.Vocabulary)
	}
	if len(opts.Exercises) > 0 {
		markup = markExercises(markup, opts.Exercises)
	}

	return wrapFormatted(markup, opts.ageOrDefault()), nil
}

// formatBasic runs the heuristic pipeline with no enrichment and default
// styling. It shares nothing with the enrichment layer, so a failure there
// cannot recur here.
func formatBasic(content string, opts Options) (string, error) {
	markup, err := heuristicMarkup(content, opts)
	if err != nil {
		return "", err
	}
	return wrapFormatted(markup, AgeAdult), nil
}

// heuristicMarkup is the shared core of the full and basic tiers: analyze,
// flatten markdown, restore or normalize line structure, then assemble.
func heuristicMarkup(content string, opts Options) (string, error) {
	analysis := heuristic.Analyze(content)

	if analysis.LooksLikeMarkdown {
		content = heuristic.FlattenMarkdown(content)
		analysis = heuristic.Analyze(content)
	}

	if analysis.NeedsRestoration {
		boundaries := heuristic.DetectBoundaries(content)
		content = heuristic.RestoreLineBreaks(content, boundaries)
	} else {
		content = heuristic.Normalize(content)
	}

	return heuristic.Assemble(content, heuristic.AssembleOptions{
		IncludeIcons: !opts.DisableIcons,
		MaxSentences: opts.maxSentences(),
	}), nil
}

func wrapFormatted(markup string, age AgeGroup) string {
	return fmt.Sprintf(`<div class="formatted-doc formatted-doc-age-%s">`+"\n%s\n</div>", age, markup)
}

// minimalSafe is the last-resort tier: escape everything, wrap blank-line
// separated runs in paragraphs, and turn remaining newlines into breaks. It
// allocates a builder and calls nothing that can panic.
func minimalSafe(content string) string {
	if strings.TrimSpace(content) == "" {
		return `<div class="formatted-doc"></div>`
	}

	var b strings.Builder
	b.WriteString(`<div class="formatted-doc">`)
	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		escaped := internal.EscapeHTML(para)
		escaped = strings.ReplaceAll(escaped, "\n", "<br/>")
		b.WriteString("\n<p>" + escaped + "</p>")
	}
	b.WriteString("\n</div>")
	return b.String()
}
