package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tsawler/vitae"
	"github.com/tsawler/vitae/ocr"
	"github.com/tsawler/vitae/source"
)

// stdinName is the file name used for text read from stdin
const stdinName = "-"

// document is the CLI output for one input file
type document struct {
	File   string        `json:"file" yaml:"file"`
	Format string        `json:"format" yaml:"format"`
	Error  string        `json:"error,omitempty" yaml:"error,omitempty"`
	Review []string      `json:"review,omitempty" yaml:"review,omitempty"`
	Result *vitae.Result `json:"result,omitempty" yaml:"result,omitempty"`

	Structure *vitae.Structure `json:"structure,omitempty" yaml:"structure,omitempty"`
}

func extractCmd(a *app) *cobra.Command {
	var blocksPath string
	var format string
	var noFormatHints bool
	var noHierarchy bool
	var noSplit bool
	var jobs int

	cmd := &cobra.Command{
		Use:   "extract [files...]",
		Short: "Extract classified sections from resumes",
		Long: `Extract reads text, PDF, HTML, block JSON and (with OCR support) image
files and prints the sections of each. With no files it reads text from
stdin. --blocks supplies positioned blocks for a single text input; the
text is used when the blocks hold none.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if blocksPath != "" && len(args) > 1 {
				return errors.New("--blocks takes at most one text file")
			}
			if cmd.Flags().Changed("jobs") {
				if jobs < 1 {
					return fmt.Errorf("--jobs must be at least 1, got %d", jobs)
				}
				a.cfg.Extract.Jobs = jobs
			}
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unknown output format %q (want json or yaml)", format)
			}

			ex := vitae.New().WithConfig(a.cfg)
			if noFormatHints {
				ex = ex.WithFormatHints(false)
			}
			if noHierarchy {
				ex = ex.HierarchyAware(false)
			}
			if noSplit {
				ex = ex.SplitLargeSections(false)
			}

			var docs []document
			var err error
			if blocksPath != "" || len(args) == 0 {
				var d document
				d, err = a.extractWithBlocks(cmd, ex, blocksPath, args)
				docs = []document{d}
			} else {
				docs, err = a.extractAll(cmd.Context(), ex, args)
			}

			if werr := writeOutput(cmd.OutOrStdout(), format, docs); werr != nil {
				return werr
			}
			return err
		},
	}
	cmd.Flags().StringVar(&blocksPath, "blocks", "", "JSON file of positioned text blocks")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json|yaml")
	cmd.Flags().BoolVar(&noFormatHints, "no-format-hints", false, "ignore font size and bold")
	cmd.Flags().BoolVar(&noHierarchy, "no-hierarchy", false, "let job titles start sections")
	cmd.Flags().BoolVar(&noSplit, "no-split", false, "keep long sections whole")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "documents to process at once (default from config)")
	return cmd
}

// extractWithBlocks handles stdin and the --blocks form
func (a *app) extractWithBlocks(cmd *cobra.Command, ex *vitae.Extractor, blocksPath string, args []string) (document, error) {
	name := stdinName
	if len(args) > 0 {
		name = args[0]
	}
	doc := document{File: name, Format: source.Text.String()}

	src := &source.Document{Format: source.Text}
	if blocksPath == "" || len(args) > 0 {
		text, err := readInput(cmd, args)
		if err != nil {
			doc.Error = err.Error()
			return doc, err
		}
		src.Text = text
	}
	if blocksPath != "" {
		f, err := os.Open(blocksPath)
		if err != nil {
			doc.Error = err.Error()
			return doc, fmt.Errorf("opening blocks: %w", err)
		}
		defer f.Close()

		blocks, err := source.ReadBlocks(f)
		if err != nil {
			doc.Error = err.Error()
			return doc, err
		}
		src.Blocks = blocks.Blocks
		doc.Format = source.Blocks.String()
	}

	a.run(ex, &doc, src, a.logger.With("file", name))
	return doc, nil
}

// extractAll processes files concurrently, at most Extract.Jobs at a time.
// Output keeps the argument order. A cancelled context stops new files from
// starting; files already running finish.
func (a *app) extractAll(ctx context.Context, ex *vitae.Extractor, paths []string) ([]document, error) {
	batch := uuid.NewString()
	log := a.logger.With("batch_id", batch)
	log.Info("extracting", "files", len(paths), "jobs", a.cfg.Extract.Jobs)

	docs := make([]document, len(paths))
	errs := make([]error, len(paths))
	sem := make(chan struct{}, a.cfg.Extract.Jobs)
	var wg sync.WaitGroup

	started := 0
loop:
	for i, path := range paths {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break loop
		case sem <- struct{}{}:
		}
		started++

		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()

			flog := log.With("file", path)
			docs[i] = document{File: path}

			src, err := a.load(path)
			if err != nil {
				flog.Error("loading failed", "error", err)
				docs[i].Error = err.Error()
				errs[i] = fmt.Errorf("%s: %w", path, err)
				return
			}
			docs[i].Format = src.Format.String()
			a.run(ex, &docs[i], src, flog)
		}(i, path)
	}
	wg.Wait()

	docs = docs[:started]
	if err := ctx.Err(); err != nil {
		return docs, fmt.Errorf("extraction interrupted after %d of %d files: %w", started, len(paths), err)
	}
	return docs, errors.Join(errs...)
}

// run extracts one loaded document and flags low confidence sections
func (a *app) run(ex *vitae.Extractor, doc *document, src *source.Document, log *slog.Logger) {
	res := ex.WithLogger(log).Extract(src.Text, src.Blocks)
	doc.Result = res
	structure := res.Structure()
	doc.Structure = &structure

	for _, s := range res.Ordered() {
		if s.LowConfidence(a.cfg.Extract.LowConfidence) {
			doc.Review = append(doc.Review, s.Key)
		}
	}
	log.Info("extracted",
		"run_id", res.ID,
		"sections", len(res.Sections),
		"review", len(doc.Review),
		"missing", len(structure.Missing),
		"strategy", res.Strategy,
		"elapsed", res.Metrics.Total,
	)
}

// load reads a file through its source adapter. Images go through OCR.
func (a *app) load(path string) (*source.Document, error) {
	doc, err := source.Open(path)
	if !errors.Is(err, source.ErrUnsupportedSource) {
		return doc, err
	}

	data, rerr := os.ReadFile(path)
	if rerr != nil {
		return nil, rerr
	}
	if source.Detect(path) != source.Image && source.DetectFromMagic(data) != source.Image {
		return nil, err
	}
	return recognize(data)
}

// recognize runs OCR on a scanned page. Binaries built without the ocr tag
// return ocr.ErrOCRNotEnabled.
func recognize(data []byte) (*source.Document, error) {
	client, err := ocr.NewWithConfig(ocr.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("recognizing image: %w", err)
	}
	defer client.Close()

	blocks, err := client.RecognizeBlocks(data, 0)
	if err != nil {
		return nil, fmt.Errorf("recognizing image: %w", err)
	}
	return &source.Document{Format: source.Image, Blocks: blocks}, nil
}
