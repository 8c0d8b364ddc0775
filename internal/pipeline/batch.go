package pipeline

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-importer/internal/types"
)

// ParseMultipleResumes parses each file through the single-file pipeline
// independently across a bounded worker pool. One file's failure never aborts
// the others, and results are returned in input order regardless of
// completion order.
func (p *Parser) ParseMultipleResumes(ctx context.Context, files []types.FileUpload, opts types.ParseOptions) []types.ParseResult {
	results := make([]types.ParseResult, len(files))
	if len(files) == 0 {
		return results
	}

	workers := runtime.GOMAXPROCS(0)
	if len(files) < workers {
		workers = len(files)
	}

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for i := range files {
		i := i
		g.Go(func() error {
			results[i] = p.parseWithTimeout(ctx, files[i], opts)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// parseWithTimeout runs one parse under the per-file deadline. A pathological
// document degrades to a timeout failure result instead of stalling the
// batch.
func (p *Parser) parseWithTimeout(ctx context.Context, file types.FileUpload, opts types.ParseOptions) types.ParseResult {
	timeout := p.FileTimeout
	if timeout <= 0 {
		timeout = DefaultFileTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan types.ParseResult, 1)
	go func() {
		done <- p.ParseResume(ctx, file, opts)
	}()

	select {
	case result := <-done:
		return result
	case <-ctx.Done():
		return failureResult("file",
			fmt.Sprintf("timeout: parsing %s exceeded %s", file.Filename, timeout))
	}
}
