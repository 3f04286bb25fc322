package chart

import (
	"bytes"
	"context"
	"errors"
	"sync"

	"github.com/huangsam/maturity/schema"
	"golang.org/x/sync/errgroup"
)

// RenderAll renders every chart of the report as PNG concurrently. Charts
// with nothing to draw are left out of the result.
func RenderAll(ctx context.Context, report *schema.Report, size Size) (map[Kind][]byte, error) {
	var mu sync.Mutex
	images := make(map[Kind][]byte, len(AllKinds))

	g, ctx := errgroup.WithContext(ctx)
	for _, kind := range AllKinds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := Render(kind, report)
			if errors.Is(err, ErrNoQuestions) || errors.Is(err, ErrNoPoints) {
				return nil
			}
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := WritePNG(&buf, p, size); err != nil {
				return err
			}
			mu.Lock()
			images[kind] = buf.Bytes()
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}
