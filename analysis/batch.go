package analysis

import(
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Timed is a result plus how long it took to compute.
type Timed struct {
	Result
	Elapsed time.Duration
}

// {{{ a.AnalyzeAll

// AnalyzeAll runs Analyze over every text, at most n at a time (n<=0 means one at a time).
// Results come back in input order. The only error is the context's.
func (a *Analyzer)AnalyzeAll(ctx context.Context, texts []string, n int) ([]Timed, error) {
	if n <= 0 { n = 1 }
	out := make([]Timed, len(texts))

	g,gctx := errgroup.WithContext(ctx)
	g.SetLimit(n)

	for i,_ := range texts {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil { return err }
			tStart := time.Now()
			out[i] = Timed{Result: a.Analyze(texts[i])}
			out[i].Elapsed = time.Since(tStart)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
