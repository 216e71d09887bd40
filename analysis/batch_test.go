package analysis

import(
	"context"
	"testing"
)

func TestAnalyzeAll(t *testing.T) {
	a := testAnalyzer()
	texts := []string{nashville, "nothing", "FROM FAA OPS: NASHVILLE, TN/UAS 3 NNW AT 200 FEET"}

	for _,n := range []int{0, 1, 4} {
		out,err := a.AnalyzeAll(context.Background(), texts, n)
		if err != nil { t.Fatalf("n=%d: %v", n, err) }
		if len(out) != len(texts) { t.Fatalf("n=%d: got %d results", n, len(out)) }

		for i,timed := range out {
			if timed.Text != texts[i] {
				t.Errorf("n=%d: result %d out of order", n, i)
			}
		}
		if !out[0].Located() || out[1].Located() || !out[2].Located() {
			t.Errorf("n=%d: located flags wrong", n)
		}
	}
}

func TestAnalyzeAllCancelled(t *testing.T) {
	ctx,cancel := context.WithCancel(context.Background())
	cancel()
	if _,err := testAnalyzer().AnalyzeAll(ctx, []string{nashville}, 2); err == nil {
		t.Errorf("expected the context error")
	}
}
