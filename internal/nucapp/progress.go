// internal/nucapp/progress.go
package nucapp

import (
	"io"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// progressObserver adapts the aligner's (done, total) callback to a
// terminal progress bar. The callback arrives from worker goroutines, so
// updates are serialized; the bar is created lazily on the first call and
// rebuilt if the total changes between query files.
type progressObserver struct {
	mu    sync.Mutex
	out   io.Writer
	bar   *progressbar.ProgressBar
	total int
}

func newProgressObserver(out io.Writer) *progressObserver {
	return &progressObserver{out: out}
}

func (p *progressObserver) update(done, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bar == nil || total != p.total {
		p.total = total
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(p.out),
			progressbar.OptionSetDescription("aligning"),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionShowCount(),
		)
	}
	_ = p.bar.Set(done)
}
