package util

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

func isTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ShouldShowProgress は進捗表示の有無を決めます。no が最優先で、次に force、
// どちらも無ければ stdout と stderr が端末のときだけ表示します。
func ShouldShowProgress(force, no bool) bool {
	if no {
		return false
	}
	if force {
		return true
	}
	return isTTY(os.Stdout) && isTTY(os.Stderr)
}

type Progress struct {
	out     io.Writer
	total   int
	done    int
	start   time.Time
	enabled bool
}

func NewProgress(total int, enabled bool) *Progress {
	return NewProgressTo(os.Stderr, total, enabled)
}

// NewProgressTo writes the progress line to out instead of stderr.
func NewProgressTo(out io.Writer, total int, enabled bool) *Progress {
	return &Progress{out: out, total: total, start: time.Now(), enabled: enabled && out != nil}
}

// Advance marks one more file as processed.
func (p *Progress) Advance() {
	p.done++
	p.Update(p.done)
}

func (p *Progress) Update(done int) {
	if !p.enabled {
		return
	}
	elapsed := time.Since(p.start)
	eta := "-"
	if done > 0 {
		remain := time.Duration(float64(elapsed) * float64(p.total-done) / float64(done))
		eta = fmt.Sprintf("%02d:%02d:%02d", int(remain.Hours()), int(remain.Minutes())%60, int(remain.Seconds())%60)
	}
	// clear line and print
	fmt.Fprintf(p.out, "\r\033[K[progress] %d/%d (%d%%) ETA %s",
		done, p.total, percent(done, p.total), eta)
}

func (p *Progress) Done() {
	if !p.enabled {
		return
	}
	fmt.Fprint(p.out, "\r\033[K")
	p.enabled = false
}

func percent(a, b int) int {
	if b == 0 || a >= b {
		return 100
	}
	return int(float64(a) * 100 / float64(b))
}
