package util

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestPercentは100を上限とする(t *testing.T) {
	if got := percent(5, 4); got != 100 {
		t.Fatalf("5/4 は 100%% として扱うべきです: got=%d", got)
	}
	if got := percent(1, 4); got != 25 {
		t.Fatalf("1/4 は 25%% のはずです: got=%d", got)
	}
	if got := percent(0, 0); got != 100 {
		t.Fatalf("総数 0 は 100%% 扱いです: got=%d", got)
	}
}

func TestProgressAdvanceは件数を書き出す(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressTo(&buf, 2, true)
	p.Advance()
	if !strings.Contains(buf.String(), "[progress] 1/2 (50%)") {
		t.Fatalf("進捗行が想定外です: %q", buf.String())
	}
	p.Advance()
	p.Done()
	if !strings.HasSuffix(buf.String(), "\r\033[K") {
		t.Fatalf("Done は行を消去するべきです: %q", buf.String())
	}
	n := buf.Len()
	p.Advance()
	p.Done()
	if buf.Len() != n {
		t.Fatal("Done の後は何も書き込まないはずです")
	}
}

func TestProgress無効時は何も書かない(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressTo(&buf, 3, false)
	p.Advance()
	p.Done()
	if buf.Len() != 0 {
		t.Fatalf("無効な進捗は出力しないはずです: %q", buf.String())
	}
}

func TestShouldShowProgressの優先順位(t *testing.T) {
	if ShouldShowProgress(true, true) {
		t.Fatal("no が force より優先されるべきです")
	}
	if !ShouldShowProgress(true, false) {
		t.Fatal("force で表示されるべきです")
	}
}

func TestWaitForKeyはパイプから1行読む(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer func() {
		_ = r.Close()
	}()
	if _, err := w.WriteString("\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	_ = w.Close()

	var out bytes.Buffer
	if err := WaitForKey(r, &out); err != nil {
		t.Fatalf("WaitForKey: %v", err)
	}
	if out.String() != PausePrompt+"\n" {
		t.Fatalf("プロンプトが想定外です: %q", out.String())
	}
}

func TestWaitForKeyはEOFで戻る(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	_ = w.Close()
	defer func() {
		_ = r.Close()
	}()
	if err := WaitForKey(r, nil); err != nil {
		t.Fatalf("EOF はエラーにしないはずです: %v", err)
	}
}
