package model

import "strings"

// ScanContext は走査中の文字位置が属する字句コンテキストを表します。
type ScanContext int

const (
	ContextCode ScanContext = iota
	ContextLineComment
	ContextBlockComment
	ContextString
	ContextMacro
)

func (c ScanContext) String() string {
	switch c {
	case ContextLineComment:
		return "line-comment"
	case ContextBlockComment:
		return "block-comment"
	case ContextString:
		return "string"
	case ContextMacro:
		return "macro"
	default:
		return "code"
	}
}

// Document は 1 ファイル分の行列です。各行は改行文字を保持します。
type Document struct {
	Path  string
	Lines []string
}

// NewDocument は text を改行単位で分割して Document を作ります。
// 改行コードは各行の末尾に残り、最終行は改行を持たない場合があります。
func NewDocument(path, text string) Document {
	if text == "" {
		return Document{Path: path}
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return Document{Path: path, Lines: lines}
}

// Text は行を連結して元のテキストを返します。
func (d Document) Text() string {
	return strings.Join(d.Lines, "")
}

// Occurrence はコード中で確定したエイリアスの出現 1 件を表します。
//
// Row と Column は 1 始まりで、Column はタブ展開 (幅 4) 後の行における
// 先頭文字の位置です。Offset は生の行におけるバイトオフセットです。
type Occurrence struct {
	Alias     string `json:"alias"`
	Canonical string `json:"canonical"`
	Row       int    `json:"row"`
	Column    int    `json:"column"`
	Offset    int    `json:"-"`
	InEnum    bool   `json:"in_enum,omitempty"`
}

// Change は書き換えで内容が変わった 1 行を表します。
type Change struct {
	Row int    `json:"row"`
	Old string `json:"old"`
	New string `json:"new"`
}
