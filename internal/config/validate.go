package config

import (
	"fmt"
	"strings"

	engineopts "github.com/phyten/aliasfix/internal/engine/opts"
	"github.com/phyten/aliasfix/internal/termcolor"
)

// NormalizeUI は UI 設定を正規化し、不正な値を報告します。
func NormalizeUI(values UISettings) (UISettings, error) {
	var err error
	values.Report = strings.TrimSpace(values.Report)
	values.Output, err = engineopts.NormalizeOutput(values.Output)
	if err != nil {
		return values, err
	}
	mode, err := termcolor.ParseMode(values.Color)
	if err != nil {
		return values, err
	}
	values.Color = mode.String()
	if values.Open && values.Report == "" {
		return values, fmt.Errorf("open requires a report file")
	}
	return values, nil
}
