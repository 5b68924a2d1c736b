// Package ui はユーザーインターフェース機能を提供します
package ui

import (
	"fmt"

	"github.com/sqweek/dialog"

	"DirView/internal/infrastructure/logging"
)

// ErrorReporter は起動時のエラーをログに記録し、メッセージボックスで通知します
type ErrorReporter struct {
	logger logging.Logger
	// show はメッセージボックスを表示する関数です
	show func(title, message string)
}

// NewErrorReporter は新しい ErrorReporter インスタンスを作成します
func NewErrorReporter(logger logging.Logger) *ErrorReporter {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &ErrorReporter{logger: logger, show: showErrorBox}
}

// Report は err をログに記録してダイアログで表示します。err が nil の場合は何もしません
func (r *ErrorReporter) Report(title string, err error) {
	if err == nil {
		return
	}
	r.logger.Log("ERROR", title, err)
	r.show(title, fmt.Sprintf("エラー: %v", err))
}

func showErrorBox(title, message string) {
	dialog.Message("%s", message).Title(title).Error()
}
