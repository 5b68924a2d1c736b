package gui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"DirView/internal/infrastructure/filesystem"
	"DirView/internal/infrastructure/logging"
)

// newApp はテストで差し替えます
var newApp = app.New

// openWindow はアプリケーションとウィンドウを作成します。
// ドライバーの初期化に失敗すると fyne は panic するため、エラーに変換して返します
func openWindow(opts Options) (browser *Browser, err error) {
	defer func() {
		if r := recover(); r != nil {
			browser = nil
			err = fmt.Errorf("ウィンドウの初期化に失敗しました: %v", r)
		}
	}()

	a := newApp()
	window := a.NewWindow(WindowTitle)
	return NewBrowser(window, opts), nil
}

// Run はアプリケーションを作成してブラウザーを表示し、ウィンドウが閉じられるまで待機します。
// watch が true の場合、展開済みのディレクトリの変更を監視して表示に反映します
func Run(ctx context.Context, opts Options, watch bool) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop{}
		opts.Logger = logger
	}

	// ウィンドウの初期化
	browser, err := openWindow(opts)
	if err != nil {
		return err
	}

	// ディレクトリ監視の開始

	if watch {
		watcher, err := filesystem.NewWatcher(logger)
		if err != nil {
			logger.Log("WARN", "ディレクトリの監視を開始できません", err)
		} else {
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()
			defer watcher.Close()

			browser.AttachWatcher(watcher)
			go watcher.Run(ctx, func(dir string) {
				fyne.Do(func() {
					browser.OnDirectoryChanged(dir)
				})
			})
		}
	}

	logger.Log("INFO", fmt.Sprintf("ウィンドウを表示します: %s", browser.Path()), nil)
	browser.window.ShowAndRun()
	return nil
}
