package filesystem

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"DirView/internal/infrastructure/logging"
)

// Watcher は fsnotify でディレクトリの変更を監視します
type Watcher struct {
	logger logging.Logger
	fsw    *fsnotify.Watcher
}

// NewWatcher は新しい Watcher を作成します
func NewWatcher(logger logging.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("ファイル監視の初期化に失敗しました: %w", err)
	}
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Watcher{logger: logger, fsw: fsw}, nil
}

// Add はディレクトリを監視対象に追加します
func (w *Watcher) Add(path string) error {
	return w.fsw.Add(path)
}

// Remove はディレクトリを監視対象から外します
func (w *Watcher) Remove(path string) error {
	return w.fsw.Remove(path)
}

// Run はコンテキストが終了するまでイベントを待ち受け、
// 内容が変わったディレクトリのパスで onChange を呼び出します。
// onChange は監視用のゴルーチンから呼ばれます
func (w *Watcher) Run(ctx context.Context, onChange func(dir string)) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if dir, changed := changedDir(ev); changed {
				onChange(dir)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Log("WARN", "ファイル監視でエラー発生", err)
		}
	}
}

// Close は監視を終了します
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// changedDir はイベントによって一覧が変わるディレクトリを返します
func changedDir(ev fsnotify.Event) (string, bool) {
	if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Write) {
		return filepath.Dir(ev.Name), true
	}
	return "", false
}
