package gui

import (
	"fyne.io/fyne/v2"

	"DirView/internal/infrastructure/config"
)

// DisplaySizer は利用可能な画面サイズを提供します
type DisplaySizer interface {
	// AvailableSize は利用可能な画面サイズを返します。取得できない場合は false です
	AvailableSize() (fyne.Size, bool)
}

// FixedDisplay は固定の画面サイズを返します
type FixedDisplay struct {
	Size fyne.Size
}

// AvailableSize は幅と高さが正の場合にサイズを返します
func (d FixedDisplay) AvailableSize() (fyne.Size, bool) {
	if d.Size.Width <= 0 || d.Size.Height <= 0 {
		return fyne.Size{}, false
	}
	return d.Size, true
}

// NoDisplay は画面サイズを取得できない環境を表します
type NoDisplay struct{}

// AvailableSize は常に false を返します
func (NoDisplay) AvailableSize() (fyne.Size, bool) {
	return fyne.Size{}, false
}

// DisplayFromConfig は設定に画面サイズがあればそれを返し、無ければ NoDisplay を返します
func DisplayFromConfig(cfg config.WindowConfig) DisplaySizer {
	if cfg.AvailableWidth > 0 && cfg.AvailableHeight > 0 {
		return FixedDisplay{Size: fyne.NewSize(cfg.AvailableWidth, cfg.AvailableHeight)}
	}
	return NoDisplay{}
}
