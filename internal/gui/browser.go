// Package gui はディレクトリツリーを表示するブラウザーウィンドウを提供します
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"DirView/internal/domain/model"
	"DirView/internal/infrastructure/config"
	"DirView/internal/infrastructure/filesystem"
	"DirView/internal/infrastructure/logging"
	"DirView/internal/usecase/filter"
)

const (
	WindowTitle       = "Dir View"
	FilterPlaceholder = "名前でフィルター..."
)

// DataSource はブラウザーが表示する階層データソースです
type DataSource interface {
	filter.SourceModel
	Index(path string) model.Index
	Prefetch(idx model.Index, depth int)
	Refresh(path string)
	Icon(idx model.Index) model.IconKind
}

// ViewFilter はデータソースを絞り込み・並べ替えた表示用のモデルです
type ViewFilter interface {
	SetFilterWildcard(pattern string)
	Invalidate()
	MapFromSource(idx model.Index) filter.ProxyIndex
	MapToSource(p filter.ProxyIndex) model.Index
	IndexFromID(id string) filter.ProxyIndex
	Entry(p filter.ProxyIndex) (model.FileSystemEntry, bool)
	Children(p filter.ProxyIndex) []filter.ProxyIndex
	IsBranch(p filter.ProxyIndex) bool
	Sort(column model.Column, order model.SortOrder)
	SortColumn() model.Column
	SortOrder() model.SortOrder
}

// TreePresenter は ViewFilter をツリーとして表示します
type TreePresenter interface {
	SetRootIndex(p filter.ProxyIndex)
	RootIndex() filter.ProxyIndex
	SetColumnWidth(column model.Column, width float32)
	Refresh()
	CanvasObject() fyne.CanvasObject
}

// Options は Browser の作成時オプションです
type Options struct {
	// Path は表示を開始するディレクトリです。空の場合はホームディレクトリです
	Path string
	// DisableCustomIcons は特別なディレクトリの専用アイコンを無効にします
	DisableCustomIcons bool
	// Display は利用可能な画面サイズを提供します。nil の場合は設定の値を使います
	Display DisplaySizer
	Config  *config.Config
	Logger  logging.Logger
}

// Browser は名前フィルター入力欄とディレクトリツリーを持つウィンドウです
type Browser struct {
	window        fyne.Window
	logger        logging.Logger
	path          string
	prefetchDepth int

	fsModel     *filesystem.Model
	source      DataSource
	proxy       ViewFilter
	tree        TreePresenter
	filterEntry *widget.Entry
}

// NewBrowser は window の内容としてブラウザーを構築します
func NewBrowser(window fyne.Window, opts Options) *Browser {
	// 設定とロガーの初期化
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop{}
	}
	display := opts.Display
	if display == nil {
		display = DisplayFromConfig(cfg.Window)
	}

	b := &Browser{
		window:        window,
		logger:        logger,
		path:          filesystem.DefaultRootPath(opts.Path),
		prefetchDepth: cfg.Filter.PrefetchDepth,
	}

	// ファイルシステムモデルの初期化
	fsModel := filesystem.NewModel(logger)
	fsModel.SetRootPath(filesystem.SystemRoot())
	fsModel.SetFilter(model.DefaultFilter)
	if provider := fsModel.IconProvider(); provider != nil && opts.DisableCustomIcons {
		provider.SetOptions(provider.Options() | filesystem.DontUseCustomDirectoryIcons)
	}

	// プロキシモデルの初期化
	proxy := filter.NewProxyModel(fsModel)
	proxy.SetRecursiveFilteringEnabled(true)
	proxy.SetCaseSensitive(cfg.Filter.CaseSensitive)

	// ツリー表示の初期化
	tree := NewTreeView(proxy, func(p filter.ProxyIndex) model.IconKind {
		return fsModel.Icon(proxy.MapToSource(p))
	})

	b.fsModel = fsModel
	b.source = fsModel
	b.proxy = proxy
	b.tree = tree

	// フィルター入力欄の初期化
	b.filterEntry = widget.NewEntry()
	b.filterEntry.SetPlaceHolder(FilterPlaceholder)
	b.filterEntry.OnChanged = b.OnFilterChanged

	b.adjustRootIndex(b.path)

	// ウィンドウサイズの調整
	treeWidth := DefaultTreeWidth
	if size, ok := display.AvailableSize(); ok {
		windowSize := fyne.NewSize(size.Width/cfg.Window.Scale, size.Height/cfg.Window.Scale)
		window.Resize(windowSize)
		treeWidth = windowSize.Width
	} else {
		logger.Log("DEBUG", "画面サイズを取得できないため、ウィンドウサイズを変更しません", nil)
	}
	b.tree.SetColumnWidth(model.ColumnName, treeWidth/3)

	window.SetTitle(WindowTitle)
	window.SetContent(container.NewBorder(b.filterEntry, nil, nil, nil, b.tree.CanvasObject()))

	logger.Log("INFO", fmt.Sprintf("表示ルート: %s", b.path), nil)
	return b
}

// Path は表示ルートのパスを返します
func (b *Browser) Path() string {
	return b.path
}

// AttachWatcher はデータソースの変更監視に w を使います
func (b *Browser) AttachWatcher(w filesystem.DirectoryWatcher) {
	b.fsModel.SetWatcher(w)
}

// OnFilterChanged は入力欄の文字列が変わるたびに呼ばれます。
// 文字列を部分一致のワイルドカードとして適用し、表示ルートを再設定します
func (b *Browser) OnFilterChanged(text string) {
	if text != "" && b.prefetchDepth > 0 {
		b.source.Prefetch(b.source.Index(b.path), b.prefetchDepth)
	}
	b.proxy.SetFilterWildcard(filter.ContainsWildcard(text))
	b.adjustRootIndex(b.path)
}

// OnDirectoryChanged はディレクトリの内容が変化したときに UI スレッドで呼ばれます
func (b *Browser) OnDirectoryChanged(dir string) {
	b.logger.Log("DEBUG", fmt.Sprintf("ディレクトリの変更を検知: %s", dir), nil)
	b.source.Refresh(dir)
	b.proxy.Invalidate()
	b.adjustRootIndex(b.path)
}

// adjustRootIndex は path に対応する要素をツリーの表示ルートにします。
// 要素が絞り込まれている場合、ツリーは空になります
func (b *Browser) adjustRootIndex(path string) {
	rootIndex := b.source.Index(path)
	proxyIndex := b.proxy.MapFromSource(rootIndex)
	b.tree.SetRootIndex(proxyIndex)
}
