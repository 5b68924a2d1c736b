// Package filesystem はファイルシステムを遅延読み込みするツリーモデルを提供します
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"DirView/internal/domain/model"
	"DirView/internal/infrastructure/logging"
)

// DirectoryWatcher は読み込み済みディレクトリの変更監視を登録するインターフェースです
type DirectoryWatcher interface {
	Add(path string) error
	Remove(path string) error
}

type node struct {
	entry    model.FileSystemEntry
	children []string
	fetched  bool
}

// Model はファイルシステムを遅延読み込みで表現するツリーモデルです。
// UIスレッドからのみ操作してください
type Model struct {
	logger     logging.Logger
	rootPath   string
	filter     model.Filter
	nodes      map[string]*node
	icons      *IconProvider
	watcher    DirectoryWatcher
	generation uint64
}

// NewModel はファイルシステムのルートを範囲とする新しい Model を作成します
func NewModel(logger logging.Logger) *Model {
	if logger == nil {
		logger = logging.Nop{}
	}
	home, _ := os.UserHomeDir()
	m := &Model{
		logger: logger,
		filter: model.DefaultFilter,
		icons:  NewIconProvider(home),
	}
	m.SetRootPath(SystemRoot())
	return m
}

// SetRootPath はモデルが扱う範囲のルートを設定し、読み込み済みの内容を破棄します
func (m *Model) SetRootPath(path string) model.Index {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	m.reset()
	m.rootPath = filepath.Clean(abs)
	return m.Index(m.rootPath)
}

// SetFilter は列挙する要素の種類を設定し、読み込み済みの内容を破棄します
func (m *Model) SetFilter(filter model.Filter) {
	m.filter = filter
	m.reset()
}

// IconProvider はアイコンプロバイダーを返します。未設定の場合は nil です
func (m *Model) IconProvider() *IconProvider {
	return m.icons
}

// SetIconProvider はアイコンプロバイダーを設定します
func (m *Model) SetIconProvider(p *IconProvider) {
	m.icons = p
}

// SetWatcher は変更監視を設定し、読み込み済みディレクトリを登録します
func (m *Model) SetWatcher(w DirectoryWatcher) {
	m.watcher = w
	if w == nil {
		return
	}
	for path, n := range m.nodes {
		if n.fetched {
			m.watch(path)
		}
	}
}

// Generation はモデルの内容が変わるたびに増加する値を返します
func (m *Model) Generation() uint64 {
	return m.generation
}

// Index はパスに対応するインデックスを返します。
// パスが範囲外または存在しない場合は無効なインデックスを返します
func (m *Model) Index(path string) model.Index {
	if path == "" {
		return model.Index{}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return model.Index{}
	}
	abs = filepath.Clean(abs)
	if !isWithin(m.rootPath, abs) {
		return model.Index{}
	}

	m.ensureRoot()
	if abs == m.rootPath {
		return model.NewIndex(abs)
	}

	rel, err := filepath.Rel(m.rootPath, abs)
	if err != nil {
		return model.Index{}
	}
	current := m.rootPath
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		m.fetch(current)
		next := filepath.Join(current, part)
		if _, ok := m.nodes[next]; !ok {
			return model.Index{}
		}
		current = next
	}
	return model.NewIndex(abs)
}

// Entry はインデックスが指す要素を返します
func (m *Model) Entry(idx model.Index) (model.FileSystemEntry, bool) {
	n, ok := m.nodes[idx.Path()]
	if !ok {
		return model.FileSystemEntry{}, false
	}
	return n.entry, true
}

// Parent は親要素のインデックスを返します。ルートの場合は無効なインデックスです
func (m *Model) Parent(idx model.Index) model.Index {
	if !idx.IsValid() || idx.Path() == m.rootPath {
		return model.Index{}
	}
	parent := filepath.Dir(idx.Path())
	if _, ok := m.nodes[parent]; !ok {
		return model.Index{}
	}
	return model.NewIndex(parent)
}

// Children は子要素を返します。未読み込みのディレクトリはここで読み込みます
func (m *Model) Children(idx model.Index) []model.Index {
	m.fetch(idx.Path())
	return m.LoadedChildren(idx)
}

// LoadedChildren は読み込み済みの子要素のみを返します
func (m *Model) LoadedChildren(idx model.Index) []model.Index {
	n, ok := m.nodes[idx.Path()]
	if !ok || !n.fetched {
		return nil
	}
	children := make([]model.Index, 0, len(n.children))
	for _, child := range n.children {
		children = append(children, model.NewIndex(child))
	}
	return children
}

// IsFetched はディレクトリの内容が読み込み済みかどうかを返します
func (m *Model) IsFetched(idx model.Index) bool {
	n, ok := m.nodes[idx.Path()]
	return ok && n.fetched
}

// Prefetch は idx 配下を depth 階層分読み込みます
func (m *Model) Prefetch(idx model.Index, depth int) {
	if depth <= 0 {
		return
	}
	for _, child := range m.Children(idx) {
		if n := m.nodes[child.Path()]; n != nil && n.entry.IsDir {
			m.Prefetch(child, depth-1)
		}
	}
}

// PrefetchAll は idx 配下を全て読み込みます。
// 循環を避けるため、シンボリックリンクのディレクトリには入りません
func (m *Model) PrefetchAll(idx model.Index) {
	for _, child := range m.Children(idx) {
		if n := m.nodes[child.Path()]; n != nil && n.entry.IsDir && !n.entry.Symlink {
			m.PrefetchAll(child)
		}
	}
}

// Icon は要素のアイコンの種類を返します
func (m *Model) Icon(idx model.Index) model.IconKind {
	entry, ok := m.Entry(idx)
	if !ok {
		return model.IconFile
	}
	if m.icons == nil {
		if entry.IsDir {
			return model.IconFolder
		}
		return model.IconFile
	}
	return m.icons.Icon(entry)
}

// Refresh は読み込み済みディレクトリの内容を再読み込みします。
// 既存の子要素の読み込み状態は維持されます
func (m *Model) Refresh(path string) {
	n, ok := m.nodes[path]
	if !ok || !n.fetched {
		return
	}

	entries := m.list(path)
	present := make(map[string]bool, len(entries))
	children := make([]string, 0, len(entries))
	for _, e := range entries {
		present[e.Path] = true
		children = append(children, e.Path)
		if existing, ok := m.nodes[e.Path]; ok && existing.entry.IsDir == e.IsDir {
			existing.entry = e
			continue
		}
		m.removeSubtree(e.Path)
		m.nodes[e.Path] = &node{entry: e}
	}
	for _, old := range n.children {
		if !present[old] {
			m.removeSubtree(old)
		}
	}
	n.children = children
	m.generation++
	m.logger.Log("DEBUG", fmt.Sprintf("ディレクトリを再読み込みしました: %s", path), nil)
}

func (m *Model) reset() {
	if m.watcher != nil {
		for path, n := range m.nodes {
			if n.fetched {
				_ = m.watcher.Remove(path)
			}
		}
	}
	m.nodes = make(map[string]*node)
	m.generation++
}

func (m *Model) ensureRoot() {
	if _, ok := m.nodes[m.rootPath]; ok {
		return
	}
	entry := model.FileSystemEntry{
		Path:  m.rootPath,
		Name:  m.rootPath,
		IsDir: true,
	}
	if info, err := os.Stat(m.rootPath); err == nil {
		entry.IsDir = info.IsDir()
		entry.Size = info.Size()
		entry.ModTime = info.ModTime()
		entry.Mode = info.Mode()
	}
	m.nodes[m.rootPath] = &node{entry: entry}
}

func (m *Model) fetch(path string) {
	n, ok := m.nodes[path]
	if !ok || n.fetched || !n.entry.IsDir {
		return
	}
	n.fetched = true

	entries := m.list(path)
	n.children = make([]string, 0, len(entries))
	for _, e := range entries {
		n.children = append(n.children, e.Path)
		m.nodes[e.Path] = &node{entry: e}
	}
	m.generation++
	m.watch(path)
}

// list はディレクトリを列挙します。読み取りエラーは読めた分だけを返します
func (m *Model) list(dir string) []model.FileSystemEntry {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		m.logger.Log("DEBUG", fmt.Sprintf("ディレクトリ '%s' の読み込みに失敗", dir), err)
	}

	entries := make([]model.FileSystemEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if m.filter.Has(model.NoDotAndDotDot) && (name == "." || name == "..") {
			continue
		}
		hidden := isHiddenName(name)
		if hidden && !m.filter.Has(model.Hidden) {
			continue
		}

		path := filepath.Join(dir, name)
		info, err := de.Info()
		if err != nil {
			// 列挙後に削除された要素
			continue
		}
		symlink := info.Mode()&os.ModeSymlink != 0
		if symlink {
			if target, err := os.Stat(path); err == nil {
				info = target
			}
		}

		if info.IsDir() && !m.filter.Has(model.Dirs) {
			continue
		}
		if !info.IsDir() && !m.filter.Has(model.Files) {
			continue
		}

		entries = append(entries, model.FileSystemEntry{
			Path:    path,
			Name:    name,
			IsDir:   info.IsDir(),
			Hidden:  hidden,
			Symlink: symlink,
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Mode:    info.Mode(),
		})
	}
	return entries
}

func (m *Model) removeSubtree(path string) {
	n, ok := m.nodes[path]
	if !ok {
		return
	}
	for _, child := range n.children {
		m.removeSubtree(child)
	}
	if n.fetched && m.watcher != nil {
		_ = m.watcher.Remove(path)
	}
	delete(m.nodes, path)
}

func (m *Model) watch(path string) {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Add(path); err != nil {
		m.logger.Log("DEBUG", fmt.Sprintf("ディレクトリ '%s' の監視登録に失敗", path), err)
	}
}
