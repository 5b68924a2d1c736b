// Package filter はソースモデルを名前で絞り込み、並べ替えるプロキシモデルを提供します
package filter

import (
	"regexp"
	"sort"

	"DirView/internal/domain/model"
)

// SourceModel はプロキシが包む階層データソースです
type SourceModel interface {
	Entry(idx model.Index) (model.FileSystemEntry, bool)
	Parent(idx model.Index) model.Index
	Children(idx model.Index) []model.Index
	LoadedChildren(idx model.Index) []model.Index
	Generation() uint64
}

// ProxyIndex はプロキシ座標系（絞り込み・並べ替え後）での要素の位置です。
// ゼロ値は無効なインデックスです
type ProxyIndex struct {
	source model.Index
}

// IsValid はインデックスが有効かどうかを返します
func (p ProxyIndex) IsValid() bool {
	return p.source.IsValid()
}

// ID はツリー表示で使うノードIDを返します。無効なインデックスは空文字列です
func (p ProxyIndex) ID() string {
	return p.source.Path()
}

// ProxyModel はソースモデルの要素を表示名のワイルドカードで絞り込みます。
// 再帰フィルタリングが有効な場合、子孫のどれかが一致すれば祖先も表示されます
type ProxyModel struct {
	source        SourceModel
	recursive     bool
	caseSensitive bool
	pattern       string
	matcher       *regexp.Regexp

	// 要素ごとの一致状態。ソースの Generation が変わると破棄する
	accepted   map[string]bool
	generation uint64

	sorter     *Sorter
	sortColumn model.Column
	sortOrder  model.SortOrder
}

// NewProxyModel は source を包む新しい ProxyModel を作成します
func NewProxyModel(source SourceModel) *ProxyModel {
	return &ProxyModel{
		source:        source,
		caseSensitive: true,
		accepted:      make(map[string]bool),
		generation:    source.Generation(),
		sorter:        NewSorter(HostLocale()),
		sortColumn:    model.ColumnName,
		sortOrder:     model.Ascending,
	}
}

// SetRecursiveFilteringEnabled は再帰フィルタリングを設定します
func (m *ProxyModel) SetRecursiveFilteringEnabled(enabled bool) {
	m.recursive = enabled
	m.Invalidate()
}

// SetCaseSensitive は大文字と小文字を区別するかどうかを設定します
func (m *ProxyModel) SetCaseSensitive(caseSensitive bool) {
	m.caseSensitive = caseSensitive
	m.SetFilterWildcard(m.pattern)
}

// SetFilterWildcard は絞り込みのワイルドカードを設定します。空文字列は全てに一致します
func (m *ProxyModel) SetFilterWildcard(pattern string) {
	m.pattern = pattern
	if pattern == "" {
		m.matcher = nil
	} else {
		m.matcher = compileWildcard(pattern, m.caseSensitive)
	}
	m.Invalidate()
}

// Invalidate は一致状態を破棄し、次回の参照時に再計算させます
func (m *ProxyModel) Invalidate() {
	m.accepted = make(map[string]bool)
	m.generation = m.source.Generation()
}

// Sort は子要素の並び順を設定します
func (m *ProxyModel) Sort(column model.Column, order model.SortOrder) {
	m.sortColumn = column
	m.sortOrder = order
}

// SortColumn は並べ替えの列を返します
func (m *ProxyModel) SortColumn() model.Column {
	return m.sortColumn
}

// SortOrder は並び順を返します
func (m *ProxyModel) SortOrder() model.SortOrder {
	return m.sortOrder
}

// MapFromSource はソース座標をプロキシ座標に変換します。
// 要素またはその祖先が絞り込まれている場合は無効なインデックスを返します
func (m *ProxyModel) MapFromSource(idx model.Index) ProxyIndex {
	if !idx.IsValid() {
		return ProxyIndex{}
	}
	for cur := idx; cur.IsValid(); cur = m.source.Parent(cur) {
		if !m.Accepts(cur) {
			return ProxyIndex{}
		}
	}
	return ProxyIndex{source: idx}
}

// MapToSource はプロキシ座標をソース座標に変換します
func (m *ProxyModel) MapToSource(p ProxyIndex) model.Index {
	return p.source
}

// Entry は要素を返します
func (m *ProxyModel) Entry(p ProxyIndex) (model.FileSystemEntry, bool) {
	if !p.IsValid() {
		return model.FileSystemEntry{}, false
	}
	return m.source.Entry(p.source)
}

// IsBranch は要素が展開可能（ディレクトリ）かどうかを返します
func (m *ProxyModel) IsBranch(p ProxyIndex) bool {
	entry, ok := m.Entry(p)
	return ok && entry.IsDir
}

// Children は絞り込み・並べ替え済みの子要素を返します
func (m *ProxyModel) Children(p ProxyIndex) []ProxyIndex {
	if !p.IsValid() {
		return nil
	}
	sourceChildren := m.source.Children(p.source)

	type row struct {
		idx   model.Index
		entry model.FileSystemEntry
	}
	rows := make([]row, 0, len(sourceChildren))
	for _, child := range sourceChildren {
		if !m.Accepts(child) {
			continue
		}
		entry, ok := m.source.Entry(child)
		if !ok {
			continue
		}
		rows = append(rows, row{idx: child, entry: entry})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return m.sorter.Less(rows[i].entry, rows[j].entry, m.sortColumn, m.sortOrder)
	})

	children := make([]ProxyIndex, len(rows))
	for i, r := range rows {
		children[i] = ProxyIndex{source: r.idx}
	}
	return children
}

// Accepts はソースの要素がフィルターを通過するかどうかを返します。
// 親の一致状態は考慮しません
func (m *ProxyModel) Accepts(idx model.Index) bool {
	if m.matcher == nil {
		return true
	}
	if m.generation != m.source.Generation() {
		m.Invalidate()
	}
	return m.accepts(idx)
}

func (m *ProxyModel) accepts(idx model.Index) bool {
	if result, ok := m.accepted[idx.Path()]; ok {
		return result
	}

	entry, ok := m.source.Entry(idx)
	result := ok && m.matcher.MatchString(entry.Name)
	if !result && ok && m.recursive {
		for _, child := range m.source.LoadedChildren(idx) {
			if m.accepts(child) {
				result = true
				break
			}
		}
	}

	m.accepted[idx.Path()] = result
	return result
}

// IndexFromID はツリー表示のノードIDからプロキシ座標を復元します
func (m *ProxyModel) IndexFromID(id string) ProxyIndex {
	if id == "" {
		return ProxyIndex{}
	}
	return ProxyIndex{source: model.NewIndex(id)}
}
