// package model はドメインモデルを定義します
package model

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Index はファイルシステムモデル座標系での要素の位置を表します。
// ゼロ値は無効なインデックスです。
type Index struct {
	path string
}

// NewIndex は絶対パスからインデックスを作成します
func NewIndex(path string) Index {
	return Index{path: path}
}

// Path はインデックスが指す要素の絶対パスを返します
func (i Index) Path() string {
	return i.path
}

// IsValid はインデックスが有効かどうかを返します
func (i Index) IsValid() bool {
	return i.path != ""
}

// FileSystemEntry はファイルシステムの要素（ファイルまたはディレクトリ）を表します
type FileSystemEntry struct {
	// Path は要素の絶対パスを表します
	Path string
	// Name は表示名（ベース名）を表します。ルートの場合はパスそのものです
	Name string
	// IsDir はディレクトリであるかどうかを示します
	IsDir bool
	// Hidden は隠しファイルであるかどうかを示します
	Hidden bool
	// Symlink はシンボリックリンクであるかどうかを示します。他の項目はリンク先の情報です
	Symlink bool
	// Size はファイルサイズ（バイト）を表します
	Size int64
	// ModTime は最終更新日時を表します
	ModTime time.Time
	// Mode はファイルモードを表します
	Mode os.FileMode
}

// TypeName は種類列に表示する名前を返します
func (e FileSystemEntry) TypeName() string {
	if e.IsDir {
		return "フォルダー"
	}
	if ext := strings.TrimPrefix(filepath.Ext(e.Name), "."); ext != "" && ext != e.Name[1:] {
		return ext + " ファイル"
	}
	return "ファイル"
}

// Filter はモデルに列挙させる要素の種類を表すフラグです
type Filter uint8

const (
	Dirs Filter = 1 << iota
	Files
	Hidden
	NoDotAndDotDot

	// DefaultFilter は隠しファイルを含む全ての要素を列挙し、"." と ".." を除外します
	DefaultFilter = Dirs | Files | Hidden | NoDotAndDotDot
)

// Has はフラグが設定されているかどうかを返します
func (f Filter) Has(flag Filter) bool {
	return f&flag == flag
}

// Column はツリー表示の列を表します
type Column int

const (
	ColumnName Column = iota
	ColumnSize
	ColumnType
	ColumnModified
)

// Columns は表示順の列一覧です
var Columns = []Column{ColumnName, ColumnSize, ColumnType, ColumnModified}

// SortOrder は並び順を表します
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// Toggle は逆の並び順を返します
func (o SortOrder) Toggle() SortOrder {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

// IconKind はアイコンの種類を表します
type IconKind int

const (
	IconFile IconKind = iota
	IconFolder
	IconHome
	IconDesktop
	IconDocuments
	IconDownloads
	IconMusic
	IconPictures
	IconVideos
	IconText
	IconImage
	IconAudio
	IconVideo
	IconApplication
)
