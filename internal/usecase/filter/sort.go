package filter

import (
	"cmp"
	"os"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"DirView/internal/domain/model"
)

// Sorter は表示列に従って要素を比較します。
// ディレクトリは並び順に関わらず常にファイルより前に置きます
type Sorter struct {
	collator *collate.Collator
}

// NewSorter は指定ロケールの照合順序を使う Sorter を作成します
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{collator: collate.New(tag, collate.IgnoreCase, collate.Numeric)}
}

// HostLocale は環境変数 LC_ALL, LC_COLLATE, LANG からロケールを決定します
func HostLocale() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return parseLocale(v)
		}
	}
	return language.Und
}

// parseLocale は "ja_JP.UTF-8" のような POSIX ロケール名を解釈します
func parseLocale(value string) language.Tag {
	value, _, _ = strings.Cut(value, ".")
	value, _, _ = strings.Cut(value, "@")
	if value == "" || value == "C" || value == "POSIX" {
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}

// Compare は昇順での a と b の比較結果を返します
func (s *Sorter) Compare(a, b model.FileSystemEntry, column model.Column) int {
	var c int
	switch column {
	case model.ColumnSize:
		c = cmp.Compare(a.Size, b.Size)
	case model.ColumnType:
		c = s.collator.CompareString(a.TypeName(), b.TypeName())
	case model.ColumnModified:
		c = a.ModTime.Compare(b.ModTime)
	}
	if c == 0 {
		c = s.collator.CompareString(a.Name, b.Name)
	}
	if c == 0 {
		c = strings.Compare(a.Name, b.Name)
	}
	return c
}

// Less は並び順を考慮して a が b より前に表示されるかどうかを返します
func (s *Sorter) Less(a, b model.FileSystemEntry, column model.Column, order model.SortOrder) bool {
	if a.IsDir != b.IsDir {
		return a.IsDir
	}
	c := s.Compare(a, b, column)
	if order == model.Descending {
		return c > 0
	}
	return c < 0
}
