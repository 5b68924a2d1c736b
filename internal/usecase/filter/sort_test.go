package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"DirView/internal/domain/model"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		value string
		want  language.Tag
	}{
		{value: "ja_JP.UTF-8", want: language.MustParse("ja-JP")},
		{value: "ru_RU.UTF-8", want: language.MustParse("ru-RU")},
		{value: "de_DE@euro", want: language.MustParse("de-DE")},
		{value: "en", want: language.English},
		{value: "C.UTF-8", want: language.Und},
		{value: "C", want: language.Und},
		{value: "POSIX", want: language.Und},
		{value: "", want: language.Und},
		{value: "not a locale!", want: language.Und},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLocale(tt.value))
		})
	}
}

func TestHostLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_COLLATE", "")
	t.Setenv("LANG", "ja_JP.UTF-8")
	assert.Equal(t, language.MustParse("ja-JP"), HostLocale())

	t.Setenv("LC_ALL", "fr_FR.UTF-8")
	assert.Equal(t, language.MustParse("fr-FR"), HostLocale())
}

func TestSorter_Less(t *testing.T) {
	s := NewSorter(language.English)
	now := time.Now()

	dir := model.FileSystemEntry{Name: "zeta", IsDir: true}
	small := model.FileSystemEntry{Name: "b.txt", Size: 10, ModTime: now}
	large := model.FileSystemEntry{Name: "A.txt", Size: 2000, ModTime: now.Add(-time.Hour)}

	tests := []struct {
		name   string
		a, b   model.FileSystemEntry
		column model.Column
		order  model.SortOrder
		want   bool
	}{
		{name: "ディレクトリは昇順で先頭", a: dir, b: large, column: model.ColumnName, order: model.Ascending, want: true},
		{name: "ディレクトリは降順でも先頭", a: dir, b: small, column: model.ColumnName, order: model.Descending, want: true},
		{name: "名前は大文字小文字を区別しない", a: large, b: small, column: model.ColumnName, order: model.Ascending, want: true},
		{name: "名前の降順", a: large, b: small, column: model.ColumnName, order: model.Descending, want: false},
		{name: "サイズ昇順", a: small, b: large, column: model.ColumnSize, order: model.Ascending, want: true},
		{name: "更新日時昇順", a: large, b: small, column: model.ColumnModified, order: model.Ascending, want: true},
		{name: "同じ要素", a: small, b: small, column: model.ColumnName, order: model.Ascending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Less(tt.a, tt.b, tt.column, tt.order))
		})
	}
}

func TestSorter_NumericNames(t *testing.T) {
	s := NewSorter(language.English)
	a := model.FileSystemEntry{Name: "file2"}
	b := model.FileSystemEntry{Name: "file10"}

	assert.Negative(t, s.Compare(a, b, model.ColumnName))
}
