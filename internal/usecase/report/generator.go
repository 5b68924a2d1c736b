// Package report は表示中のツリーをテキストで出力する機能を提供します
package report

import (
	"fmt"
	"io"
	"strings"

	"DirView/internal/domain/model"
	"DirView/internal/usecase/filter"
)

const (
	DirLabel  = "[DIR] "
	FileLabel = "[FILE]"
	// Unlimited は深さを制限しないことを表します
	Unlimited = -1
)

// TreeSource は出力対象のツリーです
type TreeSource interface {
	Entry(p filter.ProxyIndex) (model.FileSystemEntry, bool)
	Children(p filter.ProxyIndex) []filter.ProxyIndex
}

// Generator はツリーのテキスト出力を行います
type Generator struct {
	// MaxDepth は出力する階層数です。Unlimited の場合は全階層を出力します
	MaxDepth int
}

// NewGenerator は新しい Generator インスタンスを作成します
func NewGenerator(maxDepth int) *Generator {
	return &Generator{MaxDepth: maxDepth}
}

// WriteTree は root 配下の要素を深さに応じたインデントを付けて、
// フォルダ（[DIR]）とファイル（[FILE]）の一覧で出力します。
// root が無効な場合は見出しのみを出力します
func (g *Generator) WriteTree(writer io.Writer, tree TreeSource, root filter.ProxyIndex) error {
	rootEntry, ok := tree.Entry(root)
	if !ok {
		_, err := fmt.Fprintln(writer, "===== (表示対象なし) =====")
		return err
	}
	if _, err := fmt.Fprintf(writer, "===== %s =====\n", rootEntry.Path); err != nil {
		return err
	}
	return g.writeChildren(writer, tree, root, 0)
}

func (g *Generator) writeChildren(writer io.Writer, tree TreeSource, parent filter.ProxyIndex, depth int) error {
	if g.MaxDepth != Unlimited && depth >= g.MaxDepth {
		return nil
	}
	for _, child := range tree.Children(parent) {
		entry, ok := tree.Entry(child)
		if !ok {
			continue
		}
		indent := strings.Repeat("  ", depth)
		label := FileLabel
		if entry.IsDir {
			label = DirLabel
		}
		if _, err := fmt.Fprintf(writer, "%s%s %s\n", indent, label, entry.Name); err != nil {
			return fmt.Errorf("ツリーの出力に失敗しました: %w", err)
		}
		if entry.IsDir {
			if err := g.writeChildren(writer, tree, child, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
