package gui

import (
	"fyne.io/fyne/v2"
	"github.com/dustin/go-humanize"

	"DirView/internal/domain/model"
)

const (
	// DefaultTreeWidth は画面サイズが取得できない場合のツリーの幅です
	DefaultTreeWidth float32 = 800
	// ModifiedLayout は更新日時列の表示形式です
	ModifiedLayout = "2006/01/02 15:04"
)

var columnTitles = map[model.Column]string{
	model.ColumnName:     "名前",
	model.ColumnSize:     "サイズ",
	model.ColumnType:     "種類",
	model.ColumnModified: "更新日時",
}

// defaultColumnWidths は列ごとの初期幅です
var defaultColumnWidths = []float32{
	model.ColumnName:     DefaultTreeWidth / 3,
	model.ColumnSize:     100,
	model.ColumnType:     140,
	model.ColumnModified: 150,
}

// cellText は列に表示する文字列を返します
func cellText(entry model.FileSystemEntry, column model.Column) string {
	switch column {
	case model.ColumnName:
		return entry.Name
	case model.ColumnSize:
		if entry.IsDir {
			return ""
		}
		return humanize.IBytes(uint64(entry.Size))
	case model.ColumnType:
		return entry.TypeName()
	case model.ColumnModified:
		if entry.ModTime.IsZero() {
			return ""
		}
		return entry.ModTime.Format(ModifiedLayout)
	}
	return ""
}

// columnLayout は見出しと各行の列を同じ位置に並べるレイアウトです。
// ツリーの行は階層に応じて字下げされるため、名前列の幅から字下げ分を差し引きます
type columnLayout struct {
	widths []float32
	// fullWidth はツリー全体の幅を返します。字下げ量の算出に使います
	fullWidth func() float32
}

func newColumnLayout(widths []float32, fullWidth func() float32) *columnLayout {
	return &columnLayout{widths: widths, fullWidth: fullWidth}
}

func (l *columnLayout) indent(size fyne.Size) float32 {
	if l.fullWidth == nil {
		return 0
	}
	full := l.fullWidth()
	if full <= size.Width {
		return 0
	}
	return full - size.Width
}

// Layout は列を左から順に配置し、最後の列に残りの幅を割り当てます
func (l *columnLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	indent := l.indent(size)
	var x float32
	for i, obj := range objects {
		w := l.width(i)
		if i == 0 {
			w -= indent
			if w < 0 {
				w = 0
			}
		}
		if i == len(objects)-1 && size.Width-x > w {
			w = size.Width - x
		}
		obj.Move(fyne.NewPos(x, 0))
		obj.Resize(fyne.NewSize(w, size.Height))
		x += w
	}
}

// MinSize は列幅の合計と最も高い要素の高さを返します
func (l *columnLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var size fyne.Size
	for i, obj := range objects {
		size.Width += l.width(i)
		if h := obj.MinSize().Height; h > size.Height {
			size.Height = h
		}
	}
	return size
}

func (l *columnLayout) width(i int) float32 {
	if i < len(l.widths) {
		return l.widths[i]
	}
	return 0
}
