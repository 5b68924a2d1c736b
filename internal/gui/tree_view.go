package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"DirView/internal/domain/model"
	"DirView/internal/usecase/filter"
)

// TreeView は ViewFilter の内容を列付きのツリーで表示します。
// 見出しの列をクリックすると、その列で並べ替えます
type TreeView struct {
	view    ViewFilter
	iconFor func(filter.ProxyIndex) model.IconKind

	root    filter.ProxyIndex
	widths  []float32
	tree    *widget.Tree
	buttons []*widget.Button
	header  *fyne.Container
	content fyne.CanvasObject
}

// NewTreeView は新しい TreeView インスタンスを作成します
func NewTreeView(view ViewFilter, iconFor func(filter.ProxyIndex) model.IconKind) *TreeView {
	v := &TreeView{
		view:    view,
		iconFor: iconFor,
		widths:  append([]float32(nil), defaultColumnWidths...),
	}

	v.tree = widget.NewTree(v.childUIDs, v.isBranch, v.createNode, v.updateNode)

	for _, column := range model.Columns {
		button := widget.NewButton(columnTitles[column], func() {
			v.sortBy(column)
		})
		button.Importance = widget.LowImportance
		button.Alignment = widget.ButtonAlignLeading
		v.buttons = append(v.buttons, button)
	}
	objects := make([]fyne.CanvasObject, len(v.buttons))
	for i, b := range v.buttons {
		objects[i] = b
	}
	v.header = container.New(newColumnLayout(v.widths, nil), objects...)
	v.updateHeader()

	v.content = container.NewBorder(v.header, nil, nil, nil, v.tree)
	return v
}

// CanvasObject は画面に配置するオブジェクトを返します
func (v *TreeView) CanvasObject() fyne.CanvasObject {
	return v.content
}

// SetRootIndex は表示ルートを設定します。無効なインデックスの場合は何も表示しません
func (v *TreeView) SetRootIndex(p filter.ProxyIndex) {
	v.root = p
	v.tree.Root = p.ID()
	v.tree.Refresh()
}

// RootIndex は表示ルートを返します
func (v *TreeView) RootIndex() filter.ProxyIndex {
	return v.root
}

// SetColumnWidth は列の幅を設定します
func (v *TreeView) SetColumnWidth(column model.Column, width float32) {
	if int(column) < 0 || int(column) >= len(v.widths) {
		return
	}
	v.widths[column] = width
	v.header.Refresh()
	v.tree.Refresh()
}

func (v *TreeView) columnWidth(column model.Column) float32 {
	if int(column) < 0 || int(column) >= len(v.widths) {
		return 0
	}
	return v.widths[column]
}

// Refresh は表示を更新します
func (v *TreeView) Refresh() {
	v.tree.Refresh()
}

func (v *TreeView) sortBy(column model.Column) {
	order := model.Ascending
	if v.view.SortColumn() == column {
		order = v.view.SortOrder().Toggle()
	}
	v.view.Sort(column, order)
	v.updateHeader()
	v.tree.Refresh()
}

func (v *TreeView) updateHeader() {
	for i, column := range model.Columns {
		text := columnTitles[column]
		if v.view.SortColumn() == column {
			if v.view.SortOrder() == model.Ascending {
				text += " ▲"
			} else {
				text += " ▼"
			}
		}
		v.buttons[i].SetText(text)
	}
}

func (v *TreeView) childUIDs(id widget.TreeNodeID) []widget.TreeNodeID {
	children := v.view.Children(v.view.IndexFromID(id))
	ids := make([]widget.TreeNodeID, len(children))
	for i, child := range children {
		ids[i] = child.ID()
	}
	return ids
}

func (v *TreeView) isBranch(id widget.TreeNodeID) bool {
	if id == v.tree.Root {
		return true
	}
	return v.view.IsBranch(v.view.IndexFromID(id))
}

func (v *TreeView) createNode(bool) fyne.CanvasObject {
	icon := widget.NewIcon(nil)
	name := widget.NewLabel("")
	name.Truncation = fyne.TextTruncateEllipsis

	cells := []fyne.CanvasObject{container.NewBorder(nil, nil, icon, nil, name)}
	for range model.Columns[1:] {
		label := widget.NewLabel("")
		label.Truncation = fyne.TextTruncateEllipsis
		cells = append(cells, label)
	}
	return container.New(newColumnLayout(v.widths, v.treeWidth), cells...)
}

func (v *TreeView) updateNode(id widget.TreeNodeID, _ bool, obj fyne.CanvasObject) {
	row, ok := obj.(*fyne.Container)
	if !ok || len(row.Objects) != len(model.Columns) {
		return
	}
	p := v.view.IndexFromID(id)
	entry, _ := v.view.Entry(p)

	if nameCell, ok := row.Objects[0].(*fyne.Container); ok {
		for _, o := range nameCell.Objects {
			switch w := o.(type) {
			case *widget.Icon:
				kind := model.IconFile
				if v.iconFor != nil {
					kind = v.iconFor(p)
				}
				w.SetResource(iconResource(kind))
			case *widget.Label:
				w.SetText(cellText(entry, model.ColumnName))
			}
		}
	}
	for i, column := range model.Columns[1:] {
		if label, ok := row.Objects[i+1].(*widget.Label); ok {
			label.SetText(cellText(entry, column))
		}
	}
}

func (v *TreeView) treeWidth() float32 {
	return v.tree.Size().Width
}
