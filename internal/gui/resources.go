package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"DirView/internal/domain/model"
)

// iconResource はアイコンの種類をテーマのリソースに変換します
func iconResource(kind model.IconKind) fyne.Resource {
	switch kind {
	case model.IconFolder:
		return theme.FolderIcon()
	case model.IconHome:
		return theme.HomeIcon()
	case model.IconDesktop:
		return theme.ComputerIcon()
	case model.IconDocuments:
		return theme.DocumentIcon()
	case model.IconDownloads:
		return theme.DownloadIcon()
	case model.IconMusic:
		return theme.MediaMusicIcon()
	case model.IconPictures:
		return theme.MediaPhotoIcon()
	case model.IconVideos:
		return theme.MediaVideoIcon()
	case model.IconText:
		return theme.FileTextIcon()
	case model.IconImage:
		return theme.FileImageIcon()
	case model.IconAudio:
		return theme.FileAudioIcon()
	case model.IconVideo:
		return theme.FileVideoIcon()
	case model.IconApplication:
		return theme.FileApplicationIcon()
	}
	return theme.FileIcon()
}
