package state

import (
	"foldergram/internal/chatapi"
	"foldergram/internal/tui/rows"
)

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

func PageStep(height int, hasStatus bool) int {
	if height <= 0 {
		return 10
	}
	headerLines := 6
	if hasStatus {
		headerLines += 2
	}
	step := height - headerLines
	if step < 3 {
		step = 3
	}
	return step
}

func CenteredWindow(totalRows, cursor, height int) (int, int) {
	if totalRows <= 0 {
		return 0, 0
	}
	if height <= 0 || totalRows <= height {
		return 0, totalRows
	}
	cursor = ClampCursor(cursor, totalRows)
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	maxStart := totalRows - height
	if start > maxStart {
		start = maxStart
	}
	return start, start + height
}

func FolderIndexByID(folders []chatapi.Folder, folderID int64) int {
	for i, folder := range folders {
		if folder.ID == folderID {
			return i
		}
	}
	return -1
}

func RowIndexByID(rws []*rows.Row, id uint64) int {
	for i, row := range rws {
		if row.ID() == id {
			return i
		}
	}
	return -1
}
