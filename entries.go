package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/rileylov/rowdrag/table"
)

var columns = []table.Column{
	{Title: "", Width: 2},
	{Title: "Filename", Width: 40},
	{Title: "Size", Width: 10},
	{Title: "Modified Time", Width: 20},
}

type entry struct {
	Name    string
	Path    string
	Icon    string
	Size    int64
	Dir     bool
	ModTime string
}

// loadEntries lists up to limit entries of dir, sorted by name.
func loadEntries(dir string, limit int) ([]entry, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	entries := make([]entry, 0, len(items))
	for _, item := range items {
		e := entry{
			Name: item.Name(),
			Path: filepath.Join(dir, item.Name()),
			Icon: "📄",
			Dir:  item.IsDir(),
		}
		info, err := item.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			continue
		}
		if info.IsDir() {
			e.Icon = "📂"
		} else {
			if info.Mode().Perm()&0111 != 0 {
				e.Icon = "⚙️"
			}
			e.Size = info.Size()
			e.ModTime = info.ModTime().Format("2006-01-02 15:04:05")
		}
		switch filepath.Ext(e.Name) {
		case ".zip", ".gz", ".7z":
			e.Icon = "📦"
		case ".png", ".jpg", ".webp", ".jpeg":
			e.Icon = "🖼️"
		case ".mp4", ".mov":
			e.Icon = "📹"
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (e entry) row(si bool) table.Row {
	var size string
	if !e.Dir {
		size = readableSize(e.Size, si)
	}
	return table.Row{e.Icon, e.Name, size, e.ModTime}
}

func readableSize(bytes int64, si bool) string {
	if bytes == 0 {
		return "0 B"
	}
	unit := 1024.0
	suffixes := []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if si {
		unit = 1000
		suffixes = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}
	}
	i := math.Floor(math.Log(float64(bytes)) / math.Log(unit))
	val := float64(bytes) / math.Pow(unit, i)
	return fmt.Sprintf("%.2f %s", val, suffixes[int(i)])
}
