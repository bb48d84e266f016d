package gdialog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sqweek/dialog"
)

type Result struct {
	Path string
	Name string
	Data []byte
}

// OpenPosition asks for a position file and reads it.
func OpenPosition(title string) (Result, error) {
	path, err := dialog.File().Title(title).Filter("Position", "txt").Load()
	if err != nil {
		return Result{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Path: path,
		Name: filepath.Base(path),
		Data: b,
	}, nil
}

// SaveImage asks where to store a board snapshot. The ".png" extension is
// appended when missing.
func SaveImage(title string) (string, error) {
	path, err := dialog.File().Title(title).Filter("PNG image", "png").Save()
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		path += ".png"
	}
	return path, nil
}

// IsCancelled reports whether err means the user closed the dialog.
func IsCancelled(err error) bool {
	return err == dialog.ErrCancelled
}
