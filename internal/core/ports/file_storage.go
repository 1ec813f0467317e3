package ports

import (
	"context"
	"io"
)

// FileUpload describes an object to store.
type FileUpload struct {
	Folder      string
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// FileInfo is what the store reports about an object.
type FileInfo struct {
	URL         string
	Size        int64
	ContentType string
}

// FileStorage keeps design files and manual layout files. Stat on an unknown URL
// yields errs.ObjectNotFoundError.
type FileStorage interface {
	Upload(ctx context.Context, file FileUpload) (FileInfo, error)
	Stat(ctx context.Context, url string) (FileInfo, error)
}
