package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/automation"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/ports"
)

const manualFolder = "automation"

// UploadManualFileCommandHandler stores a hand-made layout file so that a
// manual batch can reference it.
type UploadManualFileCommandHandler struct {
	files ports.FileStorage
}

func NewUploadManualFileCommandHandler(files ports.FileStorage) UploadManualFileCommandHandler {
	return UploadManualFileCommandHandler{files: files}
}

// Handle returns the URL of the stored file.
func (h *UploadManualFileCommandHandler) Handle(ctx context.Context, cmd UploadFileCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	if err := cmd.Session().Require("upload layout files", access.Staff, access.Admin); err != nil {
		return "", err
	}

	data, err := cmd.readLimited(automation.MaxManualFileSize)
	if err != nil {
		return "", err
	}

	contentType := cmd.ContentType()
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := h.files.Upload(ctx, ports.FileUpload{
		Folder:      manualFolder,
		Name:        kernel.NewUUID().String() + strings.ToLower(filepath.Ext(cmd.FileName())),
		ContentType: contentType,
		Size:        int64(len(data)),
		Body:        bytes.NewReader(data),
	})
	if err != nil {
		return "", err
	}

	return info.URL, nil
}
