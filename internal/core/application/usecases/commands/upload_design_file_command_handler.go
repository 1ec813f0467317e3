package commands

import (
	"bytes"
	"context"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/ports"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/imagemeta"
)

const designFolder = "designs"

// DesignFile is a stored artwork. Clients copy Metadata.Density into the
// order quality field.
type DesignFile struct {
	FileURL  string
	Metadata imagemeta.Metadata
}

type UploadDesignFileCommandHandler struct {
	files ports.FileStorage
}

func NewUploadDesignFileCommandHandler(files ports.FileStorage) UploadDesignFileCommandHandler {
	return UploadDesignFileCommandHandler{files: files}
}

func (h *UploadDesignFileCommandHandler) Handle(ctx context.Context, cmd UploadFileCommand) (DesignFile, error) {
	if err := cmd.Validate(); err != nil {
		return DesignFile{}, err
	}

	if err := cmd.Session().Require("upload design files", access.Client, access.Staff, access.Admin); err != nil {
		return DesignFile{}, err
	}

	data, err := cmd.readLimited(MaxDesignFileSize)
	if err != nil {
		return DesignFile{}, err
	}

	meta, err := imagemeta.Inspect(data)
	if err != nil {
		return DesignFile{}, errs.NewValidationError(errs.FieldIssue{Field: "file", Reason: err.Error()})
	}

	info, err := h.files.Upload(ctx, ports.FileUpload{
		Folder:      designFolder,
		Name:        kernel.NewUUID().String() + meta.Extension(),
		ContentType: meta.ContentType(),
		Size:        int64(len(data)),
		Body:        bytes.NewReader(data),
	})
	if err != nil {
		return DesignFile{}, err
	}

	return DesignFile{FileURL: info.URL, Metadata: meta}, nil
}
