package commands

import (
	"errors"
	"io"
	"strings"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

// MaxDesignFileSize caps a design file at 20 MiB.
const MaxDesignFileSize int64 = 20 << 20

var ErrUploadFileCommandIsNotConstructed = errors.New(
	"UploadFileCommand must be created via NewUploadFileCommand constructor",
)

// UploadFileCommand carries one multipart file. It is used for both design
// files and manual layout files; each handler applies its own limits.
type UploadFileCommand struct { //nolint:recvcheck //using for validation
	session     access.Session
	fileName    string
	contentType string
	size        int64
	body        io.Reader

	guard guard.ConstructorGuard
}

func NewUploadFileCommand(
	session access.Session,
	fileName string,
	contentType string,
	size int64,
	body io.Reader,
) (UploadFileCommand, error) {
	var fileErr error
	if body == nil || size <= 0 {
		fileErr = errs.NewValidationError(errs.FieldIssue{Field: "file", Reason: "is required"})
	}

	if err := errors.Join(session.Validate(), fileErr); err != nil {
		return UploadFileCommand{}, err
	}

	return UploadFileCommand{
		session:     session,
		fileName:    strings.TrimSpace(fileName),
		contentType: contentType,
		size:        size,
		body:        body,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UploadFileCommand) Validate() error {
	return c.guard.Validate(ErrUploadFileCommandIsNotConstructed)
}

func (c UploadFileCommand) Session() access.Session { return c.session }
func (c UploadFileCommand) FileName() string { return c.fileName }
func (c UploadFileCommand) ContentType() string { return c.contentType }
func (c UploadFileCommand) Size() int64 { return c.size }
func (c UploadFileCommand) Body() io.Reader { return c.body }

// readLimited reads the body and fails once it grows beyond limit, whatever
// size the client declared.
func (c UploadFileCommand) readLimited(limit int64) ([]byte, error) {
	if c.size > limit {
		return nil, errs.NewPayloadTooLargeError("file", c.size, limit)
	}

	data, err := io.ReadAll(io.LimitReader(c.body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, errs.NewPayloadTooLargeError("file", int64(len(data)), limit)
	}
	return data, nil
}
