// Package document handles patient file uploads. The whole file is buffered
// and stored inline as base64; the request size-limit middleware is the only
// bound on upload size.
package document

import (
	"context"
	"encoding/base64"
	"io"

	"github.com/medibridge/directory-api/internal/model"
	"github.com/medibridge/directory-api/internal/repository/store"
)

type Service struct {
	documents store.Repository[model.Document, *model.Document]
}

func NewService(backend store.Backend) *Service {
	return &Service{documents: store.NewRepository[model.Document](backend)}
}

// Store reads the file fully, encodes it, and inserts a Document record.
func (s *Service) Store(ctx context.Context, patientID, filename, contentType string, file io.Reader) (string, error) {
	content, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	doc := &model.Document{
		PatientID:    patientID,
		Filename:     filename,
		ContentType:  contentType,
		EncryptedB64: base64.StdEncoding.EncodeToString(content),
		SizeBytes:    len(content),
	}
	return s.documents.Insert(ctx, doc)
}
