package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"jobboard-api/internal/blobstore"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

type uploadService struct {
	store    blobstore.Store
	userRepo storage.UserRepository
}

// NewUploadService creates a new instance of UploadService.
func NewUploadService(store blobstore.Store, userRepo storage.UserRepository) UploadService {
	return &uploadService{store: store, userRepo: userRepo}
}

// UploadDocument relays the file to the blob store and persists the returned
// public URL in the given document column of the acting user's record.
func (s *uploadService) UploadDocument(ctx context.Context, actor Actor, field dto.DocumentField, filename, contentType string, body io.Reader) (string, error) {
	// The user row must still exist; the token may outlive the account.
	if _, err := s.userRepo.GetByID(ctx, &dto.GetUserByIdRequest{ID: actor.UserID}); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("UploadDocument: no user row for token subject %s", actor.UserID)
			return "", ErrForbidden
		}
		return "", mapRepoError(err, fmt.Sprintf("fetching user %s for upload", actor.UserID))
	}

	url, err := s.store.Upload(ctx, filename, contentType, body)
	if err != nil {
		log.Printf("UploadDocument: blob store relay failed for user %s: %v", actor.UserID, err)
		return "", fmt.Errorf("internal error uploading document: %w", err)
	}

	setReq := dto.SetDocumentURLRequest{UserID: actor.UserID, Field: field, URL: url}
	if err := s.userRepo.SetDocumentURL(ctx, &setReq); err != nil {
		return "", mapRepoError(err, fmt.Sprintf("persisting document URL for user %s", actor.UserID))
	}

	return url, nil
}
