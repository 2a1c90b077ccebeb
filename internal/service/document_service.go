package service

import (
	"context"

	"go.uber.org/zap"

	"theaterlist/internal/document"
	"theaterlist/internal/repository"
)

// DocumentService triggers the two-phase document run for a list.
type DocumentService struct {
	lists     repository.ListsRepository
	directory repository.DirectoryRepository
	generator *document.Generator
	logger    *zap.Logger
}

func NewDocumentService(lists repository.ListsRepository, directory repository.DirectoryRepository, generator *document.Generator, logger *zap.Logger) *DocumentService {
	return &DocumentService{
		lists:     lists,
		directory: directory,
		generator: generator,
		logger:    logger,
	}
}

// Trigger starts one generation run for the list and returns as soon as the
// run is reserved. document.ErrEmptyList and
// document.ErrGenerationInProgress come back synchronously; render or sink
// failures mid-run only appear in the log.
func (s *DocumentService) Trigger(ctx context.Context, listID string) error {
	list, err := s.lists.GetList(ctx, listID)
	if err != nil {
		return err
	}
	doctors, err := s.directory.ListDoctors(ctx)
	if err != nil {
		return err
	}

	// The run outlives the triggering request.
	if err := s.generator.GenerateAsync(context.WithoutCancel(ctx), *list, doctors); err != nil {
		return err
	}
	s.logger.Info("Started document generation",
		zap.String("list_id", listID),
		zap.Int("patients", len(list.Patients)),
	)
	return nil
}
