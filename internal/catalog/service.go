package catalog

import (
	"context"
	"strings"
)

// Service provides catalog business logic on top of a Repository.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Shelf returns the catalog grouped by cubicle key.
func (s *Service) Shelf(ctx context.Context) (map[string]CubicleGroup, error) {
	rows, err := s.repo.ListShelf(ctx)
	if err != nil {
		return nil, err
	}
	return Group(rows), nil
}

// ExportRows returns the flat catalog rows for the CSV download.
func (s *Service) ExportRows(ctx context.Context) ([]ShelfRow, error) {
	return s.repo.ListShelf(ctx)
}

// AddBook stores a new book in the cubicle addressed by key. The key must
// parse as "row-column" and the cubicle must already exist; cubicles are
// never created through the API.
func (s *Service) AddBook(ctx context.Context, titulo, autor, key string) error {
	row, column, err := ParseCubicleKey(key)
	if err != nil {
		return err
	}
	_, err = s.repo.AddBook(ctx, row, column, strings.TrimSpace(titulo), strings.TrimSpace(autor))
	return err
}

// DeleteBook removes a book by id. Sibling positions keep their gaps.
func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.DeleteBook(ctx, id)
}
