package service

import (
	"context"
	"log"

	"fsanano/shop-client/internal/model"
	"fsanano/shop-client/internal/recent"
)

// SearchService runs catalog searches and remembers the terms.
type SearchService struct {
	products *ProductService
	recent   *recent.List
	log      *log.Logger
}

func NewSearchService(products *ProductService, list *recent.List, logger *log.Logger) *SearchService {
	return &SearchService{products: products, recent: list, log: logger}
}

// Search records term, then fetches the first page of matches. A failure
// to persist the term is logged and does not fail the search.
func (s *SearchService) Search(ctx context.Context, term string, limit *int) (model.ProductPage, error) {
	if s.recent != nil {
		if err := s.recent.Save(ctx, term); err != nil {
			s.log.Printf("Failed to save recent search: %v", err)
		}
	}
	page := 0
	return s.products.Fetch(ctx, ProductParams{Search: &term, Page: &page, Limit: limit})
}

func (s *SearchService) Recent() []string {
	if s.recent == nil {
		return []string{}
	}
	return s.recent.Terms()
}

func (s *SearchService) ClearRecent(ctx context.Context) error {
	if s.recent == nil {
		return nil
	}
	if err := s.recent.Clear(ctx); err != nil {
		return &Error{Message: "Failed to clear recent searches", Err: err}
	}
	return nil
}
