package state

import "fsanano/shop-client/internal/model"

func (s *Store) SetProductLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.product.IsLoading = loading
}

func (s *Store) SetProductError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.product.Error = msg
}

func (s *Store) SetProducts(products []model.Product, total int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.product.Products = append([]model.Product{}, products...)
	s.product.Pagination.Total = total
	s.product.IsLoading = false
	s.product.Error = ""
}

// SetSelectedProduct sets or, with nil, clears the detail product.
func (s *Store) SetSelectedProduct(p *model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == nil {
		s.product.SelectedProduct = nil
		return
	}
	cp := *p
	s.product.SelectedProduct = &cp
}

// FilterPatch carries optional filter updates. A non-nil empty string clears
// the field.
type FilterPatch struct {
	Category *string
	Search   *string
	SortBy   *string
	Order    *model.SortOrder
}

// SetFilters merges patch into the filters and resets to the first page.
func (s *Store) SetFilters(patch FilterPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := &s.product.Filters
	if patch.Category != nil {
		f.Category = *patch.Category
	}
	if patch.Search != nil {
		f.Search = *patch.Search
	}
	if patch.SortBy != nil {
		f.SortBy = *patch.SortBy
	}
	if patch.Order != nil {
		f.Order = *patch.Order
	}
	s.product.Pagination.Page = 0
}

type PaginationPatch struct {
	Page  *int
	Limit *int
	Total *int64
}

func (s *Store) SetPagination(patch PaginationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &s.product.Pagination
	if patch.Page != nil {
		p.Page = *patch.Page
	}
	if patch.Limit != nil {
		p.Limit = *patch.Limit
	}
	if patch.Total != nil {
		p.Total = *patch.Total
	}
}

// AddProduct prepends p to the list.
func (s *Store) AddProduct(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.product.Products = append([]model.Product{p}, s.product.Products...)
}

func (s *Store) UpdateProduct(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.product.Products {
		if s.product.Products[i].ID == p.ID {
			s.product.Products[i] = p
			break
		}
	}
	if s.product.SelectedProduct != nil && s.product.SelectedProduct.ID == p.ID {
		cp := p
		s.product.SelectedProduct = &cp
	}
}

func (s *Store) RemoveProduct(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]model.Product, 0, len(s.product.Products))
	for _, p := range s.product.Products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.product.Products = kept
	if s.product.SelectedProduct != nil && s.product.SelectedProduct.ID == id {
		s.product.SelectedProduct = nil
	}
}
