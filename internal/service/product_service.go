package service

import (
	"context"
	"log"

	"fsanano/shop-client/internal/model"
	"fsanano/shop-client/internal/service/shopapi"
	"fsanano/shop-client/internal/state"
)

// ProductParams are optional overrides for one fetch. A non-nil Search, even
// an empty one, switches to a plain search that ignores the stored filters.
type ProductParams struct {
	Page     *int
	Limit    *int
	Category *string
	Search   *string
	SortBy   *string
	Order    *model.SortOrder
}

type ProductService struct {
	api *shopapi.Client
	st  *state.Store
	log *log.Logger
}

func NewProductService(api *shopapi.Client, st *state.Store, logger *log.Logger) *ProductService {
	return &ProductService{api: api, st: st, log: logger}
}

func orInt(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

func orString(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

// query builds the request from params and the product slice.
func (s *ProductService) query(p ProductParams, cur state.ProductState) model.ProductQuery {
	if p.Search != nil {
		return model.ProductQuery{
			Search: *p.Search,
			Page:   orInt(p.Page, 0),
			Limit:  orInt(p.Limit, cur.Pagination.Limit),
		}
	}
	q := model.ProductQuery{
		Category: orString(p.Category, cur.Filters.Category),
		SortBy:   orString(p.SortBy, cur.Filters.SortBy),
		Order:    cur.Filters.Order,
		Page:     orInt(p.Page, cur.Pagination.Page),
		Limit:    orInt(p.Limit, cur.Pagination.Limit),
	}
	if p.Order != nil {
		q.Order = *p.Order
	}
	return q
}

func (s *ProductService) Fetch(ctx context.Context, p ProductParams) (model.ProductPage, error) {
	s.st.SetProductLoading(true)
	s.st.SetProductError("")
	defer s.st.SetProductLoading(false)

	cur := s.st.Product()
	page, err := s.api.GetProducts(ctx, s.query(p, cur))
	if err != nil {
		err = fail(s.log, "Failed to fetch products", err)
		s.st.SetProductError(Message(err))
		return model.ProductPage{}, err
	}

	s.st.SetProducts(page.Products, page.Total)
	s.st.SetPagination(state.PaginationPatch{Page: &page.Page, Limit: &page.Limit, Total: &page.Total})

	switch {
	case p.Search != nil && *p.Search != cur.Filters.Search:
		s.st.SetFilters(state.FilterPatch{Search: p.Search})
	case p.Search == nil && cur.Filters.Search != "":
		empty := ""
		s.st.SetFilters(state.FilterPatch{Search: &empty})
	}
	return page, nil
}

func (s *ProductService) FetchByID(ctx context.Context, id int64) (model.Product, error) {
	s.st.SetProductLoading(true)
	s.st.SetProductError("")
	defer s.st.SetProductLoading(false)

	p, err := s.api.GetProduct(ctx, id)
	if err != nil {
		err = fail(s.log, "Failed to fetch product", err)
		s.st.SetProductError(Message(err))
		return model.Product{}, err
	}
	s.st.SetSelectedProduct(&p)
	return p, nil
}

func (s *ProductService) UpdateFilters(patch state.FilterPatch) {
	s.st.SetFilters(patch)
}

func (s *ProductService) UpdatePagination(patch state.PaginationPatch) {
	s.st.SetPagination(patch)
}

func (s *ProductService) ClearSelected() {
	s.st.SetSelectedProduct(nil)
}
