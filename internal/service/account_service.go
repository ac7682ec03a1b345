package service

import (
	"context"
	"io"
	"log"

	"fsanano/shop-client/internal/model"
	"fsanano/shop-client/internal/service/shopapi"
	"fsanano/shop-client/internal/state"
)

type AddressService struct {
	api *shopapi.Client
	log *log.Logger
}

func NewAddressService(api *shopapi.Client, logger *log.Logger) *AddressService {
	return &AddressService{api: api, log: logger}
}

func (s *AddressService) List(ctx context.Context) ([]model.Address, error) {
	out, err := s.api.GetAddresses(ctx)
	if err != nil {
		return nil, fail(s.log, "Failed to load addresses", err)
	}
	return out, nil
}

func (s *AddressService) Get(ctx context.Context, id int64) (model.Address, error) {
	out, err := s.api.GetAddress(ctx, id)
	if err != nil {
		return model.Address{}, fail(s.log, "Failed to load address", err)
	}
	return out, nil
}

func (s *AddressService) Create(ctx context.Context, req model.AddressRequest) (model.Address, error) {
	if req.Label == "" || req.FullAddress == "" {
		return model.Address{}, &Error{Message: "Label and full address are required"}
	}
	out, err := s.api.CreateAddress(ctx, req)
	if err != nil {
		return model.Address{}, fail(s.log, "Failed to save address", err)
	}
	return out, nil
}

func (s *AddressService) Update(ctx context.Context, id int64, req model.AddressRequest) (model.Address, error) {
	if req.Label == "" || req.FullAddress == "" {
		return model.Address{}, &Error{Message: "Label and full address are required"}
	}
	out, err := s.api.UpdateAddress(ctx, id, req)
	if err != nil {
		return model.Address{}, fail(s.log, "Failed to update address", err)
	}
	return out, nil
}

func (s *AddressService) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteAddress(ctx, id); err != nil {
		return fail(s.log, "Failed to delete address", err)
	}
	return nil
}

func (s *AddressService) SetDefault(ctx context.Context, id int64) (model.Address, error) {
	out, err := s.api.SetDefaultAddress(ctx, id)
	if err != nil {
		return model.Address{}, fail(s.log, "Failed to set default address", err)
	}
	return out, nil
}

type ProfileService struct {
	api *shopapi.Client
	st  *state.Store
	log *log.Logger
}

func NewProfileService(api *shopapi.Client, st *state.Store, logger *log.Logger) *ProfileService {
	return &ProfileService{api: api, st: st, log: logger}
}

func (s *ProfileService) Get(ctx context.Context) (model.User, error) {
	u, err := s.api.GetProfile(ctx)
	if err != nil {
		return model.User{}, fail(s.log, "Failed to load profile", err)
	}
	return u, nil
}

// Update saves the profile and merges the echoed fields into the auth slice.
func (s *ProfileService) Update(ctx context.Context, req model.UpdateProfileRequest) (model.User, error) {
	u, err := s.api.UpdateProfile(ctx, req)
	if err != nil {
		return model.User{}, fail(s.log, "Failed to update profile", err)
	}
	patch := model.UserPatch{}
	if u.Email != "" {
		patch.Email = &u.Email
	}
	if u.FirstName != "" {
		patch.FirstName = &u.FirstName
	}
	if u.LastName != "" {
		patch.LastName = &u.LastName
	}
	if u.Phone != "" {
		patch.Phone = &u.Phone
	}
	if u.Gender != "" {
		patch.Gender = &u.Gender
	}
	s.st.UpdateUser(patch)
	return u, nil
}

func (s *ProfileService) UpdateAvatar(ctx context.Context, filename string, image io.Reader) (string, error) {
	url, err := s.api.UpdateAvatar(ctx, filename, image)
	if err != nil {
		return "", fail(s.log, "Failed to update avatar", err)
	}
	s.st.UpdateUser(model.UserPatch{AvatarURL: &url})
	return url, nil
}

type CommentService struct {
	api *shopapi.Client
	log *log.Logger
}

func NewCommentService(api *shopapi.Client, logger *log.Logger) *CommentService {
	return &CommentService{api: api, log: logger}
}

func (s *CommentService) List(ctx context.Context, productID int64) ([]model.Comment, error) {
	out, err := s.api.GetComments(ctx, productID)
	if err != nil {
		return nil, fail(s.log, "Failed to load comments", err)
	}
	return out, nil
}

func (s *CommentService) Add(ctx context.Context, productID int64, content string) (model.Comment, error) {
	if content == "" {
		return model.Comment{}, &Error{Message: "Comment cannot be empty"}
	}
	out, err := s.api.AddComment(ctx, productID, content)
	if err != nil {
		return model.Comment{}, fail(s.log, "Failed to post comment", err)
	}
	return out, nil
}

func (s *CommentService) Delete(ctx context.Context, commentID int64) error {
	if err := s.api.DeleteComment(ctx, commentID); err != nil {
		return fail(s.log, "Failed to delete comment", err)
	}
	return nil
}

type CategoryService struct {
	api *shopapi.Client
	log *log.Logger
}

func NewCategoryService(api *shopapi.Client, logger *log.Logger) *CategoryService {
	return &CategoryService{api: api, log: logger}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	out, err := s.api.GetCategories(ctx)
	if err != nil {
		return nil, fail(s.log, "Failed to load categories", err)
	}
	return out, nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (model.Category, error) {
	out, err := s.api.GetCategory(ctx, id)
	if err != nil {
		return model.Category{}, fail(s.log, "Failed to load category", err)
	}
	return out, nil
}
