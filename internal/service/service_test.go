package service

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fsanano/shop-client/internal/checkout"
	"fsanano/shop-client/internal/model"
	"fsanano/shop-client/internal/orders"
	"fsanano/shop-client/internal/recent"
	"fsanano/shop-client/internal/state"
	"fsanano/shop-client/internal/store"
)

func login(t *testing.T, h *harness) {
	t.Helper()
	_, err := h.svc.Auth.Login(context.Background(), model.LoginRequest{Username: "ann", Password: "secret"})
	require.NoError(t, err)
}

func TestAuth_LoginSetsStateAndToken(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.svc.Auth.Login(ctx, model.LoginRequest{Username: "ann", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, "Bad credentials", h.svc.Auth.LastError())
	assert.False(t, h.st.Auth().IsAuthenticated)
	assert.False(t, h.st.Auth().IsLoading)

	login(t, h)
	auth := h.st.Auth()
	assert.True(t, auth.IsAuthenticated)
	assert.Equal(t, "tok-ann", auth.Token)
	assert.Equal(t, "ann", auth.User.Username)
	assert.Equal(t, "tok-ann", h.api.Token())
	assert.Empty(t, h.svc.Auth.LastError())

	h.svc.Auth.Logout(ctx)
	assert.False(t, h.st.Auth().IsAuthenticated)
	assert.Empty(t, h.api.Token())
}

func TestAuth_PersistAndRestore(t *testing.T) {
	dir := t.TempDir()
	fs, err := store.NewFileStore(dir)
	require.NoError(t, err)

	withSessions := func(d *Deps) {
		d.Sessions = fs
		d.Passphrase = "pass"
	}

	h := newHarness(t, withSessions)
	login(t, h)

	restored := newHarness(t, withSessions)
	ok, err := restored.svc.Auth.Restore(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, restored.st.Auth().IsAuthenticated)
	assert.Equal(t, "tok-ann", restored.api.Token())

	restored.svc.Auth.Logout(context.Background())
	_, found, err := fs.LoadSession("pass")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAuth_RestoreDropsExpiredToken(t *testing.T) {
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "ann",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	require.NoError(t, fs.SaveSession("pass", store.Session{Username: "ann", Token: tok}))

	h := newHarness(t, func(d *Deps) {
		d.Sessions = fs
		d.Passphrase = "pass"
	})
	ok, err := h.svc.Auth.Restore(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, h.st.Auth().IsAuthenticated)

	_, found, err := fs.LoadSession("pass")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCart_ChangeQuantityRemovesAtZero(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.svc.Cart.Add(ctx, 1, 2)
	require.NoError(t, err)
	_, err = h.svc.Cart.Add(ctx, 2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 22.5, h.st.Cart().Total, 0.001)

	require.NoError(t, h.svc.Cart.ChangeQuantity(ctx, 1, 1))
	assert.Equal(t, 3, h.st.Cart().Items[0].Quantity)
	assert.InDelta(t, 32.5, h.st.Cart().Total, 0.001)

	require.NoError(t, h.svc.Cart.ChangeQuantity(ctx, 2, -1))
	items := h.st.Cart().Items
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.InDelta(t, 30, h.st.Cart().Total, 0.001)

	err = h.svc.Cart.ChangeQuantity(ctx, 99, 1)
	assert.Equal(t, "Item is not in your cart", Message(err))
}

func TestCart_RemoveFallsBackLocally(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.svc.Cart.Add(ctx, 1, 1)
	require.NoError(t, err)
	_, err = h.svc.Cart.Add(ctx, 2, 1)
	require.NoError(t, err)

	h.backend.mu.Lock()
	h.backend.failCartGet = true
	h.backend.mu.Unlock()
	require.NoError(t, h.svc.Cart.Remove(ctx, 1))
	items := h.st.Cart().Items
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ProductID)

	_, err = h.svc.Cart.Fetch(ctx)
	require.Error(t, err)
	assert.Equal(t, "cart unavailable", Message(err))
	assert.Len(t, h.st.Cart().Items, 1, "a failed fetch keeps the slice")
}

func TestProducts_SearchIgnoresFilters(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	cat := "shoes"
	h.svc.Products.UpdateFilters(state.FilterPatch{Category: &cat})

	page := 2
	_, err := h.svc.Products.Fetch(ctx, ProductParams{Page: &page})
	require.NoError(t, err)

	term := "red"
	_, err = h.svc.Products.Fetch(ctx, ProductParams{Search: &term})
	require.NoError(t, err)

	h.backend.mu.Lock()
	queries := append([]string{}, h.backend.queries...)
	h.backend.mu.Unlock()

	require.Len(t, queries, 2)
	first, _ := url.ParseQuery(queries[0])
	assert.Equal(t, "shoes", first.Get("category"))
	assert.Equal(t, "2", first.Get("page"))
	assert.Empty(t, first.Get("search"))

	second, _ := url.ParseQuery(queries[1])
	assert.Equal(t, "red", second.Get("search"))
	assert.Equal(t, "0", second.Get("page"))
	assert.Empty(t, second.Get("category"))

	p := h.st.Product()
	assert.Equal(t, "red", p.Filters.Search)
	assert.Equal(t, "shoes", p.Filters.Category)
	assert.Equal(t, int64(21), p.Pagination.Total)

	_, err = h.svc.Products.Fetch(ctx, ProductParams{})
	require.NoError(t, err)
	assert.Empty(t, h.st.Product().Filters.Search, "a plain fetch clears the stale search")
}

func TestSearch_RecordsRecentTerms(t *testing.T) {
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	list := recent.New(fs, 6)

	h := newHarness(t, func(d *Deps) { d.Recent = list })
	ctx := context.Background()

	for _, term := range []string{"red", "  blue ", "red", ""} {
		_, err := h.svc.Search.Search(ctx, term, nil)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"red", "blue"}, h.svc.Search.Recent())

	require.NoError(t, h.svc.Search.ClearRecent(ctx))
	assert.Empty(t, h.svc.Search.Recent())
}

func TestWishlist_Toggle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	on, err := h.svc.Wishlist.Toggle(ctx, 5)
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, h.svc.Wishlist.Contains(5))

	require.NoError(t, h.svc.Wishlist.Add(ctx, 5))
	assert.Equal(t, []int64{5}, h.svc.Wishlist.Items())

	on, err = h.svc.Wishlist.Toggle(ctx, 5)
	require.NoError(t, err)
	assert.False(t, on)
	assert.Empty(t, h.svc.Wishlist.Items())

	require.NoError(t, h.svc.Wishlist.Add(ctx, 8))
	ids, err := h.svc.Wishlist.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{8}, ids)
}

func TestOrders_QuoteAndPlace(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.svc.Orders.Quote(PlaceRequest{})
	assert.True(t, errors.Is(err, checkout.ErrNotAuthenticated))

	login(t, h)
	_, err = h.svc.Orders.Quote(PlaceRequest{})
	assert.True(t, errors.Is(err, checkout.ErrEmptyCart))

	_, err = h.svc.Cart.Add(ctx, 1, 2)
	require.NoError(t, err)

	_, err = h.svc.Orders.Quote(PlaceRequest{Form: &checkout.ShippingForm{FirstName: "Ann"}})
	assert.True(t, errors.Is(err, checkout.ErrMissingFields))

	q, err := h.svc.Orders.Quote(PlaceRequest{ShippingMethod: "standard"})
	require.NoError(t, err)
	assert.InDelta(t, 20, q.Subtotal, 0.001)
	assert.InDelta(t, 29.9, q.Total, 0.001)

	_, err = h.svc.Orders.Quote(PlaceRequest{Selected: []int64{42}})
	assert.True(t, errors.Is(err, checkout.ErrNoSelection))

	q, err = h.svc.Orders.Quote(PlaceRequest{ShippingMethod: "teleport", Selected: []int64{1}})
	require.NoError(t, err)
	assert.Equal(t, checkout.DefaultMethod, q.Method.ID)

	o, err := h.svc.Orders.Place(ctx, PlaceRequest{ShippingMethod: "free"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), o.ID)
	assert.Empty(t, h.st.Cart().Items, "cart is refetched after the order")

	list, err := h.svc.Orders.List(ctx, orders.TabPending)
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = h.svc.Orders.List(ctx, orders.TabDelivered)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProfile_UpdateAndOverview(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	login(t, h)

	_, err := h.svc.Profile.Update(ctx, model.UpdateProfileRequest{Email: "new@shop.test", FirstName: "Ann"})
	require.NoError(t, err)
	u := h.st.Auth().User
	assert.Equal(t, "new@shop.test", u.Email)
	assert.Equal(t, "Ann", u.FirstName)

	require.NoError(t, h.svc.Wishlist.Add(ctx, 3))
	ov, err := h.svc.Profile.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ann", ov.User.Username)
	assert.Empty(t, ov.Orders)
	require.Len(t, ov.Wishlist, 1)
	assert.Equal(t, int64(3), ov.Wishlist[0].Product.ID)
	require.Len(t, ov.Addresses, 1)
	assert.True(t, ov.Addresses[0].IsDefault)
}

func TestAddresses_CreateValidates(t *testing.T) {
	h := newHarness(t)
	_, err := h.svc.Addresses.Create(context.Background(), model.AddressRequest{Label: "Home"})
	assert.Equal(t, "Label and full address are required", Message(err))
}

func TestOrders_PlaceRejectsPartialSelection(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	login(t, h)

	_, err := h.svc.Cart.Add(ctx, 1, 2)
	require.NoError(t, err)
	_, err = h.svc.Cart.Add(ctx, 2, 1)
	require.NoError(t, err)

	q, err := h.svc.Orders.Quote(PlaceRequest{Selected: []int64{2}})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, q.Subtotal, 0.001)
	require.Len(t, q.Items, 1)

	_, err = h.svc.Orders.Place(ctx, PlaceRequest{Selected: []int64{2}})
	assert.True(t, errors.Is(err, checkout.ErrPartialSelection))
	assert.Len(t, h.st.Cart().Items, 2, "no order was created")

	h.backend.mu.Lock()
	assert.Empty(t, h.backend.orders)
	h.backend.mu.Unlock()

	o, err := h.svc.Orders.Place(ctx, PlaceRequest{Selected: []int64{1, 2}})
	require.NoError(t, err)
	assert.InDelta(t, 22.5, o.TotalAmount, 0.001)
	assert.Len(t, o.OrderItems, 2)
}

func TestOrders_CheckoutMessagesAreSentenceCase(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.svc.Orders.Quote(PlaceRequest{})
	assert.Equal(t, "Please login to place an order", Message(err))

	login(t, h)
	_, err = h.svc.Cart.Add(ctx, 1, 1)
	require.NoError(t, err)

	_, err = h.svc.Orders.Quote(PlaceRequest{Form: &checkout.ShippingForm{}})
	assert.Equal(t, "Please fill in all required fields", Message(err))
	assert.True(t, errors.Is(err, checkout.ErrMissingFields))

	_, err = h.svc.Orders.Quote(PlaceRequest{Selected: []int64{42}})
	assert.Equal(t, "Please select at least one item to checkout", Message(err))
}
