package model

type WishlistItem struct {
	ID      int64   `json:"wishlistId"`
	Product Product `json:"product"`
}

type Comment struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	Username  string `json:"username"`
	CreatedAt Time   `json:"createdAt"`
}

type CommentRequest struct {
	ProductID int64  `json:"productId"`
	Content   string `json:"content"`
}
