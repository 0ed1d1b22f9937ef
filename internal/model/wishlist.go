package model

// WishlistItem 收藏记录，(userId, itemId) 唯一，成员关系即全部状态
// swagger:model WishlistItem
type WishlistItem struct {
	BaseModel
	UserID uint   `gorm:"uniqueIndex:idx_wishlist_user_item;not null" json:"userId"`
	ItemID string `gorm:"uniqueIndex:idx_wishlist_user_item;type:varchar(36);not null" json:"itemId"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}
