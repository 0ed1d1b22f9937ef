package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type WishlistRepository struct {
	DB *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{DB: db}
}

func (r *WishlistRepository) ListItemIDs(userID uint) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.WishlistItem{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("item_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *WishlistRepository) Exists(userID uint, itemID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.WishlistItem{}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Count(&count).Error
	return count > 0, err
}

func (r *WishlistRepository) Add(userID uint, itemID string) error {
	return r.DB.Create(&model.WishlistItem{UserID: userID, ItemID: itemID}).Error
}

func (r *WishlistRepository) Remove(userID uint, itemID string) error {
	return r.DB.Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&model.WishlistItem{}).Error
}
