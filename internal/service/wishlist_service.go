package service

import (
	"learnhub_backend/internal/repository"
)

// ToggleWishlist 纯集合语义的收藏切换：返回新集合，连续切换两次得到原集合
func ToggleWishlist(set map[string]bool, itemID string) map[string]bool {
	out := make(map[string]bool, len(set)+1)
	for id, ok := range set {
		if ok {
			out[id] = true
		}
	}
	if out[itemID] {
		delete(out, itemID)
	} else {
		out[itemID] = true
	}
	return out
}

type WishlistService struct {
	WishlistRepo *repository.WishlistRepository
	CatalogRepo  *repository.CatalogRepository
}

func NewWishlistService(
	wishlistRepo *repository.WishlistRepository,
	catalogRepo *repository.CatalogRepository,
) *WishlistService {
	return &WishlistService{
		WishlistRepo: wishlistRepo,
		CatalogRepo:  catalogRepo,
	}
}

// Toggle 切换收藏状态，返回切换后是否在收藏中
func (s *WishlistService) Toggle(userID uint, itemID string) (bool, error) {
	// 校验条目存在，避免收藏悬空 id
	if _, err := s.CatalogRepo.FindByID(itemID); err != nil {
		return false, err
	}

	exists, err := s.WishlistRepo.Exists(userID, itemID)
	if err != nil {
		return false, err
	}

	if exists {
		return false, s.WishlistRepo.Remove(userID, itemID)
	}
	return true, s.WishlistRepo.Add(userID, itemID)
}

func (s *WishlistService) List(userID uint) ([]string, error) {
	ids, err := s.WishlistRepo.ListItemIDs(userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
