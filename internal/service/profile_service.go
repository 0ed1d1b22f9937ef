package service

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"

	"gorm.io/gorm"
)

type ProfileService struct {
	ProfileRepo *repository.ProfileRepository
}

func NewProfileService(profileRepo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{ProfileRepo: profileRepo}
}

// Get 返回用户画像；不存在时返回空画像而非报错，前端按未填写处理
func (s *ProfileService) Get(userID uint) (*model.LearnerProfile, error) {
	profile, err := s.ProfileRepo.FindByUserID(userID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		return &model.LearnerProfile{UserID: userID}, nil
	}
	return profile, nil
}

// Update 整体替换画像
func (s *ProfileService) Update(userID uint, profile *model.LearnerProfile) error {
	profile.UserID = userID
	return s.ProfileRepo.Upsert(profile)
}
