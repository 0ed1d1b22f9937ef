package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) FindByUserID(userID uint) (*model.LearnerProfile, error) {
	var profile model.LearnerProfile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert 按 user_id 覆盖保存画像，整体替换而非逐字段合并
func (r *ProfileRepository) Upsert(profile *model.LearnerProfile) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"completed_items", "interests", "strong_skills", "weak_skills",
			"preferred_level", "avg_score", "learning_goal", "updated_at",
		}),
	}).Create(profile).Error
}
