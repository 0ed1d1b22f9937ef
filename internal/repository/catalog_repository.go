package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) List() ([]model.CatalogItem, error) {
	var items []model.CatalogItem
	err := r.DB.Order("created_at ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CatalogRepository) FindByID(id string) (*model.CatalogItem, error) {
	var item model.CatalogItem
	err := r.DB.Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CatalogRepository) Create(item *model.CatalogItem) error {
	return r.DB.Create(item).Error
}

func (r *CatalogRepository) Update(item *model.CatalogItem) error {
	return r.DB.Save(item).Error
}

func (r *CatalogRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.CatalogItem{}).Error
}
