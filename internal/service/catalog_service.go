package service

import (
	"context"
	"fmt"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogService struct {
	CatalogRepo *repository.CatalogRepository
	Storage     *StorageService
}

func NewCatalogService(catalogRepo *repository.CatalogRepository, storage *StorageService) *CatalogService {
	return &CatalogService{
		CatalogRepo: catalogRepo,
		Storage:     storage,
	}
}

func (s *CatalogService) List() ([]model.CatalogItem, error) {
	items, err := s.CatalogRepo.List()
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.CatalogItem{}
	}
	return items, nil
}

func (s *CatalogService) Get(id string) (*model.CatalogItem, error) {
	item, err := s.CatalogRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *CatalogService) Create(item *model.CatalogItem) error {
	return s.CatalogRepo.Create(item)
}

func (s *CatalogService) Update(id string, item *model.CatalogItem) error {
	existing, err := s.Get(id)
	if err != nil {
		return err
	}
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	return s.CatalogRepo.Update(item)
}

func (s *CatalogService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.CatalogRepo.Delete(id)
}

// UploadCover 上传课程封面并回写 CoverURL
func (s *CatalogService) UploadCover(ctx context.Context, id string, file *multipart.FileHeader) (string, error) {
	item, err := s.Get(id)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedCoverExt(ext) {
		return "", fmt.Errorf("unsupported cover format: %s", ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" || contentType == util.MimeOctetStream {
		contentType = util.MimeImage + strings.TrimPrefix(ext, ".")
	}

	filename := fmt.Sprintf("covers/%s%s", uuid.New().String(), ext)
	url, err := s.Storage.Upload(ctx, filename, src, file.Size, contentType)
	if err != nil {
		return "", err
	}

	item.CoverURL = url
	if err := s.CatalogRepo.Update(item); err != nil {
		return "", err
	}
	return url, nil
}

func allowedCoverExt(ext string) bool {
	for _, allowed := range util.AllowedCoverExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
