package controller

import (
	"errors"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogService        *service.CatalogService
	RecommendationService *service.RecommendationService
}

func NewCatalogController(
	catalogService *service.CatalogService,
	recommendationService *service.RecommendationService,
) *CatalogController {
	return &CatalogController{
		CatalogService:        catalogService,
		RecommendationService: recommendationService,
	}
}

// swagger:model CatalogItemRequest
type CatalogItemRequest struct {
	Title           string   `json:"title" binding:"required"`
	Category        string   `json:"category" binding:"required"`
	Tags            []string `json:"tags"`
	Level           string   `json:"level" binding:"required,oneof=Beginner Intermediate Advanced"`
	Rating          float64  `json:"rating" binding:"gte=0,lte=5"`
	EnrollmentCount int      `json:"enrollmentCount" binding:"gte=0"`
	IsNew           bool     `json:"isNew"`
	IsTrending      bool     `json:"isTrending"`
}

func (r *CatalogItemRequest) toModel() *model.CatalogItem {
	return &model.CatalogItem{
		Title:           r.Title,
		Category:        r.Category,
		Tags:            r.Tags,
		Level:           model.CourseLevel(r.Level),
		Rating:          r.Rating,
		EnrollmentCount: r.EnrollmentCount,
		IsNew:           r.IsNew,
		IsTrending:      r.IsTrending,
	}
}

// ListItems godoc
// @Summary 获取课程目录
// @Description 返回全部课程条目
// @Tags 目录
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.CatalogItem} "成功"
// @Router /api/catalog [get]
func (c *CatalogController) ListItems(ctx *gin.Context) {
	items, err := c.CatalogService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// GetItem godoc
// @Summary 获取单个课程
// @Tags 目录
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "课程 id"
// @Success 200 {object} util.Response{data=model.CatalogItem} "成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/catalog/{id} [get]
func (c *CatalogController) GetItem(ctx *gin.Context) {
	item, err := c.CatalogService.Get(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrItemNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, item)
}

// CreateItem godoc
// @Summary 新增课程
// @Description 管理员新增课程条目
// @Tags 目录
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CatalogItemRequest true "课程信息"
// @Success 201 {object} util.Response{data=model.CatalogItem} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 403 {object} util.Response "权限不足"
// @Router /api/admin/catalog [post]
func (c *CatalogController) CreateItem(ctx *gin.Context) {
	var req CatalogItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item := req.toModel()
	if err := c.CatalogService.Create(item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	// 目录变了，所有用户的推荐视图都要重算
	c.RecommendationService.InvalidateAllCaches(ctx.Request.Context())

	util.Created(ctx, item)
}

// UpdateItem godoc
// @Summary 更新课程
// @Description 管理员整体更新课程条目
// @Tags 目录
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "课程 id"
// @Param body body CatalogItemRequest true "课程信息"
// @Success 200 {object} util.Response{data=model.CatalogItem} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/admin/catalog/{id} [put]
func (c *CatalogController) UpdateItem(ctx *gin.Context) {
	var req CatalogItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item := req.toModel()
	if err := c.CatalogService.Update(ctx.Param("id"), item); err != nil {
		if errors.Is(err, util.ErrItemNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	c.RecommendationService.InvalidateAllCaches(ctx.Request.Context())

	util.Success(ctx, item)
}

// DeleteItem godoc
// @Summary 删除课程
// @Tags 目录
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "课程 id"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/admin/catalog/{id} [delete]
func (c *CatalogController) DeleteItem(ctx *gin.Context) {
	if err := c.CatalogService.Delete(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrItemNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	c.RecommendationService.InvalidateAllCaches(ctx.Request.Context())

	util.Success(ctx, nil)
}

// UploadCover godoc
// @Summary 上传课程封面
// @Description 管理员上传课程封面图片，支持 png/jpg/jpeg/webp
// @Tags 目录
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "课程 id"
// @Param file formData file true "封面图片"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "文件格式错误"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/admin/catalog/{id}/cover [post]
func (c *CatalogController) UploadCover(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "缺少封面文件")
		return
	}

	url, err := c.CatalogService.UploadCover(ctx.Request.Context(), ctx.Param("id"), file)
	if err != nil {
		if errors.Is(err, util.ErrItemNotFound) {
			util.NotFound(ctx)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Success(ctx, gin.H{"coverUrl": url})
}
