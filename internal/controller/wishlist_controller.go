package controller

import (
	"errors"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WishlistController struct {
	WishlistService *service.WishlistService
}

func NewWishlistController(wishlistService *service.WishlistService) *WishlistController {
	return &WishlistController{WishlistService: wishlistService}
}

// GetWishlist godoc
// @Summary 获取收藏列表
// @Description 返回当前用户收藏的课程 id 列表
// @Tags 收藏
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]string} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/wishlist [get]
func (c *WishlistController) GetWishlist(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	ids, err := c.WishlistService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, ids)
}

// ToggleWishlist godoc
// @Summary 切换收藏
// @Description 收藏或取消收藏指定课程，返回切换后的收藏状态
// @Tags 收藏
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "课程 id"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/wishlist/{id}/toggle [post]
func (c *WishlistController) ToggleWishlist(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	itemID := ctx.Param("id")
	inWishlist, err := c.WishlistService.Toggle(claims.UserID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"itemId": itemID, "inWishlist": inWishlist})
}
