package controller

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService        *service.ProfileService
	RecommendationService *service.RecommendationService
}

func NewProfileController(
	profileService *service.ProfileService,
	recommendationService *service.RecommendationService,
) *ProfileController {
	return &ProfileController{
		ProfileService:        profileService,
		RecommendationService: recommendationService,
	}
}

// swagger:model ProfileRequest
type ProfileRequest struct {
	CompletedItems []string `json:"completedItems"`
	Interests      []string `json:"interests"`
	StrongSkills   []string `json:"strongSkills"`
	WeakSkills     []string `json:"weakSkills"`
	PreferredLevel string   `json:"preferredLevel"`
	AvgScore       float64  `json:"avgScore" binding:"gte=0,lte=100"`
	LearningGoal   string   `json:"learningGoal"`
}

// GetProfile godoc
// @Summary 获取学习画像
// @Description 获取当前用户的学习画像；未填写时返回空画像
// @Tags 画像
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.LearnerProfile} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.ProfileService.Get(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

// UpdateProfile godoc
// @Summary 更新学习画像
// @Description 整体替换当前用户的学习画像，并使推荐缓存失效
// @Tags 画像
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ProfileRequest true "学习画像"
// @Success 200 {object} util.Response{data=model.LearnerProfile} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile := &model.LearnerProfile{
		CompletedItems: req.CompletedItems,
		Interests:      req.Interests,
		StrongSkills:   req.StrongSkills,
		WeakSkills:     req.WeakSkills,
		PreferredLevel: model.CourseLevel(req.PreferredLevel),
		AvgScore:       req.AvgScore,
		LearningGoal:   req.LearningGoal,
	}

	if err := c.ProfileService.Update(claims.UserID, profile); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	// 画像变了，旧的推荐视图不再有效
	c.RecommendationService.InvalidateCache(ctx.Request.Context(), claims.UserID)

	util.Success(ctx, profile)
}
