package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
	InsightService        *service.InsightService
	AnalysisService       *service.AnalysisService
}

func NewRecommendationController(
	recommendationService *service.RecommendationService,
	insightService *service.InsightService,
	analysisService *service.AnalysisService,
) *RecommendationController {
	return &RecommendationController{
		RecommendationService: recommendationService,
		InsightService:        insightService,
		AnalysisService:       analysisService,
	}
}

// GetRecommendations godoc
// @Summary 获取课程推荐
// @Description 按当前用户画像为目录打分，支持文本、分类、难度过滤与多种排序
// @Tags 推荐
// @Produce json
// @Security ApiKeyAuth
// @Param text query string false "标题或标签关键词"
// @Param category query string false "分类，all 或空表示不过滤"
// @Param level query string false "难度，all 或空表示不过滤"
// @Param sort query string false "排序方式 match/rating/popular/newest，默认 match"
// @Success 200 {object} util.Response{data=[]model.ScoredItem} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/recommendations [get]
func (c *RecommendationController) GetRecommendations(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var q service.CatalogQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	items, err := c.RecommendationService.GetRecommendations(ctx.Request.Context(), claims.UserID, q)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, items)
}

// GetInsights godoc
// @Summary 获取学习诊断
// @Description 基于画像与目录生成诊断列表
// @Tags 推荐
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Insight} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/recommendations/insights [get]
func (c *RecommendationController) GetInsights(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	insights, err := c.InsightService.InsightsForUser(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, insights)
}

// GetWeeklyPlan godoc
// @Summary 获取本周学习计划
// @Description 以最高分推荐课程为种子生成 7 天学习计划
// @Tags 推荐
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.WeeklyPlanSlot} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/recommendations/plan [get]
func (c *RecommendationController) GetWeeklyPlan(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	plan, err := c.RecommendationService.GetWeeklyPlan(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, plan)
}

// StartAnalysis godoc
// @Summary 启动学习分析
// @Description 启动（或重启）当前用户的模拟分析，运行期间重复调用会重新计时
// @Tags 推荐
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.AnalysisStatus} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/recommendations/analysis [post]
func (c *RecommendationController) StartAnalysis(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	state := c.AnalysisService.Start(claims.UserID)
	util.Success(ctx, gin.H{"state": state})
}

// GetAnalysisStatus godoc
// @Summary 查询分析状态
// @Description 返回当前分析状态，完成后附带诊断列表
// @Tags 推荐
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.AnalysisStatus} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/recommendations/analysis [get]
func (c *RecommendationController) GetAnalysisStatus(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, c.AnalysisService.Status(claims.UserID))
}
