package service

import (
	"learnhub_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insightCatalog() []model.CatalogItem {
	items := []model.CatalogItem{
		{
			Title: "Python数据分析入门", Category: "Data",
			Tags: []string{"Python", "Pandas", "NumPy", "Data"}, Level: model.LevelBeginner,
			Rating: 4.8, EnrollmentCount: 1890, IsTrending: true,
		},
		{
			Title: "Node.js 后端实战", Category: "Programming",
			Tags: []string{"Node.js", "Express", "API", "Backend"}, Level: model.LevelIntermediate,
			Rating: 4.6, EnrollmentCount: 2340,
		},
	}
	items[0].ID = "item-python"
	items[1].ID = "item-node"
	return items
}

func TestGenerateInsightsStrengthAndWarning(t *testing.T) {
	profile := &model.LearnerProfile{
		StrongSkills: []string{"HTML/CSS", "JavaScript", "React", "Figma"},
		WeakSkills:   []string{"Backend"},
		LearningGoal: "Become a Full-Stack Developer",
	}
	catalog := insightCatalog()
	scored := ScoreCatalog(profile, catalog, DefaultScoreWeights())

	insights := GenerateInsights(profile, catalog, scored)

	var strength, warning *model.Insight
	for i := range insights {
		switch insights[i].Type {
		case model.InsightStrength:
			strength = &insights[i]
		case model.InsightWarning:
			warning = &insights[i]
		}
	}

	require.NotNil(t, strength)
	assert.Equal(t, 92, strength.Confidence)

	require.NotNil(t, warning)
	assert.Equal(t, 88, warning.Confidence)
	// 缺口告警指向第一个覆盖后端关键词的课程
	assert.Equal(t, "item-node", warning.TargetItemID)
	assert.NotEmpty(t, warning.ActionLabel)
}

func TestGenerateInsightsAlwaysEmittedRules(t *testing.T) {
	// 空画像空目录：只剩两条必出的预测类诊断
	insights := GenerateInsights(&model.LearnerProfile{}, nil, nil)
	require.Len(t, insights, 2)
	assert.Equal(t, model.InsightPrediction, insights[0].Type)
	assert.Equal(t, 75, insights[0].Confidence)
	assert.Equal(t, model.InsightPrediction, insights[1].Type)
	assert.Equal(t, 70, insights[1].Confidence)
}

func TestGenerateInsightsOrderAndBounds(t *testing.T) {
	profile := &model.LearnerProfile{
		CompletedItems: []string{"a", "b", "c"},
		StrongSkills:   []string{"HTML/CSS", "JavaScript", "React"},
		WeakSkills:     []string{"Node", "SQL"},
		LearningGoal:   "full-stack",
		AvgScore:       72,
	}
	catalog := insightCatalog()
	scored := ScoreCatalog(profile, catalog, DefaultScoreWeights())

	insights := GenerateInsights(profile, catalog, scored)
	require.Len(t, insights, 6)

	// 规则顺序固定：强项、缺口、速度、热门、同伴、节奏
	wantTypes := []model.InsightType{
		model.InsightStrength,
		model.InsightWarning,
		model.InsightPrediction,
		model.InsightOpportunity,
		model.InsightOpportunity,
		model.InsightPrediction,
	}
	wantConfidence := []int{92, 88, 75, 85, 82, 70}
	for i, insight := range insights {
		assert.Equal(t, wantTypes[i], insight.Type, "insight %d type", i)
		assert.Equal(t, wantConfidence[i], insight.Confidence, "insight %d confidence", i)
		assert.NotEmpty(t, insight.Title)
		assert.NotEmpty(t, insight.Description)
		assert.GreaterOrEqual(t, insight.Confidence, 0)
		assert.LessOrEqual(t, insight.Confidence, 100)
	}

	// 热门诊断指向第一个热门条目
	assert.Equal(t, "item-python", insights[3].TargetItemID)
}

func TestGenerateInsightsVelocityMonths(t *testing.T) {
	tests := []struct {
		completed int
		want      string
	}{
		{0, "约 6 个月"},
		{3, "约 4 个月"}, // ceil(6 - 2.4) = 4
		{7, "约 1 个月"}, // ceil(6 - 5.6) = 1
	}

	for _, tt := range tests {
		profile := &model.LearnerProfile{CompletedItems: make([]string, tt.completed)}
		insights := GenerateInsights(profile, nil, nil)
		require.NotEmpty(t, insights)
		assert.Contains(t, insights[0].Description, tt.want, "completed=%d", tt.completed)
	}
}

func TestMatchedGapKeywordsKeepsDeclarationOrder(t *testing.T) {
	matched := matchedGapKeywords([]string{"SQL Basics", "Node", "Python"})
	assert.Equal(t, []string{"python", "node", "sql"}, matched)

	assert.Empty(t, matchedGapKeywords([]string{"Figma", "Design"}))
}
