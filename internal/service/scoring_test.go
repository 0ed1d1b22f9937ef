package service

import (
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullStackProfile() *model.LearnerProfile {
	return &model.LearnerProfile{
		StrongSkills: []string{"HTML/CSS", "JavaScript", "React", "Figma"},
		WeakSkills:   []string{"Python", "Data Analysis", "Machine Learning"},
		Interests:    []string{"Programming", "Data", "AI", "Design"},
		AvgScore:     88,
		LearningGoal: "Become a Full-Stack Developer",
	}
}

func pythonDataItem() *model.CatalogItem {
	return &model.CatalogItem{
		Title:           "Python数据分析入门",
		Category:        "Data",
		Tags:            []string{"Python", "Pandas", "NumPy", "Data"},
		Level:           model.LevelBeginner,
		Rating:          4.8,
		EnrollmentCount: 1890,
	}
}

func TestScoreItemFullBreakdown(t *testing.T) {
	// 补弱 {Python, Data} = +36；强项 0；兴趣 {Data} = +10；
	// 难度 0（88 分但课程是 Beginner）；目标 0（标签不含后端技术栈）；
	// 质量 4.8/5*8 + min(1890/500, 5) = 11.46 → 57.46 → 57
	score := ScoreItem(fullStackProfile(), pythonDataItem(), DefaultScoreWeights())
	assert.Equal(t, 57, score)
}

func TestScoreItemGoalBonusExactTagMatch(t *testing.T) {
	profile := fullStackProfile()
	w := DefaultScoreWeights()

	// "Data" 标签不能误配后端集合里的 "Database"
	withoutBackend := ScoreItem(profile, pythonDataItem(), w)

	item := pythonDataItem()
	item.Tags = append(item.Tags, "Database")
	withBackend := ScoreItem(profile, item, w)

	// "database" 与薄弱技能互不包含，两次打分只差目标加成
	assert.Equal(t, withoutBackend+int(w.GoalBonus), withBackend)
}

func TestScoreItemLevelBonus(t *testing.T) {
	w := DefaultScoreWeights()
	item := &model.CatalogItem{Title: "x", Level: model.LevelAdvanced}

	tests := []struct {
		name     string
		avgScore float64
		level    model.CourseLevel
		want     int
	}{
		{"advanced learner advanced course", 85, model.LevelAdvanced, 15},
		{"mid learner intermediate course", 70, model.LevelIntermediate, 12},
		{"new learner beginner course", 50, model.LevelBeginner, 10},
		{"mid learner advanced course", 70, model.LevelAdvanced, 0},
		{"advanced learner beginner course", 90, model.LevelBeginner, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item.Level = tt.level
			profile := &model.LearnerProfile{AvgScore: tt.avgScore}
			assert.Equal(t, tt.want, ScoreItem(profile, item, w))
		})
	}
}

func TestScoreItemInterestCountedOnce(t *testing.T) {
	w := DefaultScoreWeights()
	item := &model.CatalogItem{
		Category: "Data",
		Tags:     []string{"Data", "Data Visualization"},
	}

	// 一个兴趣同时命中分类和两个标签，也只加一次兴趣分
	profile := &model.LearnerProfile{Interests: []string{"Data"}, AvgScore: 80}
	assert.Equal(t, int(w.InterestMatch), ScoreItem(profile, item, w))

	// 重复声明的兴趣同样只计一次
	profile.Interests = []string{"Data", "data", " DATA "}
	assert.Equal(t, int(w.InterestMatch), ScoreItem(profile, item, w))
}

func TestScoreItemRangeAndSafety(t *testing.T) {
	w := DefaultScoreWeights()

	assert.Equal(t, 0, ScoreItem(nil, pythonDataItem(), w))
	assert.Equal(t, 0, ScoreItem(fullStackProfile(), nil, w))

	// 空画像：难度加成（0 分视作 <70，入门课 +10）加质量加成
	empty := &model.LearnerProfile{}
	score := ScoreItem(empty, pythonDataItem(), w)
	assert.Equal(t, 21, score) // 10 + round(7.68 + 3.78)

	// 堆满加分项也不能超过 100
	loaded := &model.LearnerProfile{
		WeakSkills:   []string{"Go", "Rust", "Python", "SQL", "Docker", "Kubernetes"},
		Interests:    []string{"Backend"},
		AvgScore:     90,
		LearningGoal: "full-stack engineer",
	}
	item := &model.CatalogItem{
		Category:        "Backend",
		Tags:            []string{"Go", "Rust", "Python", "SQL", "Docker", "Kubernetes", "Backend"},
		Level:           model.LevelAdvanced,
		Rating:          5,
		EnrollmentCount: 100000,
	}
	assert.Equal(t, 100, ScoreItem(loaded, item, w))
}

func TestScoreItemGapFillPerMatchingTag(t *testing.T) {
	w := DefaultScoreWeights()
	profile := &model.LearnerProfile{WeakSkills: []string{"Python", "SQL"}, AvgScore: 80}
	item := &model.CatalogItem{Tags: []string{"Python"}}

	base := ScoreItem(profile, item, w)

	// 每多一个命中薄弱技能的标签，分数增加一份补弱权重
	item.Tags = append(item.Tags, "SQL")
	assert.Equal(t, base+int(w.GapFill), ScoreItem(profile, item, w))

	// 未命中的标签不影响分数
	item.Tags = append(item.Tags, "Figma")
	assert.Equal(t, base+int(w.GapFill), ScoreItem(profile, item, w))
}

func TestScoreWeightsFromConfig(t *testing.T) {
	// 零值配置整体回退到默认权重
	assert.Equal(t, DefaultScoreWeights(), ScoreWeightsFromConfig(config.WeightsConfig{}))

	// 只覆盖声明过的字段
	w := ScoreWeightsFromConfig(config.WeightsConfig{GapFill: 30, EnrollmentCap: 10})
	assert.Equal(t, 30.0, w.GapFill)
	assert.Equal(t, 10.0, w.EnrollmentCap)
	assert.Equal(t, DefaultScoreWeights().SkillOverlap, w.SkillOverlap)
}

func TestScoreCatalogAndTopScored(t *testing.T) {
	profile := fullStackProfile()
	catalog := []model.CatalogItem{
		*pythonDataItem(),
		{Title: "UI/UX 设计原则", Category: "Design", Tags: []string{"Figma", "Design"}, Level: model.LevelBeginner, Rating: 4.4, EnrollmentCount: 760},
	}

	scored := ScoreCatalog(profile, catalog, DefaultScoreWeights())
	require.Len(t, scored, 2)
	assert.Equal(t, 57, scored[0].AffinityScore)

	top := TopScored(scored)
	require.NotNil(t, top)
	assert.Equal(t, "Python数据分析入门", top.Title)

	assert.Nil(t, TopScored(nil))
}
