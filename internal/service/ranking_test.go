package service

import (
	"learnhub_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleScored() []model.ScoredItem {
	return []model.ScoredItem{
		{
			CatalogItem: model.CatalogItem{
				Title: "Python数据分析入门", Category: "Data",
				Tags: []string{"Python", "Pandas"}, Level: model.LevelBeginner,
				Rating: 4.8, EnrollmentCount: 1890,
			},
			AffinityScore: 57,
		},
		{
			CatalogItem: model.CatalogItem{
				Title: "Node.js 后端实战", Category: "Programming",
				Tags: []string{"Node.js", "Backend"}, Level: model.LevelIntermediate,
				Rating: 4.6, EnrollmentCount: 2340,
			},
			AffinityScore: 72,
		},
		{
			CatalogItem: model.CatalogItem{
				Title: "React 高级模式", Category: "Programming",
				Tags: []string{"React", "Frontend"}, Level: model.LevelAdvanced,
				Rating: 4.7, EnrollmentCount: 1560, IsNew: true,
			},
			AffinityScore: 65,
		},
	}
}

func TestFilterAndSortDefaultByScore(t *testing.T) {
	out := FilterAndSort(sampleScored(), CatalogQuery{})
	require.Len(t, out, 3)
	assert.Equal(t, []int{72, 65, 57}, []int{out[0].AffinityScore, out[1].AffinityScore, out[2].AffinityScore})
}

func TestFilterAndSortTextMatchesTitleOrTag(t *testing.T) {
	// 标题命中
	out := FilterAndSort(sampleScored(), CatalogQuery{Text: "python"})
	require.Len(t, out, 1)
	assert.Equal(t, "Python数据分析入门", out[0].Title)

	// 标签命中
	out = FilterAndSort(sampleScored(), CatalogQuery{Text: "backend"})
	require.Len(t, out, 1)
	assert.Equal(t, "Node.js 后端实战", out[0].Title)

	out = FilterAndSort(sampleScored(), CatalogQuery{Text: "rust"})
	assert.Empty(t, out)
}

func TestFilterAndSortCategoryAndLevel(t *testing.T) {
	// 空和 all 都不过滤
	assert.Len(t, FilterAndSort(sampleScored(), CatalogQuery{Category: "", Level: "all"}), 3)
	assert.Len(t, FilterAndSort(sampleScored(), CatalogQuery{Category: FilterAll}), 3)

	out := FilterAndSort(sampleScored(), CatalogQuery{Category: "Programming", Level: "Advanced"})
	require.Len(t, out, 1)
	assert.Equal(t, "React 高级模式", out[0].Title)

	// 未知取值得到空结果而不是报错
	assert.Empty(t, FilterAndSort(sampleScored(), CatalogQuery{Category: "Cooking"}))
	assert.Empty(t, FilterAndSort(sampleScored(), CatalogQuery{Level: "Expert"}))
}

func TestFilterAndSortModes(t *testing.T) {
	byRating := FilterAndSort(sampleScored(), CatalogQuery{Sort: SortRating})
	assert.Equal(t, "Python数据分析入门", byRating[0].Title)

	byPopular := FilterAndSort(sampleScored(), CatalogQuery{Sort: SortPopular})
	assert.Equal(t, "Node.js 后端实战", byPopular[0].Title)

	// newest 只把新课提前，其余保持原有顺序
	byNewest := FilterAndSort(sampleScored(), CatalogQuery{Sort: SortNewest})
	assert.Equal(t, "React 高级模式", byNewest[0].Title)
	assert.Equal(t, "Python数据分析入门", byNewest[1].Title)
	assert.Equal(t, "Node.js 后端实战", byNewest[2].Title)

	// 未知排序键回退到匹配度
	fallback := FilterAndSort(sampleScored(), CatalogQuery{Sort: "whatever"})
	assert.Equal(t, 72, fallback[0].AffinityScore)
}

func TestFilterAndSortDoesNotMutateInput(t *testing.T) {
	in := sampleScored()
	FilterAndSort(in, CatalogQuery{Sort: SortRating})
	assert.Equal(t, "Python数据分析入门", in[0].Title)
	assert.Equal(t, "Node.js 后端实战", in[1].Title)
}

func TestNormalizedSort(t *testing.T) {
	assert.Equal(t, SortMatch, CatalogQuery{}.NormalizedSort())
	assert.Equal(t, SortMatch, CatalogQuery{Sort: "bogus"}.NormalizedSort())
	assert.Equal(t, SortRating, CatalogQuery{Sort: SortRating}.NormalizedSort())
	assert.Equal(t, SortNewest, CatalogQuery{Sort: SortNewest}.NormalizedSort())
}
