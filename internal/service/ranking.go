package service

import (
	"learnhub_backend/internal/model"
	"sort"
	"strings"
)

const FilterAll = "all"

// 排序键，未知键回退到 SortMatch
const (
	SortMatch   = "match"
	SortRating  = "rating"
	SortPopular = "popular"
	SortNewest  = "newest"
)

// CatalogQuery 推荐列表的过滤/排序参数
type CatalogQuery struct {
	Text     string `form:"text"`
	Category string `form:"category"`
	Level    string `form:"level"`
	Sort     string `form:"sort"`
}

// NormalizedSort 返回实际生效的排序键
func (q CatalogQuery) NormalizedSort() string {
	switch q.Sort {
	case SortRating, SortPopular, SortNewest:
		return q.Sort
	default:
		return SortMatch
	}
}

// FilterAndSort 先过滤后排序，返回新切片，不触碰底层目录。
// category/level 为空或 "all" 时不过滤；其余值按相等匹配，
// 未知值自然得到空结果而不是错误。
func FilterAndSort(scored []model.ScoredItem, q CatalogQuery) []model.ScoredItem {
	out := make([]model.ScoredItem, 0, len(scored))

	text := strings.ToLower(strings.TrimSpace(q.Text))
	for _, item := range scored {
		if text != "" && !textMatches(item, text) {
			continue
		}
		if q.Category != "" && q.Category != FilterAll && item.Category != q.Category {
			continue
		}
		if q.Level != "" && q.Level != FilterAll && string(item.Level) != q.Level {
			continue
		}
		out = append(out, item)
	}

	switch q.NormalizedSort() {
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EnrollmentCount > out[j].EnrollmentCount
		})
	case SortNewest:
		// 新课排前，其余保持原有顺序
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].IsNew && !out[j].IsNew
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].AffinityScore > out[j].AffinityScore
		})
	}

	return out
}

// textMatches 标题或任一标签包含查询文本（忽略大小写）
func textMatches(item model.ScoredItem, lowerText string) bool {
	if strings.Contains(strings.ToLower(item.Title), lowerText) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), lowerText) {
			return true
		}
	}
	return false
}
