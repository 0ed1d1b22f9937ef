package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendCacheKeyStable(t *testing.T) {
	q := CatalogQuery{Text: "python", Category: "Data", Level: "Beginner", Sort: SortRating}
	assert.Equal(t, recommendCacheKey(1, 0, q), recommendCacheKey(1, 0, q))
}

func TestRecommendCacheKeySeparatorSafe(t *testing.T) {
	// 取值里出现分隔符不能让不同查询撞到同一个键
	a := CatalogQuery{Text: "a:b", Category: "c"}
	b := CatalogQuery{Text: "a", Category: "b:c"}
	assert.NotEqual(t, recommendCacheKey(1, 0, a), recommendCacheKey(1, 0, b))

	c := CatalogQuery{Text: "ab", Category: "c"}
	d := CatalogQuery{Text: "a", Category: "bc"}
	assert.NotEqual(t, recommendCacheKey(1, 0, c), recommendCacheKey(1, 0, d))
}

func TestRecommendCacheKeyVariesByUserAndEpoch(t *testing.T) {
	q := CatalogQuery{Text: "python"}

	assert.NotEqual(t, recommendCacheKey(1, 0, q), recommendCacheKey(2, 0, q))

	// 权重热更新后 epoch 递增，旧缓存键不再被命中
	assert.NotEqual(t, recommendCacheKey(1, 0, q), recommendCacheKey(1, 1, q))
}

func TestRecommendCacheKeyNormalizesSort(t *testing.T) {
	// 未知排序键与默认排序生成同一个键，避免同一视图缓存两份
	assert.Equal(t,
		recommendCacheKey(1, 0, CatalogQuery{Sort: "bogus"}),
		recommendCacheKey(1, 0, CatalogQuery{Sort: SortMatch}))
}
