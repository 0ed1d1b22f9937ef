package model

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
)

// CatalogItem 可推荐的课程条目，由目录提供方维护
// swagger:model CatalogItem
type CatalogItem struct {
	UUIDBase
	Title           string      `gorm:"size:255;not null" json:"title"`
	Category        string      `gorm:"size:100;index" json:"category"`
	Tags            []string    `gorm:"type:json;serializer:json" json:"tags"`
	Level           CourseLevel `gorm:"type:varchar(20);index" json:"level"`
	Rating          float64     `gorm:"default:0" json:"rating"`
	EnrollmentCount int         `gorm:"default:0" json:"enrollmentCount"`
	IsNew           bool        `gorm:"default:false" json:"isNew"`
	IsTrending      bool        `gorm:"default:false" json:"isTrending"`
	CoverURL        string      `gorm:"size:255" json:"coverUrl"`
}

func (CatalogItem) TableName() string {
	return "catalog_items"
}

// ScoredItem 目录条目加上针对某个学习者计算出的匹配分。
// 分数随画像或目录变化重新计算，不单独落库。
// swagger:model ScoredItem
type ScoredItem struct {
	CatalogItem
	AffinityScore int `json:"affinityScore"`
}
