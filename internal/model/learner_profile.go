package model

// LearnerProfile 学习者画像：打分过程中的只读快照
// swagger:model LearnerProfile
type LearnerProfile struct {
	BaseModel
	UserID         uint        `gorm:"uniqueIndex;not null" json:"userId"`
	CompletedItems []string    `gorm:"type:json;serializer:json" json:"completedItems"`
	Interests      []string    `gorm:"type:json;serializer:json" json:"interests"`
	StrongSkills   []string    `gorm:"type:json;serializer:json" json:"strongSkills"`
	WeakSkills     []string    `gorm:"type:json;serializer:json" json:"weakSkills"`
	PreferredLevel CourseLevel `gorm:"type:varchar(20);default:'Beginner'" json:"preferredLevel"`
	AvgScore       float64     `gorm:"default:0" json:"avgScore"`
	LearningGoal   string      `gorm:"size:255" json:"learningGoal"`
}

func (LearnerProfile) TableName() string {
	return "learner_profiles"
}
