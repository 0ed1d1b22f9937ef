package model

type SlotType string

const (
	SlotStudy    SlotType = "study"
	SlotPractice SlotType = "practice"
	SlotReview   SlotType = "review"
	SlotRest     SlotType = "rest"
)

// WeeklyPlanSlot 周计划中的一格，按周六到周五排列，每天一格
// swagger:model WeeklyPlanSlot
type WeeklyPlanSlot struct {
	Day      string   `json:"day"`
	Activity string   `json:"activity"`
	Duration string   `json:"duration"`
	ItemID   string   `json:"itemId,omitempty"`
	SlotType SlotType `json:"slotType"`
}
