package service

import (
	"fmt"
	"learnhub_backend/internal/model"
)

// 没有可推荐课程时学习格使用的占位标题
const planPlaceholderTitle = "本周推荐课程"

// BuildWeeklyPlan 生成固定的 7 格周计划（周六开始），
// 学习格引用最高分课程；top 为 nil 时退回占位标题而非报错。
func BuildWeeklyPlan(top *model.CatalogItem) []model.WeeklyPlanSlot {
	title := planPlaceholderTitle
	itemID := ""
	if top != nil {
		title = top.Title
		itemID = top.ID
	}

	return []model.WeeklyPlanSlot{
		{
			Day:      "周六",
			Activity: fmt.Sprintf("学习《%s》第 1-3 课", title),
			Duration: "2小时",
			ItemID:   itemID,
			SlotType: model.SlotStudy,
		},
		{
			Day:      "周日",
			Activity: "动手练习，巩固本周新内容",
			Duration: "1.5小时",
			SlotType: model.SlotPractice,
		},
		{
			Day:      "周一",
			Activity: fmt.Sprintf("学习《%s》第 4-5 课", title),
			Duration: "1.5小时",
			ItemID:   itemID,
			SlotType: model.SlotStudy,
		},
		{
			Day:      "周二",
			Activity: "复习笔记，整理错题",
			Duration: "1小时",
			SlotType: model.SlotReview,
		},
		{
			Day:      "周三",
			Activity: fmt.Sprintf("学习《%s》第 6-7 课并完成随堂测验", title),
			Duration: "2小时",
			ItemID:   itemID,
			SlotType: model.SlotStudy,
		},
		{
			Day:      "周四",
			Activity: "小项目实战，应用本周所学",
			Duration: "2小时",
			SlotType: model.SlotPractice,
		},
		{
			Day:      "周五",
			Activity: "休息调整，保持节奏",
			Duration: "-",
			SlotType: model.SlotRest,
		},
	}
}
