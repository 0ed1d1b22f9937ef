package service

import (
	"learnhub_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWeeklyPlanShape(t *testing.T) {
	top := &model.CatalogItem{Title: "Node.js 后端实战"}
	top.ID = "item-node"

	plan := BuildWeeklyPlan(top)
	require.Len(t, plan, 7)

	wantDays := []string{"周六", "周日", "周一", "周二", "周三", "周四", "周五"}
	wantTypes := []model.SlotType{
		model.SlotStudy, model.SlotPractice, model.SlotStudy,
		model.SlotReview, model.SlotStudy, model.SlotPractice, model.SlotRest,
	}

	for i, slot := range plan {
		assert.Equal(t, wantDays[i], slot.Day, "slot %d day", i)
		assert.Equal(t, wantTypes[i], slot.SlotType, "slot %d type", i)
		assert.NotEmpty(t, slot.Activity)
		assert.NotEmpty(t, slot.Duration)

		// 只有学习格引用课程 id
		if slot.SlotType == model.SlotStudy {
			assert.Equal(t, "item-node", slot.ItemID)
			assert.Contains(t, slot.Activity, "Node.js 后端实战")
		} else {
			assert.Empty(t, slot.ItemID)
		}
	}
}

func TestBuildWeeklyPlanWithoutTopItem(t *testing.T) {
	plan := BuildWeeklyPlan(nil)
	require.Len(t, plan, 7)

	for _, slot := range plan {
		assert.Empty(t, slot.ItemID)
		if slot.SlotType == model.SlotStudy {
			assert.Contains(t, slot.Activity, "本周推荐课程")
		}
	}
}
