package service

import (
	"fmt"
	"strings"
)

// 诊断文案与规则逻辑分离，便于调整措辞或做本地化而不动打分规则。

func strengthMessage(strongSkills []string) (string, string) {
	return "技能优势明显",
		fmt.Sprintf("您已掌握 %s 等 %d 项技能，基础扎实，可以挑战更高阶的内容。",
			strings.Join(strongSkills, "、"), len(strongSkills))
}

func gapWarningMessage(gaps []string) (string, string) {
	return "关键技能缺口",
		fmt.Sprintf("距离全栈目标还缺少 %s 方向的能力，建议优先补齐。",
			strings.Join(gaps, "、"))
}

func velocityMessage(months int) (string, string) {
	return "学习速度预测",
		fmt.Sprintf("按当前进度估算，约 %d 个月可达成学习目标。", months)
}

func trendingMessage(title string) (string, string) {
	return "热门课程匹配",
		fmt.Sprintf("《%s》正在热门上升，与您的方向契合，适合现在加入。", title)
}

func topPickMessage(title string, score int) (string, string) {
	return "与您相似的学习者都在学",
		fmt.Sprintf("和您画像相近的学习者大多选择了《%s》（匹配度 %d%%）。", title, score)
}

func scheduleMessage() (string, string) {
	return "学习节奏建议",
		"数据显示保持每周 3-4 次、每次 1-2 小时的节奏最容易坚持，建议按周计划安排学习。"
}
