package service

import (
	"learnlens_backend/internal/model"
	"math"
)

// EngagementThresholds 参与度计分阈值
type EngagementThresholds struct {
	MinActiveTime    int // 计入时间分量的最低活跃秒数
	DeepLearningTime int // 达到该活跃秒数时间分量封顶
}

func DefaultEngagementThresholds() EngagementThresholds {
	return EngagementThresholds{
		MinActiveTime:    60,
		DeepLearningTime: 1200,
	}
}

// EngagementScorer 参与度打分，四个独立封顶的分量相加后再整体封顶到 100。
// 纯函数，对固定输入输出恒定。
type EngagementScorer struct {
	thresholds EngagementThresholds
}

func NewEngagementScorer(thresholds EngagementThresholds) *EngagementScorer {
	return &EngagementScorer{thresholds: thresholds}
}

// Score 由活跃时长、滚动深度、回访次数和学习类型计算 0-100 的参与度分数
func (s *EngagementScorer) Score(activeTime int, scrollDepth float64, revisitCount int, learningType string) int {
	score := 0.0

	// 时间分量 (0-40)
	if activeTime >= s.thresholds.DeepLearningTime {
		score += 40
	} else if activeTime >= s.thresholds.MinActiveTime {
		score += float64(activeTime) / float64(s.thresholds.DeepLearningTime) * 40
	}

	// 滚动深度分量 (0-20)
	score += math.Max(0, math.Min(scrollDepth*20, 20))

	// 回访分量 (0-20)
	if revisitCount > 1 {
		score += math.Min(float64(revisitCount-1)*5, 20)
	}

	// 学习类型分量 (0-20)
	score += typeScore(learningType)

	return int(math.Round(math.Min(score, 100)))
}

func typeScore(learningType string) float64 {
	switch learningType {
	case model.TypePractice:
		return 20
	case model.TypeCourse:
		return 18
	case model.TypeVideo:
		return 15
	case model.TypeDocumentation:
		return 12
	case model.TypeReading:
		return 10
	default:
		return 10
	}
}

// LevelFor 由分数得到参与度等级，阈值为闭区间下界，自高向低取首个命中
func LevelFor(score int) string {
	switch {
	case score >= 80:
		return model.LevelDeepLearning
	case score >= 60:
		return model.LevelActiveStudy
	case score >= 40:
		return model.LevelModerate
	case score >= 20:
		return model.LevelLightReading
	default:
		return model.LevelBrowsing
	}
}
