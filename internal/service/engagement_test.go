package service

import (
	"learnlens_backend/internal/model"
	"testing"
)

func newTestScorer() *EngagementScorer {
	return NewEngagementScorer(DefaultEngagementThresholds())
}

func TestScoreComponents(t *testing.T) {
	scorer := newTestScorer()

	tests := []struct {
		name         string
		activeTime   int
		scrollDepth  float64
		revisits     int
		learningType string
		want         int
	}{
		{"深度练习会话", 1200, 1.0, 3, model.TypePractice, 90},   // 40 + 20 + 10 + 20
		{"浅浏览会话", 45, 0.1, 1, model.TypeReading, 12},       // 0 + 2 + 0 + 10
		{"时间刚好达到下限", 60, 0, 1, model.TypeReading, 12},      // 60/1200*40 = 2
		{"时间低于下限不计分", 59, 0, 1, model.TypeReading, 10},     // 时间分量为 0
		{"滚动深度封顶", 0, 5.0, 1, model.TypeReading, 30},       // 滚动分量封顶 20
		{"负滚动深度按零处理", 0, -1.0, 1, model.TypeReading, 10},   //
		{"回访分量封顶", 0, 0, 10, model.TypeReading, 30},        // 回访分量封顶 20
		{"单次访问无回访分", 0, 0, 1, model.TypeReading, 10},       //
		{"总分封顶 100", 2000, 1.0, 10, model.TypePractice, 100}, // 40 + 20 + 20 + 20
		{"未知学习类型按阅读计", 0, 0, 1, "", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.activeTime, tt.scrollDepth, tt.revisits, tt.learningType)
			if got != tt.want {
				t.Errorf("Score(%d, %v, %d, %q) = %d, want %d",
					tt.activeTime, tt.scrollDepth, tt.revisits, tt.learningType, got, tt.want)
			}
		})
	}
}

func TestScoreBounds(t *testing.T) {
	scorer := newTestScorer()

	inputs := []struct {
		activeTime   int
		scrollDepth  float64
		revisits     int
		learningType string
	}{
		{0, 0, 0, ""},
		{-100, -5, -3, "garbage"},
		{1 << 30, 100, 1 << 20, model.TypePractice},
	}

	for _, in := range inputs {
		got := scorer.Score(in.activeTime, in.scrollDepth, in.revisits, in.learningType)
		if got < 0 || got > 100 {
			t.Errorf("Score(%+v) = %d, out of [0, 100]", in, got)
		}
	}
}

func TestScoreMonotonicInActiveTime(t *testing.T) {
	scorer := newTestScorer()

	prev := -1
	for _, activeTime := range []int{0, 30, 60, 300, 600, 1200, 3600} {
		got := scorer.Score(activeTime, 0.5, 1, model.TypeReading)
		if got < prev {
			t.Errorf("score dropped from %d to %d at activeTime=%d", prev, got, activeTime)
		}
		prev = got
	}
}

func TestTypeScoreOrdering(t *testing.T) {
	// Practice > Course > Video > Documentation > Reading
	ordered := []string{model.TypePractice, model.TypeCourse, model.TypeVideo, model.TypeDocumentation, model.TypeReading}
	for i := 1; i < len(ordered); i++ {
		if typeScore(ordered[i-1]) <= typeScore(ordered[i]) {
			t.Errorf("typeScore(%q) = %v should exceed typeScore(%q) = %v",
				ordered[i-1], typeScore(ordered[i-1]), ordered[i], typeScore(ordered[i]))
		}
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, model.LevelDeepLearning},
		{80, model.LevelDeepLearning},
		{79, model.LevelActiveStudy},
		{60, model.LevelActiveStudy},
		{59, model.LevelModerate},
		{40, model.LevelModerate},
		{39, model.LevelLightReading},
		{20, model.LevelLightReading},
		{19, model.LevelBrowsing},
		{0, model.LevelBrowsing},
	}

	for _, tt := range tests {
		if got := LevelFor(tt.score); got != tt.want {
			t.Errorf("LevelFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
