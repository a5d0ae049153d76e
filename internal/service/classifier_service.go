package service

import (
	"learnlens_backend/internal/model"
	"math"
	"strings"
)

// 分类器读取的文本窗口上限，控制匹配成本
const maxContentWindow = 1000

// ClassifierService 资源探测与内容分类。
// 纯函数集合：无 I/O，不修改领域表，对任意输入不 panic。
type ClassifierService struct {
	domains   []model.LearningDomain
	platforms []string
	keywords  []string
}

func NewClassifierService(domains []model.LearningDomain) *ClassifierService {
	return &ClassifierService{
		domains:   domains,
		platforms: model.LearningPlatforms(),
		keywords:  model.LearningKeywords(),
	}
}

// IsLearningResource 判断一次页面访问是否学习资源。
// URL 命中平台子串或标题命中学习意图关键词即为真。
func (s *ClassifierService) IsLearningResource(url, title string) bool {
	if url == "" {
		return false
	}

	urlLower := strings.ToLower(url)
	titleLower := strings.ToLower(title)

	for _, platform := range s.platforms {
		if strings.Contains(urlLower, platform) {
			return true
		}
	}

	for _, keyword := range s.keywords {
		if strings.Contains(titleLower, keyword) {
			return true
		}
	}

	return false
}

// Categorize 将内容匹配到得分最高的学习领域。
// 计分规则：平台命中 +3，每个关键词命中 +2，每个子主题命中 +2；
// 严格大于当前最高分才会更换分类，因此领域表的顺序决定平局归属。
func (s *ClassifierService) Categorize(url, title, content string) model.Categorization {
	urlLower := strings.ToLower(url)
	combined := strings.ToLower(title) + " " + strings.ToLower(content)
	if len(combined) > maxContentWindow {
		combined = combined[:maxContentWindow]
	}

	category := model.GeneralLearning
	var subcategory *string
	best := 0

	for i := range s.domains {
		domain := &s.domains[i]
		score := 0

		for _, platform := range domain.Platforms {
			if strings.Contains(urlLower, strings.ToLower(platform)) {
				score += 3
				break
			}
		}

		for _, keyword := range domain.Keywords {
			if strings.Contains(combined, strings.ToLower(keyword)) {
				score += 2
			}
		}

		for _, subcat := range domain.Subcategories {
			if strings.Contains(combined, strings.ToLower(subcat)) {
				score += 2
				if subcategory == nil || score > best {
					sc := subcat
					subcategory = &sc
				}
			}
		}

		if score > best {
			best = score
			category = domain.Name
		}
	}

	return model.Categorization{
		Category:     category,
		Subcategory:  subcategory,
		LearningType: learningTypeFor(urlLower),
		Confidence:   math.Min(float64(best)/10, 1),
	}
}

// DomainByName 按分类名取领域配置，建议生成时用于补齐未覆盖子主题
func (s *ClassifierService) DomainByName(name string) *model.LearningDomain {
	for i := range s.domains {
		if s.domains[i].Name == name {
			return &s.domains[i]
		}
	}
	return nil
}

// learningTypeFor 按 URL 子串判定学习类型。
// 优先级固定：Video → Practice → Course → Documentation，否则 Reading。
func learningTypeFor(urlLower string) string {
	switch {
	case strings.Contains(urlLower, "youtube") || strings.Contains(urlLower, "video"):
		return model.TypeVideo
	case strings.Contains(urlLower, "exercise") || strings.Contains(urlLower, "practice") || strings.Contains(urlLower, "coding"):
		return model.TypePractice
	case strings.Contains(urlLower, "course") || strings.Contains(urlLower, "tutorial"):
		return model.TypeCourse
	case strings.Contains(urlLower, "docs") || strings.Contains(urlLower, "documentation"):
		return model.TypeDocumentation
	default:
		return model.TypeReading
	}
}
