package service

import (
	"learnlens_backend/internal/model"
	"strings"
	"testing"
)

func newTestClassifier() *ClassifierService {
	return NewClassifierService(model.DefaultTaxonomy())
}

func TestIsLearningResource(t *testing.T) {
	classifier := newTestClassifier()

	tests := []struct {
		name  string
		url   string
		title string
		want  bool
	}{
		{"平台 URL 命中", "https://www.youtube.com/watch?v=abc123", "React Crash Course", true},
		{"文档站点命中", "https://docs.python.org/3/", "3.12 Release Notes", true},
		{"标题关键词命中", "https://blog.example.com/post/42", "A Beginner's Guide to Goroutines", true},
		{"普通页面不命中", "https://example.com/about", "About Us", false},
		{"空 URL 直接拒绝", "", "Tutorial for Everything", false},
		{"空标题仅靠 URL", "https://www.coursera.org/specializations/algorithms", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.IsLearningResource(tt.url, tt.title); got != tt.want {
				t.Errorf("IsLearningResource(%q, %q) = %v, want %v", tt.url, tt.title, got, tt.want)
			}
		})
	}
}

func TestCategorizeVideoTutorial(t *testing.T) {
	classifier := newTestClassifier()

	got := classifier.Categorize(
		"https://www.youtube.com/watch?v=abc123",
		"React Tutorial for Beginners",
		"",
	)

	if got.Category != "Frontend Development" {
		t.Errorf("Category = %q, want %q", got.Category, "Frontend Development")
	}
	if got.Subcategory == nil || *got.Subcategory != "React" {
		t.Errorf("Subcategory = %v, want React", got.Subcategory)
	}
	if got.LearningType != model.TypeVideo {
		t.Errorf("LearningType = %q, want %q", got.LearningType, model.TypeVideo)
	}
	if got.Confidence <= 0 || got.Confidence > 1 {
		t.Errorf("Confidence = %v, want in (0, 1]", got.Confidence)
	}
}

func TestCategorizeFallsBackToGeneralLearning(t *testing.T) {
	classifier := newTestClassifier()

	got := classifier.Categorize("https://docs.example.com/changelog", "zzz qqq", "")

	if got.Category != model.GeneralLearning {
		t.Errorf("Category = %q, want %q", got.Category, model.GeneralLearning)
	}
	if got.Subcategory != nil {
		t.Errorf("Subcategory = %q, want nil", *got.Subcategory)
	}
	if got.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", got.Confidence)
	}
	if got.LearningType != model.TypeDocumentation {
		t.Errorf("LearningType = %q, want %q", got.LearningType, model.TypeDocumentation)
	}
}

func TestCategorizeConfidenceClampedToOne(t *testing.T) {
	classifier := newTestClassifier()

	// 大量关键词和子主题命中，原始分远超 10
	got := classifier.Categorize(
		"https://developer.mozilla.org/en-US/docs/Web",
		"html css javascript react vue angular typescript frontend responsive dom",
		"",
	)

	if got.Category != "Frontend Development" {
		t.Errorf("Category = %q, want %q", got.Category, "Frontend Development")
	}
	if got.Confidence != 1 {
		t.Errorf("Confidence = %v, want exactly 1", got.Confidence)
	}
}

func TestCategorizeTieGoesToEarlierDomain(t *testing.T) {
	classifier := newTestClassifier()

	// "machine learning" 同时命中 Data Science 和 Machine Learning & AI，
	// 两者得分相同，领域表中靠前的 Data Science 获胜。
	got := classifier.Categorize("https://example.org/article", "machine learning", "")

	if got.Category != "Data Science" {
		t.Errorf("Category = %q, want %q", got.Category, "Data Science")
	}
}

func TestCategorizeDeterministic(t *testing.T) {
	classifier := newTestClassifier()

	url := "https://www.kaggle.com/learn/pandas"
	title := "Pandas Tutorial: Data Analysis with Python"

	first := classifier.Categorize(url, title, "")
	second := classifier.Categorize(url, title, "")

	if first.Category != second.Category || first.Confidence != second.Confidence ||
		first.LearningType != second.LearningType {
		t.Errorf("repeated categorization diverged: %+v vs %+v", first, second)
	}
	if (first.Subcategory == nil) != (second.Subcategory == nil) {
		t.Fatalf("subcategory presence diverged")
	}
	if first.Subcategory != nil && *first.Subcategory != *second.Subcategory {
		t.Errorf("Subcategory = %q vs %q", *first.Subcategory, *second.Subcategory)
	}
}

func TestCategorizeLongContentDoesNotPanic(t *testing.T) {
	classifier := newTestClassifier()

	content := strings.Repeat("kubernetes docker cloud ", 500)
	got := classifier.Categorize("https://kubernetes.io/docs/home/", "Kubernetes Documentation", content)

	if got.Category != "Cloud & DevOps" {
		t.Errorf("Category = %q, want %q", got.Category, "Cloud & DevOps")
	}
}

func TestCategorizeEmptyInput(t *testing.T) {
	classifier := newTestClassifier()

	got := classifier.Categorize("", "", "")

	if got.Category != model.GeneralLearning {
		t.Errorf("Category = %q, want %q", got.Category, model.GeneralLearning)
	}
	if got.LearningType != model.TypeReading {
		t.Errorf("LearningType = %q, want %q", got.LearningType, model.TypeReading)
	}
}

func TestLearningTypePrecedence(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=1", model.TypeVideo},
		{"https://site.com/video/course-intro", model.TypeVideo}, // video 优先于 course
		{"https://leetcode.com/problemset/practice", model.TypePractice},
		{"https://site.com/practice/course", model.TypePractice}, // practice 优先于 course
		{"https://www.udemy.com/course/golang", model.TypeCourse},
		{"https://site.com/tutorial/intro", model.TypeCourse},
		{"https://docs.djangoproject.com/en/5.0/", model.TypeDocumentation},
		{"https://site.com/blog/some-article", model.TypeReading},
	}

	for _, tt := range tests {
		if got := learningTypeFor(strings.ToLower(tt.url)); got != tt.want {
			t.Errorf("learningTypeFor(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
