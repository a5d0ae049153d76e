package service

import (
	"learnlens_backend/internal/model"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestUpdatePathCreatesLazily(t *testing.T) {
	paths := newFakePathStore()
	sessions := &fakeSessionStore{}
	svc := NewLearningPathService(paths, sessions)

	if err := svc.UpdatePath("Frontend Development", strPtr("React")); err != nil {
		t.Fatalf("UpdatePath: %v", err)
	}

	path, _ := paths.FindByName("Frontend Development")
	if path == nil {
		t.Fatal("path was not created")
	}
	if len(path.Topics) != 1 || path.Topics[0] != "React" {
		t.Errorf("Topics = %v, want [React]", path.Topics)
	}
	if path.TotalTime != 0 {
		t.Errorf("TotalTime = %d, want 0 on creation", path.TotalTime)
	}
	if path.StartDate.IsZero() || path.LastActivity.IsZero() {
		t.Error("StartDate/LastActivity should be set on creation")
	}
}

func TestUpdatePathCreatesWithoutSubcategory(t *testing.T) {
	paths := newFakePathStore()
	svc := NewLearningPathService(paths, &fakeSessionStore{})

	if err := svc.UpdatePath("General Learning", nil); err != nil {
		t.Fatalf("UpdatePath: %v", err)
	}

	path, _ := paths.FindByName("General Learning")
	if path == nil {
		t.Fatal("path was not created")
	}
	if len(path.Topics) != 0 {
		t.Errorf("Topics = %v, want empty", path.Topics)
	}
}

func TestUpdatePathRecomputesTotalTime(t *testing.T) {
	paths := newFakePathStore()
	sessions := &fakeSessionStore{
		sessions: []model.LearningSession{
			{Category: "Data Science", ActiveTime: 600},
			{Category: "Data Science", ActiveTime: 900},
			{Category: "Frontend Development", ActiveTime: 300},
		},
	}
	svc := NewLearningPathService(paths, sessions)

	// 先建路径，再更新触发全量重算
	if err := svc.UpdatePath("Data Science", strPtr("Pandas")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.UpdatePath("Data Science", strPtr("NumPy")); err != nil {
		t.Fatalf("update: %v", err)
	}

	path, _ := paths.FindByName("Data Science")
	if path.TotalTime != 1500 {
		t.Errorf("TotalTime = %d, want 1500 (600+900, 其他分类不计入)", path.TotalTime)
	}
	if len(path.Topics) != 2 {
		t.Errorf("Topics = %v, want [Pandas NumPy]", path.Topics)
	}
}

func TestUpdatePathTopicsAreSetLike(t *testing.T) {
	paths := newFakePathStore()
	svc := NewLearningPathService(paths, &fakeSessionStore{})

	for i := 0; i < 3; i++ {
		if err := svc.UpdatePath("Backend Development", strPtr("APIs")); err != nil {
			t.Fatalf("UpdatePath #%d: %v", i, err)
		}
	}

	path, _ := paths.FindByName("Backend Development")
	if len(path.Topics) != 1 {
		t.Errorf("Topics = %v, duplicates must not accumulate", path.Topics)
	}
}

func TestUpdatePathIdempotent(t *testing.T) {
	paths := newFakePathStore()
	sessions := &fakeSessionStore{
		sessions: []model.LearningSession{{Category: "Cybersecurity", ActiveTime: 450}},
	}
	svc := NewLearningPathService(paths, sessions)

	for i := 0; i < 3; i++ {
		if err := svc.UpdatePath("Cybersecurity", strPtr("OWASP")); err != nil {
			t.Fatalf("UpdatePath #%d: %v", i, err)
		}
	}

	path, _ := paths.FindByName("Cybersecurity")
	if path.TotalTime != 450 {
		t.Errorf("TotalTime = %d, want 450 regardless of call count", path.TotalTime)
	}
}

func TestUpdatePathEmptyCategoryIsNoop(t *testing.T) {
	paths := newFakePathStore()
	svc := NewLearningPathService(paths, &fakeSessionStore{})

	if err := svc.UpdatePath("", strPtr("React")); err != nil {
		t.Fatalf("UpdatePath: %v", err)
	}
	if len(paths.paths) != 0 {
		t.Errorf("no path should be created for empty category, got %d", len(paths.paths))
	}
}
