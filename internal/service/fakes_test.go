package service

import (
	"learnlens_backend/internal/model"
	"sort"
)

// 测试用的内存存储实现，对应 repository 包里的真实实现。

type fakeSessionStore struct {
	sessions   []model.LearningSession
	dates      []string
	engagement []model.CategoryEngagement
	createErr  error
	sumErr     error
	createdIDs int
}

func (f *fakeSessionStore) Create(session *model.LearningSession) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createdIDs++
	session.ID = uint(f.createdIDs)
	f.sessions = append(f.sessions, *session)
	return nil
}

func (f *fakeSessionStore) FindSince(lowerBound int64) ([]model.LearningSession, error) {
	var out []model.LearningSession
	for _, s := range f.sessions {
		if s.Timestamp >= lowerBound {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}

func (f *fakeSessionStore) DistinctDates() ([]string, error) {
	if f.dates != nil {
		return f.dates, nil
	}
	seen := make(map[string]bool)
	var dates []string
	for _, s := range f.sessions {
		if !seen[s.DateKey] {
			seen[s.DateKey] = true
			dates = append(dates, s.DateKey)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates, nil
}

func (f *fakeSessionStore) SumActiveTimeByCategory(category string) (int64, error) {
	if f.sumErr != nil {
		return 0, f.sumErr
	}
	var total int64
	for _, s := range f.sessions {
		if s.Category == category {
			total += int64(s.ActiveTime)
		}
	}
	return total, nil
}

func (f *fakeSessionStore) CategoryEngagement(since int64, minScore float64, limit int) ([]model.CategoryEngagement, error) {
	if len(f.engagement) > limit {
		return f.engagement[:limit], nil
	}
	return f.engagement, nil
}

type fakePathStore struct {
	paths     map[string]*model.LearningPath
	createErr error
	nextID    uint
}

func newFakePathStore() *fakePathStore {
	return &fakePathStore{paths: make(map[string]*model.LearningPath)}
}

func (f *fakePathStore) FindByName(name string) (*model.LearningPath, error) {
	path, ok := f.paths[name]
	if !ok {
		return nil, nil
	}
	cp := *path
	return &cp, nil
}

func (f *fakePathStore) Create(path *model.LearningPath) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	path.ID = f.nextID
	cp := *path
	f.paths[path.Name] = &cp
	return nil
}

func (f *fakePathStore) Update(path *model.LearningPath) error {
	cp := *path
	f.paths[path.Name] = &cp
	return nil
}

func (f *fakePathStore) FindRecent(limit int) ([]model.LearningPath, error) {
	var out []model.LearningPath
	for _, p := range f.paths {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastActivity.After(out[j].LastActivity) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeInsightStore struct {
	appended  []model.LearningInsight
	appendErr error
}

func (f *fakeInsightStore) Append(insight *model.LearningInsight) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, *insight)
	return nil
}

func (f *fakeInsightStore) FindRecent(limit int) ([]model.LearningInsight, error) {
	if len(f.appended) > limit {
		return f.appended[:limit], nil
	}
	return f.appended, nil
}

type fakeNotifier struct {
	titles []string
}

func (f *fakeNotifier) Notify(title, body string) error {
	f.titles = append(f.titles, title)
	return nil
}
