package service

import (
	"sync"
	"testing"
	"time"

	"pathwise_backend/internal/model"
	"pathwise_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory UserStore for service tests. Mutations hold the
// lock for the whole read-modify-write cycle, like the repository does.
type memStore struct {
	mu       sync.Mutex
	accounts map[string]model.UserAccount
}

func newMemStore() *memStore {
	return &memStore{accounts: map[string]model.UserAccount{}}
}

func (s *memStore) FindByEmail(email string) (*model.UserAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[email]
	if !ok {
		return nil, util.ErrUserNotFound
	}
	return &acc, nil
}

func (s *memStore) Create(account *model.UserAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.Email] = *account
	return nil
}

func (s *memStore) Mutate(email string, fn func(*model.UserAccount) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[email]
	if !ok {
		return util.ErrUserNotFound
	}
	if err := fn(&acc); err != nil {
		return err
	}
	s.accounts[email] = acc
	return nil
}

func seedAccount(t *testing.T, store *memStore, email string) {
	t.Helper()
	require.NoError(t, store.Create(&model.UserAccount{
		Email:     email,
		Name:      "Test Learner",
		CreatedAt: time.Now(),
	}))
}

func TestRecordQuizAppendsAndCreditsHours(t *testing.T) {
	store := newMemStore()
	seedAccount(t, store, "a@example.com")
	svc := NewProgressService(store)

	err := svc.RecordQuiz("a@example.com", QuizSubmission{
		Course:    "Go",
		Topic:     "Concurrency",
		Score:     8,
		Total:     10,
		TimeSpent: 600,
	})
	require.NoError(t, err)

	view, err := svc.GetProgress("a@example.com")
	require.NoError(t, err)

	require.Len(t, view.QuizHistory, 1)
	rec := view.QuizHistory[0]
	assert.Equal(t, "Go", rec.Course)
	assert.Equal(t, 8, rec.Score)
	assert.False(t, rec.Timestamp.IsZero(), "timestamp is server-assigned")
	assert.InDelta(t, 10.0, view.Profile.LearningHours, 1e-9)
}

// Pins the stored unit convention: UpdateLearningTime(120) adds 2 hours,
// RecordQuiz(time_spent=600) adds 600/60 = 10 hours, total 12.
func TestLearningHoursAccumulationConvention(t *testing.T) {
	store := newMemStore()
	seedAccount(t, store, "a@example.com")
	svc := NewProgressService(store)

	require.NoError(t, svc.UpdateLearningTime("a@example.com", 120))
	require.NoError(t, svc.RecordQuiz("a@example.com", QuizSubmission{
		Course: "Go", Topic: "Basics", Score: 5, Total: 5, TimeSpent: 600,
	}))

	view, err := svc.GetProgress("a@example.com")
	require.NoError(t, err)
	assert.InDelta(t, 12.0, view.Profile.LearningHours, 1e-9)
}

func TestRecordRoadmapProgressReplacesEntry(t *testing.T) {
	store := newMemStore()
	seedAccount(t, store, "a@example.com")
	svc := NewProgressService(store)

	require.NoError(t, svc.RecordRoadmapProgress("a@example.com", RoadmapProgressSubmission{
		RoadmapID:          "rm-1",
		Topic:              "Rust",
		CompletedSubtopics: []string{"ownership", "borrowing"},
		CurrentWeek:        2,
		ProgressPercentage: 40,
	}))
	require.NoError(t, svc.RecordRoadmapProgress("a@example.com", RoadmapProgressSubmission{
		RoadmapID:          "rm-1",
		Topic:              "Rust",
		CompletedSubtopics: []string{"lifetimes"},
		CurrentWeek:        3,
		ProgressPercentage: 55,
	}))

	view, err := svc.GetProgress("a@example.com")
	require.NoError(t, err)

	require.Len(t, view.RoadmapProgress, 1)
	entry := view.RoadmapProgress["rm-1"]
	// Last write wins; subtopic lists are never merged.
	assert.Equal(t, []string{"lifetimes"}, entry.CompletedSubtopics)
	assert.Equal(t, 3, entry.CurrentWeek)
	assert.False(t, entry.UpdatedAt.IsZero())
}

func TestRecordRoadmapProgressCompletionIdempotence(t *testing.T) {
	store := newMemStore()
	seedAccount(t, store, "a@example.com")
	svc := NewProgressService(store)

	sub := RoadmapProgressSubmission{
		RoadmapID:          "rm-1",
		Topic:              "Rust",
		ProgressPercentage: 100,
	}
	require.NoError(t, svc.RecordRoadmapProgress("a@example.com", sub))
	require.NoError(t, svc.RecordRoadmapProgress("a@example.com", sub))

	view, err := svc.GetProgress("a@example.com")
	require.NoError(t, err)

	// Completions count per submission, achievements dedup per topic.
	assert.Equal(t, 2, view.Profile.CoursesCompleted)
	assert.Equal(t, []string{"Rust"}, view.Profile.Achievements)
}

func TestRecordRoadmapProgressIDFallback(t *testing.T) {
	store := newMemStore()
	seedAccount(t, store, "a@example.com")
	svc := NewProgressService(store)

	require.NoError(t, svc.RecordRoadmapProgress("a@example.com", RoadmapProgressSubmission{
		Topic: "Rust", ProgressPercentage: 10,
	}))
	require.NoError(t, svc.RecordRoadmapProgress("a@example.com", RoadmapProgressSubmission{
		ProgressPercentage: 20,
	}))

	view, err := svc.GetProgress("a@example.com")
	require.NoError(t, err)
	assert.Contains(t, view.RoadmapProgress, "Rust")
	assert.Contains(t, view.RoadmapProgress, "unknown")
}

func TestLoginHistoryCap(t *testing.T) {
	store := newMemStore()
	seedAccount(t, store, "a@example.com")
	svc := NewProgressService(store)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	for i := 0; i < 60; i++ {
		require.NoError(t, svc.RecordLogin("a@example.com", "127.0.0.1", "go-test"))
	}

	acc, err := store.FindByEmail("a@example.com")
	require.NoError(t, err)
	stored := acc.LoginHistory.Data()
	require.Len(t, stored, model.LoginHistoryCap)

	// The 50 most recent, in chronological order with newest at the tail.
	assert.Equal(t, base.Add(11*time.Minute), stored[0].Timestamp)
	assert.Equal(t, base.Add(60*time.Minute), stored[49].Timestamp)
	for i := 1; i < len(stored); i++ {
		assert.True(t, stored[i].Timestamp.After(stored[i-1].Timestamp))
	}

	view, err := svc.GetProgress("a@example.com")
	require.NoError(t, err)
	require.Len(t, view.LoginHistory, model.LoginHistoryView)
	assert.Equal(t, base.Add(60*time.Minute), view.LoginHistory[model.LoginHistoryView-1].Timestamp)
}

func TestGetProgressFreshAccountIsEmpty(t *testing.T) {
	store := newMemStore()
	seedAccount(t, store, "new@example.com")
	svc := NewProgressService(store)

	view, err := svc.GetProgress("new@example.com")
	require.NoError(t, err)

	assert.NotNil(t, view.QuizHistory)
	assert.Empty(t, view.QuizHistory)
	assert.NotNil(t, view.RoadmapProgress)
	assert.Empty(t, view.RoadmapProgress)
	assert.NotNil(t, view.LoginHistory)
	assert.Empty(t, view.LoginHistory)
	assert.Zero(t, view.Profile.LearningHours)
	assert.Zero(t, view.Profile.CoursesCompleted)
	assert.Empty(t, view.Profile.Achievements)
}

func TestProgressOperationsRequireExistingAccount(t *testing.T) {
	store := newMemStore()
	svc := NewProgressService(store)

	assert.ErrorIs(t, svc.RecordQuiz("ghost@example.com", QuizSubmission{}), util.ErrUserNotFound)
	assert.ErrorIs(t, svc.RecordRoadmapProgress("ghost@example.com", RoadmapProgressSubmission{}), util.ErrUserNotFound)
	assert.ErrorIs(t, svc.RecordLogin("ghost@example.com", "", ""), util.ErrUserNotFound)
	assert.ErrorIs(t, svc.UpdateLearningTime("ghost@example.com", 10), util.ErrUserNotFound)

	_, err := svc.GetProgress("ghost@example.com")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}
