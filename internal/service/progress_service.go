package service

import (
	"time"

	"pathwise_backend/internal/model"

	"gorm.io/datatypes"
)

// UserStore is the account persistence boundary. Mutate runs fn inside a
// per-key atomic read-modify-write cycle; concurrent mutations of the same
// email never interleave, last write wins within one key.
type UserStore interface {
	FindByEmail(email string) (*model.UserAccount, error)
	Create(account *model.UserAccount) error
	Mutate(email string, fn func(*model.UserAccount) error) error
}

// QuizSubmission is a completed quiz reported by the client.
// TimeSpent is in seconds.
type QuizSubmission struct {
	Course    string  `json:"course"`
	Topic     string  `json:"topic"`
	Score     int     `json:"score"`
	Total     int     `json:"total"`
	TimeSpent float64 `json:"time_spent"`
}

// RoadmapProgressSubmission reports progress against one roadmap.
type RoadmapProgressSubmission struct {
	RoadmapID          string   `json:"roadmap_id"`
	Topic              string   `json:"topic"`
	CompletedSubtopics []string `json:"completed_subtopics"`
	CurrentWeek        int      `json:"current_week"`
	ProgressPercentage float64  `json:"progress_percentage"`
	TimeSpent          float64  `json:"time_spent"`
}

// ProgressView is the read-only projection returned by GetProgress.
type ProgressView struct {
	Profile         model.UserProfile                     `json:"profile"`
	QuizHistory     []model.QuizRecord                    `json:"quiz_history"`
	RoadmapProgress map[string]model.RoadmapProgressEntry `json:"roadmap_progress"`
	LoginHistory    []model.LoginRecord                   `json:"login_history"`
}

// ProgressService owns the per-user profile and folds typed update events
// into it. Every mutating operation is one atomic read-modify-write of
// the whole account record.
type ProgressService struct {
	Store UserStore
	now   func() time.Time
}

func NewProgressService(store UserStore) *ProgressService {
	return &ProgressService{Store: store, now: time.Now}
}

// RecordQuiz appends a quiz record with a server-assigned timestamp and
// credits the submitted time toward learning hours. The stored convention
// is minutes to hours: time_spent / 60.
func (s *ProgressService) RecordQuiz(email string, sub QuizSubmission) error {
	return s.Store.Mutate(email, func(acc *model.UserAccount) error {
		history := acc.QuizHistory.Data()
		history = append(history, model.QuizRecord{
			Timestamp: s.now(),
			Course:    sub.Course,
			Topic:     sub.Topic,
			Score:     sub.Score,
			Total:     sub.Total,
			TimeSpent: sub.TimeSpent,
		})
		acc.QuizHistory = newJSON(history)

		profile := acc.Profile.Data()
		profile.LearningHours += sub.TimeSpent / 60
		acc.Profile = newJSON(profile)
		return nil
	})
}

// RecordRoadmapProgress replaces the entry for the submission's roadmap id;
// it never merges subtopic lists. A 100% submission bumps the completion
// count every time, but the topic joins achievements only once.
func (s *ProgressService) RecordRoadmapProgress(email string, sub RoadmapProgressSubmission) error {
	roadmapID := sub.RoadmapID
	if roadmapID == "" {
		roadmapID = sub.Topic
	}
	if roadmapID == "" {
		roadmapID = "unknown"
	}

	return s.Store.Mutate(email, func(acc *model.UserAccount) error {
		progress := acc.RoadmapProgress.Data()
		if progress == nil {
			progress = map[string]model.RoadmapProgressEntry{}
		}
		progress[roadmapID] = model.RoadmapProgressEntry{
			UpdatedAt:          s.now(),
			Topic:              sub.Topic,
			CompletedSubtopics: sub.CompletedSubtopics,
			CurrentWeek:        sub.CurrentWeek,
			ProgressPercentage: sub.ProgressPercentage,
			TimeSpent:          sub.TimeSpent,
		}
		acc.RoadmapProgress = newJSON(progress)

		profile := acc.Profile.Data()
		profile.LearningHours += sub.TimeSpent / 60
		if sub.ProgressPercentage >= 100 {
			profile.CoursesCompleted++
			if !contains(profile.Achievements, sub.Topic) {
				profile.Achievements = append(profile.Achievements, sub.Topic)
			}
		}
		acc.Profile = newJSON(profile)
		return nil
	})
}

// RecordLogin appends a login record and truncates the history to the most
// recent entries, newest at the tail.
func (s *ProgressService) RecordLogin(email, ip, userAgent string) error {
	return s.Store.Mutate(email, func(acc *model.UserAccount) error {
		history := acc.LoginHistory.Data()
		history = append(history, model.LoginRecord{
			Timestamp: s.now(),
			IP:        ip,
			UserAgent: userAgent,
		})
		if len(history) > model.LoginHistoryCap {
			history = history[len(history)-model.LoginHistoryCap:]
		}
		acc.LoginHistory = newJSON(history)
		return nil
	})
}

// UpdateLearningTime credits manually reported study minutes.
func (s *ProgressService) UpdateLearningTime(email string, minutes float64) error {
	return s.Store.Mutate(email, func(acc *model.UserAccount) error {
		profile := acc.Profile.Data()
		profile.LearningHours += minutes / 60
		acc.Profile = newJSON(profile)
		return nil
	})
}

// GetProgress returns the account's progress projection. Collections are
// never nil so an untouched account serializes as empty, not null.
func (s *ProgressService) GetProgress(email string) (*ProgressView, error) {
	acc, err := s.Store.FindByEmail(email)
	if err != nil {
		return nil, err
	}

	view := &ProgressView{
		Profile:         acc.Profile.Data(),
		QuizHistory:     acc.QuizHistory.Data(),
		RoadmapProgress: acc.RoadmapProgress.Data(),
		LoginHistory:    acc.LoginHistory.Data(),
	}
	if view.Profile.Achievements == nil {
		view.Profile.Achievements = []string{}
	}
	if view.QuizHistory == nil {
		view.QuizHistory = []model.QuizRecord{}
	}
	if view.RoadmapProgress == nil {
		view.RoadmapProgress = map[string]model.RoadmapProgressEntry{}
	}
	if view.LoginHistory == nil {
		view.LoginHistory = []model.LoginRecord{}
	}
	if len(view.LoginHistory) > model.LoginHistoryView {
		view.LoginHistory = view.LoginHistory[len(view.LoginHistory)-model.LoginHistoryView:]
	}
	return view, nil
}

func newJSON[T any](v T) datatypes.JSONType[T] {
	return datatypes.NewJSONType(v)
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
