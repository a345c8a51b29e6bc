package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	// LoginHistoryCap bounds the stored login history; older entries are
	// dropped on every login.
	LoginHistoryCap = 50
	// LoginHistoryView bounds the login history returned to callers.
	LoginHistoryView = 10
)

// UserProfile is the aggregate the progress events fold into.
type UserProfile struct {
	LearningHours    float64  `json:"learning_hours"`
	CoursesCompleted int      `json:"courses_completed"`
	Achievements     []string `json:"achievements"`
}

// QuizRecord is append-only; history grows unbounded.
type QuizRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Course    string    `json:"course"`
	Topic     string    `json:"topic"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	TimeSpent float64   `json:"time_spent"`
}

// RoadmapProgressEntry is keyed by roadmap id on the account. Writing the
// same id again replaces the entry, it never merges subtopic lists.
type RoadmapProgressEntry struct {
	UpdatedAt          time.Time `json:"updated_at"`
	Topic              string    `json:"topic"`
	CompletedSubtopics []string  `json:"completed_subtopics"`
	CurrentWeek        int       `json:"current_week"`
	ProgressPercentage float64   `json:"progress_percentage"`
	TimeSpent          float64   `json:"time_spent"`
}

type LoginRecord struct {
	Timestamp time.Time `json:"timestamp"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
}

// UserAccount is one row per learner, keyed by email. The learning state
// lives in JSON document columns so the account round-trips as a single
// record under the per-key row lock.
// swagger:model UserAccount
type UserAccount struct {
	Email     string    `gorm:"primaryKey;size:191" json:"email"`
	Name      string    `gorm:"size:100" json:"name"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Profile         datatypes.JSONType[UserProfile]                     `json:"profile"`
	QuizHistory     datatypes.JSONType[[]QuizRecord]                    `json:"quiz_history"`
	RoadmapProgress datatypes.JSONType[map[string]RoadmapProgressEntry] `json:"roadmap_progress"`
	LoginHistory    datatypes.JSONType[[]LoginRecord]                   `json:"login_history"`
}

func (UserAccount) TableName() string {
	return "user_accounts"
}
