package models

import "time"

// QuizResult is the persisted outcome of one completed quiz attempt
type QuizResult struct {
	ID             string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	UserID         string    `gorm:"type:uuid;not null;column:user_id" json:"user_id"`
	Score          int       `gorm:"type:integer;not null" json:"score"`
	TotalQuestions int       `gorm:"type:integer;not null;column:total_questions" json:"total_questions"`
	PointsEarned   int       `gorm:"type:integer;not null;column:points_earned" json:"points_earned"`
	CompletedAt    time.Time `gorm:"autoCreateTime;column:completed_at" json:"completed_at"`
	User           *User     `gorm:"foreignKey:UserID" json:"-"`
}

func (QuizResult) TableName() string {
	return "quiz_scores"
}
