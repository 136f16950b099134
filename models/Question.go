package models

// Question difficulty tiers, ordered easy < medium < hard
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question is one entry of the static quiz catalog. Rows are seeded at
// startup and never mutated afterwards.
type Question struct {
	ID            string   `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Position      int      `gorm:"type:integer;not null;uniqueIndex" json:"position"`
	Prompt        string   `gorm:"type:varchar(255);not null" json:"question"`
	Options       []string `gorm:"serializer:json;type:jsonb;not null" json:"options"`
	CorrectAnswer int      `gorm:"type:integer;not null;column:correct_answer" json:"-"`
	Explanation   string   `gorm:"type:varchar(500);not null" json:"-"`
	Category      string   `gorm:"type:varchar(50);not null" json:"category"`
	Difficulty    string   `gorm:"type:varchar(10);not null" json:"difficulty"`
}

func (Question) TableName() string {
	return "quiz_questions"
}
