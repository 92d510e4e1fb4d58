package models

// QuizResult is one submitted attempt. Rows are never updated after insert.
type QuizResult struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Topic   string `gorm:"size:100;not null" json:"topic"`
	Level   string `gorm:"size:50;not null" json:"level"`
	Score   int    `gorm:"not null" json:"score"`
	Correct int    `gorm:"not null" json:"correct"`
	Wrong   int    `gorm:"not null" json:"wrong"`
	Total   int    `gorm:"not null" json:"total"`
}
