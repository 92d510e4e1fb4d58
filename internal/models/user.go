package models

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"`
	JoinDate string `gorm:"size:50" json:"join_date"`
	IQScore  int    `gorm:"not null;default:100" json:"iq_score"`
	Token    string `gorm:"size:64;uniqueIndex" json:"-"`
}
