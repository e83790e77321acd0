package models

type User struct {
	Base
	Email    string  `gorm:"uniqueIndex;not null" json:"email"`
	Password *string `json:"-"` // bcrypt hash, nil until the setup link is used

	QuizAnswers *QuizAnswers `gorm:"constraint:OnDelete:CASCADE" json:"quizAnswers,omitempty"`
}

func (u *User) HasPassword() bool {
	return u.Password != nil && *u.Password != ""
}
