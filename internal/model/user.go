package model

// User is an account that owns tasks.
//
// Password is stored as given by the client. It is never serialized.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"`
}
