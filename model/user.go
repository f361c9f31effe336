package model

import "time"

type User struct {
	UserID              string    `bson:"user_id" json:"user_id"`
	Name                string    `bson:"name" json:"name"`
	Email               string    `bson:"email" json:"email"`
	PasswordHash        string    `bson:"password_hash" json:"-"`
	PrivatePasswordHash string    `bson:"private_password_hash,omitempty" json:"-"`
	CreatedAt           time.Time `bson:"created_at" json:"created_at"`
}

// HasPrivatePassword reports whether the user has ever configured a
// private password. Clients use this to choose between a "create" and an
// "unlock" prompt.
func (u *User) HasPrivatePassword() bool {
	return u.PrivatePasswordHash != ""
}
