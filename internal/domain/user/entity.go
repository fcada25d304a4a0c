package user

import "time"

// User is created by registration and immutable afterwards. Password holds
// the bcrypt hash, never the plaintext.
type User struct {
	ID        int64
	Username  string
	Password  string
	FullName  string
	Email     string
	CreatedAt time.Time
}
