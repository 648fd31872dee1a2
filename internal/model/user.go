package model

// User is an identity record. PasswordHash is never serialized; every
// handler that returns a user relies on that.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Avatar       string `json:"avatar"`
	Ctime        int64  `json:"createdAt"`
	Mtime        int64  `json:"updatedAt"`
}
