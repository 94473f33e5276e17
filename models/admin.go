package models

// AdminCredentials is the single admin account. The password is stored as a
// bcrypt hash; the plaintext is never persisted.
type AdminCredentials struct {
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"passwordHash" bson:"passwordHash"`
}
