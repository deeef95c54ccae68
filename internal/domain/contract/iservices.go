package contract

// IHasher defines password and token hashing operations.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
	HashString(s string) string
	CheckHash(s, hash string) bool
}

// IUUIDGenerator defines ID generation for new records.
type IUUIDGenerator interface {
	NewUUID() string
}

// IRandomGenerator defines random token generation.
type IRandomGenerator interface {
	GenerateRandomToken(n int) (string, error)
}
