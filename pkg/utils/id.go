package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID returns a short random identifier for records created while the
// upstream API is unreachable (the upstream assigns its own IDs otherwise).
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 10)
}
