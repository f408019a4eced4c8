package core

// TokenCodec turns a user id into a bearer token and back.
// Decode returns an error for any token it did not produce or that is no longer valid.
type TokenCodec interface {
	Encode(userID string) (string, error)
	Decode(token string) (string, error)
}
