package store

// unknownKeyError signals a read/watch of a key that was never written,
// for 404 mapping.
type unknownKeyError struct{ key string }

func (e unknownKeyError) Error() string { return "unknown key: " + e.key }

func (e unknownKeyError) StatusCode() int { return 404 }

// ErrUnknownKey constructs an unknownKeyError.
func ErrUnknownKey(key string) error { return unknownKeyError{key: key} }

// IsUnknownKey reports whether err indicates a missing key.
func IsUnknownKey(err error) bool {
	_, ok := err.(unknownKeyError)
	return ok
}
