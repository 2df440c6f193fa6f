package storage

type storageError string

// ErrNotFound is returned when the requested model does not exist.
const ErrNotFound = storageError("not found")

func (e storageError) Error() string {
	return string(e)
}
