package errs

import "fmt"

// EmptyError - Custom error to inform that a container holds no elements to return or remove
type EmptyError struct {
	msg string
}

// Empty - Returns an EmptyError naming the container that was empty
//   - container is a short name of the container, i.e. "stack", "queue"
func Empty(container string) EmptyError {
	return EmptyError{msg: container + " is empty"}
}

// Error - Used to notify that the container is empty
func (E EmptyError) Error() string {
	if E.msg == "" {
		return "container is empty"
	}
	return E.msg
}

// Is - Matches any EmptyError regardless of message
func (E EmptyError) Is(target error) bool {
	_, ok := target.(EmptyError)
	return ok
}

// KeyNotFound - Custom error to inform that no entry with the requested key exists
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that a key was not found
func (K KeyNotFound) Error() string {
	if K.msg == "" {
		return "key not found"
	}
	return K.msg
}

// Is - Matches any KeyNotFound regardless of message
func (K KeyNotFound) Is(target error) bool {
	_, ok := target.(KeyNotFound)
	return ok
}

// IndexOutOfRange - Custom error to inform that an index is outside [0, size)
type IndexOutOfRange struct {
	msg string
}

// Error - Used to notify that an index is out of range
func (I IndexOutOfRange) Error() string {
	if I.msg == "" {
		return "index out of range"
	}
	return I.msg
}

// Is - Matches any IndexOutOfRange regardless of message
func (I IndexOutOfRange) Is(target error) bool {
	_, ok := target.(IndexOutOfRange)
	return ok
}

// InvalidCapacity - Custom error to inform that a capacity given to a constructor or reset is below the allowed minimum
type InvalidCapacity struct {
	msg string
}

// BelowMinimum - Returns an InvalidCapacity describing the violated minimum
//   - capacity is the capacity that was requested
//   - minimum is the smallest capacity the container accepts
func BelowMinimum(capacity, minimum int) InvalidCapacity {
	return InvalidCapacity{msg: fmt.Sprintf("capacity %d is below minimum %d", capacity, minimum)}
}

// Error - Used to notify that a capacity is invalid
func (I InvalidCapacity) Error() string {
	if I.msg == "" {
		return "invalid capacity"
	}
	return I.msg
}

// Is - Matches any InvalidCapacity regardless of message
func (I InvalidCapacity) Is(target error) bool {
	_, ok := target.(InvalidCapacity)
	return ok
}
