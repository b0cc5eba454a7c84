package javaio

/*
Decode failures fall into two kinds: the source ran out of bytes before
an operation got its required count, or the bytes were present but
malformed. Callers distinguish the two with errors.Is against the zero
value of either type, e.g. errors.Is(err, javaio.ShortReadError{}).
*/

////////////////////////////////////////////////////////////////////////////////

// ShortReadError indicates the source was exhausted before the required
// byte count for an operation was available.
type ShortReadError struct {
	what string
}

func (e ShortReadError) Error() string {
	return "short read on " + e.what
}

func (e ShortReadError) Is(err error) bool {
	_, ok := err.(ShortReadError)
	return ok
}

// InvalidDataError indicates bytes were available but violated the
// expected encoding. Only string decoding produces it.
type InvalidDataError struct {
	reason string
}

func (e InvalidDataError) Error() string {
	return "invalid data: " + e.reason
}

func (e InvalidDataError) Is(err error) bool {
	_, ok := err.(InvalidDataError)
	return ok
}
