package casino

import "strconv"

// StatusCode is the domain status carried inside every response envelope.
type StatusCode int

// Status codes shared by every casino sub-system. Codes not listed here pass
// through unchanged and must be interpreted with the owning domain's table.
const (
	StatusSuccess        StatusCode = 200
	StatusInvalidHash    StatusCode = 401
	StatusNotFound       StatusCode = 404
	StatusInvalidRequest StatusCode = 411
	StatusInternalError  StatusCode = 500
)

func (s StatusCode) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusInvalidHash:
		return "InvalidHash"
	case StatusNotFound:
		return "NotFound"
	case StatusInvalidRequest:
		return "InvalidRequest"
	case StatusInternalError:
		return "InternalError"
	}
	return "StatusCode(" + strconv.Itoa(int(s)) + ")"
}

// OK reports whether the status signals success.
func (s StatusCode) OK() bool {
	return s == StatusSuccess
}
