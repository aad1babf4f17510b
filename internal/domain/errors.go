package domain

import "errors"

// Domain error taxonomy. Services return these (possibly wrapped); the HTTP
// layer is the single place they are translated to status codes.
var (
	ErrNotFound     = errors.New("khong tim thay du lieu")
	ErrValidation   = errors.New("du lieu khong hop le")
	ErrConflict     = errors.New("du lieu bi trung")
	ErrEmailExists  = errors.New("email da duoc su dung")
	ErrUnauthorized = errors.New("khong duoc phep truy cap")
	ErrForbidden    = errors.New("khong du quyen truy cap")
	ErrTokenInvalid = errors.New("token khong hop le hoac da het han")
)
