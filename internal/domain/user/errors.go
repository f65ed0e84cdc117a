package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrSelfDelete         = errors.New("cannot delete your own account")
	ErrSelfDeactivate     = errors.New("cannot deactivate your own account")
	ErrWrongPassword      = errors.New("current password is incorrect")
)
