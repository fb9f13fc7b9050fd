package errorz

import "errors"

var (
	ErrInvalidClubName = errors.New("invalid club name")
	ErrInvalidLogo     = errors.New("invalid logo")
	ErrClubExists      = errors.New("club exists")
	ErrUpload          = errors.New("logo upload failed")
	ErrUnauthorized    = errors.New("identity not confirmed")
	ErrStore           = errors.New("store failure")
	ErrInviteNotFound  = errors.New("invite not found")
	ErrAlreadyMember   = errors.New("already a member")
)
