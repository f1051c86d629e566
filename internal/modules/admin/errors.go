package admin

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrHouseNotFound  = errors.New("house not found")
	ErrReportNotFound = errors.New("report not found")
	ErrNoPhotoField   = errors.New("this role has no photo to delete")
	ErrSelfTarget     = errors.New("admins cannot moderate their own account")
)
