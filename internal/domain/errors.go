package domain

import "errors"

var (
	ErrNoData       = errors.New("no usable data in response")
	ErrRepoNotFound = errors.New("repository not found")
)
