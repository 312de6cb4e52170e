package usecase

import "errors"

var (
	ErrNotOwner      = errors.New("you can only update your own stories")
	ErrOwnVote       = errors.New("you cannot vote for your own story, even though we understand you like it a lot")
	ErrStoryNotFound = errors.New("story not found")
)
