package model

type Role string

const (
	// RolePlayer is the child playing the quiz.
	RolePlayer Role = "player"
	// RoleParent is the passcode-holding owner with unfiltered visibility.
	RoleParent Role = "parent"
)
