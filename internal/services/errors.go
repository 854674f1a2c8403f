package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrHabitExists        = errors.New("habit already exists")
	ErrHabitNameRequired  = errors.New("habit name is required")
	ErrHabitNotFound      = errors.New("habit not found")
	ErrNotHabitOwner      = errors.New("habit belongs to another account")
)
