package config

import (
	"errors"
)

var (
	// ErrTitleIsEmpty error if config Title is empty.
	ErrTitleIsEmpty = errors.New("toml config title can not be empty")

	// ErrNoCategories error if config generator.categories selects no character.
	ErrNoCategories = errors.New("toml config generator.categories selects no characters")
)
