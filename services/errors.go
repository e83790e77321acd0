package services

import (
	"errors"

	"trimspire/utils"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = utils.ErrInvalidToken
	ErrForbidden           = errors.New("forbidden")
	ErrInsufficientRecipes = errors.New("not enough recipes in the catalog to generate a menu")
)
