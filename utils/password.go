package utils

import "golang.org/x/crypto/bcrypt"

const passwordCost = 10

const (
	MinPasswordLength = 8
	MaxPasswordBytes  = 72 // bcrypt refuses longer input
)

var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
