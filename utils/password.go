package utils

import (
	"golang.org/x/crypto/bcrypt"
)

/*
* Generate a bcrypt hash for the given password. The hash embeds the
* algorithm parameters, so verification keeps working for hashes produced
* with older cost settings.
 */
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
