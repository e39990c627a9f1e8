// file: internals/features/users/auth/helper/password_helper.go
package helpers

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

func isAlphaNumeric(s string) bool {
	hasLetter := regexp.MustCompile(`[A-Za-z]`).MatchString(s)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(s)
	return hasLetter && hasNumber
}

// Validasi Email (regex simple)
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

func ValidateRegisterInput(userName, email, password, securityAnswer string) error {
	if strings.TrimSpace(userName) == "" || strings.TrimSpace(email) == "" || password == "" {
		return errors.New("user_name, email, dan password wajib diisi")
	}
	if !isValidEmail(email) {
		return errors.New("format email tidak valid")
	}
	if len(password) < 8 || !isAlphaNumeric(password) {
		return errors.New("password minimal 8 karakter dan kombinasi huruf+angka")
	}
	if strings.TrimSpace(securityAnswer) == "" {
		return errors.New("security_answer wajib diisi")
	}
	return nil
}

func ValidateLoginInput(identifier, password string) error {
	if strings.TrimSpace(identifier) == "" || password == "" {
		return errors.New("identifier dan password wajib diisi")
	}
	return nil
}

func ValidateResetPassword(email, newPassword string) error {
	if !isValidEmail(email) {
		return errors.New("format email tidak valid")
	}
	if len(newPassword) < 8 || !isAlphaNumeric(newPassword) {
		return errors.New("password minimal 8 karakter dan kombinasi huruf+angka")
	}
	return nil
}

func ValidateSecurityAnswerInput(email, answer string) error {
	if !isValidEmail(email) {
		return errors.New("format email tidak valid")
	}
	if strings.TrimSpace(answer) == "" {
		return errors.New("security_answer wajib diisi")
	}
	return nil
}
