package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"bookstore/internal/entities"
)

// ValidateCustomer проверяет форму покупателя и возвращает
// ErrInvalidParameter на первом же нарушенном правиле.
func ValidateCustomer(form entities.CustomerForm) error {
	if !isFieldLengthValid(form.Name) {
		return fmt.Errorf("%w: invalid name field", entities.ErrInvalidParameter)
	}
	if !isFieldLengthValid(form.Address) {
		return fmt.Errorf("%w: invalid address field", entities.ErrInvalidParameter)
	}
	if !isPhoneValid(form.Phone) {
		return fmt.Errorf("%w: invalid phone field", entities.ErrInvalidParameter)
	}
	if !isEmailValid(form.Email) {
		return fmt.Errorf("%w: invalid email field", entities.ErrInvalidParameter)
	}
	if !isCCNumberValid(form.CCNumber) {
		return fmt.Errorf("%w: invalid credit card number", entities.ErrInvalidParameter)
	}
	if !isExpiryValid(form.CCExpiryMonth, form.CCExpiryYear) {
		return fmt.Errorf("%w: invalid expiry date", entities.ErrInvalidParameter)
	}
	return nil
}

func isFieldLengthValid(value string) bool {
	n := utf8.RuneCountInString(value)
	return n >= 4 && n <= 45
}

var phoneStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

func isPhoneValid(phone string) bool {
	if phone == "" {
		return false
	}
	digits := phoneStripper.Replace(phone)
	if len(digits) != 10 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isEmailValid(email string) bool {
	if email == "" {
		return false
	}
	if strings.Contains(email, " ") {
		return false
	}
	if !strings.Contains(email, "@") {
		return false
	}
	if strings.HasSuffix(email, ".") {
		return false
	}
	return true
}

var ccNumberStripper = strings.NewReplacer(" ", "", "-", "")

// Проверяется только длина после чистки, не цифры: форма всегда
// принимала и такой ввод, ужесточать правило нельзя.
func isCCNumberValid(ccNumber string) bool {
	if ccNumber == "" {
		return false
	}
	stripped := ccNumberStripper.Replace(ccNumber)
	return len(stripped) >= 14 && len(stripped) <= 16
}

// Срок действия карты опционален: если месяц или год пустые,
// форма считается валидной.
func isExpiryValid(month, year string) bool {
	if month == "" || year == "" {
		return true
	}

	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return false
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return false
	}

	now := time.Now()
	return y*12+m >= now.Year()*12+int(now.Month())
}

// resolveExpiry превращает пару месяц/год в дату для хранения.
// Пустая пара даёт нулевую дату (в базе будет NULL). Ошибка парсинга
// здесь невозможна после валидации и означает нарушение контракта.
func resolveExpiry(month, year string) (time.Time, error) {
	if month == "" || year == "" {
		return time.Time{}, nil
	}

	m, err := strconv.Atoi(month)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid expiry month %q: %w", month, err)
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid expiry year %q: %w", year, err)
	}

	return time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC), nil
}
