package validation

import (
	"fmt"
	"time"

	"github.com/iudanet/pagekeeper/internal/models"
)

// ValidateEventDate проверяет, что дата задана в формате YYYY-MM-DD
// и является существующим календарным днём
func ValidateEventDate(date string) error {
	if date == "" {
		return fmt.Errorf("date cannot be empty")
	}

	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return fmt.Errorf("date must be in YYYY-MM-DD format")
	}

	return nil
}

// ValidateEventTime проверяет формат времени HH:MM.
// Пустое время допустимо и означает событие на весь день.
func ValidateEventTime(value string) error {
	if value == "" {
		return nil
	}

	if _, err := time.Parse(models.TimeLayout, value); err != nil {
		return fmt.Errorf("time must be in HH:MM format")
	}

	return nil
}

// ValidateDateRange проверяет границы диапазона дат: обе даты корректны
// и начало не позже конца
func ValidateDateRange(startDate, endDate string) error {
	if err := ValidateEventDate(startDate); err != nil {
		return fmt.Errorf("invalid start_date: %w", err)
	}
	if err := ValidateEventDate(endDate); err != nil {
		return fmt.Errorf("invalid end_date: %w", err)
	}

	start, _ := time.Parse(models.DateLayout, startDate)
	end, _ := time.Parse(models.DateLayout, endDate)
	if start.After(end) {
		return fmt.Errorf("start_date must not be after end_date")
	}

	return nil
}
