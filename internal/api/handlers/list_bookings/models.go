package list_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
	"github.com/m04kA/KaraBox-BookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	startDateStr string,
	endDateStr string,
	statusStr string,
	userEmailStr string,
	includeDeletedStr string,
	includeTestStr string,
) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		IncludeDeleted: false, // По умолчанию только активные записи
		IncludeTest:    false,
	}

	// Парсим startDate если указана
	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate value: %w", err)
		}
		req.StartDate = &startDate
	}

	// Парсим endDate если указана
	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate value: %w", err)
		}
		req.EndDate = &endDate
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим userEmail если указан
	if userEmailStr != "" {
		req.UserEmail = &userEmailStr
	}

	// Парсим includeDeleted если указан
	if includeDeletedStr != "" {
		includeDeleted, err := strconv.ParseBool(includeDeletedStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeDeleted value: %w", err)
		}
		req.IncludeDeleted = includeDeleted
	}

	// Парсим includeTest если указан
	if includeTestStr != "" {
		includeTest, err := strconv.ParseBool(includeTestStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeTest value: %w", err)
		}
		req.IncludeTest = includeTest
	}

	return req, nil
}
