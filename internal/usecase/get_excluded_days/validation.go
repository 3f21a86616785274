package get_excluded_days

import "fmt"

// maxRangeDays предельная длина запрашиваемого диапазона
const maxRangeDays = 366

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	days := int(req.EndDate.Sub(req.StartDate).Hours()/24) + 1
	if days > maxRangeDays {
		return fmt.Errorf("%w: range must not exceed %d days", ErrInvalidInput, maxRangeDays)
	}

	return nil
}
