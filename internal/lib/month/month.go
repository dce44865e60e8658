// Package month содержит вспомогательную арифметику календарных месяцев
// для выборки напоминаний за месяц.
package month

import (
	"fmt"
	"time"
)

// Range возвращает полуоткрытый интервал [start, end) календарного месяца в UTC.
// Месяц задаётся числом от 1 до 12; значение вне диапазона — ошибка вызывающего.
func Range(year, monthNum int) (time.Time, time.Time, error) {
	const op = "month.Range"
	if monthNum < 1 || monthNum > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("%s: month %d out of range", op, monthNum)
	}
	start := time.Date(year, time.Month(monthNum), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return start, end, nil
}
