package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/brygady/internal/services"
)

func parseUintParam(c *fiber.Ctx, name string) (uint, bool) {
	value, err := strconv.ParseUint(strings.TrimSpace(c.Params(name)), 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

func parseIntValue(raw string) (int, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return value, true
}

// routeCalendarDate reads :year/:month/:day and rejects impossible dates.
func routeCalendarDate(c *fiber.Ctx) (time.Time, bool) {
	year, okYear := parseIntValue(c.Params("year"))
	month, okMonth := parseIntValue(c.Params("month"))
	day, okDay := parseIntValue(c.Params("day"))
	if !okYear || !okMonth || !okDay {
		return time.Time{}, false
	}
	return services.CalendarDate(year, month, day)
}

// routeMonth reads :year/:month strictly, without the current-month fallback.
func routeMonth(c *fiber.Ctx) (services.MonthRef, bool) {
	year, okYear := parseIntValue(c.Params("year"))
	month, okMonth := parseIntValue(c.Params("month"))
	if !okYear || !okMonth {
		return services.MonthRef{}, false
	}
	start, ok := services.CalendarDate(year, month, 1)
	if !ok {
		return services.MonthRef{}, false
	}
	return services.MonthOf(start), true
}

// requestedMonth prefers path parameters, then the query string, then the
// current month in the configured time zone.
func (handler *Handler) requestedMonth(c *fiber.Ctx) services.MonthRef {
	yearRaw := c.Params("year")
	monthRaw := c.Params("month")
	if strings.TrimSpace(yearRaw) == "" && strings.TrimSpace(monthRaw) == "" {
		yearRaw = c.Query("year")
		monthRaw = c.Query("month")
	}
	return services.ResolveMonth(yearRaw, monthRaw, time.Now().In(handler.location))
}
