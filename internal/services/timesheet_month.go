package services

import (
	"sort"
	"strings"

	"github.com/terraincognita07/brygady/internal/models"
)

// TimesheetMonth is the calendar grid of one brigade for one month.
type TimesheetMonth struct {
	Month      MonthRef
	MonthName  string
	Days       []int
	Workers    []models.Worker
	Hours      map[uint]map[int]int
	Previous   MonthRef
	Next       MonthRef
	MonthNames []string
}

// HoursFor returns the stored hours of a worker on a day of the month.
func (grid TimesheetMonth) HoursFor(workerID uint, day int) (int, bool) {
	byDay, ok := grid.Hours[workerID]
	if !ok {
		return 0, false
	}
	hours, ok := byDay[day]
	return hours, ok
}

func (grid TimesheetMonth) WorkerTotal(workerID uint) int {
	total := 0
	for _, hours := range grid.Hours[workerID] {
		total += hours
	}
	return total
}

// BuildTimesheetMonth assembles the grid from already loaded rows. Entries
// outside the month or for workers not in the list are ignored. monthNames
// must hold twelve names, January first.
func BuildTimesheetMonth(month MonthRef, workers []models.Worker, entries []models.TimeSheet, monthNames []string) TimesheetMonth {
	sortedWorkers := make([]models.Worker, len(workers))
	copy(sortedWorkers, workers)
	sort.SliceStable(sortedWorkers, func(i, j int) bool {
		left, right := sortedWorkers[i], sortedWorkers[j]
		if !strings.EqualFold(left.LastName, right.LastName) {
			return strings.ToLower(left.LastName) < strings.ToLower(right.LastName)
		}
		if !strings.EqualFold(left.FirstName, right.FirstName) {
			return strings.ToLower(left.FirstName) < strings.ToLower(right.FirstName)
		}
		return left.ID < right.ID
	})

	known := make(map[uint]struct{}, len(sortedWorkers))
	for _, worker := range sortedWorkers {
		known[worker.ID] = struct{}{}
	}

	hours := make(map[uint]map[int]int)
	for _, entry := range entries {
		if _, ok := known[entry.WorkerID]; !ok {
			continue
		}
		if entry.Date.Year() != month.Year || int(entry.Date.Month()) != month.Month {
			continue
		}
		byDay, ok := hours[entry.WorkerID]
		if !ok {
			byDay = make(map[int]int)
			hours[entry.WorkerID] = byDay
		}
		byDay[entry.Date.Day()] = entry.HoursWorked
	}

	daysInMonth := month.DaysInMonth()
	days := make([]int, daysInMonth)
	for index := range days {
		days[index] = index + 1
	}

	names := make([]string, len(monthNames))
	copy(names, monthNames)
	monthName := ""
	if month.Month >= 1 && month.Month <= len(names) {
		monthName = names[month.Month-1]
	}

	return TimesheetMonth{
		Month:      month,
		MonthName:  monthName,
		Days:       days,
		Workers:    sortedWorkers,
		Hours:      hours,
		Previous:   month.Previous(),
		Next:       month.Next(),
		MonthNames: names,
	}
}
