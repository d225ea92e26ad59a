package utils

import "time"

// ParseDateIn interpreta yyyy-mm-dd como meia-noite na location informada
func ParseDateIn(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, dateStr, loc)
}

// StartOfDay trunca a data para meia-noite mantendo a location
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// MonthsBetween retorna quantos meses de calendário separam from de to (negativo se to vier antes)
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
