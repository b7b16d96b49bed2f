package services

import (
	"fmt"
	"time"
)

// Event dates are stored as the display strings the app shows,
// in Spanish, matching the launch catalog.

var spanishMonths = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// FormatShortDate renders "15 Jun 2025" for summary cards.
func FormatShortDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), spanishMonths[t.Month()-1][:3], t.Year())
}

// FormatLongDate renders "15 de Junio, 2025" for the detail view.
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s, %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// FormatTime renders the 24h start time, e.g. "19:00".
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}
