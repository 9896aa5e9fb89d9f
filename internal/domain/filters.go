package domain

import (
	"fmt"
	"strings"
	"time"
)

// RangeKey identifica una ventana de fechas del reporte.
type RangeKey string

const (
	RangeToday  RangeKey = "hoy"
	RangeYday   RangeKey = "ayer"
	RangeLast3  RangeKey = "ultimos_3d"
	RangeLast5  RangeKey = "ultimos_5d"
	RangeLast7  RangeKey = "ultimos_7d"
	RangeLast30 RangeKey = "ultimos_30d"
	RangeMax    RangeKey = "maximo"
)

// AllRanges es el orden en que se arma el reporte multi rango.
var AllRanges = []RangeKey{
	RangeToday,
	RangeYday,
	RangeLast3,
	RangeLast5,
	RangeLast7,
	RangeLast30,
	RangeMax,
}

// Presets que la API de insights acepta directamente. Los rangos sin
// preset nativo se expresan como time_range explícito.
var rangePresets = map[RangeKey]string{
	RangeToday:  "today",
	RangeYday:   "yesterday",
	RangeLast3:  "last_3d",
	RangeLast7:  "last_7d",
	RangeLast30: "last_30d",
	RangeMax:    "maximum",
}

var rangeAliases = map[string]RangeKey{
	"hoy":         RangeToday,
	"today":       RangeToday,
	"ayer":        RangeYday,
	"yesterday":   RangeYday,
	"ultimos_3d":  RangeLast3,
	"last_3d":     RangeLast3,
	"ultimos_5d":  RangeLast5,
	"last_5d":     RangeLast5,
	"ultimos_7d":  RangeLast7,
	"last_7d":     RangeLast7,
	"ultimos_30d": RangeLast30,
	"last_30d":    RangeLast30,
	"maximo":      RangeMax,
	"maximum":     RangeMax,
	"historico":   RangeMax,
	"lifetime":    RangeMax,
	"all":         RangeMax,
}

// ParseRange acepta el nombre de un rango en cualquiera de sus alias.
func ParseRange(s string) (RangeKey, error) {
	key, ok := rangeAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("rango desconocido: %q", s)
	}
	return key, nil
}

// customDays mapea los rangos sin preset nativo a su cantidad de días.
var customDays = map[RangeKey]int{
	RangeLast5: 5,
}

// TimeParam devuelve el parámetro de tiempo para la API de insights:
// date_preset cuando existe, o un time_range que termina ayer.
func (k RangeKey) TimeParam(now time.Time) (name, value string) {
	if preset, ok := rangePresets[k]; ok {
		return "date_preset", preset
	}

	days := customDays[k]
	until := now.AddDate(0, 0, -1)
	since := until.AddDate(0, 0, -(days - 1))

	return "time_range", fmt.Sprintf(
		`{"since":"%s","until":"%s"}`,
		since.Format(time.DateOnly),
		until.Format(time.DateOnly),
	)
}

// Window materializa el rango como fechas concretas para filtrar
// pedidos y mensajes. Para el rango máximo devuelve ok=false: no hay
// cota inferior y el agregador no debe filtrar por fecha.
func (k RangeKey) Window(now time.Time) (start, end time.Time, ok bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch k {
	case RangeToday:
		return today, now, true
	case RangeYday:
		y := today.AddDate(0, 0, -1)
		return y, today.Add(-time.Nanosecond), true
	case RangeLast3, RangeLast5, RangeLast7, RangeLast30:
		days := map[RangeKey]int{RangeLast3: 3, RangeLast5: 5, RangeLast7: 7, RangeLast30: 30}[k]
		until := today.Add(-time.Nanosecond)
		since := today.AddDate(0, 0, -days)
		return since, until, true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// InsightFilters son los filtros aceptados por los reportes.
type InsightFilters struct {
	Range   RangeKey
	Country string
	Product string
}
