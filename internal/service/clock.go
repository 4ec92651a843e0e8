package service

import (
	"time"
)

const (
	formatoDia   = "2006-01-02"
	formatoFecha = time.RFC3339
)

// Clock pins the business time zone and the time source. Calendar days for
// sale codes, combo windows and report buckets are taken in Loc.
type Clock struct {
	Loc *time.Location
	Now func() time.Time
}

func NewClock(loc *time.Location) Clock {
	return Clock{Loc: loc, Now: time.Now}
}

func (c Clock) location() *time.Location {
	if c.Loc == nil {
		return time.Local
	}
	return c.Loc
}

func (c Clock) Ahora() time.Time {
	now := c.Now
	if now == nil {
		now = time.Now
	}
	return now().In(c.location())
}

// Hoy is local midnight of the current day.
func (c Clock) Hoy() time.Time {
	y, m, d := c.Ahora().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.location())
}

func (c Clock) InicioMes() time.Time {
	y, m, _ := c.Ahora().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, c.location())
}

// Rango converts inclusive YYYY-MM-DD bounds into a [desde, hasta) instant
// range. Empty strings leave that side open.
func (c Clock) Rango(desde, hasta string) (*time.Time, *time.Time, error) {
	var d, h *time.Time
	if desde != "" {
		t, err := time.ParseInLocation(formatoDia, desde, c.location())
		if err != nil {
			return nil, nil, invalid("fecha desde inválida: %s", desde)
		}
		d = &t
	}
	if hasta != "" {
		t, err := time.ParseInLocation(formatoDia, hasta, c.location())
		if err != nil {
			return nil, nil, invalid("fecha hasta inválida: %s", hasta)
		}
		t = t.AddDate(0, 0, 1)
		h = &t
	}
	if d != nil && h != nil && !d.Before(*h) {
		return nil, nil, invalid("el rango de fechas es inválido")
	}
	return d, h, nil
}
