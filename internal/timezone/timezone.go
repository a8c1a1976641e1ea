package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Now é a única fonte de carimbos de entrada/saída da fila.
func Now() time.Time {
	return time.Now().In(Location())
}
