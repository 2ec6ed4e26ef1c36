package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateOnly representa uma data de calendário sem componente de hora, no
// formato usado pela API e pelas colunas "date" do Postgres (YYYY-MM-DD).
type DateOnly struct {
	time.Time
}

func NewDateOnly(t time.Time) DateOnly {
	return DateOnly{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func ParseDateOnly(s string) (DateOnly, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return DateOnly{}, fmt.Errorf("data inválida %q: esperado formato YYYY-MM-DD", s)
	}
	return DateOnly{Time: t}, nil
}

func (d DateOnly) String() string {
	return d.Format(time.DateOnly)
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseDateOnly(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan aceita tanto time.Time (lib/pq para colunas date) quanto texto.
func (d *DateOnly) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = DateOnly{}
		return nil
	case time.Time:
		*d = NewDateOnly(v)
		return nil
	case []byte:
		parsed, err := ParseDateOnly(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDateOnly(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("tipo inesperado para DateOnly: %T", value)
	}
}

func (d DateOnly) Value() (driver.Value, error) {
	return d.Format(time.DateOnly), nil
}
