package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOnly(t *testing.T) {
	date, err := ParseDateOnly("2024-05-15")

	require.NoError(t, err)
	assert.Equal(t, "2024-05-15", date.String())
}

func TestParseDateOnlyInvalid(t *testing.T) {
	_, err := ParseDateOnly("15/05/2024")
	assert.Error(t, err)

	_, err = ParseDateOnly("")
	assert.Error(t, err)
}

func TestDateOnlyJSON(t *testing.T) {
	date, err := ParseDateOnly("2024-05-15")
	require.NoError(t, err)

	raw, err := date.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-15"`, string(raw))

	var decoded DateOnly
	require.NoError(t, decoded.UnmarshalJSON(raw))
	assert.Equal(t, date, decoded)
}

func TestDateOnlyScan(t *testing.T) {
	var date DateOnly

	// lib/pq devolve colunas date como time.Time com hora zerada
	require.NoError(t, date.Scan(time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-05-15", date.String())

	require.NoError(t, date.Scan([]byte("2024-06-01")))
	assert.Equal(t, "2024-06-01", date.String())

	assert.Error(t, date.Scan(12345))
}
