package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateInBizTimezone(t *testing.T) {
	got, err := ParseDateInBizTimezone("2024-03-10")
	require.NoError(t, err)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, "2024-03-10", FormatInBizTimezone(got, DateLayout))

	_, err = ParseDateInBizTimezone("10/03/2024")
	assert.Error(t, err)
}

func TestEndOfDayUTC(t *testing.T) {
	start, err := ParseDateInBizTimezone("2024-06-01")
	require.NoError(t, err)

	end := EndOfDayUTC(start)

	assert.Equal(t, 24*time.Hour-time.Nanosecond, end.Sub(start))
	assert.Equal(t, 23, end.In(Location()).Hour())
}
