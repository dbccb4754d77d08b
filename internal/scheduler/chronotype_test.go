package scheduler

import (
	"testing"

	"github.com/alexanderramin/semestra/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPreferredStartHour(t *testing.T) {
	assert.Equal(t, 8, PreferredStartHour(domain.ChronoMorning))
	assert.Equal(t, 12, PreferredStartHour(domain.ChronoNight))
	assert.Equal(t, 10, PreferredStartHour(domain.ChronoBalanced))
}

func TestPreferredStartHour_UnknownFallsBackToBalanced(t *testing.T) {
	assert.Equal(t, 10, PreferredStartHour(domain.Chronotype("")))
	assert.Equal(t, 10, PreferredStartHour(domain.Chronotype("owl")))
}
