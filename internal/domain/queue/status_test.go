package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

func TestStatusPredicates(t *testing.T) {
	assert.Equal(t, StatusAguardando, InitialStatus())

	assert.True(t, IsValid(StatusAguardando))
	assert.True(t, IsValid(StatusFaltou))
	assert.False(t, IsValid(Status("CANCELADO")))

	assert.True(t, IsActive(StatusAguardando))
	assert.True(t, IsActive(StatusAtendendo))
	assert.False(t, IsActive(StatusAtendido))

	assert.True(t, IsTerminal(StatusAtendido))
	assert.True(t, IsTerminal(StatusDesistiu))
	assert.False(t, IsTerminal(StatusAtendendo))
}

func TestIsIntended(t *testing.T) {
	assert.True(t, IsIntended(StatusAguardando, StatusAtendendo))
	assert.True(t, IsIntended(StatusAtendendo, StatusAtendido))
	assert.False(t, IsIntended(StatusAguardando, StatusAtendido))
	assert.False(t, IsIntended(StatusAtendido, StatusAguardando))
}

func TestApplyStampsExit(t *testing.T) {
	now := time.Date(2026, 8, 10, 14, 0, 0, 0, time.UTC)
	e := &models.QueueEntry{Status: string(StatusAtendendo)}

	Apply(e, StatusAtendido, now)

	assert.Equal(t, string(StatusAtendido), e.Status)
	require.NotNil(t, e.HoraSaida)
	assert.Equal(t, now, *e.HoraSaida)
}

func TestApplyAtendendoClearsExit(t *testing.T) {
	now := time.Date(2026, 8, 10, 14, 0, 0, 0, time.UTC)
	prev := now.Add(-time.Hour)
	e := &models.QueueEntry{Status: string(StatusAtendido), HoraSaida: &prev}

	Apply(e, StatusAtendendo, now)

	assert.Equal(t, string(StatusAtendendo), e.Status)
	assert.Nil(t, e.HoraSaida)
}

func TestNextPosition(t *testing.T) {
	assert.Equal(t, 1, NextPosition(nil))
	assert.Equal(t, 8, NextPosition(&models.QueueEntry{Posicao: 7}))
}
