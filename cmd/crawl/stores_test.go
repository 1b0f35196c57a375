package main

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-crawl/internal/config"
	"github.com/KirkDiggler/rpg-crawl/internal/errors"
)

func useConfig(t *testing.T, c *config.Config) {
	t.Helper()
	previous := cfg
	cfg = c
	t.Cleanup(func() { cfg = previous })
}

func TestOpenStores_Connects(t *testing.T) {
	mr := miniredis.RunT(t)
	useConfig(t, &config.Config{RedisAddr: mr.Addr(), CombatLogTTL: time.Minute})

	st, err := openStores(context.Background(), true)
	require.NoError(t, err)
	defer st.Close()

	assert.NotNil(t, st.saves)
	assert.NotNil(t, st.combatLog)
}

func TestOpenStores_ClosesClientWhenRepositorySetupFails(t *testing.T) {
	mr := miniredis.RunT(t)
	useConfig(t, &config.Config{RedisAddr: mr.Addr(), CombatLogTTL: -time.Second})

	st, err := openStores(context.Background(), true)

	require.Error(t, err)
	assert.Nil(t, st)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Eventually(t, func() bool {
		return mr.CurrentConnectionCount() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestOpenStores_OptionalWithoutRedis(t *testing.T) {
	useConfig(t, &config.Config{})

	st, err := openStores(context.Background(), false)
	require.NoError(t, err)

	assert.Nil(t, st.saves)
	st.Close()
}
