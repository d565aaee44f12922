package cache

import (
	"context"
	"testing"
	"time"

	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPeriodStatus_Hit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisPeriodStatusCache(db)

	mock.ExpectGet("fiscal_period:church-1:2026-03").SetVal("LOCKED")

	status, found, err := c.GetPeriodStatus(context.Background(), "church-1", 2026, 3)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, domain.PeriodLocked, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPeriodStatus_Miss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisPeriodStatusCache(db)

	mock.ExpectGet("fiscal_period:church-1:2026-03").RedisNil()

	_, found, err := c.GetPeriodStatus(context.Background(), "church-1", 2026, 3)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetPeriodStatus_GarbageValueIsMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisPeriodStatusCache(db)

	mock.ExpectGet("fiscal_period:church-1:2026-03").SetVal("WHATEVER")

	_, found, err := c.GetPeriodStatus(context.Background(), "church-1", 2026, 3)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSetPeriodStatus(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisPeriodStatusCache(db)

	mock.ExpectSet("fiscal_period:church-1:2026-12", "OPEN", 10*time.Minute).SetVal("OK")

	err := c.SetPeriodStatus(context.Background(), "church-1", 2026, 12, domain.PeriodOpen)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidatePeriodStatus(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisPeriodStatusCache(db)

	mock.ExpectDel("fiscal_period:church-1:2026-03").SetVal(1)

	err := c.InvalidatePeriodStatus(context.Background(), "church-1", 2026, 3)
	require.NoError(t, err)
}
