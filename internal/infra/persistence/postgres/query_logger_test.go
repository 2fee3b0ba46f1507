package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"crave/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type countingObserver map[string]int

func (c countingObserver) QueryObserved(outcome string) {
	c[outcome]++
}

func TestClassifyQuery(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		elapsed time.Duration
		want    string
	}{
		{name: "fast", elapsed: time.Millisecond, want: queryOK},
		{name: "not found is fine", err: gorm.ErrRecordNotFound, elapsed: time.Millisecond, want: queryOK},
		{name: "slow", elapsed: time.Second, want: querySlow},
		{name: "cancelled", err: errors.Wrap(context.Canceled, "select"), want: queryCancelled},
		{name: "failed", err: errors.New("deadlock detected"), want: queryError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyQuery(tt.err, tt.elapsed, 200*time.Millisecond))
		})
	}
}

func TestQueryLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	observer := countingObserver{}
	cfg := &config.Config{}
	cfg.Env.Log.SlowQuery = 10 * time.Millisecond

	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), cfg, observer)
	sql := func() (string, int64) { return `SELECT * FROM "orders"`, 3 }

	l.Trace(context.Background(), time.Now(), sql, nil)
	assert.Empty(t, buf.String(), "fast queries are below the warn level")

	l.Trace(context.Background(), time.Now().Add(-time.Second), sql, nil)
	assert.Contains(t, buf.String(), "GORM slow query")
	assert.Contains(t, buf.String(), "slow_threshold=10ms")

	buf.Reset()
	l.Trace(context.Background(), time.Now(), sql, errors.New("deadlock detected"))
	assert.Contains(t, buf.String(), "GORM query failed")

	assert.Equal(t, countingObserver{queryOK: 1, querySlow: 1, queryError: 1}, observer)
}

func TestQueryLogger_SilentStillCounts(t *testing.T) {
	var buf bytes.Buffer
	observer := countingObserver{}

	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), nil, observer).LogMode(logger.Silent)
	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))

	assert.Empty(t, buf.String())
	assert.Equal(t, 1, observer[queryError])
}
