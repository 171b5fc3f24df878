package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"gatehouse/config"
	deliverycontext "gatehouse/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturingLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var record map[string]any
		require.NoError(t, dec.Decode(&record))
		records = append(records, record)
	}

	return records
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		err       error
		elapsed   time.Duration
		wantMsg   string
		wantLevel string
	}{
		{name: "database error", err: errors.New("connection reset"), wantMsg: "GORM query failed", wantLevel: "ERROR"},
		{name: "unique violation in debug mode", debug: true, err: &pgconn.PgError{Code: pgUniqueViolation}, wantMsg: "GORM query failed", wantLevel: "DEBUG"},
		{name: "slow query", elapsed: time.Second, wantMsg: "GORM slow query", wantLevel: "WARN"},
		{name: "plain query in debug mode", debug: true, wantMsg: "GORM query", wantLevel: "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			l := newGormSlogLogger(newCapturingLogger(&buf), cfg)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn, tt.err)

			records := decodeLines(t, &buf)
			require.Len(t, records, 1)
			assert.Equal(t, tt.wantMsg, records[0]["msg"])
			assert.Equal(t, tt.wantLevel, records[0]["level"])
			assert.Equal(t, "SELECT 1", records[0]["sql"])
		})
	}
}

func TestGormSlogLogger_Trace_QuietOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newCapturingLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Zero(t, buf.Len())
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newCapturingLogger(&base), &config.Config{})
	ctx := deliverycontext.WithScope(context.Background(), "", newCapturingLogger(&scoped).With("request_id", "req-9"))

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Zero(t, base.Len())
	records := decodeLines(t, &scoped)
	require.Len(t, records, 1)
	assert.Equal(t, "req-9", records[0]["request_id"])
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newCapturingLogger(&buf), &config.Config{}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	l.Error(context.Background(), "%s", "boom")

	assert.Zero(t, buf.Len())
}
