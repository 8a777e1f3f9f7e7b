package querytrace

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"opsmonitor/internal/telemetry"
)

type pgxTraceKey struct{}

type pgxTrace struct {
	start     time.Time
	entity    string
	operation string
}

// PgxTracer implements pgx.QueryTracer. Set it on pgx.ConnConfig.Tracer
// (or pgxpool.Config.ConnConfig.Tracer) and every query is recorded.
type PgxTracer struct {
	rec QueryRecorder
}

var _ pgx.QueryTracer = (*PgxTracer)(nil)

func NewPgxTracer(rec QueryRecorder) *PgxTracer {
	return &PgxTracer{rec: rec}
}

func (t *PgxTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	entity, op := ParseSQL(data.SQL)
	return context.WithValue(ctx, pgxTraceKey{}, pgxTrace{
		start:     time.Now(),
		entity:    entity,
		operation: op,
	})
}

func (t *PgxTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryEndData) {
	tr, ok := ctx.Value(pgxTraceKey{}).(pgxTrace)
	if !ok {
		return
	}
	record(t.rec, tr.start, tr.entity, tr.operation)
}

var sqlTableRe = regexp.MustCompile(`(?i)\b(?:from|into|update)\s+("?[A-Za-z_][\w$]*"?(?:\."?[A-Za-z_][\w$]*"?)?)`)

var sqlOperations = map[string]string{
	"select": telemetry.OpFind,
	"with":   telemetry.OpFind,
	"insert": telemetry.OpInsert,
	"update": telemetry.OpUpdate,
	"delete": telemetry.OpDelete,
}

// ParseSQL extracts the first table and the operation kind of a statement.
// Anything it cannot classify is reported as telemetry.OpUnknown.
func ParseSQL(sql string) (entity, operation string) {
	entity, operation = telemetry.OpUnknown, telemetry.OpUnknown

	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return entity, operation
	}
	if op, ok := sqlOperations[strings.ToLower(fields[0])]; ok {
		operation = op
	}

	if m := sqlTableRe.FindStringSubmatch(topLevel(sql)); m != nil {
		table := strings.ReplaceAll(m[1], `"`, "")
		if i := strings.LastIndexByte(table, '.'); i >= 0 {
			table = table[i+1:]
		}
		entity = table
	}
	return entity, operation
}

// topLevel blanks everything inside parentheses and quoted literals, so
// FROM inside function calls (extract(epoch from ...)), subqueries and
// strings is never taken for the statement's table. Byte offsets are kept.
func topLevel(sql string) string {
	out := []byte(sql)
	depth := 0
	var quote byte
	for i := 0; i < len(out); i++ {
		c := out[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				out[i] = ' '
			}
		case c == '\'' && depth == 0:
			quote = c
		case c == '(':
			if depth > 0 {
				out[i] = ' '
			}
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
			if depth > 0 {
				out[i] = ' '
			}
		case depth > 0:
			out[i] = ' '
		}
	}
	return string(out)
}
