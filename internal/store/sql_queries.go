package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-drip-watch/models"
)

const (
	kvTable     = "kv"
	alarmsTable = "alarms"
)

var (
	builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

	alarmColumns = []string{"id", "due_at", "mode", "params", "state", "created_at"}
)

type kvEntry struct {
	key   string
	value string
}

// buildUpsertKVQuery writes all entries in one statement, stamping updated_at
// with at.
func buildUpsertKVQuery(entries []kvEntry, at time.Time) (string, []any, error) {
	q := builder.Insert(kvTable).Columns("key", "value", "updated_at")
	for _, e := range entries {
		q = q.Values(e.key, e.value, at.UnixMilli())
	}

	return q.Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildSelectKVQuery(keys ...string) (string, []any, error) {
	return builder.Select("key", "value").
		From(kvTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
}

func buildInsertAlarmQuery(a models.Alarm) (string, []any, error) {
	return builder.Insert(alarmsTable).
		Columns(alarmColumns...).
		Values(a.ID, a.DueAt.UnixMilli(), string(a.Page), a.Params, string(a.State), a.CreatedAt.UnixMilli()).
		ToSql()
}

// buildTransitionAlarmQuery moves an active alarm into state.
func buildTransitionAlarmQuery(id string, state models.AlarmState) (string, []any, error) {
	return builder.Update(alarmsTable).
		Set("state", string(state)).
		Where(sq.Eq{"id": id, "state": string(models.AlarmActive)}).
		ToSql()
}

func buildSelectActiveAlarmsQuery() (string, []any, error) {
	return builder.Select(alarmColumns...).
		From(alarmsTable).
		Where(sq.Eq{"state": string(models.AlarmActive)}).
		OrderBy("due_at", "created_at").
		ToSql()
}

func buildSelectDueAlarmsQuery(now time.Time) (string, []any, error) {
	return builder.Select(alarmColumns...).
		From(alarmsTable).
		Where(sq.Eq{"state": string(models.AlarmActive)}).
		Where(sq.LtOrEq{"due_at": now.UnixMilli()}).
		OrderBy("due_at", "created_at").
		ToSql()
}
