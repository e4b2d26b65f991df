package store

import (
	"strconv"
	"time"

	"github.com/MKhiriev/go-drip-watch/models"
)

// Durable state keys.
const (
	KeyDisableUpdates = "settings.disableUpdates"
	KeyUseAppFetch    = "settings.useAppFetch"
	KeyShowLog        = "settings.showLog"
	KeyModifiedAt     = "settings.modifiedAt"
	KeyFetchInterval  = "alarm.fetchInterval"
	KeyFetchParams    = "alarm.fetchParams"
	KeyLastUpdate     = "sync.lastUpdate"
	KeyLastAttempt    = "sync.lastAttempt"
	KeyLastSuccess    = "sync.lastSuccess"
	KeyAlarmID        = "alarm.id"
)

var allStateKeys = []string{
	KeyDisableUpdates,
	KeyUseAppFetch,
	KeyShowLog,
	KeyModifiedAt,
	KeyFetchInterval,
	KeyFetchParams,
	KeyLastUpdate,
	KeyLastAttempt,
	KeyLastSuccess,
	KeyAlarmID,
}

// Times are stored as Unix milliseconds, zero meaning unset. Durations are
// stored as milliseconds.
func encodeState(s models.SyncState) []kvEntry {
	return []kvEntry{
		{KeyDisableUpdates, strconv.FormatBool(s.Settings.DisableUpdates)},
		{KeyUseAppFetch, strconv.FormatBool(s.Settings.UseAppFetch)},
		{KeyShowLog, strconv.FormatBool(s.Settings.ShowLog)},
		{KeyModifiedAt, encodeTime(s.SettingsUpdatedAt)},
		{KeyFetchInterval, strconv.FormatInt(s.Alarm.FetchInterval.Milliseconds(), 10)},
		{KeyFetchParams, s.Alarm.FetchParams},
		{KeyLastUpdate, encodeTime(s.LastSuccessfulUpdate)},
		{KeyLastAttempt, encodeTime(s.LastFetchAttempt)},
		{KeyLastSuccess, strconv.FormatBool(s.LastFetchSuccess)},
		{KeyAlarmID, s.AlarmID},
	}
}

// decodeState builds a state from stored values. Missing or unreadable
// values keep the defaults from base; the keys of unreadable values are
// returned.
func decodeState(values map[string]string, base models.SyncState) (models.SyncState, []string) {
	s := base
	var bad []string

	boolKey := func(key string, dst *bool) {
		if v, ok := values[key]; ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				bad = append(bad, key)
				return
			}
			*dst = b
		}
	}
	timeKey := func(key string, dst *time.Time) {
		if v, ok := values[key]; ok {
			t, err := decodeTime(v)
			if err != nil {
				bad = append(bad, key)
				return
			}
			*dst = t
		}
	}

	boolKey(KeyDisableUpdates, &s.Settings.DisableUpdates)
	boolKey(KeyUseAppFetch, &s.Settings.UseAppFetch)
	boolKey(KeyShowLog, &s.Settings.ShowLog)
	boolKey(KeyLastSuccess, &s.LastFetchSuccess)
	timeKey(KeyModifiedAt, &s.SettingsUpdatedAt)
	timeKey(KeyLastUpdate, &s.LastSuccessfulUpdate)
	timeKey(KeyLastAttempt, &s.LastFetchAttempt)

	if v, ok := values[KeyFetchInterval]; ok {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil || ms <= 0 {
			bad = append(bad, KeyFetchInterval)
		} else {
			s.Alarm.FetchInterval = time.Duration(ms) * time.Millisecond
		}
	}
	if v, ok := values[KeyFetchParams]; ok && v != "" {
		s.Alarm.FetchParams = v
	}
	if v, ok := values[KeyAlarmID]; ok {
		s.AlarmID = v
	}

	return s, bad
}

func encodeTime(t time.Time) string {
	if t.IsZero() {
		return "0"
	}
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func decodeTime(v string) (time.Time, error) {
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	if ms == 0 {
		return time.Time{}, nil
	}
	return time.UnixMilli(ms), nil
}
