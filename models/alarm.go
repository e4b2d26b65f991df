// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Page is the process entry mode selected by the launch parameter.
type Page string

const (
	// PageMain is the foreground page that polls while visible.
	PageMain Page = "main"
	// PageUpdate runs one display fetch and exits.
	PageUpdate Page = "update"
	// PageUpdateLocal runs one silent background fetch and exits. Alarms
	// relaunch the process in this mode.
	PageUpdateLocal Page = "update_local"
	// PageConfig toggles a setting.
	PageConfig Page = "config"
	// PageHide exits immediately.
	PageHide Page = "hide"
	// PageAlarmDaemon runs the wake daemon that fires due alarms.
	PageAlarmDaemon Page = "alarmd"
)

// ParsePage returns the page for s, defaulting to PageMain for empty input.
func ParsePage(s string) (Page, bool) {
	switch p := Page(s); p {
	case "":
		return PageMain, true
	case PageMain, PageUpdate, PageUpdateLocal, PageConfig, PageHide, PageAlarmDaemon:
		return p, true
	default:
		return "", false
	}
}

// AlarmState is the lifecycle state of a registered alarm.
type AlarmState string

const (
	AlarmActive    AlarmState = "active"
	AlarmFired     AlarmState = "fired"
	AlarmCancelled AlarmState = "cancelled"
)

// Alarm is a scheduled relaunch of the process.
type Alarm struct {
	ID        string
	DueAt     time.Time
	Page      Page
	Params    string
	State     AlarmState
	CreatedAt time.Time
}
