// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-drip-watch/models"
)

// TriggerInput is everything a trigger evaluation looks at.
type TriggerInput struct {
	Now      time.Time
	State    models.SyncState
	InFlight bool
	// Observed is the success timestamp this process last applied.
	Observed  time.Time
	DataStale bool

	UpdateInterval        time.Duration
	StaleAttemptThreshold time.Duration
}

// EvaluateTriggers picks the first matching rule, in priority order.
func EvaluateTriggers(in TriggerInput) models.Decision {
	if in.InFlight {
		return models.Decision{Rule: models.RuleInFlight, Action: models.ActionNone}
	}

	state := in.State
	attemptTimedOut := timedOut(in.Now, state.LastFetchAttempt, in.StaleAttemptThreshold)

	if !state.HasEverSucceeded() {
		return retryDecision(models.RuleColdStart, state, attemptTimedOut)
	}
	if attemptTimedOut {
		return models.Decision{Rule: models.RuleStaleAttempt, Action: models.ActionFetch}
	}
	if !state.LastFetchSuccess {
		return retryDecision(models.RuleFailedRecovery, state, attemptTimedOut)
	}

	if !state.LastSuccessfulUpdate.Equal(in.Observed) {
		return models.Decision{Rule: models.RuleSyncedElsewhere, Action: models.ActionReload}
	}
	if timedOut(in.Now, state.LastSuccessfulUpdate, in.UpdateInterval) {
		return models.Decision{Rule: models.RuleUpdateInterval, Action: models.ActionFetch}
	}
	if in.DataStale {
		// attemptTimedOut is false here, rule 2 took it
		return models.Decision{Rule: models.RuleStaleData, Action: models.ActionWait}
	}

	return models.Decision{Rule: models.RuleNotModified, Action: models.ActionNone}
}

// retryDecision covers the cold start and the failed last fetch: fetch when no
// attempt is recorded or the last one is stale, otherwise wait for it.
func retryDecision(rule models.Rule, state models.SyncState, attemptTimedOut bool) models.Decision {
	switch {
	case state.LastFetchAttempt.IsZero():
		return models.Decision{Rule: rule, Action: models.ActionFetch}
	case attemptTimedOut:
		return models.Decision{Rule: models.RuleStaleAttempt, Action: models.ActionFetch}
	default:
		return models.Decision{Rule: rule, Action: models.ActionWait}
	}
}

// timedOut reports now - since > limit. A zero since never times out.
func timedOut(now, since time.Time, limit time.Duration) bool {
	if since.IsZero() {
		return false
	}
	return now.Sub(since) > limit
}
