package models

// Rule names the trigger that decided a tick.
type Rule string

const (
	RuleInFlight        Rule = "in_flight"
	RuleColdStart       Rule = "cold_start"
	RuleStaleAttempt    Rule = "stale_attempt"
	RuleSyncedElsewhere Rule = "synced_elsewhere"
	RuleUpdateInterval  Rule = "update_interval"
	RuleStaleData       Rule = "stale_data"
	RuleFailedRecovery  Rule = "failed_recovery"
	RuleNotModified     Rule = "not_modified"
)

// Action is what the engine does as a result of a tick.
type Action string

const (
	ActionNone   Action = "none"
	ActionWait   Action = "wait"
	ActionFetch  Action = "fetch"
	ActionReload Action = "reload"
)

// Decision is the outcome of one trigger evaluation.
type Decision struct {
	Rule   Rule
	Action Action
}
