package domain

import "fmt"

// LifecycleState is the authoritative per-asset state. Claiming and Burning
// are transient: they exist only inside an in-flight operation (held by the
// optimistic view cache) and are never persisted.
type LifecycleState string

const (
	StateOffchain       LifecycleState = "offchain"
	StateOnchain        LifecycleState = "onchain"
	StateStakedOffchain LifecycleState = "staked_offchain"
	StateStakedOnchain  LifecycleState = "staked_onchain"
	StateClaiming       LifecycleState = "claiming"
	StateBurning        LifecycleState = "burning"
	StateBurned         LifecycleState = "burned"
)

// LifecycleEvent drives a transition.
type LifecycleEvent string

const (
	EventStake          LifecycleEvent = "stake"
	EventUnstake        LifecycleEvent = "unstake"
	EventClaim          LifecycleEvent = "claim"
	EventClaimConfirmed LifecycleEvent = "claim_confirmed"
	EventClaimFailed    LifecycleEvent = "claim_failed"
	EventBurn           LifecycleEvent = "burn"
	EventBurnConfirmed  LifecycleEvent = "burn_confirmed"
)

// transitions is the finite transition table. Anything not listed is
// rejected; "what can happen next" is this table and nothing else.
var transitions = map[LifecycleState]map[LifecycleEvent]LifecycleState{
	StateOffchain: {
		EventStake: StateStakedOffchain,
		EventClaim: StateClaiming,
		EventBurn:  StateBurning,
	},
	StateStakedOffchain: {
		EventUnstake: StateOffchain,
	},
	StateOnchain: {
		EventStake: StateStakedOnchain,
		EventBurn:  StateBurning,
	},
	StateStakedOnchain: {
		EventUnstake: StateOnchain,
	},
	StateClaiming: {
		EventClaimConfirmed: StateOnchain,
		EventClaimFailed:    StateOffchain,
	},
	StateBurning: {
		EventBurnConfirmed: StateBurned,
	},
}

// StateOf derives the lifecycle state from an asset's persisted fields.
func StateOf(a *Asset) LifecycleState {
	if a.Store == StoreOnchain {
		if a.IsStaked() {
			return StateStakedOnchain
		}
		return StateOnchain
	}
	if a.IsStaked() {
		return StateStakedOffchain
	}
	return StateOffchain
}

// NextState returns the state reached by firing event from state, or an
// error when the transition is not in the table.
func NextState(state LifecycleState, event LifecycleEvent) (LifecycleState, error) {
	if next, ok := transitions[state][event]; ok {
		return next, nil
	}
	return "", fmt.Errorf("invalid transition: %s + %s", state, event)
}

// CanFire reports whether event is legal from state.
func CanFire(state LifecycleState, event LifecycleEvent) bool {
	_, ok := transitions[state][event]
	return ok
}
