package widget

import (
	"context"

	"github.com/qmuntal/stateless"

	"github.com/comigor/mishmish-go/internal/logger"
)

// Turn states. Only Idle accepts a new message.
type turnState string

const (
	StateIdle            turnState = "Idle"
	StateTyping          turnState = "Typing"
	StateFetchingCatalog turnState = "FetchingCatalog"
)

// Turn triggers.
type turnTrigger string

const (
	TriggerSubmit      turnTrigger = "Submit"
	TriggerCatalogLink turnTrigger = "CatalogLink"
	TriggerReplied     turnTrigger = "Replied"
)

// newTurnMachine builds the per-session turn FSM:
//
//	Idle --Submit--> Typing --CatalogLink--> FetchingCatalog
//	Typing|FetchingCatalog --Replied--> Idle
func newTurnMachine(sessionID string) *stateless.StateMachine {
	fsm := stateless.NewStateMachine(StateIdle)

	fsm.Configure(StateIdle).
		Permit(TriggerSubmit, StateTyping)

	fsm.Configure(StateTyping).
		OnEntry(func(_ context.Context, _ ...any) error {
			logger.L.Debug("FSM: Entering StateTyping", "session", sessionID)
			return nil
		}).
		Permit(TriggerCatalogLink, StateFetchingCatalog).
		Permit(TriggerReplied, StateIdle)

	fsm.Configure(StateFetchingCatalog).
		OnEntry(func(_ context.Context, _ ...any) error {
			logger.L.Debug("FSM: Entering StateFetchingCatalog", "session", sessionID)
			return nil
		}).
		Permit(TriggerReplied, StateIdle)

	return fsm
}
