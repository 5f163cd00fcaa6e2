package ews

import (
	"fmt"

	"github.com/custodia-labs/ews-go/internal/logger"
)

// CallState is the phase of a service call.
type CallState int

// Call states.
const (
	StateIdle CallState = iota
	StateBuilding
	StateAwaiting
	StateParsing
	StateDispatching
	StateFaulted
)

var callStateNames = [...]string{
	StateIdle:        "Idle",
	StateBuilding:    "Building",
	StateAwaiting:    "Awaiting",
	StateParsing:     "Parsing",
	StateDispatching: "Dispatching",
	StateFaulted:     "Faulted",
}

func (s CallState) String() string {
	if s < 0 || int(s) >= len(callStateNames) {
		return fmt.Sprintf("CallState(%d)", int(s))
	}
	return callStateNames[s]
}

// transitions lists the legal successors of every state. Building returns
// to Idle when a request is rejected before it is sent.
var transitions = map[CallState][]CallState{
	StateIdle:        {StateBuilding},
	StateBuilding:    {StateAwaiting, StateIdle},
	StateAwaiting:    {StateParsing, StateFaulted},
	StateParsing:     {StateDispatching, StateFaulted},
	StateDispatching: {StateIdle},
	StateFaulted:     {StateIdle},
}

// StateObserver is notified of every call state transition.
type StateObserver func(op string, from, to CallState)

type callMachine struct {
	state    CallState
	op       string
	observer StateObserver
}

// to moves the machine to next. An illegal transition is a bug in the
// service code and panics.
func (m *callMachine) to(next CallState) {
	legal := false
	for _, s := range transitions[m.state] {
		if s == next {
			legal = true
			break
		}
	}
	if !legal {
		panic(fmt.Sprintf("ews: illegal call state transition %s -> %s in %s", m.state, next, m.op))
	}
	logger.Debug("ews: %s %s -> %s", m.op, m.state, next)
	from := m.state
	m.state = next
	if m.observer != nil {
		m.observer(m.op, from, next)
	}
}

// begin starts a call of op from Idle.
func (m *callMachine) begin(op string) {
	m.op = op
	m.to(StateBuilding)
}

// State returns the current state; it is Idle between calls.
func (m *callMachine) State() CallState {
	return m.state
}
