// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package statemachine

import (
	"fmt"
	"slices"
	"sync"
)

// TransitionValidator validates a proposed transition beyond the rule table.
type TransitionValidator[T comparable] func(from, to T) error

// TransitionError reports a transition the rule table does not allow.
type TransitionError[T comparable] struct {
	From    T
	To      T
	Allowed []T
}

func (e *TransitionError[T]) Error() string {
	return fmt.Sprintf("invalid transition from %v to %v (allowed: %v)", e.From, e.To, e.Allowed)
}

// StateMachine is a stateless transition table. It holds no current state:
// callers pass the state they read from storage and persist the result themselves.
//
// The StateMachine is safe for concurrent use once built.
type StateMachine[T comparable] struct {
	mu sync.RWMutex

	states      []T
	transitions map[T][]T
	terminal    map[T]struct{}
	validators  []TransitionValidator[T]
}

// New creates an empty StateMachine.
func New[T comparable]() *StateMachine[T] {
	return &StateMachine[T]{
		transitions: make(map[T][]T),
		terminal:    make(map[T]struct{}),
	}
}

// Allow registers valid transitions from a state.
func (sm *StateMachine[T]) Allow(from T, to ...T) *StateMachine[T] {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.register(from)
	for _, target := range to {
		sm.register(target)
		if !slices.Contains(sm.transitions[from], target) {
			sm.transitions[from] = append(sm.transitions[from], target)
		}
	}
	return sm
}

// Terminal marks states that have no outgoing transitions.
func (sm *StateMachine[T]) Terminal(states ...T) *StateMachine[T] {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	for _, s := range states {
		sm.register(s)
		sm.terminal[s] = struct{}{}
		delete(sm.transitions, s)
	}
	return sm
}

// AddValidator adds a validator run after the rule table accepts a transition.
func (sm *StateMachine[T]) AddValidator(v TransitionValidator[T]) *StateMachine[T] {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.validators = append(sm.validators, v)
	return sm
}

func (sm *StateMachine[T]) register(s T) {
	if !slices.Contains(sm.states, s) {
		sm.states = append(sm.states, s)
	}
}

// States returns every known state in registration order.
func (sm *StateMachine[T]) States() []T {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return slices.Clone(sm.states)
}

// IsKnown reports whether s was registered.
func (sm *StateMachine[T]) IsKnown(s T) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return slices.Contains(sm.states, s)
}

// IsTerminal reports whether s is a terminal state.
func (sm *StateMachine[T]) IsTerminal(s T) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	_, ok := sm.terminal[s]
	return ok
}

// CanTransition checks the rule table only.
func (sm *StateMachine[T]) CanTransition(from, to T) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return slices.Contains(sm.transitions[from], to)
}

// GetValidNextStates returns the targets reachable from a state.
func (sm *StateMachine[T]) GetValidNextStates(from T) []T {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return slices.Clone(sm.transitions[from])
}

// Validate returns a *TransitionError when from -> to is not allowed,
// or the first validator error.
func (sm *StateMachine[T]) Validate(from, to T) error {
	if !sm.CanTransition(from, to) {
		return &TransitionError[T]{From: from, To: to, Allowed: sm.GetValidNextStates(from)}
	}
	sm.mu.RLock()
	validators := slices.Clone(sm.validators)
	sm.mu.RUnlock()
	for _, v := range validators {
		if err := v(from, to); err != nil {
			return err
		}
	}
	return nil
}
