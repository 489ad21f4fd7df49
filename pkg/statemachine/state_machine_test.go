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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderStatus string

const (
	orderCreated  orderStatus = "CREATED"
	orderPaid     orderStatus = "PAID"
	orderShipped  orderStatus = "SHIPPED"
	orderCanceled orderStatus = "CANCELED"
)

func TestStateMachine_Basic(t *testing.T) {
	sm := New[orderStatus]().
		Allow(orderCreated, orderPaid, orderCanceled).
		Allow(orderPaid, orderShipped, orderCanceled).
		Terminal(orderShipped, orderCanceled)

	assert.True(t, sm.CanTransition(orderCreated, orderPaid))
	assert.False(t, sm.CanTransition(orderCreated, orderShipped))
	assert.False(t, sm.CanTransition(orderShipped, orderCreated))
	assert.True(t, sm.IsTerminal(orderCanceled))
	assert.ElementsMatch(t, []orderStatus{orderPaid, orderCanceled}, sm.GetValidNextStates(orderCreated))
	assert.Equal(t, []orderStatus{orderCreated, orderPaid, orderCanceled, orderShipped}, sm.States())
}

func TestStateMachine_ValidateError(t *testing.T) {
	sm := New[orderStatus]().Allow(orderCreated, orderPaid)

	err := sm.Validate(orderCreated, orderShipped)
	require.Error(t, err)

	var te *TransitionError[orderStatus]
	require.True(t, errors.As(err, &te))
	assert.Equal(t, orderCreated, te.From)
	assert.Equal(t, orderShipped, te.To)
	assert.Equal(t, []orderStatus{orderPaid}, te.Allowed)
}

func TestStateMachine_Validator(t *testing.T) {
	blocked := errors.New("blocked")
	sm := New[orderStatus]().
		Allow(orderCreated, orderPaid).
		AddValidator(func(from, to orderStatus) error { return blocked })

	assert.ErrorIs(t, sm.Validate(orderCreated, orderPaid), blocked)
}

func TestStageMachine_Transitions(t *testing.T) {
	sm := Stages()

	for i, s := range OrderedStages {
		if sm.IsTerminal(s) {
			assert.Empty(t, sm.GetValidNextStates(s), "terminal stage %s", s)
			continue
		}
		assert.True(t, sm.CanTransition(s, OrderedStages[i+1]), "%s should advance", s)
		assert.True(t, sm.CanTransition(s, StageRejected), "%s should reject", s)
		assert.True(t, sm.CanTransition(s, StageHired), "%s should hire", s)
		assert.False(t, sm.CanTransition(s, s), "%s should not self-transition", s)
		for j := 0; j < i; j++ {
			assert.False(t, sm.CanTransition(s, OrderedStages[j]), "%s should not go back to %s", s, OrderedStages[j])
		}
	}

	assert.False(t, sm.CanTransition(StageNew, StagePhoneScreen))
	assert.True(t, sm.CanTransition(StageOfferAccepted, StageHired))
	assert.ElementsMatch(t, []Stage{StageHired, StageRejected}, sm.GetValidNextStates(StageOfferAccepted))
	assert.ElementsMatch(t, []Stage{StageContacted, StageHired, StageRejected}, sm.GetValidNextStates(StageNew))
}

func TestStageMachine_Terminal(t *testing.T) {
	assert.True(t, Stages().IsTerminal(StageHired))
	assert.True(t, Stages().IsTerminal(StageRejected))
	assert.False(t, Stages().IsTerminal(StageOfferSent))
	assert.Error(t, Stages().Validate(StageHired, StageRejected))
}

func TestParseStage(t *testing.T) {
	s, ok := ParseStage("TECH_TEST")
	assert.True(t, ok)
	assert.Equal(t, StageTechTest, s)

	_, ok = ParseStage("tech_test")
	assert.False(t, ok)
	_, ok = ParseStage("ARCHIVED")
	assert.False(t, ok)
}
