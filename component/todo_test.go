// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calicogo/calico/component"
)

func TestValidateTodoWellFormedIsEmpty(t *testing.T) {
	raw := component.RawComponent{
		Kind: "VTODO",
		Properties: []component.RawProperty{
			{Name: "UID", Value: "todo-1@example.com"},
		},
	}
	v := component.ValidateTodo(raw)
	assert.True(t, v.Defects.Empty())
}

func TestValidateTodoMissingUid(t *testing.T) {
	v := component.ValidateTodo(component.RawComponent{Kind: "VTODO"})
	assert.True(t, v.Defects.Has(component.TodoMissingUid))
}

func TestValidateTodoDueAndDuration(t *testing.T) {
	raw := component.RawComponent{
		Kind: "VTODO",
		Properties: []component.RawProperty{
			{Name: "UID", Value: "todo-2@example.com"},
			{Name: "DUE", Value: "20240115T130000Z"},
			{Name: "DURATION", Value: "PT1H"},
		},
	}
	v := component.ValidateTodo(raw)
	assert.True(t, v.Defects.Has(component.TodoDueAndDuration))
}

func TestValidateTodoInvalidStatus(t *testing.T) {
	raw := component.RawComponent{
		Kind: "VTODO",
		Properties: []component.RawProperty{
			{Name: "UID", Value: "todo-3@example.com"},
			{Name: "STATUS", Value: "CONFIRMED"},
		},
	}
	v := component.ValidateTodo(raw)
	assert.True(t, v.Defects.Has(component.TodoInvalidStatusValue))
}

func TestValidateTodoInvalidPercentComplete(t *testing.T) {
	raw := component.RawComponent{
		Kind: "VTODO",
		Properties: []component.RawProperty{
			{Name: "UID", Value: "todo-4@example.com"},
			{Name: "PERCENT-COMPLETE", Value: "150"},
		},
	}
	v := component.ValidateTodo(raw)
	assert.True(t, v.Defects.Has(component.TodoInvalidPercentComplete))
}

func TestValidateTodoValidPercentComplete(t *testing.T) {
	raw := component.RawComponent{
		Kind: "VTODO",
		Properties: []component.RawProperty{
			{Name: "UID", Value: "todo-5@example.com"},
			{Name: "PERCENT-COMPLETE", Value: "50"},
		},
	}
	v := component.ValidateTodo(raw)
	assert.False(t, v.Defects.Has(component.TodoInvalidPercentComplete))
}
