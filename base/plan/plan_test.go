// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	name string
}

func (it *item) PlanName() string { return it.name }

func names(s []*item) []string {
	r := make([]string, len(s))
	for i, it := range s {
		r[i] = it.name
	}
	return r
}

func TestUpdate(t *testing.T) {
	var s []*item
	target := []string{"a", "b", "c"}
	s, mods := Update(s, len(target), func(i int) string { return target[i] },
		func(name string, i int) *item { return &item{name: name} }, nil)
	assert.True(t, mods)
	assert.Equal(t, []string{"a", "b", "c"}, names(s))

	// no changes needed
	s, mods = Update(s, len(target), func(i int) string { return target[i] },
		func(name string, i int) *item { return &item{name: name} }, nil)
	assert.False(t, mods)

	// reorder and delete, reusing surviving elements
	b := s[1]
	target = []string{"c", "b"}
	destroyed := []string{}
	s, mods = Update(s, len(target), func(i int) string { return target[i] },
		func(name string, i int) *item { return &item{name: name} },
		func(e *item) { destroyed = append(destroyed, e.name) })
	assert.True(t, mods)
	assert.Equal(t, []string{"c", "b"}, names(s))
	assert.Same(t, b, s[1])
	assert.Equal(t, []string{"a"}, destroyed)
}
