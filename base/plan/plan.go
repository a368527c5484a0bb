// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plan provides an efficient mechanism for updating a slice
// to contain a target list of elements, generating minimal edits to
// modify the current slice contents to match the target. Elements are
// identified by unique name strings; in glide these are typically the
// string forms of structural paths, so that a picker's option list or
// a navigation stack's page list can be synced with a freshly parsed
// content tree while reusing the elements that survived the rebuild.
package plan

import (
	"log/slog"
	"slices"

	"cogentcore.org/glide/base/slicesx"
)

// Namer is an interface that types implement to specify their name
// in a plan context.
type Namer interface {

	// PlanName returns the name of the object in a plan context.
	PlanName() string
}

// Update ensures that the elements of the slice contain the elements
// according to the plan, specified by unique element names, with n =
// total number of items in the target slice. If a new item is needed,
// new is called to create it for the given name at the given index
// position. If destroy is non-nil, it is called on any element being
// removed from the slice. It returns the updated slice and whether any
// changes were made.
func Update[T Namer](s []T, n int, name func(i int) string, new func(name string, i int) T, destroy func(e T)) (r []T, mods bool) {
	names := make([]string, n)
	nmap := make(map[string]int, n)
	smap := make(map[string]int, n)
	for i := 0; i < n; i++ {
		nm := name(i)
		names[i] = nm
		if _, has := nmap[nm]; has {
			slog.Error("plan.Update: duplicate name", "name", nm)
		}
		nmap[nm] = i
	}
	// remove anything not in the target, in reverse to keep indexes valid
	r = s
	for i := len(r) - 1; i >= 0; i-- {
		nm := r[i].PlanName()
		if _, ok := nmap[nm]; !ok {
			mods = true
			if destroy != nil {
				destroy(r[i])
			}
			r = slices.Delete(r, i, i+1)
		}
		smap[nm] = i
	}
	// add and move items as needed, in target order
	for i, tn := range names {
		ci := slicesx.Search(r, func(e T) bool { return e.PlanName() == tn }, smap[tn])
		if ci < 0 { // not currently on the list
			mods = true
			r = slices.Insert(r, i, new(tn, i))
		} else if ci != i { // on the list but out of place
			mods = true
			e := r[ci]
			r = slices.Delete(r, ci, ci+1)
			r = slices.Insert(r, i, e)
		}
	}
	return
}
