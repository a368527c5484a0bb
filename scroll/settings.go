// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

import (
	"cogentcore.org/glide/base/iox/tomlx"
)

// Settings are the user and device settings for the scroll engine.
// [TheSettings] is the global instance used when a [TargetContext]
// or [Surface] has no explicit settings.
type Settings struct {

	// WheelSpeed is how fast the scroll wheel moves, in points per
	// wheel step.
	WheelSpeed float32 `default:"1"`

	// DecelerationNormal is the default deceleration rate applied to
	// gesture velocity after a drag releases, per frame.
	DecelerationNormal float32 `default:"0.998"`

	// DecelerationFast is the deceleration rate used by paging
	// surfaces, which settle quickly.
	DecelerationFast float32 `default:"0.99"`

	// EdgeEpsilon is the tolerance used when testing whether a target
	// is pinned at a content edge. The default of 0 matches the exact
	// comparison of the original behavior; raise it to avoid snapping
	// oscillation at floating-point boundaries.
	EdgeEpsilon float32 `default:"0"`
}

// Defaults sets default settings values.
func (st *Settings) Defaults() {
	st.WheelSpeed = 1
	st.DecelerationNormal = 0.998
	st.DecelerationFast = 0.99
	st.EdgeEpsilon = 0
}

// TheSettings is the global scroll engine settings instance.
var TheSettings = func() *Settings {
	st := &Settings{}
	st.Defaults()
	return st
}()

// Open reads the settings from the given TOML file, on top of
// the defaults.
func (st *Settings) Open(filename string) error {
	st.Defaults()
	return tomlx.Open(st, filename)
}

// Save writes the settings to the given TOML file.
func (st *Settings) Save(filename string) error {
	return tomlx.Save(st, filename)
}
