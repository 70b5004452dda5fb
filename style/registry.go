// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import "sync"

var current struct {
	sync.RWMutex
	cfg     Config
	applied bool
}

// Apply validates cfg and installs it as the process-wide style. The
// configuration is copied, so later changes to cfg have no effect.
func Apply(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	current.Lock()
	defer current.Unlock()
	current.cfg = cfg.clone()
	current.applied = true
	return nil
}

// Current returns a copy of the applied style. If Apply has not been
// called, it returns Default() and false.
func Current() (Config, bool) {
	current.RLock()
	defer current.RUnlock()
	if !current.applied {
		return Default(), false
	}
	return current.cfg.clone(), true
}

// reset forgets the applied style. It is for tests.
func reset() {
	current.Lock()
	defer current.Unlock()
	current.cfg = Config{}
	current.applied = false
}
