/*
	Copyright 2023 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

// Package manager provides Manager, a registry of live pickers that a host
// integration layer owns, dispatching string-named methods to pickers by
// handle.
package manager

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ilhamster/swatch/config"
	"github.com/ilhamster/swatch/picker"
)

// Handle identifies a picker registered with a Manager.  Handles are never
// reused by a Manager.
type Handle uint64

// LookupError reports an operation on a handle that identifies no live
// picker.
type LookupError struct {
	Handle Handle
}

func (le *LookupError) Error() string {
	return fmt.Sprintf("no picker with handle %d", le.Handle)
}

// ErrUnknownMethod is returned when a method name is not one of the
// dispatchable methods.
var ErrUnknownMethod = errors.New("unknown picker method")

// method invokes a single host-facing Picker operation.
type method func(p *picker.Picker, arg *string) picker.Value

var methods = map[string]method{
	"get": func(p *picker.Picker, _ *string) picker.Value {
		return p.Get()
	},
	"set": func(p *picker.Picker, arg *string) picker.Value {
		p.Set(arg)
		return picker.Value{}
	},
	"show": func(p *picker.Picker, _ *string) picker.Value {
		p.Show()
		return picker.Value{}
	},
	"hide": func(p *picker.Picker, _ *string) picker.Value {
		p.Hide()
		return picker.Value{}
	},
	"save": func(p *picker.Picker, _ *string) picker.Value {
		p.Save()
		return picker.Value{}
	},
	"cancel": func(p *picker.Picker, _ *string) picker.Value {
		p.Cancel()
		return picker.Value{}
	},
}

// Methods returns the names of the dispatchable methods, sorted.
func Methods() []string {
	ret := make([]string, 0, len(methods))
	for name := range methods {
		ret = append(ret, name)
	}
	slices.Sort(ret)
	return ret
}

// Manager is a registry of pickers.  Its registry is safe for concurrent
// use, but the pickers it holds are not: a host must not call into the same
// picker from multiple goroutines at once.
type Manager struct {
	mu      sync.RWMutex
	last    Handle
	pickers map[Handle]*picker.Picker
}

// New returns a new, empty Manager.
func New() *Manager {
	return &Manager{
		pickers: map[Handle]*picker.Picker{},
	}
}

// Register adds the provided picker to the receiver, returning its handle.
func (m *Manager) Register(p *picker.Picker) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last++
	m.pickers[m.last] = p
	return m.last
}

// Create builds a new picker with the provided options and registers it.
func (m *Manager) Create(opts config.Options, options ...picker.Option) (Handle, *picker.Picker) {
	p := picker.New(opts, options...)
	return m.Register(p), p
}

// Remove unregisters the specified picker.
func (m *Manager) Remove(h Handle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pickers[h]; !ok {
		return &LookupError{h}
	}
	delete(m.pickers, h)
	return nil
}

// Lookup returns the specified picker.
func (m *Manager) Lookup(h Handle) (*picker.Picker, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.pickers[h]
	if !ok {
		return nil, &LookupError{h}
	}
	return p, nil
}

// Handles returns the handles of all registered pickers, in registration
// order.
func (m *Manager) Handles() []Handle {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ret := make([]Handle, 0, len(m.pickers))
	for h := range m.pickers {
		ret = append(ret, h)
	}
	slices.Sort(ret)
	return ret
}

// Call invokes the named method on the specified picker.  Only the `get`
// method returns a meaningful Value.  arg is used only by `set`.
func (m *Manager) Call(h Handle, name string, arg *string) (picker.Value, error) {
	p, err := m.Lookup(h)
	if err != nil {
		return picker.Value{}, err
	}
	meth, ok := methods[name]
	if !ok {
		return picker.Value{}, fmt.Errorf("%w `%s`", ErrUnknownMethod, name)
	}
	return meth(p, arg), nil
}

// CallAll invokes the named method on each of the specified pickers
// concurrently, returning each picker's Value by handle.  Repeated handles
// are called once.  All handles are resolved before any picker is called,
// so a LookupError leaves every picker untouched.  Pickers not yet called
// when ctx is done are skipped, and ctx's error is returned.
//
// Each picker's listener is invoked on the goroutine calling that picker.
func (m *Manager) CallAll(ctx context.Context, name string, arg *string, handles ...Handle) (map[Handle]picker.Value, error) {
	meth, ok := methods[name]
	if !ok {
		return nil, fmt.Errorf("%w `%s`", ErrUnknownMethod, name)
	}
	pickers := map[Handle]*picker.Picker{}
	for _, h := range handles {
		p, err := m.Lookup(h)
		if err != nil {
			return nil, err
		}
		pickers[h] = p
	}
	var mu sync.Mutex
	ret := make(map[Handle]picker.Value, len(pickers))
	errg, ctx := errgroup.WithContext(ctx)
	for h, p := range pickers {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v := meth(p, arg)
			mu.Lock()
			defer mu.Unlock()
			ret[h] = v
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}
