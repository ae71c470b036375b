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

package color

import (
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// DefaultCacheSize is the number of parse results a Parser created by
// DefaultParser retains.
const DefaultCacheSize = 256

// parseResult is a cached Parse outcome.  Failures are cached too, since
// hosts tend to resubmit the same bad input.
type parseResult struct {
	c   RGBA
	err error
}

// Parser parses color strings like Parse, caching the most recently used
// results.  It is safe for concurrent use.
type Parser struct {
	mu  sync.Mutex
	lru *simplelru.LRU
}

// NewParser returns a new Parser retaining up to size results.
func NewParser(size int) (*Parser, error) {
	lru, err := simplelru.NewLRU(size, nil /* no onEvict policy */)
	if err != nil {
		return nil, err
	}
	return &Parser{
		lru: lru,
	}, nil
}

var (
	defaultParserOnce sync.Once
	defaultParser     *Parser
)

// DefaultParser returns a process-wide Parser of DefaultCacheSize.
func DefaultParser() *Parser {
	defaultParserOnce.Do(func() {
		p, err := NewParser(DefaultCacheSize)
		if err != nil {
			// NewLRU only fails for non-positive sizes.
			panic(err)
		}
		defaultParser = p
	})
	return defaultParser
}

// Parse parses the provided string as Parse does.
func (p *Parser) Parse(s string) (RGBA, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if resIf, ok := p.lru.Get(s); ok {
		if res, ok := resIf.(parseResult); ok {
			return res.c, res.err
		}
	}
	c, err := Parse(s)
	p.lru.Add(s, parseResult{c: c, err: err})
	return c, err
}

// Len returns the number of cached results.
func (p *Parser) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lru.Len()
}
