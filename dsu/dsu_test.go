// SPDX-License-Identifier: MIT

package dsu_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/simgraph/dsu"
)

// TestFind_Unseen verifies that Find registers and returns an unseen ID.
func TestFind_Unseen(t *testing.T) {
	s := dsu.New()
	assert.Equal(t, "x", s.Find("x"))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "x", s.Find("x"), "Find is idempotent")
	assert.Equal(t, 1, s.Len())
}

// TestUnion_Transitive verifies union(a,b), union(b,c) ⇒ find(a) == find(c).
func TestUnion_Transitive(t *testing.T) {
	s := dsu.New()
	assert.True(t, s.Union("a", "b"))
	assert.True(t, s.Union("b", "c"))
	assert.Equal(t, s.Find("a"), s.Find("c"))
	assert.True(t, s.Connected("a", "c"))
	assert.False(t, s.Union("c", "a"), "already connected")
	assert.False(t, s.Connected("a", "z"))
}

// TestUnion_RootChoice verifies that the second argument's root becomes the representative.
func TestUnion_RootChoice(t *testing.T) {
	s := dsu.New()
	s.Union("a", "b")
	assert.Equal(t, "b", s.Find("a"))
	s.Union("c", "a")
	assert.Equal(t, "b", s.Find("c"))
	s.Union("b", "d")
	assert.Equal(t, "d", s.Find("a"))
	assert.Equal(t, "d", s.Find("c"))
}

// TestFind_LongChainCompresses verifies a long chain resolves to one root.
func TestFind_LongChainCompresses(t *testing.T) {
	s := dsu.NewWithCapacity(1000)
	for i := 0; i < 999; i++ {
		s.Union(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}
	assert.Equal(t, "v999", s.Find("v0"))
	for i := 0; i < 1000; i++ {
		assert.Equal(t, "v999", s.Find(fmt.Sprintf("v%d", i)))
	}
	assert.Equal(t, 1000, s.Len())
}
