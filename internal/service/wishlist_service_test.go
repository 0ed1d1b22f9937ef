package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleWishlistAddAndRemove(t *testing.T) {
	set := map[string]bool{"a": true}

	added := ToggleWishlist(set, "b")
	assert.True(t, added["a"])
	assert.True(t, added["b"])

	removed := ToggleWishlist(added, "a")
	assert.False(t, removed["a"])
	assert.True(t, removed["b"])
}

func TestToggleWishlistIsIdempotentPair(t *testing.T) {
	set := map[string]bool{"a": true, "c": true}

	// 连续切换两次回到原集合
	twice := ToggleWishlist(ToggleWishlist(set, "b"), "b")
	assert.Equal(t, set, twice)
}

func TestToggleWishlistDoesNotMutateInput(t *testing.T) {
	set := map[string]bool{"a": true}
	ToggleWishlist(set, "b")
	ToggleWishlist(set, "a")

	assert.Equal(t, map[string]bool{"a": true}, set)
}

func TestToggleWishlistNilSet(t *testing.T) {
	out := ToggleWishlist(nil, "a")
	assert.True(t, out["a"])
}
