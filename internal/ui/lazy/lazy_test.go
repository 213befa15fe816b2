package lazy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoaderSwapsOnVisibility(t *testing.T) {
	hero := &Image{ID: "hero", DataSrc: "/static/images/hero.jpg"}
	logo := &Image{ID: "logo", Src: "/static/images/logo.png"}
	l := NewLoader(true, hero, logo)

	assert.Equal(t, 1, l.Pending(), "images without a deferred source are not watched")
	assert.False(t, hero.Loaded())

	l.Visible("hero")
	assert.True(t, hero.Loaded())
	assert.Equal(t, "/static/images/hero.jpg", hero.Src)
	assert.Equal(t, 0, l.Pending())

	l.Visible("hero")
	assert.Equal(t, "/static/images/hero.jpg", hero.Src)
}

func TestLoaderFallbackLoadsEverything(t *testing.T) {
	a := &Image{ID: "a", DataSrc: "/a.jpg"}
	b := &Image{ID: "b", DataSrc: "/b.jpg"}
	l := NewLoader(false, a, b)

	assert.True(t, a.Loaded())
	assert.True(t, b.Loaded())
	assert.Equal(t, 0, l.Pending())
}
