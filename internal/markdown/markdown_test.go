package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "", Render("", 40))
	assert.Equal(t, "", Render("  \n ", 40))
}

func TestRender_KeepsText(t *testing.T) {
	out := Render("Ship the **release** notes", 60)
	assert.Contains(t, out, "release")
	assert.Contains(t, out, "notes")
}

func TestRender_DefaultWidth(t *testing.T) {
	assert.Contains(t, Render("hello", 0), "hello")
}
