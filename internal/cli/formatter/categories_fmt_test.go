package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderCategories_NumbersEntriesInOrder(t *testing.T) {
	out := stripANSI(RenderCategories([]string{"work", "reading", "exercise"}))

	assert.Contains(t, out, "CATEGORIES")
	assert.Contains(t, out, "1. work")
	assert.Contains(t, out, "2. reading")
	assert.Contains(t, out, "3. exercise")
	assert.Less(t, strings.Index(out, "work"), strings.Index(out, "reading"))
}
