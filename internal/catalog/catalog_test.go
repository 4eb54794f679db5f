package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryCategoryHasTitles(t *testing.T) {
	assert.Len(t, Names, 7)
	for _, name := range Names {
		assert.True(t, IsValid(name))
		assert.NotEmpty(t, Titles(name), "category %q has no suggestions", name)
	}
	assert.False(t, IsValid("Groceries"))
}

func TestRandomPickersStayInsideCatalog(t *testing.T) {
	for i := 0; i < 50; i++ {
		category := RandomCategory()
		assert.True(t, IsValid(category))

		title := RandomTitle(category)
		assert.Contains(t, Titles(category), title)
	}
}

func TestRandomTitleFallback(t *testing.T) {
	assert.Equal(t, FallbackTitle, RandomTitle("NoSuchCategory"))
}
