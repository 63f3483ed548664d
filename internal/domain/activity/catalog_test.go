package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefinitionValidate(t *testing.T) {
	valid := Definition{Key: "run", Milestones: []int64{10, 50, 100}}
	assert.NoError(t, valid.Validate())

	empty := Definition{Key: ""}
	assert.Error(t, empty.Validate())

	negative := Definition{Key: "run", Milestones: []int64{-5, 10}}
	assert.Error(t, negative.Validate())

	unsorted := Definition{Key: "run", Milestones: []int64{100, 50}}
	assert.Error(t, unsorted.Validate())

	duplicate := Definition{Key: "run", Milestones: []int64{50, 50}}
	assert.Error(t, duplicate.Validate())
}

func TestNewCatalogRejectsDuplicateKeys(t *testing.T) {
	_, err := NewCatalog(
		Definition{Key: "run"},
		Definition{Key: "run"},
	)
	assert.Error(t, err)
}

func TestCatalogLookup(t *testing.T) {
	c, err := NewCatalog(
		Definition{Key: "run", Name: "Бег"},
		Definition{Key: "swim", Name: "Плавание"},
	)
	assert.NoError(t, err)

	def, ok := c.Lookup("run")
	assert.True(t, ok)
	assert.Equal(t, "Бег", def.Name)

	_, ok = c.Lookup("fly")
	assert.False(t, ok)
}

func TestCatalogPreservesRegistrationOrder(t *testing.T) {
	c, err := NewCatalog(
		Definition{Key: "c"},
		Definition{Key: "a"},
		Definition{Key: "b"},
	)
	assert.NoError(t, err)

	assert.Equal(t, []string{"c", "a", "b"}, c.Keys())

	defs := c.All()
	assert.Len(t, defs, 3)
	assert.Equal(t, "c", defs[0].Key)
	assert.Equal(t, "b", defs[2].Key)
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, []string{"pushup", "nothing", "beer", "bike", "pullup"}, c.Keys())

	pushup, ok := c.Lookup("pushup")
	assert.True(t, ok)
	assert.Equal(t, int64(100), pushup.Milestones[0])
	assert.Equal(t, int64(10000), pushup.Milestones[len(pushup.Milestones)-1])
	assert.NotEmpty(t, pushup.Messages[100])

	beer, ok := c.Lookup("beer")
	assert.True(t, ok)
	assert.Equal(t, int64(1000), beer.Milestones[0])
	assert.Equal(t, " мл.", beer.Unit)
}
