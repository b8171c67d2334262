package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacedriveapp/gensdk/schema"
)

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.Parse("model User {\n  id Int @id\n}\n\nmodel Post {\n  id Int @id\n}\n")
	require.NoError(t, err)
	return s
}

func TestBuild_OperationsPerModel(t *testing.T) {
	qs := Build(testSchema(t), false)

	// 5 reads + 7 writes per model
	assert.Len(t, qs.Operations, 24)
	assert.Len(t, qs.ModelOperations("User"), 12)
	assert.Len(t, qs.ModelOperations("Post"), 12)

	first := qs.Operations[0]
	assert.Equal(t, "findUniqueUser", first.Name)
	assert.Equal(t, Query, first.Kind)
	assert.Equal(t, "User", first.Model)
}

func TestBuild_RawToggle(t *testing.T) {
	without := Build(testSchema(t), false)
	with := Build(testSchema(t), true)

	assert.False(t, without.EnableRawQueries)
	assert.Len(t, with.Operations, len(without.Operations)+2)

	raw := with.Operations[len(with.Operations)-2]
	assert.Equal(t, "queryRaw", raw.Name)
	assert.Empty(t, raw.Model)
}
