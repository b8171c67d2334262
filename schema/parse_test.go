package schema

import (
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blogSchema = `
	datasource db {
		provider = "postgresql"
		url      = env("DATABASE_URL")
	}

	generator client {
		provider = "gensdk-scaffold"
		output   = "./generated"
	}

	// a person who writes posts
	model User {
		id    Int     @id @default(autoincrement())
		email String  @unique
		name  String?
		role  Role    @default(USER)
		posts Post[]

		@@map("users")
	}

	model Post {
		id       Int    @id @default(autoincrement())
		title    String
		author   User   @relation(fields: [authorId], references: [id])
		authorId Int
	}

	enum Role {
		USER
		ADMIN
	}
`

func TestParse_Blocks(t *testing.T) {
	s, err := Parse(dedent.Dedent(blogSchema))
	require.NoError(t, err)

	require.Len(t, s.Datasources, 1)
	assert.Equal(t, "db", s.Datasources[0].Name)
	assert.Equal(t, "postgresql", s.Datasources[0].Provider())
	assert.Equal(t, `env("DATABASE_URL")`, s.Datasources[0].Properties["url"])

	require.Len(t, s.Generators, 1)
	assert.Equal(t, "gensdk-scaffold", s.Generators[0].Properties["provider"])

	require.Len(t, s.Models, 2)
	require.Len(t, s.Enums, 1)
	assert.Equal(t, []string{"USER", "ADMIN"}, s.Enums[0].Values)
}

func TestParse_Fields(t *testing.T) {
	s, err := Parse(dedent.Dedent(blogSchema))
	require.NoError(t, err)

	user := s.Model("User")
	require.NotNil(t, user)
	require.Len(t, user.Fields, 5)

	id := user.Field("id")
	require.NotNil(t, id)
	assert.Equal(t, "Int", id.Type)
	assert.Equal(t, KindScalar, id.Kind)
	require.NotNil(t, id.Attribute("id"))
	require.NotNil(t, id.Attribute("default"))
	assert.Equal(t, "autoincrement()", id.Attribute("default").Args)
	assert.Same(t, id, user.IDField())

	name := user.Field("name")
	require.NotNil(t, name)
	assert.True(t, name.Optional)
	assert.False(t, name.Required())

	role := user.Field("role")
	require.NotNil(t, role)
	assert.Equal(t, KindEnum, role.Kind)

	posts := user.Field("posts")
	require.NotNil(t, posts)
	assert.True(t, posts.List)
	assert.Equal(t, KindRelation, posts.Kind)
	assert.Equal(t, "Post", posts.Type)

	// relation fields are excluded from the scalar view
	assert.Len(t, user.ScalarFields(), 4)
}

func TestParse_BlockAttributes(t *testing.T) {
	s, err := Parse(dedent.Dedent(blogSchema))
	require.NoError(t, err)

	user := s.Model("User")
	require.Len(t, user.BlockAttributes, 1)
	assert.Equal(t, `@@map("users")`, user.BlockAttributes[0])
}

func TestParse_RelationAttributeWithSpaces(t *testing.T) {
	s, err := Parse(dedent.Dedent(blogSchema))
	require.NoError(t, err)

	author := s.Model("Post").Field("author")
	require.NotNil(t, author)
	rel := author.Attribute("relation")
	require.NotNil(t, rel)
	assert.Equal(t, "fields: [authorId], references: [id]", rel.Args)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("model User {\n  id Int @id\n")
	assert.ErrorContains(t, err, "unterminated model block")

	_, err = Parse("widget Thing {\n}\n")
	assert.ErrorContains(t, err, "unknown block kind")

	_, err = Parse("model User {\n  id\n}\n")
	assert.ErrorContains(t, err, "malformed field")
}

func TestParse_EmptySchema(t *testing.T) {
	s, err := Parse("\n// nothing here\n")
	require.NoError(t, err)
	assert.Empty(t, s.Models)
	assert.Nil(t, s.Model("User"))
}
