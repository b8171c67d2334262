package api

import (
	"github.com/spacedriveapp/gensdk/dmmf"
	"github.com/spacedriveapp/gensdk/schema"
)

// GenerateArgs is everything a generation function gets to work with: the
// compiled schema, the flattened metadata document derived from it, and the
// raw engine payload for anything not covered by the first two.
type GenerateArgs struct {
	Schema *schema.Schema
	DMMF   *dmmf.Document
	Input  *EngineInput
}
