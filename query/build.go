// Package query expands a compiled schema into its query surface: the set
// of operations the engine exposes for each model.
package query

import "github.com/spacedriveapp/gensdk/schema"

// OperationKind separates reads from writes.
type OperationKind string

const (
	Query    OperationKind = "query"
	Mutation OperationKind = "mutation"
)

// Operation is one engine operation, e.g. findManyUser.
type Operation struct {
	// Name is the full operation name (action + model).
	Name string
	// Action is the bare action (findMany, createOne, ...).
	Action string
	Kind   OperationKind
	// Model the operation targets; "" for raw operations.
	Model string
}

// QuerySchema is the query-capable view over a schema.
type QuerySchema struct {
	Schema     *schema.Schema
	Operations []Operation
	// EnableRawQueries reports whether queryRaw/executeRaw were included.
	EnableRawQueries bool
}

var (
	readActions = []string{
		"findUnique", "findFirst", "findMany", "aggregate", "groupBy",
	}
	writeActions = []string{
		"createOne", "createMany", "updateOne", "updateMany",
		"upsertOne", "deleteOne", "deleteMany",
	}
)

// Build derives the query schema. enableRaw additionally exposes the raw
// query/execute operations, which are not tied to any model.
func Build(s *schema.Schema, enableRaw bool) *QuerySchema {
	qs := &QuerySchema{Schema: s, EnableRawQueries: enableRaw}

	for _, model := range s.Models {
		for _, action := range readActions {
			qs.Operations = append(qs.Operations, Operation{
				Name:   action + model.Name,
				Action: action,
				Kind:   Query,
				Model:  model.Name,
			})
		}
		for _, action := range writeActions {
			qs.Operations = append(qs.Operations, Operation{
				Name:   action + model.Name,
				Action: action,
				Kind:   Mutation,
				Model:  model.Name,
			})
		}
	}

	if enableRaw {
		qs.Operations = append(qs.Operations,
			Operation{Name: "queryRaw", Action: "queryRaw", Kind: Query},
			Operation{Name: "executeRaw", Action: "executeRaw", Kind: Mutation},
		)
	}

	return qs
}

// ModelOperations returns the operations targeting one model, in the order
// they were built.
func (qs *QuerySchema) ModelOperations(model string) []Operation {
	var ops []Operation
	for _, op := range qs.Operations {
		if op.Model == model {
			ops = append(ops, op)
		}
	}
	return ops
}
