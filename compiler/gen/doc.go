// Package gen generates declarations for the classes of a class model.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Class model (model.Model, usually from compiler/load)
//	        ↓
//	   Filter: drop profile classes, blacklisted packages,
//	           simple attribute classes
//	        ↓
//	   Order: superclasses before subclasses, ties by name
//	        ↓
//	   Graph (one Type per eligible class, features resolved)
//	        ↓
//	   Dialect (text, golang, graphql)
//	        ↓
//	   Generated files
//
// # Key Types
//
//   - Filter: selects the eligible classes of a model
//   - Coder: the declaration of one class, "class Name:" followed by one
//     line per attribute
//   - Feature: a resolved attribute, one of Attribute, Enumeration or Relation
//   - Graph: the ordered eligible classes with their features
//   - Type: one class of the graph
//   - Generator: writes the outputs of a Dialect in parallel
//
// # Line Format
//
// Each attribute of a class is rendered by Line:
//
//	name: attribute[string]      plain attribute
//	severity: enumeration        type name ending in "Kind"
//	cause: relation_one[Event]   association with upper bound "1"
//	parts: relation_many[Part]   any other association
//
// A class without attributes has the single line "pass".
//
// # Error Handling
//
// The package uses structured error types:
//
//   - ConfigurationError: a generalization or package cycle (matches ErrCycle)
//   - MalformedModelError: an attribute that cannot be resolved (matches ErrMalformedModel)
//   - OptionError: an invalid option value (matches ErrInvalidOption)
//   - GenerationError: a file could not be rendered or written (matches ErrGenerationFailed)
//
// Example error handling:
//
//	graph, err := gen.NewGraph(config, m)
//	if err != nil {
//	    if gen.IsConfigurationError(err) {
//	        // Fix the model hierarchy
//	    }
//	    return err
//	}
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	config, err := gen.NewConfig(
//	    gen.WithTarget("./gen"),
//	    gen.WithBlacklist("Vendor"),
//	    gen.WithSkipMalformed(true),
//	)
//
// # Usage
//
//	graph, err := gen.NewGraph(config, m)
//	if err != nil {
//	    return err
//	}
//	generator := gen.NewGenerator(graph, "").
//	    WithDialect(golang.NewDialect("models")).
//	    WithWorkers(4)
//	err = generator.Generate(ctx)
package gen
