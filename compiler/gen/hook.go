package gen

import "context"

type (
	// Generator is the interface that wraps the Generate method.
	Generator interface {
		// Generate generates the records of the given graph.
		Generate(context.Context, *Graph) error
	}

	// The GenerateFunc type is an adapter to allow the use of ordinary
	// function as Generator. If f is a function with the appropriate signature,
	// GenerateFunc(f) is a Generator that calls f.
	GenerateFunc func(context.Context, *Graph) error

	// Hook defines the "generate middleware". A function that gets a Generator
	// and returns a Generator. For example:
	//
	//	hook := func(next gen.Generator) gen.Generator {
	//		return gen.GenerateFunc(func(ctx context.Context, g *gen.Graph) error {
	//			fmt.Println("Graph:", g)
	//			return next.Generate(ctx, g)
	//		})
	//	}
	//
	Hook func(Generator) Generator
)

// Generate calls f(ctx, g).
func (f GenerateFunc) Generate(ctx context.Context, g *Graph) error {
	return f(ctx, g)
}

// defaultGenerator writes the records of the graph with a Builder.
var defaultGenerator = GenerateFunc(func(ctx context.Context, g *Graph) error {
	return NewBuilder(g).Generate(ctx)
})
