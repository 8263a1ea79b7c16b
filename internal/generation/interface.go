package generation

import "context"

// UseCase is the application-facing interface of the generation domain.
type UseCase interface {
	// Generate produces text for the given prompt and options.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)

	// ModelInfo reports which remote model the service is bound to.
	ModelInfo(ctx context.Context) (ModelOutput, error)
}
