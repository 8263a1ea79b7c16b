package usecase

import (
	"gemini-gateway/pkg/gemini"
	"gemini-gateway/pkg/log"
)

// implUseCase is the private implementation of generation.UseCase.
type implUseCase struct {
	llm gemini.IGemini
	l   log.Logger
}

// New creates a new generation UseCase implementation.
func New(l log.Logger, llm gemini.IGemini) *implUseCase {
	return &implUseCase{
		llm: llm,
		l:   l,
	}
}
