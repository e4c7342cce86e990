package service

import (
	"github.com/lockbox/lockbox-go/internal/crypto"
	"github.com/lockbox/lockbox-go/internal/model"
	"github.com/lockbox/lockbox-go/internal/strength"
)

// GeneratorService produces candidate passwords and grades them.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a password based on the given request and attaches its
// strength grade for display.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:         req.Length,
		Uppercase:      boolOrDefault(req.Uppercase, true),
		Lowercase:      boolOrDefault(req.Lowercase, true),
		Numbers:        boolOrDefault(req.Numbers, true),
		Symbols:        boolOrDefault(req.Symbols, true),
		ExcludeSimilar: req.ExcludeSimilar,
	}

	if opts.Length == 0 {
		opts.Length = 16
	}

	password, err := crypto.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	report := strength.Evaluate(password)

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: report.Label,
		Score:    report.Score,
		MaxScore: report.Max,
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
