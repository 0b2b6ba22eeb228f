package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vaultpass/pw/internal/crypto"
	"github.com/vaultpass/pw/internal/model"
)

var (
	ErrUnimplementedMode = errors.New("diceware passphrases are not yet supported")
	ErrConflictingModes  = errors.New("--diceware cannot be combined with character exclusion flags")
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	src crypto.Source
}

// NewGeneratorService creates a new GeneratorService drawing from src.
func NewGeneratorService(src crypto.Source) *GeneratorService {
	return &GeneratorService{src: src}
}

// Generate produces a password based on the given request. Every
// configuration problem is reported before any randomness is consumed.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	if req.Diceware {
		if req.HasExclusions() {
			return model.GenerateResponse{}, ErrConflictingModes
		}
		return model.GenerateResponse{}, ErrUnimplementedMode
	}
	if req.Length < 0 || req.Length > crypto.MaxLength {
		return model.GenerateResponse{}, fmt.Errorf("%w: got %d", crypto.ErrInvalidLength, req.Length)
	}

	charset, err := crypto.BuildCharset(crypto.Exclusions{
		Numeric: req.ExcludeNumeric,
		Lower:   req.ExcludeLower,
		Upper:   req.ExcludeUpper,
		Symbol:  req.ExcludeSymbol,
	})
	if err != nil {
		return model.GenerateResponse{}, err
	}

	sampler, err := crypto.NewSampler(charset)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	slog.Debug("sampling password", "bits_per_draw", sampler.Width())

	password := sampler.Sample(s.src, req.Length)

	return model.GenerateResponse{
		Password:    string(password),
		Length:      len(password),
		CharsetSize: len(charset),
	}, nil
}
