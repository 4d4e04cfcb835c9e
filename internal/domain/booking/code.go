package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"

	"luxora-booking/internal/pkg/errs"
)

const (
	CodePrefix = "LUX"
	codeSpace  = 1_000_000
)

var codePattern = regexp.MustCompile(`^LUX\d{6}$`)

// CodeGenerator draws candidate public booking codes.
type CodeGenerator interface {
	Generate() (string, error)
}

// CodeGeneratorFunc adapts a plain function to CodeGenerator.
type CodeGeneratorFunc func() (string, error)

func (f CodeGeneratorFunc) Generate() (string, error) { return f() }

type RandomCodeGenerator struct{}

func NewRandomCodeGenerator() *RandomCodeGenerator {
	return &RandomCodeGenerator{}
}

// Generate returns LUX followed by six digits drawn uniformly from crypto/rand.
func (RandomCodeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpace))
	if err != nil {
		return "", errs.Wrap(err, "failed to draw booking code")
	}
	return fmt.Sprintf("%s%06d", CodePrefix, n.Int64()), nil
}

func IsValidCode(code string) bool {
	return codePattern.MatchString(code)
}

// AllocateCode draws candidates until taken reports a free one, giving up
// after maxAttempts collisions.
func AllocateCode(gen CodeGenerator, maxAttempts int, taken func(code string) (bool, error)) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := gen.Generate()
		if err != nil {
			return "", err
		}
		exists, err := taken(code)
		if err != nil {
			return "", errs.Wrap(err, "failed to check booking code")
		}
		if !exists {
			return code, nil
		}
	}
	return "", errs.Mark(errs.Newf("no free booking code after %d attempts", maxAttempts), errs.ErrCodeSpaceExhausted)
}
