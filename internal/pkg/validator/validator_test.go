package validator_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/validator"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

type listenConfig struct {
	Address string `validate:"required,hostname_port"`
	Limit   int    `validate:"min=1,max=100"`
	Nested  struct {
		Mode string `validate:"oneof=fast slow"`
	}
}

func (s *ValidatorTestSuite) TestValid() {
	cfg := listenConfig{Address: "localhost:50051", Limit: 10}
	cfg.Nested.Mode = "fast"
	s.NoError(validator.Struct(cfg))
}

func (s *ValidatorTestSuite) TestFieldErrors() {
	err := validator.Struct(listenConfig{Limit: 500})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Address: failed required")
	s.Contains(err.Error(), "Limit: failed max=100")
	s.Contains(err.Error(), "Nested.Mode: failed oneof=fast slow")
}

func (s *ValidatorTestSuite) TestEchoValidator() {
	v := validator.New()
	s.Error(v.Validate(listenConfig{}))
}
