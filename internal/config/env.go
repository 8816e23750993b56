package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrVarNotFound is returned for variables that are unset or empty.
var ErrVarNotFound = errors.New("variable not found")

// Vars looks up named configuration variables.
type Vars interface {
	Var(name string) (string, error)
}

var _ Vars = (*Env)(nil)

// Env exposes named configuration variables, mirroring the bindings a
// serverless runtime hands to a worker.
type Env struct {
	v *viper.Viper
}

// NewEnv wraps v. Environment variables are consulted automatically.
func NewEnv(v *viper.Viper) *Env {
	v.AutomaticEnv()
	return &Env{v: v}
}

// Var returns the value bound to name.
func (e *Env) Var(name string) (string, error) {
	value := e.v.GetString(name)
	if value == "" {
		return "", fmt.Errorf("%s: %w", name, ErrVarNotFound)
	}
	return value, nil
}
