// Package seed carga la nómina inicial desde un archivo YAML.
package seed

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/netsales-api/internal/application/dto"
	"github.com/jhoicas/netsales-api/internal/application/usecase"
)

// Roster archivo de nómina.
type Roster struct {
	Employees []RosterEmployee `yaml:"employees"`
}

// RosterEmployee empleado del archivo de nómina.
type RosterEmployee struct {
	Name         string `yaml:"name"`
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
	Branch       string `yaml:"branch"`
}

// ParseRoster decodifica el YAML de nómina.
func ParseRoster(r io.Reader) (*Roster, error) {
	var roster Roster
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&roster); err != nil {
		return nil, fmt.Errorf("decodificar nómina: %w", err)
	}
	return &roster, nil
}

// Result resumen de una carga.
type Result struct {
	Created []string
	Skipped []string
}

// Apply crea los empleados cuyo username aún no existe. Es idempotente.
func Apply(ctx context.Context, uc *usecase.EmployeeUseCase, roster *Roster) (Result, error) {
	var res Result
	existing, err := uc.List(ctx)
	if err != nil {
		return res, err
	}
	taken := make(map[string]bool, len(existing))
	for _, e := range existing {
		taken[e.Username] = true
	}

	for _, e := range roster.Employees {
		if taken[e.Username] {
			res.Skipped = append(res.Skipped, e.Username)
			continue
		}
		if _, err := uc.Create(ctx, dto.CreateEmployeeRequest{
			Name:         e.Name,
			Username:     e.Username,
			PasswordHash: e.PasswordHash,
			Branch:       e.Branch,
		}); err != nil {
			return res, fmt.Errorf("crear %s: %w", e.Username, err)
		}
		taken[e.Username] = true
		res.Created = append(res.Created, e.Username)
	}
	return res, nil
}
