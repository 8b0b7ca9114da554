// Package repository loads the static site content. The catalogs are read
// once at startup and never mutated, so handlers can serve them without
// locking.
package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Service describes one offered service as rendered on the site.
type Service struct {
	Title           string   `json:"title"`
	Icon            string   `json:"icon"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription,omitempty"`
	Features        []string `json:"features,omitempty"`
	Benefits        []string `json:"benefits,omitempty"`
	UseCases        []string `json:"useCases,omitempty"`
	Technologies    []string `json:"technologies,omitempty"`
}

// TeamMember is one entry of the team roster.
type TeamMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio"`
	Photo string `json:"photo,omitempty"`
}

// TeamRoster is the team page content.
type TeamRoster struct {
	Summary string       `json:"summary"`
	Members []TeamMember `json:"members"`
}

// Catalog holds the service and team content keyed by service id.
type Catalog struct {
	services map[string]Service
	team     TeamRoster
}

// NewCatalog reads services.json and team.json from dataDir.
func NewCatalog(dataDir string) (*Catalog, error) {
	var services map[string]Service
	if err := readJSON(filepath.Join(dataDir, "services.json"), &services); err != nil {
		return nil, fmt.Errorf("loading service catalog: %w", err)
	}

	var team TeamRoster
	if err := readJSON(filepath.Join(dataDir, "team.json"), &team); err != nil {
		return nil, fmt.Errorf("loading team roster: %w", err)
	}

	return &Catalog{services: services, team: team}, nil
}

// Services returns the full service catalog keyed by id.
func (c *Catalog) Services() map[string]Service {
	return c.services
}

// ServiceByID returns one service, or false when the id is unknown.
func (c *Catalog) ServiceByID(id string) (Service, bool) {
	svc, ok := c.services[id]
	return svc, ok
}

// Team returns the team roster.
func (c *Catalog) Team() TeamRoster {
	return c.team
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}
