package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission is the access rule for one route pattern. Skip marks a public route;
// otherwise Permissions lists the roles allowed to call it.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// PermissionData holds the route table and the capability each lifecycle operation needs.
// Skip disables role checks globally.
type PermissionData struct {
	Endpoints  []Permission      `json:"endpoints"`
	Operations map[string]string `json:"operations"`
	Skip       bool              `json:"skip"`

	index map[string]int
}

func routeKey(method, path string) string {
	return strings.ToUpper(method) + " " + path
}

// FindPermissions returns the rule for a chi route pattern, or the zero Permission.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if idx, ok := r.index[routeKey(method, path)]; ok {
		return r.Endpoints[idx]
	}

	return Permission{}
}

func parse(raw []byte) (*PermissionData, error) {
	var data PermissionData

	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	data.index = make(map[string]int, len(data.Endpoints))

	for idx, endpoint := range data.Endpoints {
		key := routeKey(endpoint.Method, endpoint.Path)
		if _, dup := data.index[key]; dup {
			return nil, fmt.Errorf("duplicate permission for %s", key)
		}

		data.index[key] = idx
	}

	for operation, capability := range data.Operations {
		if !slices.Contains([]string{CapabilityOperator, CapabilityStaff}, capability) {
			return nil, fmt.Errorf("operation %s requires unknown capability %q", operation, capability)
		}
	}

	return &data, nil
}

// Get loads the embedded permission table. A broken table yields nil, which the RBAC
// middleware treats as deny-all.
func Get() *PermissionData {
	data, err := parse(permissionsData)
	if err != nil {
		log.Error().Err(err).Msg("failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(data.Endpoints)).Int("operations", len(data.Operations)).Msg("permissions loaded")

	return data
}
