package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveIterationID accepts an iteration name, full ID or ID prefix.
func resolveIterationID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("iteration is required")
	}

	iterations, err := app.Iterations.List(ctx)
	if err != nil {
		return "", err
	}

	// 1. Exact name match (case-insensitive)
	for _, it := range iterations {
		if strings.EqualFold(it.Name, input) {
			return it.ID, nil
		}
	}

	// 2. Exact ID match
	for _, it := range iterations {
		if it.ID == input {
			return it.ID, nil
		}
	}

	// 3. ID prefix match
	var matches []string
	for _, it := range iterations {
		if strings.HasPrefix(it.ID, input) {
			matches = append(matches, it.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("iteration not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("iteration %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveTeamID accepts a team name, full ID or ID prefix.
func resolveTeamID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("team is required")
	}

	teams, err := app.Teams.List(ctx)
	if err != nil {
		return "", err
	}

	for _, t := range teams {
		if strings.EqualFold(t.Name, input) {
			return t.ID, nil
		}
	}
	for _, t := range teams {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range teams {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("team not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("team %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveStakeholderID maps a directory name to its stakeholder ID. Inputs
// that match no directory entry pass through verbatim: member rows may
// reference people the directory does not track.
func resolveStakeholderID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("stakeholder is required")
	}

	all, err := app.Stakeholders.List(ctx)
	if err != nil {
		return "", err
	}
	for _, s := range all {
		if strings.EqualFold(s.Name, input) || s.ID == input {
			return s.ID, nil
		}
	}
	return input, nil
}

// stakeholderNames loads the directory as an id -> display name map.
func stakeholderNames(ctx context.Context, app *App) (map[string]string, error) {
	all, err := app.Stakeholders.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(all))
	for _, s := range all {
		names[s.ID] = s.Name
	}
	return names, nil
}
