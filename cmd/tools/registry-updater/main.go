// cmd/tools/registry-updater/main.go
//
// Maintains configs/activity-registry.json: validate the file, or flip an
// activity's implementation status as workers land.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"leadrank-workers/pkg/registry"
)

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	validatePath := validateCmd.String("path", "configs/activity-registry.json", "Path to registry file")

	statusCmd := flag.NewFlagSet("set-status", flag.ExitOnError)
	statusPath := statusCmd.String("path", "configs/activity-registry.json", "Path to registry file")
	statusID := statusCmd.String("id", "", "Activity ID (e.g., rank-leads)")
	statusValue := statusCmd.String("status", "", "Implementation status (planned, in-progress, implemented)")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "validate":
		validateCmd.Parse(os.Args[2:])
		if err := validateRegistry(*validatePath); err != nil {
			fmt.Printf("Registry validation failed: %v\n", err)
			os.Exit(1)
		}

	case "set-status":
		statusCmd.Parse(os.Args[2:])
		if *statusID == "" || *statusValue == "" {
			fmt.Println("Error: id and status are required.")
			statusCmd.Usage()
			os.Exit(1)
		}
		if err := setStatus(*statusPath, *statusID, *statusValue); err != nil {
			fmt.Printf("Error updating activity: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Updated %s to status %s\n", *statusID, *statusValue)

	case "help":
		fallthrough
	default:
		help()
	}
}

func validateRegistry(path string) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	if len(reg.Activities) == 0 {
		return fmt.Errorf("registry contains no activities")
	}

	ids := make(map[string]bool)
	taskTypes := make(map[string]bool)
	for _, activity := range reg.Activities {
		if activity.ID == "" {
			return fmt.Errorf("activity missing required field: ID")
		}
		if ids[activity.ID] {
			return fmt.Errorf("duplicate activity ID: %s", activity.ID)
		}
		ids[activity.ID] = true

		if activity.TaskType == "" {
			return fmt.Errorf("activity %s missing required field: TaskType", activity.ID)
		}
		if taskTypes[activity.TaskType] {
			return fmt.Errorf("duplicate task type: %s", activity.TaskType)
		}
		taskTypes[activity.TaskType] = true

		if activity.DisplayName == "" {
			return fmt.Errorf("activity %s missing required field: DisplayName", activity.ID)
		}
		if activity.Category == "" {
			return fmt.Errorf("activity %s missing required field: Category", activity.ID)
		}
	}

	fmt.Printf("Registry validation passed. Found %d activities.\n", len(reg.Activities))
	return nil
}

func setStatus(path, id, status string) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	found := false
	for i := range reg.Activities {
		if reg.Activities[i].ID == id {
			reg.Activities[i].ImplementationStatus = status
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("activity with ID %s not found", id)
	}

	reg.LastUpdated = time.Now().Format("2006-01-02")

	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func help() {
	fmt.Println(`
Usage: registry-updater <command> [flags]

Commands:
  validate    Validate the registry file
  set-status  Update an activity's implementation status
  help        Show this help message

Examples:
  registry-updater validate -path configs/activity-registry.json
  registry-updater set-status -id rank-leads -status implemented`)
}
