// pkg/registry/registry_test.go
package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRegistry(t *testing.T) {
	reg, err := LoadRegistry("../../configs/activity-registry.json")
	require.NoError(t, err)

	assert.NotEmpty(t, reg.Version)
	assert.Len(t, reg.Activities, 5)

	taskTypes := []string{
		"fetch-leads",
		"enrich-leads",
		"parse-intent",
		"rank-leads",
		"export-results",
	}
	for _, taskType := range taskTypes {
		activity := reg.FindByTaskType(taskType)
		require.NotNil(t, activity, "missing activity for %s", taskType)
		assert.Equal(t, "implemented", activity.ImplementationStatus)
		assert.NotEmpty(t, activity.ErrorCodes)
		assert.NotEmpty(t, activity.InputSchema)
		assert.NotEmpty(t, activity.OutputSchema)
	}
}

func TestLoadRegistryMissingFile(t *testing.T) {
	_, err := LoadRegistry("does-not-exist.json")
	assert.Error(t, err)
}

func TestFindByTaskTypeUnknown(t *testing.T) {
	reg := &ActivityRegistry{Activities: []Activity{{TaskType: "rank-leads"}}}
	assert.Nil(t, reg.FindByTaskType("unknown-task"))
}
