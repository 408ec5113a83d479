package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

var schemaFiles = []string{
	"project_records.schema.json",
	"coverage_report.schema.json",
	"timeline.schema.json",
	"sync_analysis.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			loader := gojsonschema.NewBytesLoader(data)
			_, err = gojsonschema.NewSchema(loader)
			assert.NoError(t, err, "file should compile as a JSON Schema: %s", schemaFile)
		})
	}
}

func TestTimelineSchema_AcceptsValidDocument(t *testing.T) {
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + absPath(t, "timeline.schema.json"))
	doc := gojsonschema.NewStringLoader(`{
		"segments": [
			{"start_time": 0, "end_time": 3.0, "narration_text": "第一段。", "image_path": "img0.png", "transition": "cut"}
		],
		"metrics": {
			"average_duration": 3.0,
			"duration_std_dev": 0,
			"coverage_ratio": 1.0,
			"segment_count": 1,
			"total_duration": 3.0
		}
	}`)

	result, err := gojsonschema.Validate(schemaLoader, doc)
	require.NoError(t, err)
	assert.True(t, result.Valid(), "errors: %v", result.Errors())
}

func TestTimelineSchema_RejectsUnknownTransition(t *testing.T) {
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + absPath(t, "timeline.schema.json"))
	doc := gojsonschema.NewStringLoader(`{
		"segments": [
			{"start_time": 0, "end_time": 3.0, "narration_text": "第一段。", "image_path": "img0.png", "transition": "wipe"}
		],
		"metrics": {
			"average_duration": 3.0,
			"duration_std_dev": 0,
			"coverage_ratio": 1.0,
			"segment_count": 1,
			"total_duration": 3.0
		}
	}`)

	result, err := gojsonschema.Validate(schemaLoader, doc)
	require.NoError(t, err)
	assert.False(t, result.Valid())
}

func absPath(t *testing.T, rel string) string {
	t.Helper()
	abs, err := filepath.Abs(rel)
	require.NoError(t, err)
	return abs
}
