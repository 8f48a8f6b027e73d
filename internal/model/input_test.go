package model

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputFromJson(t *testing.T) {
	t.Run("decodes a catalog file", func(t *testing.T) {
		// Arrange
		file := path.Join(t.TempDir(), "catalog.json")
		content := `{
			"groups": [
				{ "name": "MI-41", "students": 15, "subjects": ["Decision Theory", "Neural Networks"] }
			],
			"subjectTeachers": {
				"Decision Theory": ["Mashchenko"],
				"Neural Networks": ["Bobyl"]
			},
			"days": ["Monday", "Tuesday"],
			"periods": [1, 2, 3],
			"rooms": [
				{ "name": "39", "capacity": 300 }
			],
			"filterByCapacity": true
		}`
		require.NoError(t, os.WriteFile(file, []byte(content), 0644))

		// Act
		input, err := InputFromJson(file)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []GroupInput{
			{Name: "MI-41", Students: 15, Subjects: []string{"Decision Theory", "Neural Networks"}},
		}, input.Groups)
		assert.Equal(t, []string{"Mashchenko"}, input.SubjectTeachers["Decision Theory"])
		assert.Equal(t, []string{"Monday", "Tuesday"}, input.Days)
		assert.Equal(t, []int{1, 2, 3}, input.Periods)
		assert.Equal(t, []RoomInput{{Name: "39", Capacity: 300}}, input.Rooms)
		assert.True(t, input.FilterByCapacity)
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		// Act
		_, err := InputFromJson(path.Join(t.TempDir(), "absent.json"))

		// Assert
		assert.Error(t, err)
	})

	t.Run("fails on malformed json", func(t *testing.T) {
		// Arrange
		file := path.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(file, []byte("{"), 0644))

		// Act
		_, err := InputFromJson(file)

		// Assert
		assert.Error(t, err)
	})
}
