package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var causeSchema = Schema{
	{Field: "title", Label: "Title", Required: true, Kind: String},
	{Field: "goal", Label: "Goal", Required: true, Kind: Number},
	{Field: "category", Label: "Category", Required: true, Kind: String},
	{Field: "imageUrl", Label: "Image URL", Required: true, Kind: String},
}

func TestSchemaCreate(t *testing.T) {
	t.Run("valid body passes", func(t *testing.T) {
		err := causeSchema.Create(map[string]any{
			"title":    "Clean Water",
			"goal":     "1000",
			"category": "Health",
			"imageUrl": "https://x/y.png",
		})
		assert.Nil(t, err)
	})

	t.Run("empty title reports field", func(t *testing.T) {
		err := causeSchema.Create(map[string]any{
			"title":    "",
			"goal":     "1000",
			"category": "Health",
			"imageUrl": "https://x/y.png",
		})
		require.NotNil(t, err)
		assert.Equal(t, "Title is required and must be a string", err.Message)
		assert.Equal(t, "title", err.Field)
	})

	t.Run("missing title reports field", func(t *testing.T) {
		err := causeSchema.Create(map[string]any{
			"goal": "1000", "category": "Health", "imageUrl": "https://x/y.png",
		})
		require.NotNil(t, err)
		assert.Equal(t, "title", err.Field)
	})

	t.Run("non-string title rejected", func(t *testing.T) {
		err := causeSchema.Create(map[string]any{
			"title": 12.0, "goal": "1000", "category": "Health", "imageUrl": "https://x/y.png",
		})
		require.NotNil(t, err)
		assert.Equal(t, "title", err.Field)
	})

	t.Run("non-numeric goal rejected", func(t *testing.T) {
		err := causeSchema.Create(map[string]any{
			"title": "x", "goal": "lots", "category": "Health", "imageUrl": "https://x/y.png",
		})
		require.NotNil(t, err)
		assert.Equal(t, "Goal is required and must be a number >= 0", err.Message)
		assert.Equal(t, "goal", err.Field)
	})

	t.Run("negative goal rejected", func(t *testing.T) {
		err := causeSchema.Create(map[string]any{
			"title": "x", "goal": -5.0, "category": "Health", "imageUrl": "https://x/y.png",
		})
		require.NotNil(t, err)
		assert.Equal(t, "goal", err.Field)
	})

	t.Run("first violation wins", func(t *testing.T) {
		err := causeSchema.Create(map[string]any{})
		require.NotNil(t, err)
		assert.Equal(t, "title", err.Field)
	})
}

func TestSchemaUpdate(t *testing.T) {
	t.Run("partial body validates only present fields", func(t *testing.T) {
		err := causeSchema.Update(map[string]any{"goal": 250.0})
		assert.Nil(t, err)
	})

	t.Run("present invalid field still rejected", func(t *testing.T) {
		err := causeSchema.Update(map[string]any{"goal": "-1"})
		require.NotNil(t, err)
		assert.Equal(t, "goal", err.Field)
	})
}

func TestURLKind(t *testing.T) {
	schema := Schema{
		{Field: "imageUrl", Label: "Image URL", Required: true, Kind: URL},
		{Field: "linkedinUrl", Label: "LinkedIn URL", Required: false, Kind: URL},
	}

	t.Run("well-formed URL passes", func(t *testing.T) {
		assert.Nil(t, schema.Create(map[string]any{"imageUrl": "https://x.org/a.png"}))
	})

	t.Run("malformed URL reports field name", func(t *testing.T) {
		err := schema.Create(map[string]any{"imageUrl": "not a url"})
		require.NotNil(t, err)
		assert.Equal(t, "imageUrl must be a valid URL address", err.Message)
	})

	t.Run("optional URL may be blank", func(t *testing.T) {
		assert.Nil(t, schema.Create(map[string]any{
			"imageUrl": "https://x.org/a.png", "linkedinUrl": "",
		}))
	})

	t.Run("optional URL present must be valid", func(t *testing.T) {
		err := schema.Create(map[string]any{
			"imageUrl": "https://x.org/a.png", "linkedinUrl": "nope",
		})
		require.NotNil(t, err)
		assert.Equal(t, "linkedinUrl", err.Field)
	})
}

func TestDateAndTimeKinds(t *testing.T) {
	schema := Schema{
		{Field: "date", Label: "Date", Required: true, Kind: DateYMD},
		{Field: "time", Label: "Time", Required: true, Kind: TimeHM},
	}

	assert.Nil(t, schema.Create(map[string]any{"date": "2026-03-14", "time": "18:30"}))

	err := schema.Create(map[string]any{"date": "14/03/2026", "time": "18:30"})
	require.NotNil(t, err)
	assert.Equal(t, "date", err.Field)

	err = schema.Create(map[string]any{"date": "2026-03-14", "time": "6pm"})
	require.NotNil(t, err)
	assert.Equal(t, "time", err.Field)
}

func TestNumberValue(t *testing.T) {
	n, ok := NumberValue("1000")
	require.True(t, ok)
	assert.Equal(t, 1000.0, n)

	n, ok = NumberValue(42.5)
	require.True(t, ok)
	assert.Equal(t, 42.5, n)

	_, ok = NumberValue(nil)
	assert.False(t, ok)

	_, ok = NumberValue("12k")
	assert.False(t, ok)
}
