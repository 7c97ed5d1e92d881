package schema_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goskema "github.com/reoring/goskema"
	"github.com/reoring/goskema/dsl"

	"github.com/deckforge/inputguard/pkg/sanitize"
	"github.com/deckforge/inputguard/pkg/schema"
)

func deckSchema(t *testing.T) goskema.Schema[map[string]any] {
	t.Helper()
	s, err := dsl.Object().
		Field("title", dsl.StringOf[string]()).
		Field("published", dsl.BoolOf[bool]()).
		Require("title").
		UnknownStrict().
		Build()
	require.NoError(t, err)
	return s
}

func TestValidatorSuccess(t *testing.T) {
	t.Parallel()

	v := schema.NewValidator(deckSchema(t))
	res := v.Validate(context.Background(), map[string]any{
		"title":     "Q3 review",
		"published": true,
	})

	require.True(t, res.IsValid())
	require.Empty(t, res.Errors)

	out, ok := res.SanitizedData.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Q3 review", out["title"])
}

func TestValidatorShapeViolations(t *testing.T) {
	t.Parallel()

	v := schema.NewValidator(deckSchema(t))

	t.Run("missing required field", func(t *testing.T) {
		res := v.Validate(context.Background(), map[string]any{"published": false})
		assert.False(t, res.IsValid())
		assert.Nil(t, res.SanitizedData)
		require.NotEmpty(t, res.Errors)
		for _, iss := range res.Errors {
			assert.Equal(t, sanitize.IssueShapeInvalid, iss.Kind)
			assert.NotEmpty(t, iss.Path)
			assert.NotEmpty(t, iss.Message)
		}
	})

	t.Run("wrong field type carries a path", func(t *testing.T) {
		res := v.Validate(context.Background(), map[string]any{
			"title": 42,
		})
		assert.False(t, res.IsValid())
		require.NotEmpty(t, res.Errors)
		found := false
		for _, iss := range res.Errors {
			if iss.Path == "/title" {
				found = true
			}
		}
		assert.True(t, found, "issue path should point at the offending field: %v", res.ErrorStrings())
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		res := v.Validate(context.Background(), map[string]any{
			"title":   "ok",
			"surplus": "nope",
		})
		assert.False(t, res.IsValid())
	})

	t.Run("non-object input", func(t *testing.T) {
		res := v.Validate(context.Background(), "just a string")
		assert.False(t, res.IsValid())
		require.NotEmpty(t, res.Errors)
	})
}

func TestValidatorFunc(t *testing.T) {
	t.Parallel()

	fn := schema.ValidatorFunc(dsl.String())
	assert.True(t, fn(context.Background(), "hello").IsValid())
	assert.False(t, fn(context.Background(), 1).IsValid())
}

func TestComposeWithSanitizer(t *testing.T) {
	t.Parallel()

	v := schema.NewValidator(deckSchema(t))
	shaped := v.Validate(context.Background(), map[string]any{
		"title": "<script>alert(1)</script>Launch plan",
	})
	require.True(t, shaped.IsValid())

	res := sanitize.ValidateAndSanitize(shaped.SanitizedData)
	require.True(t, res.IsValid())
	out := res.SanitizedData.(map[string]any)
	assert.Equal(t, "Launch plan", out["title"])
}
