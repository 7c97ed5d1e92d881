package limits_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckforge/inputguard/pkg/limits"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	l := limits.Default()
	assert.Equal(t, 10_000, l.MaxStringLength())
	assert.Equal(t, 1_000, l.MaxArrayLength())
	assert.Equal(t, 10, l.MaxObjectDepth())
	assert.Equal(t, int64(10<<20), l.MaxFileSize())

	for _, typ := range []limits.TypeName{
		limits.TypeString, limits.TypeNumber, limits.TypeBoolean,
		limits.TypeArray, limits.TypeObject, limits.TypeNull,
	} {
		assert.True(t, l.Allows(typ), "default should allow %s", typ)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	t.Run("partial override keeps remaining defaults", func(t *testing.T) {
		l, err := limits.Default().Merge(limits.Partial{
			MaxStringLength: limits.IntPtr(50),
			MaxFileSize:     limits.Int64Ptr(1024),
		})
		require.NoError(t, err)
		assert.Equal(t, 50, l.MaxStringLength())
		assert.Equal(t, int64(1024), l.MaxFileSize())
		assert.Equal(t, 1_000, l.MaxArrayLength())
		assert.Equal(t, 10, l.MaxObjectDepth())
	})

	t.Run("empty partial is identity", func(t *testing.T) {
		l, err := limits.Default().Merge(limits.Partial{})
		require.NoError(t, err)
		assert.Equal(t, limits.Default().MaxStringLength(), l.MaxStringLength())
		assert.True(t, l.Allows(limits.TypeObject))
	})

	t.Run("allowed types override replaces set", func(t *testing.T) {
		l, err := limits.Default().Merge(limits.Partial{
			AllowedTypes: []limits.TypeName{limits.TypeString, limits.TypeNumber},
		})
		require.NoError(t, err)
		assert.True(t, l.Allows(limits.TypeString))
		assert.True(t, l.Allows(limits.TypeNumber))
		assert.False(t, l.Allows(limits.TypeObject))
		assert.False(t, l.Allows(limits.TypeNull))
	})

	t.Run("receiver is not mutated", func(t *testing.T) {
		base := limits.Default()
		_, err := base.Merge(limits.Partial{
			MaxArrayLength: limits.IntPtr(5),
			AllowedTypes:   []limits.TypeName{limits.TypeString},
		})
		require.NoError(t, err)
		assert.Equal(t, 1_000, base.MaxArrayLength())
		assert.True(t, base.Allows(limits.TypeObject))
	})

	t.Run("non-positive bound is rejected", func(t *testing.T) {
		_, err := limits.Default().Merge(limits.Partial{MaxObjectDepth: limits.IntPtr(0)})
		require.ErrorIs(t, err, limits.ErrInvalidBound)

		_, err = limits.Default().Merge(limits.Partial{MaxStringLength: limits.IntPtr(-1)})
		require.ErrorIs(t, err, limits.ErrInvalidBound)
	})

	t.Run("unknown type name is rejected", func(t *testing.T) {
		_, err := limits.Default().Merge(limits.Partial{
			AllowedTypes: []limits.TypeName{"uuid"},
		})
		require.ErrorIs(t, err, limits.ErrUnknownType)
	})
}

func TestFromEnv(t *testing.T) {
	t.Setenv("INPUTGUARD_MAX_STRING_LENGTH", "256")
	t.Setenv("INPUTGUARD_MAX_ARRAY_LENGTH", "64")
	t.Setenv("INPUTGUARD_ALLOWED_TYPES", "string,number")

	l, err := limits.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 256, l.MaxStringLength())
	assert.Equal(t, 64, l.MaxArrayLength())
	assert.Equal(t, 10, l.MaxObjectDepth())
	assert.True(t, l.Allows(limits.TypeNumber))
	assert.False(t, l.Allows(limits.TypeObject))
}

func TestParseProfiles(t *testing.T) {
	t.Parallel()

	t.Run("parses named profiles over defaults", func(t *testing.T) {
		src := []byte(`
free:
  max_array_length: 200
  max_file_size: 1048576
enterprise:
  max_array_length: 5000
  allowed_types: [string, number, array, object]
`)
		profiles, err := limits.ParseProfiles(src)
		require.NoError(t, err)
		require.Len(t, profiles, 2)

		free := profiles["free"]
		assert.Equal(t, 200, free.MaxArrayLength())
		assert.Equal(t, int64(1<<20), free.MaxFileSize())
		assert.Equal(t, 10_000, free.MaxStringLength())

		ent := profiles["enterprise"]
		assert.Equal(t, 5000, ent.MaxArrayLength())
		assert.False(t, ent.Allows(limits.TypeNull))
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := limits.ParseProfiles([]byte("free: [not a mapping"))
		require.ErrorIs(t, err, limits.ErrInvalidProfile)
	})

	t.Run("rejects invalid bound in profile", func(t *testing.T) {
		_, err := limits.ParseProfiles([]byte("bad:\n  max_object_depth: -3\n"))
		require.ErrorIs(t, err, limits.ErrInvalidProfile)
	})
}
