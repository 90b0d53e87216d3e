package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSlugID(t *testing.T) {
	tests := []struct {
		slug    string
		want    int
		invalid bool
	}{
		{slug: "10812-komatsu-fg10-15", want: 10812},
		{slug: "7-a", want: 7},
		{slug: "99-", want: 99},
		{slug: "abc-def", invalid: true},
		{slug: "10812", invalid: true},
		{slug: "-excavator", invalid: true},
		{slug: "0-zero-id", invalid: true},
		{slug: "", invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			id, err := ResolveSlugID(tt.slug)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidSlug)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}
