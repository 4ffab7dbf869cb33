package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonas(t *testing.T) {
	list := Personas()
	require.NotEmpty(t, list)

	emails := map[string]bool{}
	for _, p := range list {
		assert.True(t, p.IsAI, p.Email)
		assert.True(t, p.HasOnboarded, p.Email)
		assert.True(t, p.IsEmailVerified, p.Email)
		assert.Empty(t, p.Password, p.Email)
		assert.NotEmpty(t, p.Bio, p.Email)
		assert.False(t, emails[p.Email], "duplicate %s", p.Email)
		emails[p.Email] = true
	}
}

func TestPersonas_ReturnsCopies(t *testing.T) {
	a := Personas()
	a[0].Name = "changed"
	a[0].SkillsOffered[0].Name = "changed"

	b := Personas()
	assert.NotEqual(t, "changed", b[0].Name)
	assert.NotEqual(t, "changed", b[0].SkillsOffered[0].Name)
}
