package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixture_Portfolio(t *testing.T) {
	f, err := loadFixture("portfolio.yaml")
	require.NoError(t, err)

	assert.Equal(t, "demo@keeps.local", f.User.Email)
	assert.True(t, f.Profile.HasDependents)
	require.Len(t, f.Policies, 3)

	home := f.Policies[1].request()
	assert.Equal(t, "home", home.PolicyType)
	require.NotNil(t, home.CoverageAmount)
	assert.Equal(t, int64(450000), *home.CoverageAmount)
	require.Len(t, home.Details, 2)
	assert.Equal(t, "exclusion", home.Details[1].FieldName)
	require.Len(t, home.Contacts, 1)
	assert.Equal(t, "claims", home.Contacts[0].Role)

	assert.Nil(t, f.Policies[2].Deductible)
	assert.Equal(t, "Demo Bakery LLC", f.Policies[2].BusinessName)
}

func TestParseFixture(t *testing.T) {
	f, err := parseFixture([]byte("user:\n  email: ann@example.com\n  password: secret-pass\n"))
	require.NoError(t, err)
	assert.Equal(t, "ann", f.User.Username)
	assert.Empty(t, f.Policies)

	_, err = parseFixture([]byte("user:\n  email: ann@example.com\n"))
	assert.Error(t, err)

	_, err = parseFixture([]byte("user: [unclosed"))
	assert.Error(t, err)
}
