package main

import "testing"

import "github.com/stretchr/testify/assert"

func TestValidateName(t *testing.T) {
	var tests = []struct {
		name string
		ok   bool
	}{
		{"org.omarchy.theme", true},
		{"omarchy_theme", true},
		{"Org.Omarchy", false},
		{"org..omarchy", false},
		{".org", false},
		{"org-omarchy", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, validateName(tt.name))
		})
	}
}

func TestValidateOrigins(t *testing.T) {
	assert.NoError(t, validateOrigins([]string{"chrome-extension://abcdefghijklmnop/"}))
	assert.NoError(t, validateOrigins(nil))
	assert.Error(t, validateOrigins([]string{"chrome-extension://%zz/"}))
}
