package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrganizationFromURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "dev.azure.com form",
			url:  "https://dev.azure.com/contoso",
			want: "contoso",
		},
		{
			name: "dev.azure.com with trailing slash",
			url:  "https://dev.azure.com/contoso/",
			want: "contoso",
		},
		{
			name: "dev.azure.com with extra path",
			url:  "https://dev.azure.com/contoso/project/_apis",
			want: "contoso",
		},
		{
			name: "legacy visualstudio.com form",
			url:  "https://contoso.visualstudio.com",
			want: "contoso",
		},
		{
			name: "legacy form is case-insensitive",
			url:  "https://Contoso.VisualStudio.com",
			want: "contoso",
		},
		{
			name:    "missing organization segment",
			url:     "https://dev.azure.com",
			wantErr: true,
		},
		{
			name:    "missing organization segment with slash",
			url:     "https://dev.azure.com/",
			wantErr: true,
		},
		{
			name:    "no scheme",
			url:     "dev.azure.com/contoso",
			wantErr: true,
		},
		{
			name:    "bare visualstudio.com",
			url:     "https://.visualstudio.com",
			wantErr: true,
		},
		{
			name:    "garbage",
			url:     "://not-a-url",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			org, err := OrganizationFromURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, org)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := defaults()
	cfg.OrganizationURL = "https://dev.azure.com/contoso"
	assert.NoError(t, cfg.Validate())

	cfg.OrganizationURL = ""
	assert.Error(t, cfg.Validate(), "missing organization URL must be fatal")

	cfg.OrganizationURL = "https://dev.azure.com/contoso"
	cfg.HTTP.Port = 70000
	assert.Error(t, cfg.Validate(), "out-of-range port must be fatal")
}

func TestStaticModeSelection(t *testing.T) {
	cfg := defaults()
	assert.False(t, cfg.StaticMode(), "no PAT selects interactive mode")

	cfg.PAT = "secret"
	assert.True(t, cfg.StaticMode(), "PAT selects static-token mode")
}
