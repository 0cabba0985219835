package cmd_test

import (
	"testing"
	"time"

	"driverhub/cmd"

	"github.com/stretchr/testify/assert"
)

func TestConfig_ParsedStoreTimeout(t *testing.T) {
	tests := []struct {
		name         string
		storeTimeout string
		want         time.Duration
	}{
		{
			name:         "valid duration is used",
			storeTimeout: "2s",
			want:         2 * time.Second,
		},
		{
			name:         "unset value falls back to default",
			storeTimeout: "",
			want:         cmd.DefaultStoreTimeout,
		},
		{
			name:         "unparseable value falls back to default",
			storeTimeout: "soon",
			want:         cmd.DefaultStoreTimeout,
		},
		{
			name:         "non-positive value falls back to default",
			storeTimeout: "-1s",
			want:         cmd.DefaultStoreTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := cmd.Config{StoreTimeout: tt.storeTimeout}
			assert.Equal(t, tt.want, config.ParsedStoreTimeout())
		})
	}
}
