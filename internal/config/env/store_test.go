package envconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		assert  func(t *testing.T, cfg *store)
	}{
		{
			name: "defaults to memory with a generated instance id",
			env:  map[string]string{},
			assert: func(t *testing.T, cfg *store) {
				assert.Equal(t, DriverMemory, cfg.Driver())
				assert.Equal(t, 3, cfg.WriteRetries())
				assert.NotEmpty(t, cfg.InstanceID())
				assert.Zero(t, cfg.CacheTTL())
			},
		},
		{
			name: "explicit values",
			env: map[string]string{
				"STORE_DRIVER":        DriverPostgres,
				"STORE_WRITE_RETRIES": "7",
				"INSTANCE_ID":         "depot-1",
				"STORE_CACHE_TTL":     "2s",
			},
			assert: func(t *testing.T, cfg *store) {
				assert.Equal(t, DriverPostgres, cfg.Driver())
				assert.Equal(t, 7, cfg.WriteRetries())
				assert.Equal(t, "depot-1", cfg.InstanceID())
				assert.Equal(t, 2*time.Second, cfg.CacheTTL())
			},
		},
		{
			name:    "unknown driver",
			env:     map[string]string{"STORE_DRIVER": "sqlite"},
			wantErr: true,
		},
		{
			name:    "retries must be positive",
			env:     map[string]string{"STORE_WRITE_RETRIES": "0"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"STORE_DRIVER", "STORE_WRITE_RETRIES", "INSTANCE_ID", "STORE_CACHE_TTL"} {
				t.Setenv(key, tt.env[key])
			}

			cfg, err := NewStoreConfig()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.assert(t, cfg)
		})
	}
}

func TestKafkaConsumerGroupIsPerInstance(t *testing.T) {
	t.Setenv("COLLECTION_CHANGED_CONSUMER_GROUP_PREFIX", "fleet")

	cfg, err := NewKafkaConfig()
	require.NoError(t, err)

	assert.False(t, cfg.Enabled())
	assert.Equal(t, "fleet-a", cfg.ConsumerGroupID("a"))
	assert.NotEqual(t, cfg.ConsumerGroupID("a"), cfg.ConsumerGroupID("b"))
}
