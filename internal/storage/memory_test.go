package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()

	_, found, err := kv.Get(ctx, "vibesnap_user")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Set(ctx, "vibesnap_user", `{"id":"me"}`))
	require.NoError(t, kv.Set(ctx, "vibesnap_user", `{"id":"user_1"}`))

	v, found, err := kv.Get(ctx, "vibesnap_user")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"id":"user_1"}`, v)

	require.NoError(t, kv.Delete(ctx, "vibesnap_user"))
	require.NoError(t, kv.Delete(ctx, "vibesnap_user"))
	_, found, _ = kv.Get(ctx, "vibesnap_user")
	assert.False(t, found)
	assert.NoError(t, kv.Close())
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		wantErr error
	}{
		{"default is memory", "", nil},
		{"memory", DriverMemory, nil},
		{"unknown", "sqlite", ErrUnknownDriver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, err := Open(context.Background(), Options{Driver: tt.driver})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, &Memory{}, kv)
		})
	}
}
