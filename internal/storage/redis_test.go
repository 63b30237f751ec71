package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T, prefix string) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	kv := NewRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}), prefix)
	t.Cleanup(func() { _ = kv.Close() })
	return kv, mr
}

func TestRedis(t *testing.T) {
	tests := []struct {
		name   string
		seed   map[string]string
		key    string
		want   string
		wantOK bool
	}{
		{"absent key", nil, "vibesnap_user", "", false},
		{"stored key", map[string]string{"vs:vibesnap_user": `{"id":"me"}`}, "vibesnap_user", `{"id":"me"}`, true},
		{"other prefix is not visible", map[string]string{"vibesnap_posts": `[]`}, "vibesnap_posts", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, mr := newTestRedis(t, "vs:")
			for k, v := range tt.seed {
				require.NoError(t, mr.Set(k, v))
			}

			got, ok, err := kv.Get(context.Background(), tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRedis_SetOverwritesAndDelete(t *testing.T) {
	ctx := context.Background()
	kv, mr := newTestRedis(t, "vs:")

	require.NoError(t, kv.Set(ctx, "vibesnap_users_db", `[{"id":"u1"}]`))
	require.NoError(t, kv.Set(ctx, "vibesnap_users_db", `[{"id":"u2"}]`))

	stored, err := mr.Get("vs:vibesnap_users_db")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"u2"}]`, stored)
	assert.Zero(t, mr.TTL("vs:vibesnap_users_db"), "values never expire")

	require.NoError(t, kv.Delete(ctx, "vibesnap_users_db"))
	require.NoError(t, kv.Delete(ctx, "vibesnap_users_db"))
	assert.False(t, mr.Exists("vs:vibesnap_users_db"))
}

func TestRedis_ServerDown(t *testing.T) {
	kv, mr := newTestRedis(t, "")
	mr.Close()

	_, _, err := kv.Get(context.Background(), "vibesnap_user")
	assert.Error(t, err)
}
