package database

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/erickfunier/pdftotext-worker/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisConnection(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name string
		in   config.RedisConfig
		want struct {
			err  bool
			ping bool
		}
	}{
		{
			name: "Given an addr, When connecting, Then should ping",
			in:   config.RedisConfig{Addr: mr.Addr()},
			want: struct {
				err  bool
				ping bool
			}{ping: true},
		},
		{
			name: "Given a URL, When connecting, Then should prefer it over addr",
			in:   config.RedisConfig{Addr: "127.0.0.1:1", URL: "redis://" + mr.Addr() + "/0"},
			want: struct {
				err  bool
				ping bool
			}{ping: true},
		},
		{
			name: "Given a malformed URL, When connecting, Then should return error",
			in:   config.RedisConfig{URL: "ftp://nowhere"},
			want: struct {
				err  bool
				ping bool
			}{err: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := NewRedisConnection(tt.in)
			if tt.want.err {
				assert.Error(t, err)
				assert.Nil(t, conn)
				return
			}
			require.NoError(t, err)
			defer conn.Close()
			assert.NoError(t, conn.Ping(context.Background()))
		})
	}
}

func TestNewPostgresConnection_InvalidDSN(t *testing.T) {
	conn, err := NewPostgresConnection(context.Background(), config.PostgresConfig{DSN: "postgres://%zz"})

	assert.Error(t, err)
	assert.Nil(t, conn)
}
