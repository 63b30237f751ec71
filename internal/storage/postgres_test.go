package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPostgres(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS kv_store`).WillReturnResult(sqlmock.NewResult(0, 0))
	kv, err := NewPostgres(context.Background(), sqlx.NewDb(db, "postgres"))
	require.NoError(t, err)
	return kv, mock
}

func TestNewPostgres_SchemaFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS kv_store`).WillReturnError(errors.New("permission denied"))

	_, err = NewPostgres(context.Background(), sqlx.NewDb(db, "postgres"))
	assert.ErrorContains(t, err, "kv_store")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Get(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		err     error
		want    string
		wantOK  bool
		wantErr bool
	}{
		{"stored key", sqlmock.NewRows([]string{"value"}).AddRow(`{"id":"me"}`), nil, `{"id":"me"}`, true, false},
		{"absent key", sqlmock.NewRows([]string{"value"}), nil, "", false, false},
		{"query error", nil, errors.New("connection reset"), "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, mock := newTestPostgres(t)
			q := mock.ExpectQuery(`SELECT value FROM kv_store WHERE key = \$1`).WithArgs("vibesnap_user")
			if tt.err != nil {
				q.WillReturnError(tt.err)
			} else {
				q.WillReturnRows(tt.rows)
			}

			got, ok, err := kv.Get(context.Background(), "vibesnap_user")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgres_SetUpserts(t *testing.T) {
	kv, mock := newTestPostgres(t)
	mock.ExpectExec(`(?s)INSERT INTO kv_store .+ ON CONFLICT \(key\) DO UPDATE`).
		WithArgs("vibesnap_posts", `[]`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`(?s)INSERT INTO kv_store .+ ON CONFLICT \(key\) DO UPDATE`).
		WithArgs("vibesnap_posts", `[{"id":"p1"}]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "vibesnap_posts", `[]`))
	require.NoError(t, kv.Set(ctx, "vibesnap_posts", `[{"id":"p1"}]`))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Delete(t *testing.T) {
	kv, mock := newTestPostgres(t)
	mock.ExpectExec(`DELETE FROM kv_store WHERE key = \$1`).
		WithArgs("vibesnap_user").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectClose()

	require.NoError(t, kv.Delete(context.Background(), "vibesnap_user"))
	require.NoError(t, kv.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
