package kv

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/mindful/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	qSelect          = `(?s)^SELECT\s+value\s+FROM\s+kv\s+WHERE\s+key\s*=\s*\$1$`
	qSelectForUpdate = `(?s)^SELECT\s+value\s+FROM\s+kv\s+WHERE\s+key\s*=\s*\$1\s+FOR\s+UPDATE$`
	qUpsert          = `(?s)^INSERT\s+INTO\s+kv\s*\(key,\s*value\)\s*VALUES\s*\(\$1,\s*\$2\)\s*ON\s+CONFLICT\s*\(key\)\s*DO\s+UPDATE`
	qDelete          = `(?s)^DELETE\s+FROM\s+kv\s+WHERE\s+key\s*=\s*\$1$`
)

func newPostgresWithMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgres(db), mock, db
}

func TestPostgresStore_Get_Found(t *testing.T) {
	s, mock, _ := newPostgresWithMock(t)

	mock.ExpectQuery(qSelect).
		WithArgs("mindful_user").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"uid":"u1"}`)))

	v, err := s.Get(context.Background(), "mindful_user")
	require.NoError(t, err)
	assert.Equal(t, `{"uid":"u1"}`, string(v))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Get_NotFound(t *testing.T) {
	s, mock, _ := newPostgresWithMock(t)

	mock.ExpectQuery(qSelect).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgresStore_Get_DBError(t *testing.T) {
	s, mock, _ := newPostgresWithMock(t)

	mock.ExpectQuery(qSelect).WithArgs("k").WillReturnError(errors.New("db down"))

	_, err := s.Get(context.Background(), "k")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestPostgresStore_SetAndDelete(t *testing.T) {
	s, mock, _ := newPostgresWithMock(t)
	ctx := context.Background()

	mock.ExpectExec(qUpsert).WithArgs("k", []byte("v")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(qDelete).WithArgs("k").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Set_DBError(t *testing.T) {
	s, mock, _ := newPostgresWithMock(t)

	mock.ExpectExec(qUpsert).WithArgs("k", []byte("v")).WillReturnError(errors.New("readonly"))

	err := s.Set(context.Background(), "k", []byte("v"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: readonly")
}

func TestPostgresStore_Update_Commits(t *testing.T) {
	s, mock, _ := newPostgresWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(qSelectForUpdate).
		WithArgs("mindful_data").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("[1]")))
	mock.ExpectExec(qUpsert).WithArgs("mindful_data", []byte("[1,2]")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Update(context.Background(), "mindful_data", func(cur []byte) ([]byte, error) {
		assert.Equal(t, "[1]", string(cur))
		return []byte("[1,2]"), nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Update_AbsentKey(t *testing.T) {
	s, mock, _ := newPostgresWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(qSelectForUpdate).WithArgs("mindful_data").WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(qUpsert).WithArgs("mindful_data", []byte("[]")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Update(context.Background(), "mindful_data", func(cur []byte) ([]byte, error) {
		assert.Nil(t, cur)
		return []byte("[]"), nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Update_NoChangeRollsBack(t *testing.T) {
	s, mock, _ := newPostgresWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(qSelectForUpdate).
		WithArgs("mindful_data").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("[1]")))
	mock.ExpectRollback()

	err := s.Update(context.Background(), "mindful_data", func(cur []byte) ([]byte, error) {
		return nil, ErrNoChange
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Update_CallbackErrorRollsBack(t *testing.T) {
	s, mock, _ := newPostgresWithMock(t)
	boom := errors.New("corrupt")

	mock.ExpectBegin()
	mock.ExpectQuery(qSelectForUpdate).
		WithArgs("mindful_data").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("{")))
	mock.ExpectRollback()

	err := s.Update(context.Background(), "mindful_data", func(cur []byte) ([]byte, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenPostgres_EmptyDSN(t *testing.T) {
	_, err := OpenPostgres(context.Background(), "", nil)
	require.ErrorIs(t, err, common.ErrorValidation)
}
