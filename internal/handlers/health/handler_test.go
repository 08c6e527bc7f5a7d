package health_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"petstay/infras/postgres"
	"petstay/internal/handlers/health"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Health(t *testing.T) {
	tests := []struct {
		name  string
		dbErr error
	}{
		{name: "database unreachable", dbErr: errors.New("connection refused")},
		{name: "cache unreachable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)

			t.Cleanup(func() { db.Close() })

			mock.ExpectPing().WillReturnError(tt.dbErr)

			conn := &postgres.Connection{Write: sqlx.NewDb(db, "postgres"), Read: sqlx.NewDb(db, "postgres")}
			redis := goRedis.NewClient(&goRedis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})

			t.Cleanup(func() { redis.Close() })

			handler := health.New(conn, redis)
			router := chi.NewRouter()
			router.Route("/v1", handler.Router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			assert.JSONEq(t, `{"message":"SERVER UNHEALTHY"}`, rec.Body.String())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
