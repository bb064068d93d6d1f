package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/config"
)

func cacheTestConfig() config.CacheConfig {
	return config.CacheConfig{
		Enabled:     true,
		Methods:     map[string]bool{"GET": true},
		TTL:         30 * time.Second,
		KeyStrategy: "route_query",
		Prefix:      "cache",
	}
}

func TestRedisCacheHit(t *testing.T) {
	cfg := cacheTestConfig()
	rdb, mock := redismock.NewClientMock()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/venues/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	hdr := http.Header{"Content-Type": {"application/json"}}
	payload, err := encodePayload(http.StatusOK, hdr, []byte(`{"id":1}`))
	require.NoError(t, err)
	mock.ExpectGet(cacheKeyFrom(cfg, c)).SetVal(string(payload))

	handler := NewRedisCache(cfg, rdb)(func(c echo.Context) error {
		t.Fatal("handler must not run on a cache hit")
		return nil
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"id":1}`, rec.Body.String())
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheMissStoresResponse(t *testing.T) {
	cfg := cacheTestConfig()
	rdb, mock := redismock.NewClientMock()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/venues/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	key := cacheKeyFrom(cfg, c)
	mock.ExpectGet(key).RedisNil()
	// The stored payload embeds marshalled headers; match on key and TTL only.
	mock.CustomMatch(func(expected, actual []interface{}) error { return nil }).
		ExpectSetEx(key, "", cfg.TTL).SetVal("OK")

	handler := NewRedisCache(cfg, rdb)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"id": 1})
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheSkipsErrors(t *testing.T) {
	cfg := cacheTestConfig()
	rdb, mock := redismock.NewClientMock()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/venues/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Get misses; no SetEx expected because the reply is not a 200.
	mock.ExpectGet(cacheKeyFrom(cfg, c)).RedisNil()

	handler := NewRedisCache(cfg, rdb)(func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheIgnoresUncachedMethods(t *testing.T) {
	cfg := cacheTestConfig()
	rdb, mock := redismock.NewClientMock()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/venues", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRedisCache(cfg, rdb)(func(c echo.Context) error {
		return c.JSON(http.StatusCreated, echo.Map{"id": 1})
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
