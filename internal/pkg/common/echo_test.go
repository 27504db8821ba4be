package common_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
	common "github.com/vreid/janken/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *common.EchoService {
	t.Helper()

	i := do.New()
	do.ProvideNamedValue(i, "port", 0)
	do.Provide(i, common.NewEchoService)

	service, err := do.Invoke[*common.EchoService](i)
	require.NoError(t, err)

	service.Register(func(e *echo.Echo) {
		e.POST("/echo", func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		})
	})

	return service
}

func TestEchoServiceRequestID(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newService(t).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestEchoServiceBodyLimit(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 32*1024)))
	rec := httptest.NewRecorder()
	newService(t).Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
