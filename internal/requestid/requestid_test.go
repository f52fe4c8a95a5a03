package requestid_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nekobot/internal/requestid"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func router() *gin.Engine {
	var r = gin.New()
	r.Use(requestid.Middleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, requestid.Get(c))
	})
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()

	var a, b = requestid.New(), requestid.New()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		inbound string
		echoed  bool
	}{
		"generated": {},
		"echoed":    {inbound: "abc-123", echoed: true},
		"too long":  {inbound: strings.Repeat("x", 200)},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var req = httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.inbound != "" {
				req.Header.Set(requestid.Header, tc.inbound)
			}
			var w = httptest.NewRecorder()
			router().ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			var id = w.Header().Get(requestid.Header)
			assert.Equal(t, id, w.Body.String())
			if tc.echoed {
				assert.Equal(t, tc.inbound, id)
			} else {
				assert.Len(t, id, 32)
			}
		})
	}
}
