package ports_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Amund211/skillforge/internal/ports"
	"github.com/stretchr/testify/require"
)

const PROD_DOMAIN_SUFFIX = "skillforge.dev"
const STAGING_DOMAIN_SUFFIX = "skillforge-web.pages.dev"

type originRule struct {
	origin  string
	allowed bool
}

func TestNewAllowedOrigins(t *testing.T) {
	t.Parallel()

	_, err := ports.NewAllowedOrigins(false, ".skillforge.dev")
	require.Error(t, err)

	_, err = ports.NewAllowedOrigins(false, "https://skillforge.dev")
	require.Error(t, err)

	_, err = ports.NewAllowedOrigins(true)
	require.NoError(t, err)
}

func TestCORS(t *testing.T) {
	t.Parallel()
	allowedOrigins, err := ports.NewAllowedOrigins(
		false,
		PROD_DOMAIN_SUFFIX,
		STAGING_DOMAIN_SUFFIX,
	)
	require.NoError(t, err)

	cases := []originRule{
		// Prod
		{origin: "https://skillforge.dev", allowed: true},
		{origin: "https://www.skillforge.dev", allowed: true},
		// Staging
		{origin: "https://53bcd591.skillforge-web.pages.dev", allowed: true},
		{origin: "https://skillforge-web.pages.dev", allowed: true},
		// Other pages
		{origin: "example.com", allowed: false},
		{origin: "https://example.com", allowed: false},
		{origin: "https://www.google.com", allowed: false},
		// Similar-looking domains
		{origin: "https://skill-forge.dev", allowed: false},
		{origin: "https://myskillforge.dev", allowed: false},
		{origin: "https://www.myskillforge.dev", allowed: false},
		{origin: "https://superskillforge-web.pages.dev", allowed: false},
		// Wrong scheme
		{origin: "http://skillforge.dev", allowed: false},
		{origin: "http://localhost:3000", allowed: false},
		// Weird cases
		{origin: "", allowed: false},
		{origin: "skillforge", allowed: false},
		{origin: "skillforge.dev", allowed: false},
		{origin: "pages.dev", allowed: false},
	}

	runCORSTest := func(t *testing.T, handler http.HandlerFunc, method string, c originRule, handlerStatusCode int, handlerBody []byte) {
		req := httptest.NewRequest(method, "https://api-url.com", nil)
		req.Header.Set("Origin", c.origin)
		w := httptest.NewRecorder()

		handler(w, req)

		resp := w.Result()

		// The handler is allowed to run when the method is not OPTIONS
		if method != "OPTIONS" || !c.allowed {
			require.Equal(t, handlerStatusCode, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.Equal(t, handlerBody, body)
		}

		if c.allowed {
			require.Equal(t, c.origin, resp.Header.Get("Access-Control-Allow-Origin"))

			if method == "OPTIONS" {
				require.Equal(t, http.StatusNoContent, resp.StatusCode)
				require.Equal(t, "GET", resp.Header.Get("Access-Control-Allow-Methods"))
				require.Equal(t, "Content-Type, X-User-Id", resp.Header.Get("Access-Control-Allow-Headers"))
			} else {
				require.Empty(t, resp.Header.Get("Access-Control-Allow-Methods"))
				require.Empty(t, resp.Header.Get("Access-Control-Allow-Headers"))
			}
		} else {
			require.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
			require.Empty(t, resp.Header.Get("Access-Control-Allow-Methods"))
			require.Empty(t, resp.Header.Get("Access-Control-Allow-Headers"))
		}
	}

	t.Run("BuildCORSMiddleware", func(t *testing.T) {
		t.Parallel()

		middleware := ports.BuildCORSMiddleware(allowedOrigins)

		handler := middleware(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(200)
				_, _ = w.Write([]byte("Hello, world!"))
			},
		)

		for _, c := range cases {
			t.Run(fmt.Sprintf("Origin:'%s'", c.origin), func(t *testing.T) {
				t.Parallel()
				for _, method := range []string{"GET", "POST", "OPTIONS"} {
					t.Run(method, func(t *testing.T) {
						t.Parallel()

						runCORSTest(t, handler, method, c, 200, []byte("Hello, world!"))
					})
				}
			})
		}
	})

	t.Run("BuildCORSHandler", func(t *testing.T) {
		t.Parallel()

		handler := ports.BuildCORSHandler(allowedOrigins)

		for _, c := range cases {
			t.Run(fmt.Sprintf("Origin:'%s'", c.origin), func(t *testing.T) {
				t.Parallel()
				for _, method := range []string{"GET", "OPTIONS"} {
					t.Run(method, func(t *testing.T) {
						t.Parallel()

						runCORSTest(t, handler, method, c, 204, []byte{})
					})
				}
			})
		}
	})
}

func TestCORSLocalhost(t *testing.T) {
	t.Parallel()

	allowedOrigins, err := ports.NewAllowedOrigins(true, PROD_DOMAIN_SUFFIX)
	require.NoError(t, err)

	require.True(t, allowedOrigins.Allows("http://localhost:3000"))
	require.True(t, allowedOrigins.Allows("http://127.0.0.1:8080"))
	require.True(t, allowedOrigins.Allows("https://skillforge.dev"))
	require.False(t, allowedOrigins.Allows("http://localhost.example.com"))
	require.False(t, allowedOrigins.Allows("ftp://localhost"))
}
