package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessToken_TrimsAndDefaultsEmpty(t *testing.T) {
	t.Setenv(AccessTokenEnv, "  abc123 \n")
	assert.Equal(t, "abc123", AccessToken())

	t.Setenv(AccessTokenEnv, "")
	assert.Equal(t, "", AccessToken())
}

func TestAPIBase(t *testing.T) {
	t.Setenv(APIBaseEnv, "")
	assert.Equal(t, DefaultAPIBase, APIBase())

	t.Setenv(APIBaseEnv, "graph.example.test/")
	assert.Equal(t, "https://graph.example.test", APIBase())

	t.Setenv(APIBaseEnv, "http://127.0.0.1:9000")
	assert.Equal(t, "http://127.0.0.1:9000", APIBase())
}

func TestDuration(t *testing.T) {
	t.Setenv(TimeoutEnv, "")
	assert.Equal(t, DefaultTimeout, Duration(TimeoutEnv, DefaultTimeout))

	t.Setenv(TimeoutEnv, "1500ms")
	assert.Equal(t, 1500*time.Millisecond, Duration(TimeoutEnv, DefaultTimeout))

	t.Setenv(TimeoutEnv, "7")
	assert.Equal(t, 7*time.Second, Duration(TimeoutEnv, DefaultTimeout))

	t.Setenv(TimeoutEnv, "soon")
	assert.Equal(t, DefaultTimeout, Duration(TimeoutEnv, DefaultTimeout))

	t.Setenv(TimeoutEnv, "-3s")
	assert.Equal(t, DefaultTimeout, Duration(TimeoutEnv, DefaultTimeout))
}

func TestDerivePublicURL(t *testing.T) {
	t.Setenv("PUBLIC_URL", "")
	t.Setenv("URL", "")

	assert.Equal(t, "http://localhost:8080", DerivePublicURL("0.0.0.0:8080", "", ""))
	assert.Equal(t, "http://localhost:9999", DerivePublicURL(":9999", "", ""))
	assert.Equal(t, "http://example.local:1234", DerivePublicURL("", "example.local", "1234"))

	t.Setenv("URL", "my-site.netlify.app")
	assert.Equal(t, "https://my-site.netlify.app", DerivePublicURL(":8888", "", ""))

	t.Setenv("PUBLIC_URL", "http://proxy.test")
	assert.Equal(t, "http://proxy.test", DerivePublicURL(":8888", "", ""))
}
