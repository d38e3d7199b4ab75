package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, ":8080", cfg.GetString("server.port"))
	assert.Equal(t, " MXN", cfg.GetString("cart.currency_symbol"))
	assert.True(t, cfg.GetBool("cart.badge_hide_at_zero"))
	assert.Equal(t, 3*time.Second, cfg.GetDuration("notification.display"))
	assert.Equal(t, 300*time.Millisecond, cfg.GetDuration("notification.teardown"))
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SERVICE_HTTP_PORT", ":9999")
	t.Setenv("CART_BADGE_HIDE_AT_ZERO", "false")
	t.Setenv("NOTIFICATION_DISPLAY", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg := NewConfig()

	assert.Equal(t, ":9999", cfg.GetString("server.port"))
	assert.False(t, cfg.GetBool("cart.badge_hide_at_zero"))
	assert.Equal(t, 5*time.Second, cfg.GetDuration("notification.display"))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.GetStringSlice("cors.allowed_origins"))
}

func TestUnmarshalKeyIntoPointer(t *testing.T) {
	cfg := NewConfig().(*config)
	cfg.cfg.Set("catalog.products", []map[string]interface{}{
		{"name": "Cap", "price": "100"},
	})

	var out []struct {
		Name  string
		Price string
	}
	require.NoError(t, cfg.UnmarshalKey("catalog.products", &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Cap", out[0].Name)
}
