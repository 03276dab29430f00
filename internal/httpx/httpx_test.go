package httpx_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yearliny/beanprice/internal/httpx"
)

func TestNew(t *testing.T) {
	t.Parallel()

	client := httpx.New(5 * time.Second)
	require.Equal(t, 5*time.Second, client.Timeout)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	require.True(t, transport.ForceAttemptHTTP2)
	require.Equal(t, 10, transport.MaxIdleConns)
}
