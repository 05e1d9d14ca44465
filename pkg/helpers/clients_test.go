package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClients_DisabledWhenUnconfigured(t *testing.T) {
	assert.Nil(t, NewRedisClient("", "", 0))

	es, err := NewESClient(nil, "", "")
	require.NoError(t, err)
	assert.Nil(t, es)

	pub, err := NewRabbitPublisher("", "user-events")
	require.NoError(t, err)
	assert.Nil(t, pub)
	pub.Close() // nil-safe
}

func TestClients_Configured(t *testing.T) {
	rdb := NewRedisClient("127.0.0.1:6379", "", 2)
	require.NotNil(t, rdb)
	defer rdb.Close()
	assert.Equal(t, 2, rdb.Options().DB)

	es, err := NewESClient([]string{"http://127.0.0.1:9200"}, "elastic", "pw")
	require.NoError(t, err)
	assert.NotNil(t, es)
}
