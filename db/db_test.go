package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// A refused connection must come back as an error, debug mode included.
func TestConnectFailed(t *testing.T) {
	err := Connect("127.0.0.1", "1", "nodb", "nouser", "nopass", true, false)
	require.Error(t, err)
	require.Nil(t, DB)
}
