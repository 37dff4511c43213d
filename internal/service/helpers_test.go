package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustParseDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.DateOnly, value)
	require.NoError(t, err)
	return parsed
}
