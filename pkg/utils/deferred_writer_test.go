package utils

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeferredWriter_HoldsLogsUntilFlush(t *testing.T) {
	d := NewDeferredWriter(1 << 10)
	logger := zerolog.New(d)

	logger.Info().Str("id", "n1").Msg("notification added")
	logger.Warn().Msg("script cancelled")

	var out bytes.Buffer
	require.NoError(t, d.Flush(&out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"message":"notification added"`)
	assert.Contains(t, lines[1], `"level":"warn"`)

	out.Reset()
	require.NoError(t, d.Flush(&out))
	assert.Empty(t, out.String(), "flush drains the buffer")
}

func TestDeferredWriter_ConcurrentWrites(t *testing.T) {
	d := &DeferredWriter{}

	var wg sync.WaitGroup
	for range 64 {
		wg.Go(func() {
			_, _ = d.Write([]byte("ab"))
		})
	}
	wg.Wait()

	var out bytes.Buffer
	require.NoError(t, d.Flush(&out))
	assert.Equal(t, strings.Repeat("ab", 64), out.String())
}

func TestDeferredWriter_Limit(t *testing.T) {
	d := NewDeferredWriter(8)

	for _, chunk := range []string{"12345", "6789", "678", "x"} {
		n, err := d.Write([]byte(chunk))
		require.NoError(t, err)
		assert.Equal(t, len(chunk), n)
	}

	assert.Equal(t, 2, d.Dropped())

	var out bytes.Buffer
	require.NoError(t, d.Flush(&out))
	assert.Equal(t, "12345678(2 log writes dropped while the terminal was busy)\n", out.String())
	assert.Zero(t, d.Dropped())
}
