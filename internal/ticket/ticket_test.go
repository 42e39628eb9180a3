package ticket

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	pattern := regexp.MustCompile(`^TICKET-[A-Z0-9]{9}$`)

	t.Run("Format", func(t *testing.T) {
		number, err := Generate()
		require.NoError(t, err)
		assert.Regexp(t, pattern, number)
	})

	t.Run("NoImmediateRepeats", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			number, err := Generate()
			require.NoError(t, err)
			assert.False(t, seen[number], "duplicate ticket %s after %d draws", number, i)
			seen[number] = true
		}
	})
}
