package progress

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend(t *testing.T) {
	log := New()
	log.Append("first")
	log.Append("second\n")
	log.Appendf("third %d", 3)

	assert.Equal(t, "first\nsecond\nthird 3\n", log.String())
	assert.Equal(t, 3, log.Entries())
	assert.Equal(t, []string{"first", "second", "third 3"}, log.Lines())
}

func TestAppend_MultiLine(t *testing.T) {
	log := New()
	log.Append("one\ntwo")

	assert.Equal(t, 1, log.Entries())
	assert.Equal(t, []string{"one", "two"}, log.Lines())
}

func TestEmpty(t *testing.T) {
	log := New()
	assert.Empty(t, log.String())
	assert.Nil(t, log.Lines())
	assert.Zero(t, log.Len())
}

func TestSince(t *testing.T) {
	log := New()
	log.Append("a")

	text, offset := log.Since(0)
	assert.Equal(t, "a\n", text)
	assert.Equal(t, 2, offset)

	text, offset = log.Since(offset)
	assert.Empty(t, text)
	assert.Equal(t, 2, offset)

	log.Append("b")
	text, offset = log.Since(offset)
	assert.Equal(t, "b\n", text)
	assert.Equal(t, 4, offset)

	text, _ = log.Since(100)
	assert.Empty(t, text, "out-of-range offset reads nothing")
}

func TestConcurrentAppends(t *testing.T) {
	log := New()

	const writers = 16
	const perWriter = 100

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				log.Appendf("writer-%d line-%d\nwriter-%d tail-%d", w, i, w, i)
			}
		}(w)
	}

	// Readers run alongside writers.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = log.String()
		}
	}()

	wg.Wait()
	<-done

	lines := log.Lines()
	require.Len(t, lines, writers*perWriter*2)
	assert.Equal(t, writers*perWriter, log.Entries())

	// Each two-line entry stayed contiguous.
	for i := 0; i < len(lines); i += 2 {
		var w, n int
		_, err := fmt.Sscanf(lines[i], "writer-%d line-%d", &w, &n)
		require.NoError(t, err, lines[i])
		assert.Equal(t, fmt.Sprintf("writer-%d tail-%d", w, n), lines[i+1])
	}
	assert.False(t, strings.Contains(log.String(), "\n\n"))
}
