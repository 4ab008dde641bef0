package relays

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/saylorsolutions/edgerelays/pkg/payload"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingLoader(calls *int32, text string, err error) Loader {
	return func() (payload.Plaintext, error) {
		atomic.AddInt32(calls, 1)
		if err != nil {
			return nil, err
		}
		return payload.Plaintext(text), nil
	}
}

func TestNewCache_Neg(t *testing.T) {
	_, err := NewCache(nil)
	assert.ErrorIs(t, err, ErrNilLoader)

	var calls int32
	_, err = NewCache(countingLoader(&calls, "", nil), WithLogger(nil))
	assert.Error(t, err)
}

func TestCache_Get_Once(t *testing.T) {
	var calls int32
	c, err := NewCache(countingLoader(&calls, `{"relays":["a/1"]}`, nil))
	require.NoError(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls), "Loader should not run until first use")

	for i := 0; i < 5; i++ {
		text, err := c.Get()
		assert.NoError(t, err)
		assert.Equal(t, `{"relays":["a/1"]}`, text)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCache_Get_EmptyIsCached(t *testing.T) {
	var calls int32
	c, err := NewCache(countingLoader(&calls, "", nil))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		text, err := c.Get()
		assert.NoError(t, err)
		assert.Empty(t, text)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCache_Get_ErrorIsCached(t *testing.T) {
	var (
		calls   int32
		errTest = errors.New("test")
	)
	c, err := NewCache(countingLoader(&calls, "", errTest))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := c.Get()
		assert.ErrorIs(t, err, errTest)
		_, err = c.RecordCount()
		assert.ErrorIs(t, err, errTest)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCache_Get_Concurrent(t *testing.T) {
	var (
		calls int32
		wg    sync.WaitGroup
		start = make(chan struct{})
	)
	c, err := NewCache(countingLoader(&calls, `"a/1"`, nil))
	require.NoError(t, err)

	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i], _ = c.Get()
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, r := range results {
		assert.Equal(t, `"a/1"`, r)
	}
}

func TestCache_RecordCount(t *testing.T) {
	var calls int32
	c, err := NewCache(countingLoader(&calls, `"a/b" "c" "d/e/f"`, nil))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		count, err := c.RecordCount()
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCache_Logging(t *testing.T) {
	var calls int32
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	c, err := NewCache(countingLoader(&calls, `"a/1"`, nil), WithLogger(log))
	require.NoError(t, err)
	_, err = c.Get()
	require.NoError(t, err)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
	assert.Equal(t, 5, hook.LastEntry().Data["bytes"])
	assert.NotContains(t, hook.LastEntry().Message, "a/1")

	hook.Reset()
	failing, err := NewCache(countingLoader(&calls, "", errors.New("test")), WithLogger(log))
	require.NoError(t, err)
	_, _ = failing.Get()
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}
