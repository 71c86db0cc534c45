package oplog

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 1, 9, 5, 7, 0, time.UTC)

func TestFormat(t *testing.T) {
	assert.Equal(t, "[09:05:07] Pushed 3", Format(t0, "Pushed 3"))
}

func TestLogAppendOnly(t *testing.T) {
	l := New()
	l.Append(Entry{Time: t0, Message: "a"})
	l.Append(Entry{Time: t0, Message: "b"})
	l.Append(Entry{Time: t0, Message: "c"})

	require.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"[09:05:07] b", "[09:05:07] c"}, l.Tail(2))
	assert.Len(t, l.Tail(10), 3)
	assert.Nil(t, l.Tail(0))

	entries := l.Entries()
	entries[0].Message = "mutated"
	assert.Equal(t, "[09:05:07] a", l.Lines()[0])
}

func TestSubscribe(t *testing.T) {
	l := New()
	ch := l.Subscribe(1)
	l.Append(Entry{Time: t0, Message: "first"})
	l.Append(Entry{Time: t0, Message: "dropped"})

	e := <-ch
	assert.Equal(t, "first", e.Message)
	select {
	case extra := <-ch:
		t.Fatalf("unexpected entry %q", extra.Message)
	default:
	}
	assert.Equal(t, 2, l.Len())
}

func TestWriterAndMulti(t *testing.T) {
	var buf bytes.Buffer
	mem := New()
	sink := Multi{mem, NewWriterSink(&buf)}
	sink.Append(Entry{Time: t0, Message: "Enqueued 4"})

	assert.Equal(t, "[09:05:07] Enqueued 4\n", buf.String())
	assert.Equal(t, 1, mem.Len())
}
