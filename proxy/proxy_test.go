package proxy_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvlath-patterns/proxy"
)

var fast = proxy.WithHeavyJobDelay(0)

func TestPrinterProxy_LazyRealization(t *testing.T) {
	ctx := context.Background()
	p := proxy.NewPrinterProxy("Alice", fast)

	assert.Equal(t, "Alice", p.PrinterName())
	p.SetPrinterName("Bob")
	assert.Equal(t, "Bob", p.PrinterName())
	assert.False(t, p.Realized(), "renaming must not build the printer")

	var buf bytes.Buffer
	require.NoError(t, p.Print(ctx, &buf, "Hello, world."))
	assert.True(t, p.Realized())
	assert.Equal(t, "Creating Printer instance (Bob).....done.\n=== Bob ===\nHello, world.\n", buf.String())

	// Second print reuses the printer; a rename reaches it.
	buf.Reset()
	p.SetPrinterName("Carol")
	require.NoError(t, p.Print(ctx, &buf, "again"))
	assert.Equal(t, "=== Carol ===\nagain\n", buf.String())
}

func TestNewPrinter_Direct(t *testing.T) {
	var buf bytes.Buffer
	pr, err := proxy.NewPrinter(context.Background(), &buf, "Dave", fast)
	require.NoError(t, err)
	require.NoError(t, pr.Print(context.Background(), &buf, "x"))
	assert.Equal(t, "Creating Printer instance (Dave).....done.\n=== Dave ===\nx\n", buf.String())
}

func TestPrinterProxy_CancelledRealization(t *testing.T) {
	p := proxy.NewPrinterProxy("Eve", proxy.WithHeavyJobDelay(time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := p.Print(ctx, &bytes.Buffer{}, "never")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, p.Realized())
}

func TestPrinterProxy_ConcurrentPrintRealizesOnce(t *testing.T) {
	p := proxy.NewPrinterProxy("Frank", fast)

	var mu sync.Mutex
	var buf bytes.Buffer
	w := writerFunc(func(b []byte) (int, error) {
		mu.Lock()
		defer mu.Unlock()
		return buf.Write(b)
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Print(context.Background(), w, "doc")
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("Creating Printer instance")))
	assert.Equal(t, 8, bytes.Count(buf.Bytes(), []byte("=== Frank ===")))
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(b []byte) (int, error) { return f(b) }

func TestVariant(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	v := proxy.OfProxy("Gina", fast)
	assert.Equal(t, proxy.KindProxy, v.Kind())
	assert.False(t, v.Realized())
	require.NoError(t, v.Print(ctx, &buf, "a"))
	require.NoError(t, v.Print(ctx, &buf, "b"))
	assert.True(t, v.Realized())
	assert.Equal(t, "Creating Printer instance (Gina).....done.\n=== Gina ===\na\n=== Gina ===\nb\n", buf.String())

	buf.Reset()
	pv, err := proxy.OfPrinter(ctx, &buf, "Hal", fast)
	require.NoError(t, err)
	assert.True(t, pv.Realized())
	buf.Reset()
	pv.SetPrinterName("Ivy")
	require.NoError(t, pv.Print(ctx, &buf, "c"))
	assert.Equal(t, "=== Ivy ===\nc\n", buf.String())
}

func TestPrinterProxy_LogsRealization(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := proxy.NewPrinterProxy("Jo", fast, proxy.WithLogger(zap.New(core)))
	require.NoError(t, p.Print(context.Background(), &bytes.Buffer{}, "x"))
	require.NoError(t, p.Print(context.Background(), &bytes.Buffer{}, "y"))
	assert.Equal(t, 1, logs.FilterMessage("printer realized").Len())
}
