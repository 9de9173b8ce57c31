package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
)

type debug struct {
	Sniff  bool
	Decode bool
	Encode bool
	LSP    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Sniff = boolEnv("BOTTOM_DEBUG_SNIFF")
	d.Decode = boolEnv("BOTTOM_DEBUG_DECODE")
	d.Encode = boolEnv("BOTTOM_DEBUG_ENCODE")
	d.LSP = boolEnv("BOTTOM_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Sniff() bool {
	return d.Sniff
}
func Decode() bool {
	return d.Decode
}
func Encode() bool {
	return d.Encode
}
func LSP() bool {
	return d.LSP
}

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// SetOutput redirects Logf and LogAny, returning the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

// Logf writes to stderr. Byte slices are shown in hex and strings are quoted
// so that invisible framing characters stay visible.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case []byte:
			args[i] = fmt.Sprintf("% x", x)
		case string:
			args[i] = strconv.QuoteToASCII(x)
		case fmt.Stringer:
			args[i] = x.String()
		}
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, msg, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	mu.Lock()
	defer mu.Unlock()
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(append(d, '\n'))
}
