package erract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

var (
	_ json.Marshaler = (*Error)(nil)
	_ slog.LogValuer = (*Error)(nil)
)

// MachineString renders the error in the stable semicolon-delimited wire
// format:
//
//	kind=<kind>;status=<status>;message=<message>[;operation=<op>][;context=[k=v,k=v]]
//
// Fields appear in fixed order; operation and context appear only when set
// and non-empty. No escaping is performed; a message containing ';' or '='
// is the caller's responsibility. Arena-backed context resolves through
// Context and is therefore empty outside the owning worker.
func (e *Error) MachineString() string {
	pairs := e.Context()

	var b strings.Builder
	b.Grow(64 + len(e.message) + len(pairs)*32)
	b.WriteString("kind=")
	b.WriteString(e.kind.MachineString())
	b.WriteString(";status=")
	b.WriteString(e.status.MachineString())
	b.WriteString(";message=")
	b.WriteString(e.message)

	if e.operation != "" {
		b.WriteString(";operation=")
		b.WriteString(e.operation)
	}

	if len(pairs) > 0 {
		b.WriteString(";context=[")
		for i, p := range pairs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(p.Key)
			b.WriteByte('=')
			b.WriteString(p.Value)
		}
		b.WriteByte(']')
	}
	return b.String()
}

// JSON renders the error as a JSON object. The kind, status and message keys
// are always present; operation and context appear only when set and
// non-empty. Context is an object whose members keep insertion order, which
// is why the encoding is written by hand rather than through a map.
func (e *Error) JSON() string {
	var buf bytes.Buffer
	e.WriteJSON(&buf)
	return buf.String()
}

// WriteJSON appends the JSON rendering of the error to buf.
func (e *Error) WriteJSON(buf *bytes.Buffer) {
	buf.Grow(128 + len(e.message))
	buf.WriteString(`{"kind":"`)
	buf.WriteString(e.kind.MachineString())
	buf.WriteString(`","status":"`)
	buf.WriteString(e.status.MachineString())
	buf.WriteString(`","message":"`)
	writeEscaped(buf, e.message)
	buf.WriteByte('"')

	if e.operation != "" {
		buf.WriteString(`,"operation":"`)
		writeEscaped(buf, e.operation)
		buf.WriteByte('"')
	}

	if pairs := e.Context(); len(pairs) > 0 {
		buf.WriteString(`,"context":{`)
		for i, p := range pairs {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			writeEscaped(buf, p.Key)
			buf.WriteString(`":"`)
			writeEscaped(buf, p.Value)
			buf.WriteByte('"')
		}
		buf.WriteByte('}')
	}

	buf.WriteByte('}')
}

// MarshalJSON implements json.Marshaler, so erract errors embed directly in
// larger JSON payloads without an intermediate struct.
func (e *Error) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	e.WriteJSON(&buf)
	return buf.Bytes(), nil
}

// writeEscaped writes s with JSON string escaping: quote, backslash, the
// common control escapes, and a \u00XX fallback for other control runes.
func writeEscaped(buf *bytes.Buffer, s string) {
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
}

// LogValue implements slog.LogValuer, rendering the error as a group of
// kind/status/message attributes plus operation, context and cause when
// present. The library itself never logs; this only shapes the value for
// callers that do.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 6)
	attrs = append(attrs,
		slog.String("kind", e.kind.MachineString()),
		slog.String("status", e.status.MachineString()),
		slog.String("message", e.message),
	)
	if e.operation != "" {
		attrs = append(attrs, slog.String("operation", e.operation))
	}
	if pairs := e.Context(); len(pairs) > 0 {
		ctx := make([]slog.Attr, 0, len(pairs))
		for _, p := range pairs {
			ctx = append(ctx, slog.String(p.Key, p.Value))
		}
		attrs = append(attrs, slog.Attr{Key: "context", Value: slog.GroupValue(ctx...)})
	}
	if e.cause != nil {
		attrs = append(attrs, slog.Any("cause", e.cause))
	}
	return slog.GroupValue(attrs...)
}
