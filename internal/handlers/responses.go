package handlers

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/labstack/echo/v4"
)

// HeaderHXRequest is set by htmx on every request it issues.
const HeaderHXRequest = "HX-Request"

// HeaderHXTrigger carries client-side events for htmx to fire.
const HeaderHXTrigger = "HX-Trigger"

// isHTMX reports whether the request came from htmx rather than a plain form.
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get(HeaderHXRequest) == "true"
}

// setTriggers asks htmx to fire events once the response arrives. A nil
// value fires the event without detail.
func setTriggers(c echo.Context, events map[string]any) error {
	if len(events) == 0 {
		return nil
	}
	b, err := json.Marshal(events)
	if err != nil {
		return err
	}
	c.Response().Header().Set(HeaderHXTrigger, asciiJSON(b))
	return nil
}

// asciiJSON escapes every non-ASCII rune as \uXXXX. Browsers read header
// values byte by byte, so raw UTF-8 would arrive garbled.
func asciiJSON(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, r := range string(b) {
		switch {
		case r < 0x80:
			sb.WriteRune(r)
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&sb, `\u%04x\u%04x`, hi, lo)
		default:
			fmt.Fprintf(&sb, `\u%04x`, r)
		}
	}
	return sb.String()
}
