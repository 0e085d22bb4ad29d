package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer renders view components for HTTP responses and for pushes.
// Components may be templ components or anything with Render(io.Writer) error,
// such as gomponents nodes.
type Renderer interface {
	// RenderComponent renders a component to bytes, e.g. for websocket pushes.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage writes component as the complete HTML response.
	RenderPage(c echo.Context, status int, component any) error
}

// UniversalRenderer handles rendering for every supported component type.
type UniversalRenderer struct{}

var _ Renderer = (*UniversalRenderer)(nil)
var _ echo.Renderer = (*UniversalRenderer)(nil)

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode is the structural interface of gomponents.Node.
type gomponentNode interface {
	Render(w io.Writer) error
}

func (ur *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type: %T", component)
	}
}

// RenderComponent implements the Renderer interface.
func (ur *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := ur.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements the Renderer interface. The component is rendered
// into a buffer first so a render failure can still become a 500.
func (ur *UniversalRenderer) RenderPage(c echo.Context, status int, component any) error {
	body, err := ur.RenderComponent(c.Request().Context(), component)
	if err != nil {
		return err
	}
	return c.HTMLBlob(status, body)
}

// Render implements echo.Renderer for c.Render(status, name, component);
// name is ignored and the component travels in data.
func (ur *UniversalRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return ur.render(c.Request().Context(), data, w)
}
