package core

// Renderer accepts draw commands in logical field coordinates. The
// platform layer implements it by projecting the field onto whatever
// surface it controls (a terminal cell grid here). Entities draw
// themselves through this interface and never touch the terminal.
type Renderer interface {
	// Clear erases the drawing surface.
	Clear()

	// FillRect draws a filled axis-aligned rectangle.
	FillRect(r Rect)

	// FillCircle draws a filled circle.
	FillCircle(c Circle)

	// DrawText draws a text string with its top-left corner at the
	// given logical position.
	DrawText(x, y float64, text string, color RGBA)
}
