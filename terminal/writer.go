package terminal

import (
	"bufio"
	"io"
)

// Writer emits styled text line by line.
// In ColorModeNone every style call is a no-op and only text reaches the output
type Writer struct {
	w    *bufio.Writer
	mode ColorMode
}

// NewWriter creates a buffered styled writer; call Flush to emit
func NewWriter(out io.Writer, mode ColorMode) *Writer {
	return &Writer{
		w:    bufio.NewWriter(out),
		mode: mode,
	}
}

// ColorMode returns the output color capability
func (w *Writer) ColorMode() ColorMode {
	return w.mode
}

// SetStyle switches foreground color and attributes for subsequent text
func (w *Writer) SetStyle(fg RGB, attr Attr) {
	if w.mode == ColorModeNone {
		return
	}
	w.w.Write(csiReset)
	if attr&AttrBold != 0 {
		w.w.Write(csiAttrBold)
	}
	if attr&AttrDim != 0 {
		w.w.Write(csiAttrDim)
	}
	if attr&AttrUnderline != 0 {
		w.w.Write(csiAttrUnderline)
	}

	if w.mode == ColorModeTrueColor {
		w.w.Write(csiFgRGB)
		writeInt(w.w, int(fg.R))
		w.w.WriteByte(';')
		writeInt(w.w, int(fg.G))
		w.w.WriteByte(';')
		writeInt(w.w, int(fg.B))
		w.w.WriteByte('m')
		return
	}
	w.w.Write(csiFg256)
	writeInt(w.w, int(RGBTo256(fg)))
	w.w.WriteByte('m')
}

// ResetStyle returns to the terminal default style
func (w *Writer) ResetStyle() {
	if w.mode == ColorModeNone {
		return
	}
	w.w.Write(csiReset)
}

// Clear erases the screen and homes the cursor; plain output gets a blank line instead
func (w *Writer) Clear() {
	if w.mode == ColorModeNone {
		w.w.WriteByte('\n')
		return
	}
	w.w.Write(csiClear)
}

// WriteString writes unstyled text
func (w *Writer) WriteString(s string) {
	w.w.WriteString(s)
}

// WriteRune writes a single rune
func (w *Writer) WriteRune(r rune) {
	w.w.WriteRune(r)
}

// Styled writes s in the given style and resets afterwards
func (w *Writer) Styled(s string, fg RGB, attr Attr) {
	w.SetStyle(fg, attr)
	w.w.WriteString(s)
	w.ResetStyle()
}

// Flush writes buffered output
func (w *Writer) Flush() error {
	return w.w.Flush()
}
