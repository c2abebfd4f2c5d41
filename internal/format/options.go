// Package format holds the style options shared by the markdown and
// YAML printers, plus the top-level entry points that tie front-matter
// extraction and definition-list segmentation to the printers.
package format

// ProseWrap controls whether paragraph text is re-wrapped to PrintWidth.
type ProseWrap string

const (
	// ProseWrapAlways greedily wraps paragraph text at PrintWidth.
	ProseWrapAlways ProseWrap = "always"
	// ProseWrapNever emits each paragraph as a single logical line.
	ProseWrapNever ProseWrap = "never"
	// ProseWrapPreserve keeps the author's line breaks. The markdown
	// parser merges soft breaks before the printer runs, so at this
	// layer preserve behaves like never.
	ProseWrapPreserve ProseWrap = "preserve"
)

// BulletStyle selects the glyph used for unordered list items.
type BulletStyle string

const (
	BulletDash     BulletStyle = "dash"
	BulletAsterisk BulletStyle = "asterisk"
	BulletPlus     BulletStyle = "plus"
)

// Marker returns the literal list marker for the style.
func (b BulletStyle) Marker() string {
	switch b {
	case BulletAsterisk:
		return "*"
	case BulletPlus:
		return "+"
	default:
		return "-"
	}
}

// Options is an immutable value describing the output style. The zero
// value is not usable; start from Default and override fields.
type Options struct {
	PrintWidth  int
	TabWidth    int
	ProseWrap   ProseWrap
	BulletStyle BulletStyle
}

// Default returns the documented defaults: width 80, two-space indent,
// preserve prose wrap, dash bullets.
func Default() Options {
	return Options{
		PrintWidth:  80,
		TabWidth:    2,
		ProseWrap:   ProseWrapPreserve,
		BulletStyle: BulletDash,
	}
}
