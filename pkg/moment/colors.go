package moment

import "github.com/fatih/color"

// notionColorAttrs maps Notion select colors onto terminal foregrounds.
var notionColorAttrs = map[string]color.Attribute{
	"blue":    color.FgBlue,
	"brown":   color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"red":     color.FgHiRed,
	"orange":  color.FgHiYellow,
	"purple":  color.FgMagenta,
	"pink":    color.FgHiMagenta,
	"gray":    color.FgHiBlack,
	"default": color.FgWhite,
}

// ColorAttribute returns the terminal color for a Notion select color name.
func ColorAttribute(notionColor string) color.Attribute {
	if attr, ok := notionColorAttrs[notionColor]; ok {
		return attr
	}
	return notionColorAttrs["default"]
}

// notionColorHex maps Notion select colors onto hex values for the TUI.
var notionColorHex = map[string]string{
	"blue":    "#2383e2",
	"brown":   "#9f6b53",
	"green":   "#0f7b6c",
	"yellow":  "#dfab01",
	"red":     "#e03e3e",
	"orange":  "#d9730d",
	"purple":  "#9065b0",
	"pink":    "#ad1a72",
	"gray":    "#787774",
	"default": "#9b9a97",
}

// ColorHex returns the hex value for a Notion select color name.
func ColorHex(notionColor string) string {
	if hex, ok := notionColorHex[notionColor]; ok {
		return hex
	}
	return notionColorHex["default"]
}
