package utils

// ColourScheme defines the Catppuccin color scheme used throughout the application
type ColourScheme struct {
	Rosewater string
	Flamingo  string
	Pink      string
	Mauve     string
	Red       string
	Maroon    string
	Peach     string
	Yellow    string
	Green     string
	Teal      string
	Sky       string
	Sapphire  string
	Blue      string
	Lavender  string
	Text      string
	Subtext1  string
	Subtext0  string
	Overlay2  string
	Overlay1  string
	Overlay0  string
	Surface2  string
	Surface1  string
	Surface0  string
	Base      string
	Mantle    string
	Crust     string
}

// Colours provides the default Catppuccin color scheme
var Colours = ColourScheme{
	Rosewater: "#f5e0dc",
	Flamingo:  "#f2cdcd",
	Pink:      "#f5c2e7",
	Mauve:     "#cba6f7",
	Red:       "#f38ba8",
	Maroon:    "#eba0ac",
	Peach:     "#fab387",
	Yellow:    "#f9e2af",
	Green:     "#a6e3a1",
	Teal:      "#94e2d5",
	Sky:       "#89dceb",
	Sapphire:  "#74c7ec",
	Blue:      "#89b4fa",
	Lavender:  "#b4befe",
	Text:      "#cdd6f4",
	Subtext1:  "#bac2de",
	Subtext0:  "#a6adc8",
	Overlay2:  "#9399b2",
	Overlay1:  "#7f849c",
	Overlay0:  "#6c7086",
	Surface2:  "#585b70",
	Surface1:  "#45475a",
	Surface0:  "#313244",
	Base:      "#1e1e2e",
	Mantle:    "#181825",
	Crust:     "#11111b",
}

// ToastColour maps a notification kind to its accent colour
func ToastColour(kind string) string {
	switch kind {
	case "success":
		return Colours.Green
	case "error":
		return Colours.Red
	case "warning":
		return Colours.Yellow
	default:
		return Colours.Text
	}
}

// OrderStatusColour maps an order status to its badge colour
func OrderStatusColour(status string) string {
	switch status {
	case "pending":
		return Colours.Yellow
	case "confirmed":
		return Colours.Blue
	case "shipped":
		return Colours.Sapphire
	case "delivered":
		return Colours.Green
	case "cancelled":
		return Colours.Red
	default:
		return Colours.Subtext0
	}
}

// StockColour maps stock pressure to a badge colour
func StockColour(outOfStock, lowStock bool) string {
	switch {
	case outOfStock:
		return Colours.Red
	case lowStock:
		return Colours.Peach
	default:
		return Colours.Green
	}
}
