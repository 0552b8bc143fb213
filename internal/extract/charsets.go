package extract

// Glyph classes the content cleaner strips or preserves. Spelled out as
// rune sets rather than ranges since the members are scattered across
// several Unicode blocks (Braille, box drawing, block elements,
// geometric shapes).

var spinnerGlyphs = runeSet(
	"⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏" +
		"◐◓◑◒" +
		"⣾⣽⣻⢿⡿⣟⣯⣷" +
		"⠁⠂⠄⡀⢀⠠⠐⠈" +
		"◴◷◶◵" +
		"◰◳◲◱" +
		"◡◠" +
		"⌐⌑",
)

var boxDrawingGlyphs = runeSet(
	"─│┌┐└┘├┤┬┴┼═║╔╗╚╝╠╣╦╩╬" +
		"▀▄█▌▐░▒▓",
)

var progressBlockGlyphs = runeSet(
	"▏▎▍▌▋▊▉█" +
		"▁▂▃▄▅▆▇█",
)

var preservedGlyphs = runeSet("✓✔✗✘○●⏺◉")

func runeSet(s string) map[rune]bool {
	m := make(map[rune]bool)
	for _, r := range s {
		if r == ' ' {
			continue
		}
		m[r] = true
	}
	return m
}
