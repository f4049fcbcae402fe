// Package fonts holds glyph tables for the display. Tables are produced
// offline with the fontgen subcommand from a 5x5 glyph grid bitmap and
// pasted here; edit the bitmap, not the data.
package fonts

import "github.com/maschinekit/maschine/canvas"

// Default is the standard 5x5 font, indexed by ASCII 0x20-0x7F. Each
// column byte holds five vertical pixels, least significant bit at the
// top.
var Default = canvas.Font{
	{Width: 2, Data: [5]uint8{0, 0, 0, 0, 0}},      // ' '
	{Width: 1, Data: [5]uint8{23, 0, 0, 0, 0}},     // '!'
	{Width: 3, Data: [5]uint8{3, 0, 3, 0, 0}},      // '"'
	{Width: 5, Data: [5]uint8{10, 31, 10, 31, 10}}, // '#'
	{Width: 3, Data: [5]uint8{23, 31, 29, 0, 0}},   // '$'
	{Width: 3, Data: [5]uint8{17, 4, 17, 0, 0}},    // '%'
	{Width: 4, Data: [5]uint8{14, 19, 21, 8, 0}},   // '&'
	{Width: 1, Data: [5]uint8{3, 0, 0, 0, 0}},      // '\''
	{Width: 2, Data: [5]uint8{14, 17, 0, 0, 0}},    // '('
	{Width: 2, Data: [5]uint8{17, 14, 0, 0, 0}},    // ')'
	{Width: 3, Data: [5]uint8{10, 4, 10, 0, 0}},    // '*'
	{Width: 3, Data: [5]uint8{4, 14, 4, 0, 0}},     // '+'
	{Width: 1, Data: [5]uint8{24, 0, 0, 0, 0}},     // ','
	{Width: 3, Data: [5]uint8{4, 4, 4, 0, 0}},      // '-'
	{Width: 1, Data: [5]uint8{16, 0, 0, 0, 0}},     // '.'
	{Width: 3, Data: [5]uint8{24, 4, 3, 0, 0}},     // '/'
	{Width: 3, Data: [5]uint8{31, 21, 31, 0, 0}},   // '0'
	{Width: 3, Data: [5]uint8{18, 31, 16, 0, 0}},   // '1'
	{Width: 3, Data: [5]uint8{29, 21, 23, 0, 0}},   // '2'
	{Width: 3, Data: [5]uint8{21, 21, 31, 0, 0}},   // '3'
	{Width: 3, Data: [5]uint8{7, 4, 31, 0, 0}},     // '4'
	{Width: 3, Data: [5]uint8{23, 21, 29, 0, 0}},   // '5'
	{Width: 3, Data: [5]uint8{31, 21, 29, 0, 0}},   // '6'
	{Width: 3, Data: [5]uint8{1, 1, 31, 0, 0}},     // '7'
	{Width: 3, Data: [5]uint8{31, 21, 31, 0, 0}},   // '8'
	{Width: 3, Data: [5]uint8{23, 21, 31, 0, 0}},   // '9'
	{Width: 1, Data: [5]uint8{10, 0, 0, 0, 0}},     // ':'
	{Width: 1, Data: [5]uint8{26, 0, 0, 0, 0}},     // ';'
	{Width: 3, Data: [5]uint8{4, 10, 17, 0, 0}},    // '<'
	{Width: 3, Data: [5]uint8{10, 10, 10, 0, 0}},   // '='
	{Width: 3, Data: [5]uint8{17, 10, 4, 0, 0}},    // '>'
	{Width: 3, Data: [5]uint8{1, 21, 3, 0, 0}},     // '?'
	{Width: 4, Data: [5]uint8{14, 17, 21, 6, 0}},   // '@'
	{Width: 3, Data: [5]uint8{30, 5, 30, 0, 0}},    // 'A'
	{Width: 3, Data: [5]uint8{31, 21, 10, 0, 0}},   // 'B'
	{Width: 3, Data: [5]uint8{31, 17, 17, 0, 0}},   // 'C'
	{Width: 3, Data: [5]uint8{31, 17, 14, 0, 0}},   // 'D'
	{Width: 3, Data: [5]uint8{31, 21, 21, 0, 0}},   // 'E'
	{Width: 3, Data: [5]uint8{31, 5, 5, 0, 0}},     // 'F'
	{Width: 3, Data: [5]uint8{31, 17, 29, 0, 0}},   // 'G'
	{Width: 3, Data: [5]uint8{31, 4, 31, 0, 0}},    // 'H'
	{Width: 3, Data: [5]uint8{17, 31, 17, 0, 0}},   // 'I'
	{Width: 3, Data: [5]uint8{24, 16, 31, 0, 0}},   // 'J'
	{Width: 3, Data: [5]uint8{31, 4, 27, 0, 0}},    // 'K'
	{Width: 3, Data: [5]uint8{31, 16, 16, 0, 0}},   // 'L'
	{Width: 5, Data: [5]uint8{31, 2, 4, 2, 31}},    // 'M'
	{Width: 4, Data: [5]uint8{31, 2, 4, 31, 0}},    // 'N'
	{Width: 3, Data: [5]uint8{31, 17, 31, 0, 0}},   // 'O'
	{Width: 3, Data: [5]uint8{31, 5, 7, 0, 0}},     // 'P'
	{Width: 4, Data: [5]uint8{31, 17, 31, 16, 0}},  // 'Q'
	{Width: 3, Data: [5]uint8{31, 13, 23, 0, 0}},   // 'R'
	{Width: 3, Data: [5]uint8{23, 21, 29, 0, 0}},   // 'S'
	{Width: 3, Data: [5]uint8{1, 31, 1, 0, 0}},     // 'T'
	{Width: 3, Data: [5]uint8{31, 16, 31, 0, 0}},   // 'U'
	{Width: 3, Data: [5]uint8{15, 16, 15, 0, 0}},   // 'V'
	{Width: 5, Data: [5]uint8{15, 16, 8, 16, 15}},  // 'W'
	{Width: 3, Data: [5]uint8{27, 4, 27, 0, 0}},    // 'X'
	{Width: 3, Data: [5]uint8{3, 28, 3, 0, 0}},     // 'Y'
	{Width: 3, Data: [5]uint8{25, 21, 19, 0, 0}},   // 'Z'
	{Width: 2, Data: [5]uint8{31, 17, 0, 0, 0}},    // '['
	{Width: 3, Data: [5]uint8{3, 4, 24, 0, 0}},     // '\\'
	{Width: 2, Data: [5]uint8{17, 31, 0, 0, 0}},    // ']'
	{Width: 3, Data: [5]uint8{2, 1, 2, 0, 0}},      // '^'
	{Width: 3, Data: [5]uint8{16, 16, 16, 0, 0}},   // '_'
	{Width: 2, Data: [5]uint8{1, 2, 0, 0, 0}},      // '`'
	{Width: 3, Data: [5]uint8{24, 20, 28, 0, 0}},   // 'a'
	{Width: 3, Data: [5]uint8{31, 20, 28, 0, 0}},   // 'b'
	{Width: 3, Data: [5]uint8{28, 20, 20, 0, 0}},   // 'c'
	{Width: 3, Data: [5]uint8{28, 20, 31, 0, 0}},   // 'd'
	{Width: 3, Data: [5]uint8{28, 28, 20, 0, 0}},   // 'e'
	{Width: 3, Data: [5]uint8{30, 5, 1, 0, 0}},     // 'f'
	{Width: 3, Data: [5]uint8{22, 21, 31, 0, 0}},   // 'g'
	{Width: 3, Data: [5]uint8{31, 4, 28, 0, 0}},    // 'h'
	{Width: 1, Data: [5]uint8{29, 0, 0, 0, 0}},     // 'i'
	{Width: 2, Data: [5]uint8{16, 29, 0, 0, 0}},    // 'j'
	{Width: 3, Data: [5]uint8{31, 8, 20, 0, 0}},    // 'k'
	{Width: 2, Data: [5]uint8{31, 16, 0, 0, 0}},    // 'l'
	{Width: 5, Data: [5]uint8{28, 4, 28, 4, 28}},   // 'm'
	{Width: 3, Data: [5]uint8{28, 4, 28, 0, 0}},    // 'n'
	{Width: 3, Data: [5]uint8{28, 20, 28, 0, 0}},   // 'o'
	{Width: 3, Data: [5]uint8{30, 10, 14, 0, 0}},   // 'p'
	{Width: 3, Data: [5]uint8{14, 10, 30, 0, 0}},   // 'q'
	{Width: 3, Data: [5]uint8{28, 4, 4, 0, 0}},     // 'r'
	{Width: 3, Data: [5]uint8{24, 28, 12, 0, 0}},   // 's'
	{Width: 3, Data: [5]uint8{2, 31, 18, 0, 0}},    // 't'
	{Width: 3, Data: [5]uint8{28, 16, 28, 0, 0}},   // 'u'
	{Width: 3, Data: [5]uint8{12, 16, 12, 0, 0}},   // 'v'
	{Width: 5, Data: [5]uint8{28, 16, 8, 16, 28}},  // 'w'
	{Width: 3, Data: [5]uint8{20, 8, 20, 0, 0}},    // 'x'
	{Width: 3, Data: [5]uint8{12, 24, 12, 0, 0}},   // 'y'
	{Width: 3, Data: [5]uint8{20, 28, 20, 0, 0}},   // 'z'
	{Width: 3, Data: [5]uint8{4, 27, 17, 0, 0}},    // '{'
	{Width: 1, Data: [5]uint8{31, 0, 0, 0, 0}},     // '|'
	{Width: 3, Data: [5]uint8{17, 27, 4, 0, 0}},    // '}'
	{Width: 4, Data: [5]uint8{2, 1, 2, 1, 0}},      // '~'
	{Width: 0, Data: [5]uint8{0, 0, 0, 0, 0}},      // DEL
}
