package tone

import "strings"

// Frequency codes for the notes C3 to B8.
const (
	NoteC3  uint16 = 44
	NoteCS3 uint16 = 156
	NoteD3  uint16 = 262
	NoteDS3 uint16 = 363
	NoteE3  uint16 = 457
	NoteF3  uint16 = 547
	NoteFS3 uint16 = 631
	NoteG3  uint16 = 710
	NoteGS3 uint16 = 786
	NoteA3  uint16 = 854
	NoteAS3 uint16 = 923
	NoteB3  uint16 = 986
	NoteC4  uint16 = 1046
	NoteCS4 uint16 = 1102
	NoteD4  uint16 = 1155
	NoteDS4 uint16 = 1205
	NoteE4  uint16 = 1253
	NoteF4  uint16 = 1297
	NoteFS4 uint16 = 1339
	NoteG4  uint16 = 1379
	NoteGS4 uint16 = 1417
	NoteA4  uint16 = 1452
	NoteAS4 uint16 = 1486
	NoteB4  uint16 = 1517
	NoteC5  uint16 = 1546
	NoteCS5 uint16 = 1575
	NoteD5  uint16 = 1602
	NoteDS5 uint16 = 1627
	NoteE5  uint16 = 1650
	NoteF5  uint16 = 1673
	NoteFS5 uint16 = 1694
	NoteG5  uint16 = 1714
	NoteGS5 uint16 = 1732
	NoteA5  uint16 = 1750
	NoteAS5 uint16 = 1767
	NoteB5  uint16 = 1783
	NoteC6  uint16 = 1798
	NoteCS6 uint16 = 1812
	NoteD6  uint16 = 1825
	NoteDS6 uint16 = 1837
	NoteE6  uint16 = 1849
	NoteF6  uint16 = 1860
	NoteFS6 uint16 = 1871
	NoteG6  uint16 = 1881
	NoteGS6 uint16 = 1890
	NoteA6  uint16 = 1899
	NoteAS6 uint16 = 1907
	NoteB6  uint16 = 1915
	NoteC7  uint16 = 1923
	NoteCS7 uint16 = 1930
	NoteD7  uint16 = 1936
	NoteDS7 uint16 = 1943
	NoteE7  uint16 = 1949
	NoteF7  uint16 = 1954
	NoteFS7 uint16 = 1959
	NoteG7  uint16 = 1964
	NoteGS7 uint16 = 1969
	NoteA7  uint16 = 1974
	NoteAS7 uint16 = 1978
	NoteB7  uint16 = 1982
	NoteC8  uint16 = 1985
	NoteCS8 uint16 = 1988
	NoteD8  uint16 = 1992
	NoteDS8 uint16 = 1995
	NoteE8  uint16 = 1998
	NoteF8  uint16 = 2001
	NoteFS8 uint16 = 2004
	NoteG8  uint16 = 2006
	NoteGS8 uint16 = 2009
	NoteA8  uint16 = 2011
	NoteAS8 uint16 = 2013
	NoteB8  uint16 = 2015
)

var names = map[string]uint16{
	"REST": Rest,
	"C3":   NoteC3,
	"CS3":  NoteCS3,
	"D3":   NoteD3,
	"DS3":  NoteDS3,
	"E3":   NoteE3,
	"F3":   NoteF3,
	"FS3":  NoteFS3,
	"G3":   NoteG3,
	"GS3":  NoteGS3,
	"A3":   NoteA3,
	"AS3":  NoteAS3,
	"B3":   NoteB3,
	"C4":   NoteC4,
	"CS4":  NoteCS4,
	"D4":   NoteD4,
	"DS4":  NoteDS4,
	"E4":   NoteE4,
	"F4":   NoteF4,
	"FS4":  NoteFS4,
	"G4":   NoteG4,
	"GS4":  NoteGS4,
	"A4":   NoteA4,
	"AS4":  NoteAS4,
	"B4":   NoteB4,
	"C5":   NoteC5,
	"CS5":  NoteCS5,
	"D5":   NoteD5,
	"DS5":  NoteDS5,
	"E5":   NoteE5,
	"F5":   NoteF5,
	"FS5":  NoteFS5,
	"G5":   NoteG5,
	"GS5":  NoteGS5,
	"A5":   NoteA5,
	"AS5":  NoteAS5,
	"B5":   NoteB5,
	"C6":   NoteC6,
	"CS6":  NoteCS6,
	"D6":   NoteD6,
	"DS6":  NoteDS6,
	"E6":   NoteE6,
	"F6":   NoteF6,
	"FS6":  NoteFS6,
	"G6":   NoteG6,
	"GS6":  NoteGS6,
	"A6":   NoteA6,
	"AS6":  NoteAS6,
	"B6":   NoteB6,
	"C7":   NoteC7,
	"CS7":  NoteCS7,
	"D7":   NoteD7,
	"DS7":  NoteDS7,
	"E7":   NoteE7,
	"F7":   NoteF7,
	"FS7":  NoteFS7,
	"G7":   NoteG7,
	"GS7":  NoteGS7,
	"A7":   NoteA7,
	"AS7":  NoteAS7,
	"B7":   NoteB7,
	"C8":   NoteC8,
	"CS8":  NoteCS8,
	"D8":   NoteD8,
	"DS8":  NoteDS8,
	"E8":   NoteE8,
	"F8":   NoteF8,
	"FS8":  NoteFS8,
	"G8":   NoteG8,
	"GS8":  NoteGS8,
	"A8":   NoteA8,
	"AS8":  NoteAS8,
	"B8":   NoteB8,
}

// Lookup returns the frequency code for a note name such as "A4", "CS5" or
// "C#5". Names are case insensitive; "REST" maps to Rest.
func Lookup(name string) (uint16, bool) {
	name = strings.ToUpper(strings.Replace(name, "#", "S", 1))
	freq, ok := names[name]
	return freq, ok
}

// Name returns the note name of a frequency code, if it is in the table.
func Name(freq uint16) (string, bool) {
	if freq == Rest {
		return "REST", true
	}
	for name, f := range names {
		if f == freq {
			return name, true
		}
	}
	return "", false
}
