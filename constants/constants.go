package constants

// 12 pitch rows plus one margin row below the ledger line
const GridRows = 13

// every note, rest and bar line takes one slot
const SlotWidth = 5

// staff lines sit on the odd rows up to this one
const LastStaffLineRow = 9

// rows 1..9 carry the vertical bar lines
const BarLineTop = 1
const BarLineBottom = 9

// the lowest position (c1) needs ledger marks
const LedgerPosition = 11

// positions above this one get downward stems
const StemFlipPosition = 5

const StemLength = 3

// accidentals sit this many columns before the head
const ShiftOffset = 3

// lyric lead-in before the first syllable of every bar
const LyricBarLeadIn = 4

const DefaultBars = 4

const DefaultOutputFile = "SheetMusicMaker_Output.txt"
