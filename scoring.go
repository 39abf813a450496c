// scoring.go
// Copyright (C) 2026 gaddag contributors

// This file implements the injected scoring policy spec.md section 4.3
// delegates to callers: letter face values, a premium-square grid and a
// bingo bonus. It generalizes the teacher's move.go (TileMove.Score,
// applying WORD_MULTIPLIERS_STANDARD/LETTER_MULTIPLIERS_STANDARD only to
// newly-placed tiles, adding BingoBonus for a full-rack play) from a
// fixed 15x15 board to BoardIndex's arbitrary dimensions, and from the
// teacher's hardcoded English tile values (bag.go) to a caller-supplied
// table.

package gaddag

// PremiumKind names the multiplier a board cell applies to newly
// placed tiles.
type PremiumKind int

const (
	PremiumNone PremiumKind = iota
	PremiumDoubleLetter
	PremiumTripleLetter
	PremiumDoubleWord
	PremiumTripleWord
)

func (p PremiumKind) multipliers() (letterMult, wordMult int) {
	switch p {
	case PremiumDoubleLetter:
		return 2, 1
	case PremiumTripleLetter:
		return 3, 1
	case PremiumDoubleWord:
		return 1, 2
	case PremiumTripleWord:
		return 1, 3
	default:
		return 1, 1
	}
}

// ScoringConfig is the injected scoring policy: per-letter face values,
// a premium grid and a bingo bonus threshold/amount.
type ScoringConfig struct {
	LetterValues   map[rune]int
	Premiums       [][]PremiumKind
	BingoThreshold int
	BingoBonus     int
}

// NewScoringConfig builds a ScoringConfig from its parts. It does not
// check premiums against any board's dimensions; premiumAt treats a cell
// outside the grid as PremiumNone.
func NewScoringConfig(letterValues map[rune]int, premiums [][]PremiumKind, bingoThreshold, bingoBonus int) *ScoringConfig {
	return &ScoringConfig{
		LetterValues:   letterValues,
		Premiums:       premiums,
		BingoThreshold: bingoThreshold,
		BingoBonus:     bingoBonus,
	}
}

func (cfg *ScoringConfig) premiumAt(r, c int) PremiumKind {
	if cfg.Premiums == nil || r < 0 || r >= len(cfg.Premiums) || c < 0 || c >= len(cfg.Premiums[r]) {
		return PremiumNone
	}
	return cfg.Premiums[r][c]
}

func (cfg *ScoringConfig) faceValue(t TileLetter) int {
	if t.IsBlank {
		return 0
	}
	return cfg.LetterValues[t.Letter]
}

// scoredCell is one cell of a reconstructed word: either a tile that
// was already on the board, or one of this move's new placements.
type scoredCell struct {
	Row, Col int
	Tile     TileLetter
	IsNew    bool
}

// NoPremiums returns a premium grid with every cell set to PremiumNone,
// for a given board size.
func NoPremiums(rows, cols int) [][]PremiumKind {
	grid := make([][]PremiumKind, rows)
	for r := range grid {
		grid[r] = make([]PremiumKind, cols)
	}
	return grid
}

// Standard15Premiums reproduces the teacher's standard 15x15 premium
// layout (board.go's WORD_MULTIPLIERS_STANDARD and
// LETTER_MULTIPLIERS_STANDARD), ported from the teacher's per-row
// strings into a PremiumKind grid. wordRows also marks the letter
// premiums (':' double letter, ';' triple letter).
func Standard15Premiums() [][]PremiumKind {
	wordRows := [15]string{
		"3..:...3...:..3",
		".2...;...;...2.",
		"..2...:.:...2..",
		":..2...:...2..:",
		"....2.....2....",
		".;...;...;...;.",
		"..:...:.:...:..",
		"3..:...2...:..3",
		"..:...:.:...:..",
		".;...;...;...;.",
		"....2.....2....",
		":..2...:...2..:",
		"..2...:.:...2..",
		".2...;...;...2.",
		"3..:...3...:..3",
	}
	letterRows := [15]string{
		"...2.......2...",
		"..;...;...;..",
		".;..;...;..;.",
		"2..:...2...:..2",
		"...;...;...;...",
		".:...:.:...:.",
		"..:...:.:...:..",
		"2..:...:...:..2",
		"..:...:.:...:..",
		".:...:.:...:.",
		"...;...;...;...",
		"2..:...2...:..2",
		".;..;...;..;.",
		"..;...;...;..",
		"...2.......2...",
	}
	grid := NoPremiums(15, 15)
	for r := 0; r < 15; r++ {
		wr := []rune(wordRows[r])
		for c := 0; c < 15 && c < len(wr); c++ {
			switch wr[c] {
			case '2':
				grid[r][c] = PremiumDoubleWord
			case '3':
				grid[r][c] = PremiumTripleWord
			case ':':
				grid[r][c] = PremiumDoubleLetter
			case ';':
				grid[r][c] = PremiumTripleLetter
			}
		}
	}
	for r := 0; r < 15; r++ {
		lr := []rune(letterRows[r])
		for c := 0; c < 15 && c < len(lr); c++ {
			if grid[r][c] != PremiumNone {
				continue
			}
			switch lr[c] {
			case '2':
				grid[r][c] = PremiumDoubleLetter
			case '3':
				grid[r][c] = PremiumTripleLetter
			}
		}
	}
	return grid
}

// DefaultEnglishLetterValues mirrors the teacher's English tile face
// values (bag.go's initEnglishTileSet scores).
func DefaultEnglishLetterValues() map[rune]int {
	return map[rune]int{
		'a': 1, 'b': 3, 'c': 3, 'd': 2, 'e': 1, 'f': 4, 'g': 2, 'h': 4,
		'i': 1, 'j': 8, 'k': 5, 'l': 1, 'm': 3, 'n': 1, 'o': 1, 'p': 3,
		'q': 10, 'r': 1, 's': 1, 't': 1, 'u': 1, 'v': 4, 'w': 4, 'x': 8,
		'y': 4, 'z': 10,
	}
}

// DefaultEnglishScoring is the teacher's standard English scoring setup:
// the letter values above, the standard 15x15 premium layout, and the
// usual 7-tile bingo bonus.
func DefaultEnglishScoring() *ScoringConfig {
	return NewScoringConfig(DefaultEnglishLetterValues(), Standard15Premiums(), 7, 50)
}

// Score computes the score of a move, per spec.md section 4.3: the main
// word formed along dir, plus one cross word per newly placed tile that
// has neighbors in the other direction, with letter/word multipliers
// applying only to newly placed tiles, plus a bingo bonus when the move
// plays at least BingoThreshold tiles.
func (cfg *ScoringConfig) Score(bi *BoardIndex, dir Direction, placements []TilePlacement) int {
	horizontal := dir == Horizontal
	main := buildMainWord(bi, placements, horizontal)
	score := cfg.scoreWord(main)

	for _, p := range placements {
		cross := buildCrossWord(bi, p, horizontal)
		if len(cross) <= 1 {
			continue
		}
		score += cfg.scoreWord(cross)
	}

	if len(placements) >= cfg.BingoThreshold {
		score += cfg.BingoBonus
	}
	return score
}

// FormedWords reconstructs the main word a move forms along dir, plus
// any cross words its placements form, as plain letter strings (a
// realized blank reads as its realized letter). bi must not yet have
// move's placements applied, the same precondition Score has.
func FormedWords(bi *BoardIndex, dir Direction, move Move) (main string, crosses []string) {
	horizontal := dir == Horizontal
	main = cellsToWord(buildMainWord(bi, move, horizontal))
	for _, p := range move {
		cross := buildCrossWord(bi, p, horizontal)
		if len(cross) > 1 {
			crosses = append(crosses, cellsToWord(cross))
		}
	}
	return main, crosses
}

func cellsToWord(cells []scoredCell) string {
	rs := make([]rune, len(cells))
	for i, c := range cells {
		rs[i] = c.Tile.Letter
	}
	return string(rs)
}

func (cfg *ScoringConfig) scoreWord(cells []scoredCell) int {
	total, wordMult := 0, 1
	for _, cell := range cells {
		val := cfg.faceValue(cell.Tile)
		if cell.IsNew {
			lm, wm := cfg.premiumAt(cell.Row, cell.Col).multipliers()
			total += val * lm
			wordMult *= wm
		} else {
			total += val
		}
	}
	return total * wordMult
}

// buildMainWord reconstructs the full word placements forms along its
// own axis, extending into any pre-existing prefix/suffix tiles.
func buildMainWord(bi *BoardIndex, placements []TilePlacement, horizontal bool) []scoredCell {
	byIdx := make(map[int]TileLetter, len(placements))
	var line, minIdx, maxIdx int
	first := true
	for _, p := range placements {
		var idx int
		if horizontal {
			line, idx = p.Row, p.Col
		} else {
			line, idx = p.Col, p.Row
		}
		byIdx[idx] = p.Tile
		if first {
			minIdx, maxIdx = idx, idx
			first = false
		}
		if idx < minIdx {
			minIdx = idx
		}
		if idx > maxIdx {
			maxIdx = idx
		}
	}

	cellAt := func(idx int) (int, int) {
		if horizontal {
			return line, idx
		}
		return idx, line
	}

	start := minIdx
	for {
		r, c := cellAt(start - 1)
		if bi.TileAt(r, c) == nil {
			break
		}
		start--
	}
	end := maxIdx
	for {
		r, c := cellAt(end + 1)
		if bi.TileAt(r, c) == nil {
			break
		}
		end++
	}

	cells := make([]scoredCell, 0, end-start+1)
	for idx := start; idx <= end; idx++ {
		r, c := cellAt(idx)
		if t, isNew := byIdx[idx]; isNew {
			cells = append(cells, scoredCell{Row: r, Col: c, Tile: t, IsNew: true})
		} else {
			cells = append(cells, scoredCell{Row: r, Col: c, Tile: *bi.TileAt(r, c), IsNew: false})
		}
	}
	return cells
}

// buildCrossWord reconstructs the cross word through the newly placed
// tile p, scanning the axis perpendicular to horizontal. It reads
// neighboring tiles from bi, which must not yet have p itself applied:
// Score is meant to evaluate a candidate move against the board state
// it was generated against, before PlaceTiles commits it.
func buildCrossWord(bi *BoardIndex, p TilePlacement, horizontal bool) []scoredCell {
	var dr, dc int
	if horizontal {
		dr = 1
	} else {
		dc = 1
	}

	var prefix []scoredCell
	pr, pc := p.Row-dr, p.Col-dc
	for t := bi.TileAt(pr, pc); t != nil; t = bi.TileAt(pr, pc) {
		prefix = append(prefix, scoredCell{Row: pr, Col: pc, Tile: *t})
		pr, pc = pr-dr, pc-dc
	}
	cells := make([]scoredCell, 0, len(prefix)*2+1)
	for i := len(prefix) - 1; i >= 0; i-- {
		cells = append(cells, prefix[i])
	}
	cells = append(cells, scoredCell{Row: p.Row, Col: p.Col, Tile: p.Tile, IsNew: true})
	nr, nc := p.Row+dr, p.Col+dc
	for t := bi.TileAt(nr, nc); t != nil; t = bi.TileAt(nr, nc) {
		cells = append(cells, scoredCell{Row: nr, Col: nc, Tile: *t})
		nr, nc = nr+dr, nc+dc
	}
	return cells
}
