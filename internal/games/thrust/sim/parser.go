package sim

import "fmt"

// TokenKind identifies what a grid cell places.
type TokenKind int

const (
	TokenTerrain TokenKind = iota
	TokenPlayer
	TokenChaser
	TokenFuel
	TokenAmmo
	TokenScore
	TokenShield
	TokenExit
	TokenUpdraft
	TokenTurret
	TokenButton
	TokenGate
)

var singleTokens = map[byte]TokenKind{
	'X': TokenTerrain,
	'P': TokenPlayer,
	'E': TokenChaser,
	'F': TokenFuel,
	'A': TokenAmmo,
	'S': TokenScore,
	'H': TokenShield,
	'G': TokenExit,
	'U': TokenUpdraft,
}

var pairedTokens = map[byte]TokenKind{
	'T': TokenTurret,
	'B': TokenButton,
	'D': TokenGate,
}

func (k TokenKind) String() string {
	switch k {
	case TokenTerrain:
		return "terrain"
	case TokenPlayer:
		return "player"
	case TokenChaser:
		return "chaser"
	case TokenFuel:
		return "fuel"
	case TokenAmmo:
		return "ammo"
	case TokenScore:
		return "score"
	case TokenShield:
		return "shield"
	case TokenExit:
		return "exit"
	case TokenUpdraft:
		return "updraft"
	case TokenTurret:
		return "turret"
	case TokenButton:
		return "button"
	case TokenGate:
		return "gate"
	default:
		return "unknown"
	}
}

// Placement is one entity produced by the parser, anchored at the cell of
// its first character.
type Placement struct {
	Kind TokenKind
	Row  int
	Col  int
	ID   int // Digit of T#, B#, D#; zero otherwise
}

// Issue is a recoverable problem found while parsing a level.
type Issue struct {
	Row    int
	Col    int
	Token  string
	Reason string
}

func (i Issue) String() string {
	return fmt.Sprintf("row %d col %d %q: %s", i.Row, i.Col, i.Token, i.Reason)
}

// Layout is the parsed form of a level grid.
type Layout struct {
	Rows       int
	Cols       int
	Placements []Placement
	Issues     []Issue
}

// Find returns the first placement of kind.
func (l Layout) Find(kind TokenKind) (Placement, bool) {
	for _, p := range l.Placements {
		if p.Kind == kind {
			return p, true
		}
	}
	return Placement{}, false
}

// Count returns the number of placements of kind.
func (l Layout) Count(kind TokenKind) int {
	n := 0
	for _, p := range l.Placements {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

// ParseGrid turns level rows into placements. Unknown characters and
// malformed two-character tokens become empty space and are reported as
// issues. Only the first P and the first G are kept.
func ParseGrid(rows []string) Layout {
	l := Layout{Rows: len(rows)}
	var seenPlayer, seenExit bool

	for r, row := range rows {
		l.Cols = max(l.Cols, len(row))
		for c := 0; c < len(row); {
			p, width, issue := scanToken(row, r, c)
			c += width

			if issue != nil {
				l.Issues = append(l.Issues, *issue)
				continue
			}
			if p == nil {
				continue
			}

			switch p.Kind {
			case TokenPlayer:
				if seenPlayer {
					l.Issues = append(l.Issues, Issue{Row: r, Col: p.Col, Token: "P", Reason: "duplicate player start ignored"})
					continue
				}
				seenPlayer = true
			case TokenExit:
				if seenExit {
					l.Issues = append(l.Issues, Issue{Row: r, Col: p.Col, Token: "G", Reason: "duplicate exit ignored"})
					continue
				}
				seenExit = true
			}
			l.Placements = append(l.Placements, *p)
		}
	}

	if !seenPlayer {
		l.Issues = append(l.Issues, Issue{Row: -1, Col: -1, Reason: "no player start"})
	}
	if !seenExit {
		l.Issues = append(l.Issues, Issue{Row: -1, Col: -1, Reason: "no exit"})
	}
	return l
}

// scanToken reads the token starting at column c and returns how many
// characters it consumed. A paired letter looks one cell ahead for its digit.
func scanToken(row string, r, c int) (*Placement, int, *Issue) {
	ch := row[c]
	if ch == '.' || ch == ' ' {
		return nil, 1, nil
	}

	if kind, ok := singleTokens[ch]; ok {
		return &Placement{Kind: kind, Row: r, Col: c}, 1, nil
	}

	if kind, ok := pairedTokens[ch]; ok {
		if c+1 >= len(row) {
			return nil, 1, &Issue{Row: r, Col: c, Token: string(ch), Reason: "truncated token at end of row"}
		}
		d := row[c+1]
		if d < '0' || d > '9' {
			return nil, 1, &Issue{Row: r, Col: c, Token: row[c : c+2], Reason: "expected digit after " + string(ch)}
		}
		return &Placement{Kind: kind, Row: r, Col: c, ID: int(d - '0')}, 2, nil
	}

	return nil, 1, &Issue{Row: r, Col: c, Token: string(ch), Reason: "unknown character"}
}
