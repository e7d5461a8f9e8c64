package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGridSingleTokens(t *testing.T) {
	tests := []struct {
		ch   string
		kind TokenKind
	}{
		{"X", TokenTerrain},
		{"P", TokenPlayer},
		{"E", TokenChaser},
		{"F", TokenFuel},
		{"A", TokenAmmo},
		{"S", TokenScore},
		{"H", TokenShield},
		{"G", TokenExit},
		{"U", TokenUpdraft},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			l := ParseGrid([]string{".." + tt.ch})
			require.Len(t, l.Placements, 1)
			assert.Equal(t, tt.kind, l.Placements[0].Kind)
			assert.Equal(t, 2, l.Placements[0].Col)
			assert.Equal(t, 0, l.Placements[0].Row)
		})
	}
}

func TestParseGridPairedTokens(t *testing.T) {
	l := ParseGrid([]string{"T3.B1XD1"})

	require.Len(t, l.Placements, 4)
	assert.Equal(t, Placement{Kind: TokenTurret, Row: 0, Col: 0, ID: 3}, l.Placements[0])
	assert.Equal(t, Placement{Kind: TokenButton, Row: 0, Col: 3, ID: 1}, l.Placements[1])
	assert.Equal(t, Placement{Kind: TokenTerrain, Row: 0, Col: 5}, l.Placements[2])
	assert.Equal(t, Placement{Kind: TokenGate, Row: 0, Col: 6, ID: 1}, l.Placements[3])
}

func TestParseGridDigitIsNotReadAsToken(t *testing.T) {
	// The digit after a paired letter is consumed; "X" right after it is terrain.
	l := ParseGrid([]string{"D9X"})
	require.Len(t, l.Placements, 2)
	assert.Equal(t, 9, l.Placements[0].ID)
	assert.Equal(t, TokenTerrain, l.Placements[1].Kind)
	assert.Equal(t, 2, l.Placements[1].Col)
}

func TestParseGridTruncatedToken(t *testing.T) {
	l := ParseGrid([]string{"XXT", "PG"})

	assert.Equal(t, 2, l.Count(TokenTerrain))
	assert.Equal(t, 0, l.Count(TokenTurret))
	require.Len(t, l.Issues, 1)
	assert.Equal(t, 0, l.Issues[0].Row)
	assert.Equal(t, 2, l.Issues[0].Col)
	assert.Equal(t, "T", l.Issues[0].Token)
}

func TestParseGridMissingDigit(t *testing.T) {
	l := ParseGrid([]string{"BXPG"})

	assert.Equal(t, 0, l.Count(TokenButton))
	assert.Equal(t, 1, l.Count(TokenTerrain))
	p, ok := l.Find(TokenTerrain)
	require.True(t, ok)
	assert.Equal(t, 1, p.Col)
	require.Len(t, l.Issues, 1)
	assert.Equal(t, "BX", l.Issues[0].Token)
}

func TestParseGridUnknownCharacters(t *testing.T) {
	l := ParseGrid([]string{"P?G", "5 ."})

	assert.Len(t, l.Placements, 2)
	require.Len(t, l.Issues, 2)
	assert.Equal(t, "?", l.Issues[0].Token)
	assert.Equal(t, "5", l.Issues[1].Token)
}

func TestParseGridFirstPlayerAndExitWin(t *testing.T) {
	l := ParseGrid([]string{
		"..P..G",
		"P...G.",
	})

	assert.Equal(t, 1, l.Count(TokenPlayer))
	assert.Equal(t, 1, l.Count(TokenExit))

	p, _ := l.Find(TokenPlayer)
	assert.Equal(t, 0, p.Row)
	assert.Equal(t, 2, p.Col)
	g, _ := l.Find(TokenExit)
	assert.Equal(t, 0, g.Row)
	assert.Equal(t, 5, g.Col)

	assert.Len(t, l.Issues, 2)
}

func TestParseGridReportsMissingMarkers(t *testing.T) {
	l := ParseGrid([]string{"XXX"})

	require.Len(t, l.Issues, 2)
	assert.Equal(t, "no player start", l.Issues[0].Reason)
	assert.Equal(t, "no exit", l.Issues[1].Reason)
}

func TestParseGridDimensions(t *testing.T) {
	l := ParseGrid([]string{"XXXX", "XP", "XXXXXX"})
	assert.Equal(t, 3, l.Rows)
	assert.Equal(t, 6, l.Cols)
}

func TestCellCenter(t *testing.T) {
	assert.Equal(t, V(20, 20), cellCenter(0, 0, 40))
	assert.Equal(t, V(140, 60), cellCenter(1, 3, 40))
}
