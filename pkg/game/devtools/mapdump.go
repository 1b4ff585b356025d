// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"scanmaze/pkg/engine/world"
	"scanmaze/pkg/game/state"
)

// cellSymbol returns the single-character symbol for a cell with the
// player, start and exit overlays applied
func cellSymbol(g *state.Game, row, col int) rune {
	p := world.Point{Row: row, Col: col}
	switch {
	case p == g.Player.Position():
		return '@'
	case p == g.Layout.Start:
		return 'S'
	case p == g.Layout.Exit && !g.Grid.Get(row, col):
		return 'E'
	case g.Grid.Get(row, col):
		return '#'
	default:
		return '.'
	}
}

// DumpMaze writes a human-readable dump of the current maze: metadata,
// legend, the map and the packed rows as they would appear in firmware
func DumpMaze(w io.Writer, g *state.Game) error {
	if g.Grid == nil {
		return fmt.Errorf("no grid")
	}

	bw := bufio.NewWriter(w)
	rows, cols := g.Grid.Rows(), g.Grid.Cols()

	// --- Metadata ---
	fmt.Fprintln(bw, "=== MAZE DUMP ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "maze_id: %s\n", g.MazeID)
	fmt.Fprintf(bw, "maze_number: %d\n", g.MazesGenerated)
	fmt.Fprintf(bw, "generator: %s\n", g.Generator.Name())
	fmt.Fprintf(bw, "grid_rows: %d\n", rows)
	fmt.Fprintf(bw, "grid_cols: %d\n", cols)
	fmt.Fprintf(bw, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(bw, "start_cell: %d,%d\n", g.Layout.Start.Row, g.Layout.Start.Col)
	fmt.Fprintf(bw, "exit_cell: %d,%d\n", g.Layout.Exit.Row, g.Layout.Exit.Col)
	fmt.Fprintf(bw, "player_cell: %d,%d\n", g.Player.Row, g.Player.Col)
	fmt.Fprintf(bw, "player_heading: %s\n", g.Player.Heading)
	fmt.Fprintf(bw, "iterations: %d\n", g.Layout.Iterations)
	fmt.Fprintf(bw, "truncated: %v\n", g.Layout.Truncated)
	fmt.Fprintf(bw, "walls: %d\n", g.Grid.WallCount())
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend (cell symbols) ---")
	fmt.Fprintln(bw, ". = passage  # = wall  S = start  E = exit  @ = player")
	fmt.Fprintln(bw, "")

	// --- Map ---
	fmt.Fprintln(bw, "--- Map ---")
	for row := 0; row < rows; row++ {
		fmt.Fprintf(bw, "%3d: ", row)
		for col := 0; col < cols; col++ {
			bw.WriteRune(cellSymbol(g, row, col))
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw, "")

	// --- Packed rows ---
	if cols <= 64 {
		fmt.Fprintln(bw, "--- Rows (1 = wall, column 0 in the high bit) ---")
		for row := 0; row < rows; row++ {
			fmt.Fprintf(bw, "0b%0*b, // 0x%0*X\n", cols, g.Grid.RowBits(row), (cols+3)/4, g.Grid.RowBits(row))
		}
	}

	return bw.Flush()
}

// DumpMazeToFile writes DumpMaze output into dir, named after the maze ID,
// and returns the absolute path
func DumpMazeToFile(g *state.Game, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	name := fmt.Sprintf("maze-%s.txt", g.MazeID.String()[:8])

	absPath, err := filepath.Abs(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create maze dump: %w", err)
	}
	defer f.Close()

	if err := DumpMaze(f, g); err != nil {
		return "", fmt.Errorf("write maze dump: %w", err)
	}
	return absPath, nil
}
