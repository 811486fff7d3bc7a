// meta/meta.go
package meta

// BOARD_SIZE defines the default side length of the board.
const BOARD_SIZE = 15

// WIN_SIZE defines the default number of stones in a row needed to win.
const WIN_SIZE = 5

// AGENT_PORT defines the default port of the agent server.
const AGENT_PORT = "8080"

// GAMES_PER_MATCHUP defines the default number of games per experiment matchup.
const GAMES_PER_MATCHUP = 10

const OUTPUT_DIR = "results"
