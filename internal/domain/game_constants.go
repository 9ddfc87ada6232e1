package domain

// Rule constants for the fixed Jolly setup.
const (
	OpeningPoints = 36 // minimum meld points to open, alongside a pure run
	MeldMinRound  = 3  // melding, discard draws and Jolly calls unlock here
	HumanDeal     = 13
	CpuDeal       = 12
	JollyHandSize = 12 // exact hand size required to call a Jolly Hand
)

// Client -> server opcodes.
const (
	OpCodeStartGame   int64 = 1
	OpCodeDrawCard    int64 = 2
	OpCodeUndoDraw    int64 = 3
	OpCodeMeld        int64 = 4
	OpCodeAddToMeld   int64 = 5
	OpCodeJokerSwap   int64 = 6
	OpCodeCancelMelds int64 = 7
	OpCodeDiscard     int64 = 8
	OpCodeJollyHand   int64 = 9
	OpCodeUndoJolly   int64 = 10
)

// Server -> client opcodes.
const (
	OpCodeGameState    int64 = 100
	OpCodeActionResult int64 = 101
	OpCodeCpuTurn      int64 = 102
	OpCodeGameEnded    int64 = 103
)
