package searcher

// Defaults for the centered priority region

const CenterDivisor = 5 // radius = boardSize / CenterDivisor, 3 on a 15x15 board

const CenterPriority = 1
const OuterPriority = 0
