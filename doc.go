// Package fantasy runs fantasy leagues for stock pickers. It is designed to
// be local-first and replayable, a league is one YAML file and one price
// cache, so a season produces the same result on every machine.
//
// The core functionalities include:
//   - League Definition: Teams and their dated playbooks of target
//     allocations, validated before a season runs.
//   - Market Data: Daily adjusted closes fetched once from public
//     providers into a local SQLite cache, and read from the cache ever
//     after.
//   - Backtesting: A deterministic replay of every team's playbook at
//     daily closes, in whole shares, producing equity curves and trade
//     logs.
//   - Scoring: Monthly awards for best return and shallowest drawdown,
//     summed into a season scoreboard with a fewest-rebalances tiebreak.
//   - Comparison: Lining a team's replay up against an external benchmark
//     level series.
//
// This package serves as the foundational logic for the `fpa` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package fantasy
