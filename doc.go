// Package wealth implements the computations behind a personal wealth
// tracker: net worth snapshots and trends, savings goals, debt payoff
// simulation, financial independence projection, a composite health score,
// recurring transaction scheduling, periodic reports, and the gamification
// layer of XP, levels, streaks, achievements and milestones.
//
// The package is purely computational. Records are plain values persisted as
// JSON lines through [Store]; no computation here performs I/O. Monetary
// amounts use [Money], a decimal value tagged with its currency, so totals
// are exact and mixing currencies is a programming error rather than a
// silent loss.
package wealth
