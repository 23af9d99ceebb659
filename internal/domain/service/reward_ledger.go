package service

import "context"

// RewardLedger abstracts the optional on-chain UtilCoin contract. The
// database balance is authoritative; minting is a trailing best-effort
// mirror, so callers treat every failure uniformly as non-fatal.
type RewardLedger interface {
	// Mint credits the given wallet address with the UtilCoin amount and
	// returns the transaction hash.
	Mint(ctx context.Context, walletAddress string, amount float64) (string, error)
}
